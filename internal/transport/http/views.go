package http

import (
	"fmt"
	"math"
	"net/url"
	"strconv"

	"github.com/kahvecikaan/storefront/internal/domain"
	"github.com/kahvecikaan/storefront/internal/pricing"
)

const maxStars = 5

// cardView is a product as shown in the listing grid
type cardView struct {
	ID            int
	URL           string
	Title         string
	Brand         string
	Category      string
	Thumbnail     string
	Stars         []bool
	Rating        string
	Price         string
	OriginalPrice string
	Discount      string
	Availability  string
	Stock         int
}

type imageView struct {
	URL      string
	Link     string
	Alt      string
	Selected bool
}

type reviewView struct {
	Username string
	Date     string
	Comment  string
	Stars    []bool
}

type detailView struct {
	cardView
	Description   string
	MinimumOrder  int
	SelectedImage string
	Images        []imageView
	Reviews       []reviewView
}

type pageLink struct {
	Number  int
	URL     string
	Current bool
}

type pagerView struct {
	Links   []pageLink
	PrevURL string
	NextURL string
}

// stars marks the first n of five stars as filled
func stars(n int) []bool {
	s := make([]bool, maxStars)
	for i := range s {
		s[i] = i < n
	}
	return s
}

func newCardView(p domain.ExtendedProduct, currency string, rate float64) cardView {
	price := pricing.Convert(pricing.DiscountedPrice(p.Price, p.DiscountPercentage), rate)

	cv := cardView{
		ID:           p.ID,
		URL:          productURL(p.ID, currency, ""),
		Title:        p.Title,
		Brand:        p.Brand,
		Category:     p.Category,
		Thumbnail:    p.Thumbnail,
		Stars:        stars(int(math.Floor(p.Rating))),
		Rating:       strconv.FormatFloat(p.Rating, 'f', 1, 64),
		Price:        pricing.FormatPriceIn(price, currency),
		Discount:     pricing.DiscountLabel(p.DiscountPercentage),
		Availability: p.AvailabilityStatus,
		Stock:        p.Stock,
	}
	if cv.Discount != "" {
		original := pricing.Convert(pricing.DiscountedPrice(p.Price, 0), rate)
		cv.OriginalPrice = pricing.FormatPriceIn(original, currency)
	}
	return cv
}

// newDetailView builds the detail page. selected picks the main image; anything
// that is not one of the product's images falls back to the thumbnail.
func newDetailView(p domain.ExtendedProduct, currency string, rate float64, selected string) detailView {
	dv := detailView{
		cardView:      newCardView(p, currency, rate),
		Description:   p.Description,
		MinimumOrder:  p.MinimumOrderQuantity,
		SelectedImage: p.Thumbnail,
	}

	for _, img := range p.Images {
		if img == selected {
			dv.SelectedImage = img
		}
	}

	for i, img := range p.Images {
		dv.Images = append(dv.Images, imageView{
			URL:      img,
			Link:     productURL(p.ID, currency, img),
			Alt:      fmt.Sprintf("%s %d", p.Title, i+1),
			Selected: img == dv.SelectedImage,
		})
	}

	for _, r := range p.Reviews {
		dv.Reviews = append(dv.Reviews, reviewView{
			Username: r.Username,
			Date:     r.Date.String(),
			Comment:  r.Comment,
			Stars:    stars(r.Rating),
		})
	}

	return dv
}

func newPagerView(current, totalPages int, pages []int, currency string) pagerView {
	pv := pagerView{}
	for _, n := range pages {
		pv.Links = append(pv.Links, pageLink{Number: n, URL: listURL(n, currency), Current: n == current})
	}
	if current > 1 {
		pv.PrevURL = listURL(current-1, currency)
	}
	if current < totalPages {
		pv.NextURL = listURL(current+1, currency)
	}
	return pv
}

func listURL(page int, currency string) string {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	if currency != "" && currency != pricing.BaseCurrency {
		q.Set("currency", currency)
	}
	return "/products?" + q.Encode()
}

func productURL(id int, currency, image string) string {
	q := url.Values{}
	if currency != "" && currency != pricing.BaseCurrency {
		q.Set("currency", currency)
	}
	if image != "" {
		q.Set("image", image)
	}
	u := "/products/" + strconv.Itoa(id)
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}
