// Command browse pages through the catalog in a terminal session.
//
//	n        next page
//	p        previous page
//	g N      go to page N
//	v ID     view a product with its reviews
//	r        reload the current page
//	q        quit
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/storefront/internal/domain"
	"github.com/kahvecikaan/storefront/internal/enrichment"
	"github.com/kahvecikaan/storefront/internal/events"
	"github.com/kahvecikaan/storefront/internal/pricing"
	"github.com/kahvecikaan/storefront/internal/repository"
	"github.com/kahvecikaan/storefront/internal/service"
	"github.com/nicholasjackson/env"
)

var (
	logLevel = env.String("LOG_LEVEL", false,
		"warn", "Log output level [debug, info, warn, error]")
	catalogURL = env.String("CATALOG_URL", false,
		repository.DefaultCatalogURL, "Base URL of the remote product catalog")
	catalogSource = env.String("CATALOG_SOURCE", false,
		"http", "Where products come from [http, memory]")
	clientTimeout = env.Duration("HTTP_CLIENT_TIMEOUT", false,
		10*time.Second, "Timeout for outgoing HTTP requests")
)

func main() {
	env.Parse()

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "browse",
		Level:  hclog.LevelFromString(*logLevel),
		Output: os.Stderr,
	})

	var source repository.CatalogSource
	switch *catalogSource {
	case "http":
		source = repository.NewHTTPCatalogSource(*catalogURL, &http.Client{Timeout: *clientTimeout}, logger.Named("catalog-source"))
	case "memory":
		source = repository.NewMemoryCatalogSource(repository.SampleProducts(100))
	default:
		logger.Error("Unknown catalog source", "source", *catalogSource)
		os.Exit(1)
	}

	eventBus := events.NewEventBus[any]()
	catalog := service.NewCatalogService(source, enrichment.NewDefaultEnricher(), eventBus, logger.Named("catalog-service"))
	browser := service.NewBrowser(catalog, eventBus, logger.Named("browser"))

	ctx := context.Background()
	browser.Load(ctx)
	printPage(os.Stdout, browser.View())

	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !in.Scan() {
			return
		}

		cmd, arg, _ := strings.Cut(strings.TrimSpace(in.Text()), " ")
		var err error
		switch cmd {
		case "":
			continue
		case "q":
			return
		case "n":
			err = browser.Next(ctx)
		case "p":
			err = browser.Prev(ctx)
		case "r":
			err = browser.Load(ctx)
		case "g":
			var page int
			if page, err = strconv.Atoi(arg); err == nil {
				err = browser.GoToPage(ctx, page)
			}
		case "v":
			var id int
			if id, err = strconv.Atoi(arg); err == nil {
				var p *domain.ExtendedProduct
				if p, err = catalog.GetProduct(ctx, id); err == nil {
					printProduct(os.Stdout, *p)
					continue
				}
			}
		default:
			fmt.Println("commands: n, p, g N, v ID, r, q")
			continue
		}

		if errors.Is(err, domain.ErrPageOutOfRange) {
			fmt.Println("No such page.")
			continue
		}
		if errors.Is(err, strconv.ErrSyntax) {
			fmt.Println("Expected a number.")
			continue
		}
		if errors.Is(err, domain.ErrFetch) && cmd != "v" {
			// the browser keeps the error in its view
			printPage(os.Stdout, browser.View())
			continue
		}
		if err != nil {
			fmt.Println("Failed to load product details. Please try again.")
			continue
		}
		printPage(os.Stdout, browser.View())
	}
}

func printPage(w io.Writer, v service.BrowserView) {
	if v.Err != nil {
		fmt.Fprintln(w, "Failed to load products. Please try again. (r to retry)")
		return
	}
	if len(v.Products) == 0 {
		fmt.Fprintln(w, "No products found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tPRICE\tDISCOUNT\tRATING\tAVAILABILITY")
	for _, p := range v.Products {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%.1f\t%s\n",
			p.ID,
			p.Title,
			pricing.FormatPrice(pricing.DiscountedPrice(p.Price, p.DiscountPercentage)),
			pricing.DiscountLabel(p.DiscountPercentage),
			p.Rating,
			p.AvailabilityStatus,
		)
	}
	tw.Flush()

	pages := make([]string, len(v.Pages))
	for i, n := range v.Pages {
		if n == v.Page {
			pages[i] = fmt.Sprintf("[%d]", n)
		} else {
			pages[i] = strconv.Itoa(n)
		}
	}
	fmt.Fprintf(w, "Page %d of %d  %s  (%d products)\n", v.Page, v.TotalPages, strings.Join(pages, " "), v.TotalItems)
}

func printProduct(w io.Writer, p domain.ExtendedProduct) {
	fmt.Fprintf(w, "%s (%s, %s)\n", p.Title, p.Brand, p.Category)
	fmt.Fprintf(w, "%s  was %s  %s\n",
		pricing.FormatPrice(pricing.DiscountedPrice(p.Price, p.DiscountPercentage)),
		pricing.FormatPrice(pricing.DiscountedPrice(p.Price, 0)),
		pricing.DiscountLabel(p.DiscountPercentage),
	)
	fmt.Fprintf(w, "%s: %d in stock • Minimum Order: %d\n", p.AvailabilityStatus, p.Stock, p.MinimumOrderQuantity)
	fmt.Fprintln(w, p.Description)

	if len(p.Reviews) == 0 {
		fmt.Fprintln(w, "No reviews yet for this product.")
		return
	}
	for _, r := range p.Reviews {
		fmt.Fprintf(w, "  %s %s %s\n    %s\n", strings.Repeat("*", r.Rating), r.Username, r.Date, r.Comment)
	}
}
