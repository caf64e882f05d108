package events

// PageLoaded is published after a listing page has been fetched and enriched
type PageLoaded struct {
	Page       int `json:"page"`
	TotalPages int `json:"total_pages"`
	Count      int `json:"count"`
}

// ProductViewed is published after a product detail fetch succeeds
type ProductViewed struct {
	ProductID int    `json:"product_id"`
	Title     string `json:"title"`
}

// FetchFailed is published when a catalog call fails
type FetchFailed struct {
	Operation string `json:"operation"`
	Error     string `json:"error"`
}

// ScrollReset tells a listing view to scroll back to the top after navigation
type ScrollReset struct {
	Page int `json:"page"`
}
