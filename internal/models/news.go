package models

import "time"

type News struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Date        string    `json:"date"` // YYYY-MM-DD
	Author      string    `json:"author"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	Status      string    `json:"status"` // published, draft, archived
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateNewsRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Image       string `json:"image"`
	Author      string `json:"author"`
	Category    string `json:"category"`
}

// UpdateNewsRequest uses pointer fields so that absent keys are left
// untouched by the merge.
type UpdateNewsRequest struct {
	Title       *string `json:"title"`
	Slug        *string `json:"slug"`
	Date        *string `json:"date"`
	Author      *string `json:"author"`
	Image       *string `json:"image"`
	Description *string `json:"description"`
	Content     *string `json:"content"`
	Status      *string `json:"status"`
	Category    *string `json:"category"`
}

// NewsListOptions narrows and pages a news listing.
type NewsListOptions struct {
	Page     int
	Limit    int
	Category string
	Status   string
	Search   string
}

type NewsPagination struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalItems   int `json:"totalItems"`
	ItemsPerPage int `json:"itemsPerPage"`
}

type NewsList struct {
	Data       []News         `json:"data"`
	Pagination NewsPagination `json:"pagination"`
}

// SearchHighlight reports where a search keyword was found in an item.
type SearchHighlight struct {
	Keyword string   `json:"keyword"`
	FoundIn []string `json:"foundIn"` // subset of title, description, content
}

type NewsSearchItem struct {
	News
	SearchHighlight SearchHighlight `json:"searchHighlight"`
}

type SearchInfo struct {
	Keyword      string `json:"keyword"`
	TotalMatches int    `json:"totalMatches"`
}

type NewsSearchResult struct {
	Data       []NewsSearchItem `json:"data"`
	Pagination NewsPagination   `json:"pagination"`
	SearchInfo SearchInfo       `json:"searchInfo"`
}
