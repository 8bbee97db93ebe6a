package models

// FeedPage is one page of a user's composed feed plus pagination metadata.
// Pages are 1-indexed.
type FeedPage struct {
	Posts       []*Post `json:"posts"`
	Page        int     `json:"page"`
	PageSize    int     `json:"page_size"`
	TotalCount  int64   `json:"total_count"`
	HasNext     bool    `json:"has_next"`
	HasPrevious bool    `json:"has_previous"`
}
