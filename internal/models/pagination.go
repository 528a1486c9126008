package models

// Pagination is the normalized paging shape every listing exposes,
// regardless of the backend's exact meta/links field names.
// NextPage is nil exactly when CurrentPage == LastPage.
type Pagination struct {
	CurrentPage int  `json:"current_page"`
	LastPage    int  `json:"last_page"`
	NextPage    *int `json:"next_page"`
}

// HasMore reports whether another page exists after the current one.
func (p Pagination) HasMore() bool {
	return p.NextPage != nil
}
