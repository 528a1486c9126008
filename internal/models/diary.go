package models

// DiaryGame is the game summary embedded in a diary entry.
type DiaryGame struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	CoverURL string `json:"cover_url"`
}

// DiaryEntry represents one logged play activity.
// Status is one of the api.DiaryStatus* values, Rating is 1-5,
// PlayedAt is an ISO date.
type DiaryEntry struct {
	ID       int       `json:"id"`
	Game     DiaryGame `json:"game"`
	Platform string    `json:"platform"`
	Status   string    `json:"status"`
	Rating   int       `json:"rating"`
	Review   string    `json:"review"`
	PlayedAt string    `json:"played_at"`
	Liked    bool      `json:"liked"`
}
