package api

// Diary entry statuses accepted by the backend.
const (
	DiaryStatusCompleted  = "completed"
	DiaryStatusInProgress = "in-progress"
	DiaryStatusDropped    = "dropped"
)

// CreateDiaryRequest is the body of POST /api/diary/create.
// PlayedAt is an ISO date, e.g. "2024-04-15".
type CreateDiaryRequest struct {
	GameID   int    `json:"game_id"`
	Platform string `json:"platform"`
	Status   string `json:"status"`
	Rating   int    `json:"rating"`
	Review   string `json:"review"`
	PlayedAt string `json:"played_at"`
	Liked    bool   `json:"liked"`
}

// CreateThreadRequest is the body of POST /api/forum/games/{slug}.
// GameLocalID is the catalog-local id of the game the thread belongs to.
type CreateThreadRequest struct {
	GameLocalID int    `json:"game_local_id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
}

// CreateReplyRequest is the body of POST /api/forum/{id}/replies.
type CreateReplyRequest struct {
	Content string `json:"content"`
}

// AddFavoriteRequest is the body of POST /api/lists/add-to-favorites.
type AddFavoriteRequest struct {
	IGDBID int `json:"igdb_id"`
}

// ListGameRef references a catalog game by local id inside a list body.
type ListGameRef struct {
	ID int `json:"id"`
}

// CreateListRequest is the body of POST /api/lists/custom.
type CreateListRequest struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Data        []ListGameRef `json:"data"`
}
