package models

// ThreadUser is the author summary embedded in threads and replies.
type ThreadUser struct {
	ID                int    `json:"id"`
	Username          string `json:"username"`
	ProfilePictureURL string `json:"profile_picture_url"`
}

// ForumThread represents one discussion thread in a game's forum.
type ForumThread struct {
	ID           int        `json:"id"`
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	GameLocalID  int        `json:"game_local_id"`
	User         ThreadUser `json:"user"`
	CreatedAt    string     `json:"created_at"`
	LikesCount   int        `json:"likes_count"`
	RepliesCount int        `json:"replies_count"`
}

// Reply represents one reply inside a thread.
type Reply struct {
	ID        int        `json:"id"`
	Content   string     `json:"content"`
	CreatedAt string     `json:"created_at"`
	User      ThreadUser `json:"user"`
}

// ThreadDetail is the combined thread-with-replies shape returned by
// the thread detail endpoint. The replies-only projection is derived
// from this same fetch, never from a second request.
type ThreadDetail struct {
	ForumThread
	Replies []Reply `json:"replies"`
}

// ThreadPage is one page of a game's forum thread listing.
type ThreadPage struct {
	Threads []ForumThread `json:"data"`
	Pagination
}
