package models

// UserSummary is the compact user shape in following/follower listings.
type UserSummary struct {
	ID                int    `json:"id"`
	Username          string `json:"username"`
	ProfilePictureURL string `json:"profile_picture_url"`
}

// Profile represents a user's public profile with its game shelves.
type Profile struct {
	ID                int    `json:"id"`
	Username          string `json:"username"`
	Bio               string `json:"bio"`
	ProfilePictureURL string `json:"profile_picture_url"`
	PlayedGameCount   int    `json:"played_game_count"`
	DiaryCount        int    `json:"diary_count"`
	FollowingCount    int    `json:"following_count"`
	FollowerCount     int    `json:"follower_count"`
	Favorites         []Game `json:"favorites"`
	RecentlyPlayed    []Game `json:"recently_played"`
}
