package models

// UserList represents a curated list of games owned by a user.
type UserList struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Username    string `json:"username"`
	Games       []Game `json:"games"`
}

// FavoriteItem is the record returned when a game is added to favorites.
type FavoriteItem struct {
	GameListID int    `json:"game_list_id"`
	IGDBID     int    `json:"igdb_id"`
	Name       string `json:"name"`
}
