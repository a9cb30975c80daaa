package domain

// Storage keys of the per-user key/value namespace.
const (
	StorageKeyAuthToken        = "authToken"
	StorageKeyUserData         = "userData"
	StorageKeyUserInterests    = "userInterests"
	StorageKeyUserFavorites    = "userFavorites"
	StorageKeyRoutePreferences = "routePreferences"
)

// SessionStorageKeys are removed together on logout.
var SessionStorageKeys = []string{
	StorageKeyAuthToken,
	StorageKeyUserData,
	StorageKeyUserInterests,
	StorageKeyUserFavorites,
	StorageKeyRoutePreferences,
}

type Session struct {
	IsLoggedIn   bool  `json:"is_logged_in"`
	IsAdmin      bool  `json:"is_admin"`
	User         *User `json:"user"`
	HasInterests bool  `json:"has_interests"`
}

// UserState is everything a client keeps for a logged-in user.
type UserState struct {
	Interests        []Category       `json:"interests"`
	InterestsSet     bool             `json:"interests_set"`
	Favorites        Favorites        `json:"favorites"`
	RoutePreferences RoutePreferences `json:"route_preferences"`
}
