package consts

const (
	ApplicationName    = "10AI Product Catalog"
	ApplicationVersion = "1.0.0"
)

// gin context keys set by the auth middleware
const (
	ContextUserID   = "id"
	ContextUsername = "username"
)

// TokenCookieName is the cookie the login endpoint sets for browser clients.
const TokenCookieName = "token"

// DefaultSeasonName is stored when an acquisition request carries no season.
const DefaultSeasonName = "unspecified"
