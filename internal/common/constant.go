package common

// AccessTokenCookieName and RefreshTokenCookieName are the cookie names used
// by the HTTP delivery layer to carry tokens to browser clients.
const (
	AccessTokenCookieName  = "accessToken"
	RefreshTokenCookieName = "refreshToken"
)
