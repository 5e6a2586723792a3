package common

const (
	// AuthorizationHeaderName is the gRPC metadata key / HTTP header carrying
	// the bearer token.
	AuthorizationHeaderName = "authorization"

	// TokenType is the scheme returned with every issued token.
	TokenType = "Bearer"

	// LogoutMessage acknowledges a successful logout.
	LogoutMessage = "successfully log out"
)
