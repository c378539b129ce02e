package constant

const (
	// BearerScheme is the Authorization header scheme expected on protected routes.
	BearerScheme = "Bearer"

	// TokenTypeBearer is the token_type value returned by the login endpoint.
	TokenTypeBearer = "bearer"

	// CurrentUserKey is the fiber locals key the auth middleware stores the resolved user under.
	CurrentUserKey = "currentUser"
)
