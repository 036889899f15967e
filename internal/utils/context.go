package utils

// contextKey is a type used for context keys to avoid conflicts with other packages' context keys.
type contextKey struct {
	name string
}

// Returns string representation of the context key.
func (c *contextKey) String() string {
	return c.name
}

// AuthContextKey is the gin context key under which RequireAuth stores the resolved identity.
var AuthContextKey = &contextKey{"authContext"}
var TraceIdKey = &contextKey{"traceId"}
var PayloadKey = &contextKey{"payload"}
