package contextkeys

// Custom key type to avoid collisions with other packages' context values.
type contextKey string

// DBContextKey holds the *gorm.DB handle for the current request.
const DBContextKey = contextKey("db")
