// Package cookie provides HTTP cookie management with shared default
// attributes, size enforcement and environment-based configuration.
//
//	manager := cookie.NewFromConfig(cfg.Cookie)
//
//	// Set a cookie with the manager defaults
//	err := manager.Set(w, "theme", "dark")
//
//	// Get a cookie value
//	value, err := manager.Get(r, "theme")
//	if errors.Is(err, cookie.ErrCookieNotFound) {
//		// Cookie doesn't exist
//	}
//
// Defaults are Path "/", HttpOnly and SameSite=Lax. Cookies larger than 4KB
// are rejected with ErrCookieTooLarge.
package cookie
