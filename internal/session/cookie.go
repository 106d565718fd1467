// Package session reads and writes the single session cookie for one
// request/response cycle.
package session

import "net/http"

// DefaultMaxAge is the session cookie lifetime in seconds (30 days).
const DefaultMaxAge = 60 * 60 * 24 * 30

// Options defines the attributes of an issued session cookie.
type Options struct {
	MaxAge   int
	Path     string
	HTTPOnly bool
	Secure   bool
}

// DefaultOptions returns the standard session cookie attributes. Secure is
// toggled by whether the deployment is production.
func DefaultOptions(secure bool) Options {
	return Options{
		MaxAge:   DefaultMaxAge,
		Path:     "/",
		HTTPOnly: true,
		Secure:   secure,
	}
}

// Jar bundles the response writer and request of one HTTP exchange so the
// auth flow can manipulate the session cookie without holding ambient state.
type Jar struct {
	w http.ResponseWriter
	r *http.Request
}

// NewJar creates a cookie jar scoped to a single request/response cycle.
func NewJar(w http.ResponseWriter, r *http.Request) *Jar {
	return &Jar{w: w, r: r}
}

// Set issues the named cookie on the response. Setting an empty value is a
// deliberate no-op so a missing token can never clear an existing session.
func (j *Jar) Set(name, value string, opts Options) {
	if value == "" {
		return
	}

	http.SetCookie(j.w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     opts.Path,
		MaxAge:   opts.MaxAge,
		HttpOnly: opts.HTTPOnly,
		Secure:   opts.Secure,
	})
}

// Get reads the named cookie from the request. The second return value is
// false when the cookie is missing or present but valueless.
func (j *Jar) Get(name string) (string, bool) {
	c, err := j.r.Cookie(name)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}

// Delete removes the named cookie from the client. Deleting an absent cookie
// is not an error.
func (j *Jar) Delete(name string, opts Options) {
	http.SetCookie(j.w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     opts.Path,
		MaxAge:   -1,
		HttpOnly: opts.HTTPOnly,
		Secure:   opts.Secure,
	})
}
