// Package session owns the two client-side stores of identity: the bearer
// credential in a short-lived cookie and the session profile in sqlite, keyed
// by a separate long-lived cookie. They are deliberately independent and can
// desync if one is cleared without the other; readers must tolerate that.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
)

const (
	// TokenCookieName holds the opaque bearer credential issued at login.
	TokenCookieName = "authToken"
	// ProfileCookieName holds the key of the durable profile row.
	ProfileCookieName = "profileID"

	// TokenMaxAge expires the credential after one day.
	TokenMaxAge = 24 * 60 * 60
	// ProfileMaxAge keeps the profile key around well past the credential.
	ProfileMaxAge = 30 * 24 * 60 * 60
)

// TokenCookie builds the credential cookie. Pass a negative maxAge to clear.
func TokenCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     TokenCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   false,
	}
}

// ProfileCookie builds the profile-key cookie. Pass a negative maxAge to clear.
func ProfileCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     ProfileCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   false,
	}
}

// NewProfileID returns a fresh random profile key.
func NewProfileID() string {
	buf := make([]byte, 24)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
