// Package identity provides anonymous per-device identity.
package identity

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const (
	DeviceCookieName   = "health_chat_device"
	deviceCookieMaxAge = 365 * 24 * time.Hour
)

type contextKey int

const deviceIDKey contextKey = iota

// DeviceIDFromContext extracts the device ID from the request context.
func DeviceIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(deviceIDKey).(string); ok {
		return v
	}
	return ""
}

// WithDeviceID returns a context carrying id.
func WithDeviceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, deviceIDKey, id)
}

func isValidDeviceID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func getOrCreateDeviceID(w http.ResponseWriter, r *http.Request, secure bool) string {
	id := ""
	if c, err := r.Cookie(DeviceCookieName); err == nil && isValidDeviceID(c.Value) {
		id = c.Value
	} else {
		id = uuid.NewString()
	}

	// Refreshed on every request so active devices never expire.
	http.SetCookie(w, &http.Cookie{
		Name:     DeviceCookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(deviceCookieMaxAge.Seconds()),
		Expires:  time.Now().Add(deviceCookieMaxAge),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
	})
	return id
}

// Middleware assigns every browser an anonymous device ID kept in a cookie
// and injects it into the request context.
func Middleware(secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := getOrCreateDeviceID(w, r, secure)
			next.ServeHTTP(w, r.WithContext(WithDeviceID(r.Context(), id)))
		})
	}
}
