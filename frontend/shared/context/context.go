package context

import (
	"context"

	"github.com/MannavaSravanthi/user-management-ui/models"
)

type profileKey struct{}

// NewContextWithProfile stores the session profile for this request.
func NewContextWithProfile(ctx context.Context, p models.Profile) context.Context {
	return context.WithValue(ctx, profileKey{}, p)
}

// GetProfileFromContext returns the session profile, if the guard loaded one.
// A request can be authenticated (credential present) with no profile when
// the two stores have desynced; callers treat that as a non-admin session.
func GetProfileFromContext(ctx context.Context) (models.Profile, bool) {
	p, ok := ctx.Value(profileKey{}).(models.Profile)
	return p, ok
}
