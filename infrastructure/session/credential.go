package session

import "context"

type credentialKey struct{}

// NewContextWithCredential stores the bearer credential for this request.
func NewContextWithCredential(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, credentialKey{}, token)
}

// CredentialFromContext returns the bearer credential, if any.
func CredentialFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(credentialKey{}).(string)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

// ContextCredentials reads the credential fresh from the request context on
// every API call, so a credential rotated elsewhere takes effect immediately.
type ContextCredentials struct{}

// Credential implements apiclient.CredentialSource.
func (ContextCredentials) Credential(ctx context.Context) (string, bool) {
	return CredentialFromContext(ctx)
}
