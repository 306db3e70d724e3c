package sources

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured means the credential for a paid upstream is missing or a placeholder.
	ErrNotConfigured = errors.New("upstream credential not configured")
	// ErrCredentialRejected means a paid upstream refused the configured credential.
	ErrCredentialRejected = errors.New("upstream rejected credential")
	// ErrUnusableIdentity means the identity source answered but the record cannot build a profile.
	ErrUnusableIdentity = errors.New("unusable identity record")
	ErrCountryNotFound  = errors.New("country not found")
	ErrInvalidCurrency  = errors.New("invalid currency code")
	ErrNewsStatus       = errors.New("news source reported an error")
)

// UpstreamError is returned when a source answers with a non-2xx status.
type UpstreamError struct {
	Source     string
	StatusCode int
	Body       []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", e.Source, e.StatusCode)
}
