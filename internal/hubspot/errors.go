package hubspot

import "fmt"

// AuthError reports missing or rejected credentials (HTTP 401/403, or no
// credentials configured at all). Not retryable without new credentials.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("hubspot: authentication failed: %s", e.Message)
}

// RateLimitError reports backend throttling (HTTP 429). RetryAfter is the
// delay in seconds indicated by the Retry-After header, defaulting to 60
// when the header is absent or malformed.
type RateLimitError struct {
	RetryAfter int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("hubspot: rate limited, retry after %ds", e.RetryAfter)
}

// APIError reports any other non-2xx response. Message is extracted from the
// response body on a best-effort basis. Never retried automatically; the
// caller decides.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("hubspot: API error %d: %s", e.StatusCode, e.Message)
}

// AssociationError reports a create that succeeded but whose follow-up
// association call failed. The created entity is returned alongside this
// error; no compensating delete is attempted.
type AssociationError struct {
	ObjectType string
	ObjectID   string
	Err        error
}

func (e *AssociationError) Error() string {
	return fmt.Sprintf("hubspot: %s %s created but association failed: %v", e.ObjectType, e.ObjectID, e.Err)
}

func (e *AssociationError) Unwrap() error { return e.Err }
