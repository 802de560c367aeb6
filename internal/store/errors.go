package store

import "fmt"

// ValidationError reports missing or malformed input. Handlers map it to a
// 400 response and surface Error() as the user-facing message, so Reason is
// written in the site's display language.
type ValidationError struct {
	Reason string
	Field  string // offending field(s), optional
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Reason, e.Field)
}

// NotFoundError reports a lookup that matched no record. Handlers map it to
// a 404 response.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}
