package query

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidQuery is returned for an empty or whitespace-only search
// query. It is a caller error, never logged as a system failure.
var ErrInvalidQuery = errors.New("search query is empty")

// NotFoundError is returned when an exact-name lookup finds nothing.
// Suggestions carries close names when any exist.
type NotFoundError struct {
	Name        string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("function %q not found", e.Name)
	}
	return fmt.Sprintf("function %q not found (did you mean %s?)", e.Name, strings.Join(e.Suggestions, ", "))
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
