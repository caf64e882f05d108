package domain

import (
	"errors"
	"fmt"
)

// Domain-level errors
var (
	ErrFetch           = errors.New("catalog fetch failed")
	ErrProductNotFound = errors.New("product not found")
	ErrPageOutOfRange  = errors.New("page out of range")
	ErrInvalidCurrency = errors.New("invalid currency")
)

// FetchError is returned by catalog sources when a remote call fails, returns a
// non-success status or a body that is not valid JSON. The three causes are not
// distinguished by callers.
type FetchError struct {
	Op         string
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: %s returned status %d", e.Op, e.URL, e.StatusCode)
	case e.Err != nil && e.URL != "":
		return fmt.Sprintf("%s: %s: %v", e.Op, e.URL, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return e.Op + ": " + ErrFetch.Error()
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is reports every FetchError as ErrFetch
func (e *FetchError) Is(target error) bool {
	return target == ErrFetch
}
