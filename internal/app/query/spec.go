package query

import (
	"fmt"

	"github.com/mverbeke/campushub/internal/pkg/apperrors"
)

const (
	// DefaultTake is used when a request does not specify a page size.
	DefaultTake = 25
	// MaxTake bounds a single page.
	MaxTake = 1000
)

// Spec carries the caller-supplied listing parameters shared by every list
// endpoint: an optional search term, an optional ordering field with
// direction, and an offset/limit window.
type Spec struct {
	SearchTerm      string `form:"searchTerm"`
	OrderBy         string `form:"orderBy"`
	OrderDescending bool   `form:"orderDescending"`
	Skip            int    `form:"skip"`
	Take            int    `form:"take"`
}

// Validate checks the window bounds: skip must be non-negative and take must
// be between 1 and MaxTake.
func (s Spec) Validate() error {
	if s.Skip < 0 {
		return fmt.Errorf("%w: skip must be >= 0, got %d", apperrors.ErrValidationFailed, s.Skip)
	}
	if s.Take < 1 || s.Take > MaxTake {
		return fmt.Errorf("%w: take must be between 1 and %d, got %d",
			apperrors.ErrValidationFailed, MaxTake, s.Take)
	}
	return nil
}
