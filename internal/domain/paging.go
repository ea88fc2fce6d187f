package domain

import (
	"fmt"
	"math"
)

const MaxPageSize = 200

// PageRequest selects a zero-based page of Size rows.
type PageRequest struct {
	Page int
	Size int
}

func NewPageRequest(page, size int) (PageRequest, error) {
	p := PageRequest{Page: page, Size: size}
	return p, p.Validate()
}

func (p PageRequest) Validate() error {
	if p.Page < 0 {
		return fmt.Errorf("%w: page number must not be negative", ErrValidation)
	}
	if p.Size <= 0 {
		return fmt.Errorf("%w: page size must be positive", ErrValidation)
	}
	if p.Size > MaxPageSize {
		return fmt.Errorf("%w: page size must not exceed %d", ErrValidation, MaxPageSize)
	}
	// Offset must fit in an int.
	if p.Page > math.MaxInt/p.Size {
		return fmt.Errorf("%w: page number is too large", ErrValidation)
	}
	return nil
}

func (p PageRequest) Limit() int {
	return p.Size
}

func (p PageRequest) Offset() int {
	return p.Page * p.Size
}
