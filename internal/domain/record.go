package domain

import "time"

// Record is the metadata every persisted entity carries. Audit fields are
// stamped by the repository layer and ignored on input.
type Record struct {
	ID        int64     `json:"id"`
	CreatedBy *string   `json:"createdBy,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedBy *string   `json:"updatedBy,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
	IsDeleted bool      `json:"isDeleted"`
}

// IsNew reports whether the record has not been persisted yet.
func (r Record) IsNew() bool {
	return r.ID == 0
}

// ResetForCreate drops everything the store assigns so that a save creates a
// fresh row.
func (r *Record) ResetForCreate() {
	*r = Record{}
}
