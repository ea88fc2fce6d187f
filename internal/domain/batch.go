package domain

// BatchResult reports a best-effort batch: every item is attempted and the
// outcome of each one is kept.
type BatchResult struct {
	Succeeded []int64     `json:"succeeded"`
	Failed    []ItemError `json:"failed"`
}

type ItemError struct {
	Index int    `json:"index"`
	ID    int64  `json:"id,omitempty"`
	Error string `json:"error"`
	err   error
}

func NewItemError(index int, id int64, err error) ItemError {
	return ItemError{Index: index, ID: id, Error: err.Error(), err: err}
}

func (e ItemError) Unwrap() error {
	return e.err
}

func (r BatchResult) HasFailures() bool {
	return len(r.Failed) > 0
}
