package services

// StoreError tags a data-access failure on its way up to the request
// boundary, which rolls the transaction back and answers with a generic
// server error. Validation and not-found never take this path.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *StoreError) Unwrap() error { return e.Err }
