package db

// PersistenceError wraps a storage failure with the operation that hit it.
// Callers treat it as a per-item failure and keep processing the batch.
type PersistenceError struct {
	Op    string
	Cause error
}

func (e *PersistenceError) Error() string {
	if e.Cause != nil {
		return "persistence error (" + e.Op + "): " + e.Cause.Error()
	}
	return "persistence error (" + e.Op + ")"
}

func (e *PersistenceError) Unwrap() error {
	return e.Cause
}
