package roadmap

import "fmt"

// ErrFetch indicates the roadmap could not be loaded, either because
// the remote call failed or because no roadmap exists for the user.
// The two cases are not distinguished; both are recoverable via a
// user-initiated retry.
type ErrFetch struct {
	Err error
}

func (e *ErrFetch) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch roadmap: %v", e.Err)
	}
	return "fetch roadmap: no roadmap available"
}

func (e *ErrFetch) Unwrap() error { return e.Err }
