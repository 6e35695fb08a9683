package extract

import (
	"errors"
	"fmt"
)

// ErrNoData marks a run that finished cleanly but recognized zero
// transactions with every strategy. The extraction API itself reports
// that outcome as an empty result; ErrNoData exists for callers that
// need a hard failure instead.
var ErrNoData = errors.New("no transactions recognized")

// DocumentError means the statement itself could not be opened: wrong
// password or a corrupt file. It aborts the whole run; no fallback
// strategy is attempted after it.
type DocumentError struct {
	Path string
	Err  error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("opening statement %s: %v", e.Path, e.Err)
}

func (e *DocumentError) Unwrap() error { return e.Err }
