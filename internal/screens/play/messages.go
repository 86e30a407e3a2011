package play

import (
	"github.com/abhisek/voltiz/internal/attempt"
	"github.com/abhisek/voltiz/internal/progress"
)

// submittedMsg carries the graded answer back to Update.
type submittedMsg struct {
	result *progress.SubmitResult
	err    error
}

// hintMsg carries a revealed hint back to Update.
type hintMsg struct {
	hint attempt.Hint
	ok   bool
	err  error
}
