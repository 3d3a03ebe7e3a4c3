package taskverify

import (
	"context"

	"github.com/trailpoint/backend/internal/entity"
)

// Result is the outcome of verifying one attempt. An incorrect result is a
// normal outcome, not an error; the caller decides whether to persist it.
type Result struct {
	Correct     bool
	Score       int
	Explanation string

	// Answer is the audit payload stored alongside a persisted submission.
	Answer entity.Map
}

// Verifier validates a raw attempt payload against a task's configuration.
// Verifiers are pure; they never touch persistence.
type Verifier interface {
	Verify(ctx context.Context, input entity.Map) (*Result, error)
}

func correct(answer entity.Map) *Result {
	return &Result{Correct: true, Score: 100, Answer: answer}
}

func incorrect(score int, explanation string, answer entity.Map) *Result {
	return &Result{Correct: false, Score: score, Explanation: explanation, Answer: answer}
}
