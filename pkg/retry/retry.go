package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Classifier reports whether an error is worth retrying. Structural failures
// (site layout drift, extraction failure) return false and abort immediately;
// transient failures (timeouts, unreachable collaborators) return true.
type Classifier func(err error) bool

// Policy is a bounded retry with exponential backoff, shared by resolution,
// submission, and reconciliation.
type Policy struct {
	MaxAttempts uint64
	Initial     time.Duration
	Max         time.Duration
	Transient   Classifier
}

// Default retries any error up to three attempts.
func Default() Policy {
	return Policy{
		MaxAttempts: 3,
		Initial:     500 * time.Millisecond,
		Max:         30 * time.Second,
		Transient:   func(error) bool { return true },
	}
}

// Do runs op until it succeeds, the attempt budget is spent, the classifier
// marks the error structural, or ctx is cancelled. The last error is returned.
func (p Policy) Do(ctx context.Context, op func(ctx context.Context) error) error {
	exp := backoff.NewExponentialBackOff()
	if p.Initial > 0 {
		exp.InitialInterval = p.Initial
	}
	if p.Max > 0 {
		exp.MaxInterval = p.Max
	}
	exp.MaxElapsedTime = 0

	attempts := p.MaxAttempts
	if attempts == 0 {
		attempts = 1
	}

	// MaxRetries counts retries after the first attempt
	b := backoff.WithContext(backoff.WithMaxRetries(exp, attempts-1), ctx)

	return backoff.Retry(func() error {
		err := op(ctx)
		if err == nil {
			return nil
		}

		if p.Transient != nil && !p.Transient(err) {
			return backoff.Permanent(err)
		}

		return err
	}, b)
}

// Attempts reports how many attempts a policy will make at most.
func (p Policy) Attempts() int {
	if p.MaxAttempts == 0 {
		return 1
	}
	return int(p.MaxAttempts)
}
