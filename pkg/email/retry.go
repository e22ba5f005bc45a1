package email

import "time"

// RetryPolicy is a bounded retry schedule. Backoff is a pure function of
// the attempt number so the schedule is testable without real waiting.
type RetryPolicy struct {
	// MaxAttempts is the total number of attempts including the first.
	MaxAttempts int
	// Backoff returns the delay to wait after the given (1-based) attempt.
	Backoff func(attempt int) time.Duration
	// Sleep performs the wait. Defaults to time.Sleep; tests inject a fake.
	Sleep func(d time.Duration)
}

// DefaultRetryPolicy waits attempt x 1s between attempts: 1s after the
// first failure, 2s after the second, for 3 attempts total.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		Backoff:     LinearBackoff(time.Second),
		Sleep:       time.Sleep,
	}
}

// LinearBackoff returns attempt x unit.
func LinearBackoff(unit time.Duration) func(int) time.Duration {
	return func(attempt int) time.Duration {
		return time.Duration(attempt) * unit
	}
}

// Wait sleeps for the backoff of the given attempt.
func (p RetryPolicy) Wait(attempt int) {
	sleep := p.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	sleep(p.Backoff(attempt))
}
