package infra

import "time"

const (
	backoffBaseDelay = 1 * time.Second
	backoffMaxDelay  = 30 * time.Second
)

// CalculateBackoff returns the exponential backoff duration for a given retry
// count: baseDelay * 2^retryCount, capped at the max. A negative count yields
// the base delay.
func CalculateBackoff(retryCount int) time.Duration {
	if retryCount < 0 {
		return backoffBaseDelay
	}

	// 2^30 seconds already dwarfs the cap; bail out before the shift overflows.
	if retryCount > 30 {
		return backoffMaxDelay
	}

	backoff := backoffBaseDelay * time.Duration(1<<retryCount)
	if backoff > backoffMaxDelay {
		return backoffMaxDelay
	}
	return backoff
}
