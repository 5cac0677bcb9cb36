package utils

import "time"

// SleepUntil sleeps until deadline, returning at once if it has already passed
func SleepUntil(deadline time.Time) {
	if d := time.Until(deadline); d > 0 {
		time.Sleep(d)
	}
}
