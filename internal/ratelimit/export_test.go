package ratelimit

import "time"

// SetProbeInterval overrides how often a failed Redis backend is probed
func SetProbeInterval(d time.Duration) func() {
	previous := probeInterval
	probeInterval = d
	return func() { probeInterval = previous }
}
