// Package poller owns the fetch cadence for tracked leagues. Each tick
// issues every league's fetch concurrently and joins them all before the
// next wait; one league failing never delays or cancels the others. The
// inter-tick wait is clamped to a floor and jittered to avoid thundering
// herds, and teardown guarantees no stale result is applied after Stop.
package poller
