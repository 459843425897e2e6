// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// LoginThrottle tracks failed login attempts per identity and reports
// when an identity is locked out. It is pure bookkeeping: the caller
// decides what to do with a locked identity, the throttle never rejects
// a login itself.
type LoginThrottle interface {
	// RecordFailure registers one failed attempt for the identity.
	RecordFailure(identity string)

	// RecordSuccess clears the identity's failure record.
	RecordSuccess(identity string)

	// IsLocked reports whether the identity is currently locked out.
	IsLocked(identity string) bool

	// RemainingAttempts returns how many failures are left before
	// lockout, never negative. Unknown identities get the full budget.
	RemainingAttempts(identity string) int
}
