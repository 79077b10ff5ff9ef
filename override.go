package mobylette

import (
	"context"

	"github.com/robinboening/mobylette/pkg/session"
)

// Override is the per-session mobile handling override.
type Override string

const (
	// OverrideNone means no override is set
	OverrideNone Override = ""

	// OverrideForceMobile makes every request mobile regardless of user agent
	OverrideForceMobile Override = "force_mobile"

	// OverrideIgnoreMobile suppresses mobile handling entirely
	OverrideIgnoreMobile Override = "ignore_mobile"
)

// overrideSessionKey is the session data key holding the override flag.
const overrideSessionKey = "mobylette_override"

// ForceMobile marks the session so every request is treated as mobile.
// Persist the change with the session manager's Save.
func ForceMobile(sess *session.Session) {
	sess.Set(overrideSessionKey, string(OverrideForceMobile))
}

// IgnoreMobile marks the session so mobile handling is skipped entirely.
// Persist the change with the session manager's Save.
func IgnoreMobile(sess *session.Session) {
	sess.Set(overrideSessionKey, string(OverrideIgnoreMobile))
}

// ResetMobileOverride removes the session override.
func ResetMobileOverride(sess *session.Session) {
	sess.Delete(overrideSessionKey)
}

// OverrideFromSession reads the override flag from a session.
func OverrideFromSession(sess *session.Session) Override {
	val, ok := sess.GetString(overrideSessionKey)
	if !ok {
		return OverrideNone
	}

	switch Override(val) {
	case OverrideForceMobile, OverrideIgnoreMobile:
		return Override(val)
	default:
		return OverrideNone
	}
}

// OverrideFromContext reads the override flag from the session in context.
// Requests without a session have no override.
func OverrideFromContext(ctx context.Context) Override {
	sess, ok := session.FromContext(ctx)
	if !ok {
		return OverrideNone
	}
	return OverrideFromSession(sess)
}
