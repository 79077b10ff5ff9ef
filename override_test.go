package mobylette_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/robinboening/mobylette"
	"github.com/robinboening/mobylette/pkg/session"
)

func TestSessionOverride(t *testing.T) {
	t.Parallel()

	t.Run("unset by default", func(t *testing.T) {
		t.Parallel()
		sess := session.NewSession("tok", time.Hour)
		assert.Equal(t, mobylette.OverrideNone, mobylette.OverrideFromSession(sess))
	})

	t.Run("force then ignore then reset", func(t *testing.T) {
		t.Parallel()
		sess := session.NewSession("tok", time.Hour)

		mobylette.ForceMobile(sess)
		assert.Equal(t, mobylette.OverrideForceMobile, mobylette.OverrideFromSession(sess))

		mobylette.IgnoreMobile(sess)
		assert.Equal(t, mobylette.OverrideIgnoreMobile, mobylette.OverrideFromSession(sess))

		mobylette.ResetMobileOverride(sess)
		assert.Equal(t, mobylette.OverrideNone, mobylette.OverrideFromSession(sess))
	})

	t.Run("unrecognized stored value treated as unset", func(t *testing.T) {
		t.Parallel()
		sess := session.NewSession("tok", time.Hour)
		sess.Set("mobylette_override", "sideways")
		assert.Equal(t, mobylette.OverrideNone, mobylette.OverrideFromSession(sess))
	})
}

func TestOverrideFromContext(t *testing.T) {
	t.Parallel()

	t.Run("no session", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, mobylette.OverrideNone, mobylette.OverrideFromContext(context.Background()))
	})

	t.Run("session with force override", func(t *testing.T) {
		t.Parallel()
		sess := session.NewSession("tok", time.Hour)
		mobylette.ForceMobile(sess)
		ctx := session.WithSession(context.Background(), sess)

		assert.Equal(t, mobylette.OverrideForceMobile, mobylette.OverrideFromContext(ctx))
	})
}
