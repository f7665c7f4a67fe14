package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordscramble/internal/game"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("create and snapshot", func(t *testing.T) {
		m := NewMemoryStore(0)
		id, err := m.Create(ctx, game.NewSession("tactic"))
		require.NoError(t, err)
		assert.NotEmpty(t, id)

		snap, err := m.Snapshot(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "tactic", snap.Root)
		assert.Equal(t, 1, m.Len())
	})

	t.Run("ids are unique", func(t *testing.T) {
		m := NewMemoryStore(0)
		a, _ := m.Create(ctx, game.NewSession("tactic"))
		b, _ := m.Create(ctx, game.NewSession("tactic"))
		assert.NotEqual(t, a, b)
	})

	t.Run("unknown id", func(t *testing.T) {
		m := NewMemoryStore(0)
		_, err := m.Snapshot(ctx, "nope")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, m.Update(ctx, "nope", func(*game.Session) error { return nil }), ErrNotFound)
		assert.ErrorIs(t, m.Replace(ctx, "nope", game.NewSession("x")), ErrNotFound)
		assert.ErrorIs(t, m.Delete(ctx, "nope"), ErrNotFound)
	})

	t.Run("update mutates and propagates errors", func(t *testing.T) {
		m := NewMemoryStore(0)
		id, _ := m.Create(ctx, game.NewSession("tactic"))

		require.NoError(t, m.Update(ctx, id, func(s *game.Session) error {
			s.RecordGuess("cat")
			return nil
		}))
		snap, _ := m.Snapshot(ctx, id)
		assert.Equal(t, []string{"cat"}, snap.Guesses)

		boom := errors.New("boom")
		assert.ErrorIs(t, m.Update(ctx, id, func(*game.Session) error { return boom }), boom)
	})

	t.Run("replace discards old guesses", func(t *testing.T) {
		m := NewMemoryStore(0)
		s := game.NewSession("tactic")
		s.RecordGuess("cat")
		id, _ := m.Create(ctx, s)

		require.NoError(t, m.Replace(ctx, id, game.NewSession("silkworm")))
		snap, _ := m.Snapshot(ctx, id)
		assert.Equal(t, game.Snapshot{Root: "silkworm", Guesses: []string{}}, snap)
	})

	t.Run("delete", func(t *testing.T) {
		m := NewMemoryStore(0)
		id, _ := m.Create(ctx, game.NewSession("tactic"))
		require.NoError(t, m.Delete(ctx, id))
		assert.Zero(t, m.Len())
	})

	t.Run("cancelled context", func(t *testing.T) {
		m := NewMemoryStore(0)
		id, _ := m.Create(ctx, game.NewSession("tactic"))
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		assert.ErrorIs(t, m.Update(cctx, id, func(*game.Session) error { return nil }), context.Canceled)
		_, err := m.Create(cctx, game.NewSession("x"))
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestMemoryStoreSweep(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	m := NewMemoryStore(time.Hour)
	m.now = func() time.Time { return now }

	old, _ := m.Create(ctx, game.NewSession("tactic"))
	now = now.Add(45 * time.Minute)
	fresh, _ := m.Create(ctx, game.NewSession("silkworm"))
	now = now.Add(30 * time.Minute)

	assert.Equal(t, 1, m.Sweep())
	_, err := m.Snapshot(ctx, old)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = m.Snapshot(ctx, fresh)
	assert.NoError(t, err)

	assert.Zero(t, NewMemoryStore(0).Sweep(), "ttl disabled")
}

func TestMemoryStoreSerializesUpdates(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore(0)
	id, _ := m.Create(ctx, game.NewSession("tactic"))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.Update(ctx, id, func(s *game.Session) error {
				s.RecordGuess("x")
				return nil
			})
		}()
	}
	wg.Wait()

	snap, err := m.Snapshot(ctx, id)
	require.NoError(t, err)
	assert.Len(t, snap.Guesses, 50)
}
