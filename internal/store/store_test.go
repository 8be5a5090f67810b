package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vbonduro/restaurantmenu/internal/domain"
)

func TestWithinTxCommits(t *testing.T) {
	d := openTestDB(t)
	s := New(d)
	ctx := context.Background()

	err := s.WithinTx(ctx, func(sess *Session) error {
		_, err := sess.Restaurants.Create(ctx, "Committed")
		return err
	})
	require.NoError(t, err)

	restaurant, err := NewRestaurantStore(d).GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Committed", restaurant.Name)
}

func TestWithinTxRollsBackOnError(t *testing.T) {
	d := openTestDB(t)
	s := New(d)
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.WithinTx(ctx, func(sess *Session) error {
		if _, err := sess.Restaurants.Create(ctx, "Discarded"); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	list, err := NewRestaurantStore(d).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestWithinTxReleasesConnectionOnPanic(t *testing.T) {
	d := openTestDB(t)
	s := New(d)
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = s.WithinTx(ctx, func(sess *Session) error {
			_, _ = sess.Restaurants.Create(ctx, "Half Done")
			panic("handler blew up")
		})
	})

	// The pool holds a single connection; this would block forever if the
	// panicking transaction had kept it.
	err := s.WithinTx(ctx, func(sess *Session) error {
		list, err := sess.Restaurants.List(ctx)
		if err != nil {
			return err
		}
		assert.Empty(t, list)
		return nil
	})
	require.NoError(t, err)
}

func TestWithinTxNotFoundPropagates(t *testing.T) {
	s := New(openTestDB(t))
	ctx := context.Background()

	err := s.WithinTx(ctx, func(sess *Session) error {
		_, err := sess.MenuItems.GetByID(ctx, 1, 1)
		return err
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
