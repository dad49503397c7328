package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type parseFailure struct {
	token string
}

func (e *parseFailure) Error() string { return "cannot parse " + e.token }

func (e *parseFailure) Unwrap() error { return ErrInvalidInput }

func TestNew(t *testing.T) {
	err := New("test error")
	require.Error(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestWrap(t *testing.T) {
	baseErr := errors.New("base error")

	t.Run("wrap non-nil error", func(t *testing.T) {
		wrapped := Wrap(baseErr, "wrapped")
		require.Error(t, wrapped)
		assert.Equal(t, "wrapped: base error", wrapped.Error())
		assert.True(t, errors.Is(wrapped, baseErr))
	})

	t.Run("wrap nil error", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, "wrapped"))
	})
}

func TestWrapf(t *testing.T) {
	baseErr := errors.New("base error")

	t.Run("wrapf non-nil error", func(t *testing.T) {
		wrapped := Wrapf(baseErr, "wrapped %d", 123)
		require.Error(t, wrapped)
		assert.Equal(t, "wrapped 123: base error", wrapped.Error())
		assert.True(t, Is(wrapped, baseErr))
	})

	t.Run("wrapf nil error", func(t *testing.T) {
		assert.NoError(t, Wrapf(nil, "wrapped %d", 1))
	})
}

func TestIsAndAs(t *testing.T) {
	err := Wrap(&parseFailure{token: "[X]"}, "evaluate")

	assert.True(t, Is(err, ErrInvalidInput))
	assert.False(t, Is(err, ErrNotFound))

	var target *parseFailure
	require.True(t, As(err, &target))
	assert.Equal(t, "[X]", target.token)
}

func TestWithKind(t *testing.T) {
	err := WithKind(ErrTooManyRequests, "slow down")

	assert.Equal(t, "slow down", err.Error())
	assert.True(t, Is(err, ErrTooManyRequests))
	assert.False(t, Is(err, ErrInvalidInput))
	assert.True(t, Is(Wrap(err, "middleware"), ErrTooManyRequests))
}
