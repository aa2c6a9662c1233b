package lob

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInline_Payload(t *testing.T) {
	got, err := Inline("hello").Payload()
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), got)
}

func TestInline_NilHasNoPayload(t *testing.T) {
	var l Inline
	_, err := l.Payload()
	assert.ErrorIs(t, err, ErrNoPayload)
}

func TestInline_EmptyIsValid(t *testing.T) {
	got, err := Inline([]byte{}).Payload()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFunc_Payload(t *testing.T) {
	calls := 0
	l := Func(func() ([]byte, error) {
		calls++
		return []byte("fetched"), nil
	})

	got, err := l.Payload()
	require.NoError(t, err)
	assert.Equal(t, []byte("fetched"), got)
	assert.Equal(t, 1, calls)
}

func TestFailing_Payload(t *testing.T) {
	boom := errors.New("storage offline")

	_, err := Failing{Err: boom}.Payload()
	assert.ErrorIs(t, err, boom)

	_, err = Failing{}.Payload()
	assert.ErrorIs(t, err, ErrNoPayload)
}
