package stdinmute

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockDevice_InitialState(t *testing.T) {
	m := NewMockDevice()

	assert.True(t, m.IsTerminal())
	assert.True(t, m.RawModeSupported())
	assert.True(t, m.IsPaused())
	assert.False(t, m.IsRawMode())
	assert.Equal(t, 0, m.ListenerCount())
	assert.Equal(t, 0, m.PendingCount())
}

func TestMockDevice_PauseHoldsDelivery(t *testing.T) {
	m := NewMockDevice()
	var got [][]byte
	m.SubscribeData(func(chunk []byte) { got = append(got, chunk) })

	m.Deliver([]byte("held"))
	assert.Empty(t, got)
	assert.Equal(t, 1, m.PendingCount())

	m.Resume()
	require.Len(t, got, 1)
	assert.Equal(t, []byte("held"), got[0])
	assert.Equal(t, 0, m.PendingCount())

	m.Deliver([]byte("live"))
	assert.Len(t, got, 2)
}

func TestMockDevice_CountersAndReset(t *testing.T) {
	m := NewMockDevice()

	sub := m.SubscribeDataFirst(func([]byte) {})
	m.Resume()
	m.Pause()
	require.NoError(t, m.SetRawMode(true))
	m.Unsubscribe(sub)

	assert.Equal(t, 1, m.SubscribeCount())
	assert.Equal(t, 1, m.UnsubscribeCount())
	assert.Equal(t, 1, m.ResumeCount())
	assert.Equal(t, 1, m.PauseCount())
	assert.Equal(t, 1, m.RawSetCount())
	assert.True(t, m.IsRawMode())

	m.Reset()

	assert.Equal(t, 0, m.SubscribeCount())
	assert.Equal(t, 0, m.UnsubscribeCount())
	assert.Equal(t, 0, m.ResumeCount())
	assert.Equal(t, 0, m.PauseCount())
	assert.Equal(t, 0, m.RawSetCount())
	assert.Equal(t, 0, m.ListenerCount())
	assert.True(t, m.IsPaused())
	assert.False(t, m.IsRawMode())
}

func TestMockDevice_FailRawMode(t *testing.T) {
	m := NewMockDevice()
	boom := errors.New("boom")

	m.FailRawMode(boom)
	err := m.SetRawMode(true)
	require.ErrorIs(t, err, boom)
	assert.False(t, m.IsRawMode(), "a failed toggle must not change state")

	m.FailRawMode(nil)
	require.NoError(t, m.SetRawMode(true))
	assert.True(t, m.IsRawMode())
}
