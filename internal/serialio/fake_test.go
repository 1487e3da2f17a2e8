package serialio

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFakeIdleThenReady(t *testing.T) {
	f := NewFake([]Step{
		{Ready: false},
		{Ready: false},
		{Ready: true, Data: []byte("b\r\n")},
	})

	assert.False(t, f.Poll(100*time.Millisecond))
	assert.False(t, f.Poll(100*time.Millisecond))
	require.True(t, f.Poll(100*time.Millisecond))

	data, err := f.Read(3)
	require.NoError(t, err)
	assert.Equal(t, []byte("b\r\n"), data)
}

func TestFakeReadTruncatesToMax(t *testing.T) {
	f := NewFake([]Step{{Ready: true, Data: []byte("hello")}})

	require.True(t, f.Poll(time.Millisecond))
	data, err := f.Read(3)
	require.NoError(t, err)
	assert.Equal(t, []byte("hel"), data)
}

func TestFakeReadError(t *testing.T) {
	f := NewFake([]Step{{Ready: true, Err: errors.New("port gone")}})

	require.True(t, f.Poll(time.Millisecond))
	_, err := f.Read(3)
	assert.Error(t, err)
}

func TestFakeExhaustedScriptIsIdle(t *testing.T) {
	f := NewFake([]Step{{Ready: true, Data: []byte("m")}})

	require.True(t, f.Poll(time.Millisecond))
	_, err := f.Read(3)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		assert.False(t, f.Poll(time.Millisecond))
	}
	assert.Equal(t, 4, f.Polls)
}

func TestFakeClose(t *testing.T) {
	f := NewFake(nil)
	require.NoError(t, f.Close())
	assert.True(t, f.Closed)
}
