package recv

import (
	"testing"
	"time"

	"github.com/1216063060/incubator-hugegraph-computer/errors"
	"github.com/stretchr/testify/require"
)

func TestWaitSortedBeforeAnySort(t *testing.T) {
	rb := createRecvBuffers(100, 50*time.Millisecond)
	// no sort was ever started, so waiters must not block
	require.Nil(t, rb.waitSorted())
}

func TestAddBufferTracksBytes(t *testing.T) {
	rb := createRecvBuffers(100, time.Second)
	require.Equal(t, int64(0), rb.getTotalBytes())
	require.False(t, rb.full())
	rb.addBuffer(make([]byte, 40))
	rb.addBuffer(make([]byte, 40))
	require.Equal(t, int64(80), rb.getTotalBytes())
	require.False(t, rb.full())
	rb.addBuffer(make([]byte, 40))
	require.Equal(t, int64(120), rb.getTotalBytes())
	require.True(t, rb.full())
	require.Equal(t, 3, len(rb.getBuffers()))
}

func TestWaitSortedTimesOutWhileSortPending(t *testing.T) {
	rb := createRecvBuffers(100, 20*time.Millisecond)
	rb.addBuffer(make([]byte, 10))
	err := rb.waitSorted()
	require.NotNil(t, err)
	require.IsType(t, errors.WaitSortTimeoutError{}, err)
}

func TestSignalSortedWakesWaiter(t *testing.T) {
	rb := createRecvBuffers(100, 5*time.Second)
	rb.addBuffer(make([]byte, 10))
	waited := make(chan error)
	go func() {
		waited <- rb.waitSorted()
	}()
	rb.signalSorted()
	require.Nil(t, <-waited)
	// future waiters observe the signal too, until the next prepareSort
	require.Nil(t, rb.waitSorted())
}

func TestPrepareSortClearsContents(t *testing.T) {
	rb := createRecvBuffers(100, 20*time.Millisecond)
	rb.addBuffer(make([]byte, 120))
	rb.signalSorted()
	rb.prepareSort()
	require.Equal(t, int64(0), rb.getTotalBytes())
	require.Equal(t, 0, len(rb.getBuffers()))
	require.False(t, rb.full())
	// prepareSort marks a sort as pending in advance
	err := rb.waitSorted()
	require.IsType(t, errors.WaitSortTimeoutError{}, err)
	rb.signalSorted()
	require.Nil(t, rb.waitSorted())
}
