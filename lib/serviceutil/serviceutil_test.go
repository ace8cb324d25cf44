package serviceutil

import (
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSignalContextCancelsOnSignal(t *testing.T) {
	ctx := SignalContext()

	select {
	case <-ctx.Done():
		t.Fatal("context done before any signal was delivered")
	default:
	}

	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGTERM))

	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("context not cancelled after SIGTERM")
	}
}
