package client

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportCloseDelivers(t *testing.T) {
	c := New(&Config{Server: "ws://127.0.0.1:0/ws"}).(*client)

	readErr := fmt.Errorf("connection reset")
	go c.reportClose(readErr)

	select {
	case err := <-c.OnClose():
		assert.Equal(t, readErr, err)
	case <-time.After(time.Second):
		t.Fatal("close error was never delivered")
	}
}

func TestReportCloseAfterClose(t *testing.T) {
	c := New(&Config{Server: "ws://127.0.0.1:0/ws"}).(*client)
	require.NoError(t, c.Close())

	// the listen goroutine may still fail out of a read after Close,
	// reporting must not block or panic with nobody receiving
	finished := make(chan struct{})
	go func() {
		c.reportClose(fmt.Errorf("use of closed network connection"))
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("reportClose blocked after Close")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	c := New(&Config{Server: "ws://127.0.0.1:0/ws"}).(*client)

	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
}
