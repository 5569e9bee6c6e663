package stdinmute

import (
	"os"
	"runtime"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProcessSignals_HandlerBookkeeping(t *testing.T) {
	p := NewProcessSignals()
	assert.Equal(t, 0, p.HandlerCount(os.Interrupt))

	c1 := make(chan os.Signal, 1)
	c2 := make(chan os.Signal, 1)

	p.Notify(c1, os.Interrupt)
	defer p.Stop(c1)
	assert.Equal(t, 1, p.HandlerCount(os.Interrupt))

	p.Notify(c2, os.Interrupt, syscall.SIGTERM)
	assert.Equal(t, 2, p.HandlerCount(os.Interrupt))
	assert.Equal(t, 1, p.HandlerCount(syscall.SIGTERM))

	// Re-registering the same channel does not double count.
	p.Notify(c1, os.Interrupt)
	assert.Equal(t, 2, p.HandlerCount(os.Interrupt))

	p.Stop(c2)
	assert.Equal(t, 1, p.HandlerCount(os.Interrupt))
	assert.Equal(t, 0, p.HandlerCount(syscall.SIGTERM))
}

func TestProcessSignals_NotifyWithoutSignalsIgnored(t *testing.T) {
	p := NewProcessSignals()
	c := make(chan os.Signal, 1)

	p.Notify(c)

	assert.Equal(t, 0, p.HandlerCount(os.Interrupt))
}

func TestProcessSignals_RedispatchDelivers(t *testing.T) {
	p := NewProcessSignals()
	c := make(chan os.Signal, 1)
	p.Notify(c, os.Interrupt)
	defer p.Stop(c)

	p.Redispatch(os.Interrupt)

	select {
	case sig := <-c:
		assert.Equal(t, os.Interrupt, sig)
	default:
		t.Fatal("expected a redispatched signal on the channel")
	}
}

func TestProcessSignals_RedispatchSkipsOtherSignals(t *testing.T) {
	p := NewProcessSignals()
	c := make(chan os.Signal, 1)
	p.Notify(c, syscall.SIGTERM)
	defer p.Stop(c)

	p.Redispatch(os.Interrupt)

	select {
	case sig := <-c:
		t.Fatalf("channel registered for SIGTERM received %v", sig)
	default:
	}
}

func TestProcessSignals_RedispatchNeverBlocks(t *testing.T) {
	p := NewProcessSignals()
	full := make(chan os.Signal) // unbuffered, nobody reading
	p.Notify(full, os.Interrupt)
	defer p.Stop(full)

	done := make(chan struct{})
	go func() {
		p.Redispatch(os.Interrupt)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Redispatch blocked on a full channel")
	}
}

func TestProcessSignals_ProcessIdentity(t *testing.T) {
	p := NewProcessSignals()

	assert.Equal(t, os.Getpid(), p.Pid())
	assert.Equal(t, runtime.GOOS, p.Platform())
}
