package connectivity

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logifrete/protocolos/internal/logging"
)

type fakePinger struct {
	mu  sync.Mutex
	err error
}

func (p *fakePinger) Ping(context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

func (p *fakePinger) setErr(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = err
}

func newTestMonitor(p Pinger, interval time.Duration) *Monitor {
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewMonitor(p, interval, log)
}

func TestMonitor_StartsOffline(t *testing.T) {
	m := newTestMonitor(&fakePinger{}, time.Second)
	assert.False(t, m.Online())
}

func TestSetOnline_FiresOnTransitionsOnly(t *testing.T) {
	m := newTestMonitor(&fakePinger{}, time.Second)

	var got []bool
	unsubscribe := m.Subscribe(func(online bool) { got = append(got, online) })

	m.SetOnline(true)
	m.SetOnline(true) // steady state, no callback
	m.SetOnline(false)
	m.SetOnline(true)

	assert.Equal(t, []bool{true, false, true}, got)

	unsubscribe()
	m.SetOnline(false)
	assert.Equal(t, []bool{true, false, true}, got, "unsubscribed callback must not fire")
}

func TestSubscribe_MultipleSubscribers(t *testing.T) {
	m := newTestMonitor(&fakePinger{}, time.Second)

	var a, b int
	m.Subscribe(func(bool) { a++ })
	m.Subscribe(func(bool) { b++ })

	m.SetOnline(true)
	assert.Equal(t, 1, a)
	assert.Equal(t, 1, b)
}

func TestRun_ProbesAndTransitions(t *testing.T) {
	pinger := &fakePinger{err: errors.New("down")}
	m := newTestMonitor(pinger, 5*time.Millisecond)

	transitions := make(chan bool, 10)
	m.Subscribe(func(online bool) { transitions <- online })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go m.Run(ctx)

	// probe fails first: still offline, no transition expected yet
	pinger.setErr(nil)

	select {
	case online := <-transitions:
		require.True(t, online)
	case <-time.After(time.Second):
		t.Fatal("expected an offline→online transition")
	}
	assert.True(t, m.Online())

	pinger.setErr(errors.New("down again"))
	select {
	case online := <-transitions:
		require.False(t, online)
	case <-time.After(time.Second):
		t.Fatal("expected an online→offline transition")
	}
	assert.False(t, m.Online())
}
