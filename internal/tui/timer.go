package tui

import (
	"time"

	"github.com/Tannerbraithwaite/nightlog/internal/errors"
	"github.com/Tannerbraithwaite/nightlog/internal/store"
)

// timerState tracks the current state of the session lifecycle.
type timerState int

const (
	timerIdle timerState = iota
	timerRunning
)

// timerModel is the session lifecycle state machine. While running it owns
// only the start timestamp; a session gains identity in the store when stop
// is called. Duration always comes from wall-clock reads at the two
// transitions, so it reflects real elapsed time even if the process was
// suspended in between.
type timerModel struct {
	store     *store.Store
	state     timerState
	startTime time.Time
}

func newTimerModel(s *store.Store) timerModel {
	return timerModel{
		store: s,
		state: timerIdle,
	}
}

// start begins a session. Starting while one is running is rejected and
// does not reset the start time.
func (t *timerModel) start() error {
	if t.state == timerRunning {
		return errors.ErrSessionRunning
	}
	t.startTime = time.Now()
	t.state = timerRunning
	return nil
}

// stop ends the running session, appends it to the store and returns to
// idle. The returned session is valid even when the append failed, so the
// caller can still report what was tracked.
func (t *timerModel) stop() (store.Session, error) {
	if t.state != timerRunning {
		return store.Session{}, errors.ErrNoSession
	}

	sess := store.NewSession(t.startTime, time.Now())
	t.state = timerIdle
	t.startTime = time.Time{}

	if err := t.store.Append(sess); err != nil {
		return sess, err
	}
	return sess, nil
}

func (t timerModel) running() bool {
	return t.state == timerRunning
}

// elapsed returns the live duration of the running session, 0 when idle.
func (t timerModel) elapsed() time.Duration {
	if t.state != timerRunning {
		return 0
	}
	return time.Since(t.startTime)
}
