package git

import (
	"fmt"
	"sync"
	"time"

	"github.com/Tannerbraithwaite/nightlog/internal/logger"
)

const (
	// DefaultInterval is the minimum time between auto-commits.
	DefaultInterval = 15 * time.Minute

	// TickInterval is how often the background check polls. Only "at least
	// once per commit interval" matters, not precise timing.
	TickInterval = time.Minute
)

// Syncer is the external persistence collaborator the committer delegates
// to. *Repository is the production implementation.
type Syncer interface {
	IsRepository() bool
	HasPendingChanges() (bool, error)
	CommitAndPush(message string) error
}

// Committer is the time-gated auto-commit scheduler. It fires at most once
// per interval, advancing its clock on every fire whether or not the
// commit succeeded: the gate is time, not success. The clock is
// process-local and resets on restart.
//
// A mutex serializes check-and-commit between the periodic background tick
// and the stop-triggered foreground check.
type Committer struct {
	mu         sync.Mutex
	syncer     Syncer
	log        logger.Logger
	interval   time.Duration
	lastCommit time.Time
}

// NewCommitter creates a Committer. The clock starts at construction time,
// so the first commit becomes eligible one full interval after startup.
func NewCommitter(s Syncer, log logger.Logger, interval time.Duration) *Committer {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Committer{
		syncer:     s,
		log:        log,
		interval:   interval,
		lastCommit: time.Now(),
	}
}

// MaybeCommit runs one check-and-commit cycle and reports whether a commit
// was created. It may block for a network round trip and is expected to be
// called off the interactive path.
func (c *Committer) MaybeCommit(now time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if now.Sub(c.lastCommit) < c.interval {
		return false
	}
	c.lastCommit = now

	if !c.syncer.IsRepository() {
		return false
	}

	pending, err := c.syncer.HasPendingChanges()
	if err != nil {
		c.log.Warning("auto-commit status check failed: %v", err)
		return false
	}
	if !pending {
		return false
	}

	message := fmt.Sprintf("Auto-commit: Time tracking update at %s", now.Format("2006-01-02 15:04:05"))
	if err := c.syncer.CommitAndPush(message); err != nil {
		c.log.Warning("auto-commit failed: %v", err)
		return false
	}

	c.log.Info("auto-commit created at %s", now.Format("15:04:05"))
	return true
}
