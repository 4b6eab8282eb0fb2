package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/maksimkurb/ikuai-ipgroups/src/internal/log"
)

// RestartableRunner runs a long-lived function and restarts it when it fails.
type RestartableRunner struct {
	name           string
	runFunc        func(ctx context.Context) error
	maxRestarts    int           // 0 means unlimited
	restartBackoff time.Duration // Initial backoff duration
	maxBackoff     time.Duration // Maximum backoff duration
	restartCount   int
}

// RunnerConfig contains configuration for RestartableRunner.
type RunnerConfig struct {
	Name           string
	MaxRestarts    int           // 0 = unlimited restarts
	RestartBackoff time.Duration // Initial backoff (default: 1s)
	MaxBackoff     time.Duration // Max backoff (default: 30s)
}

// NewRestartableRunner creates a new restartable runner.
func NewRestartableRunner(cfg RunnerConfig, runFunc func(ctx context.Context) error) *RestartableRunner {
	if cfg.RestartBackoff == 0 {
		cfg.RestartBackoff = 1 * time.Second
	}
	if cfg.MaxBackoff == 0 {
		cfg.MaxBackoff = 30 * time.Second
	}

	return &RestartableRunner{
		name:           cfg.Name,
		runFunc:        runFunc,
		maxRestarts:    cfg.MaxRestarts,
		restartBackoff: cfg.RestartBackoff,
		maxBackoff:     cfg.MaxBackoff,
	}
}

// Run blocks until ctx is done, the function exits cleanly, or the restart
// limit is reached. In the last case the last error is returned.
func (r *RestartableRunner) Run(ctx context.Context) error {
	backoff := r.restartBackoff

	for {
		err := r.runWithRecovery(ctx)
		if err == nil {
			log.Infof("%s: exited cleanly", r.name)
			return nil
		}

		if ctx.Err() != nil {
			log.Infof("%s: context cancelled, stopping", r.name)
			return nil
		}

		r.restartCount++
		if r.maxRestarts > 0 && r.restartCount >= r.maxRestarts {
			log.Errorf("%s: max restarts (%d) reached, giving up", r.name, r.maxRestarts)
			return err
		}

		log.Errorf("%s: crashed with error: %v. Restarting in %v (restart #%d)", r.name, err, backoff, r.restartCount)

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(backoff):
		}

		backoff = min(backoff*2, r.maxBackoff)
	}
}

// RestartCount returns the number of restarts that have occurred.
func (r *RestartableRunner) RestartCount() int {
	return r.restartCount
}

func (r *RestartableRunner) runWithRecovery(ctx context.Context) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("panic: %v", recovered)
		}
	}()

	return r.runFunc(ctx)
}
