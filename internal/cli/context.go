package cli

import (
	"sync"
	"time"

	"github.com/questlabs/questlog/internal/clock"
	"github.com/questlabs/questlog/internal/config"
	"github.com/questlabs/questlog/internal/diag"
	"github.com/questlabs/questlog/internal/errors"
	"github.com/questlabs/questlog/internal/progress"
	"github.com/questlabs/questlog/internal/source"
)

// globalConfig stores the configuration loaded during PersistentPreRunE.
var (
	globalConfig   *config.Config //nolint:gochecknoglobals // Loaded once per invocation
	globalConfigMu sync.RWMutex   //nolint:gochecknoglobals // Protects globalConfig
)

// Configuration returns the loaded config, or defaults when PersistentPreRunE
// has not run (e.g. in tests exercising a command function directly).
func Configuration() *config.Config {
	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	if globalConfig == nil {
		return config.DefaultConfig()
	}
	return globalConfig
}

// setGlobalConfig stores the loaded config. Safe for concurrent use.
func setGlobalConfig(cfg *config.Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// session bundles everything a command needs to compute over one snapshot.
type session struct {
	snapshot *source.Snapshot
	src      source.Source
	clock    clock.Clock
	engine   *progress.Engine
}

// openSession loads the snapshot file named by --snapshot and wires the
// engine over it: per-fetch timeouts from config, the CLI logger as the
// diagnostic recorder, and a clock pinned to the snapshot's as_of instant
// when it carries one.
func openSession(flags *GlobalFlags) (*session, error) {
	if flags.Snapshot == "" {
		return nil, errors.Wrap(errors.ErrSnapshotNotFound, "no snapshot given; pass --snapshot")
	}
	snap, asOf, err := source.LoadFile(flags.Snapshot)
	if err != nil {
		return nil, err
	}

	cfg := Configuration()
	src := source.WithTimeout(snap, cfg.Engine.FetchTimeout)

	var clk clock.Clock = clock.RealClock{}
	if !asOf.IsZero() {
		clk = clock.Fixed(asOf)
	}

	engine := progress.New(src, progress.Options{
		Clock:             clk,
		Recorder:          diag.NewLogRecorder(Logger()),
		Concurrency:       cfg.Engine.FetchConcurrency,
		FallbackDailyRate: cfg.Engine.FallbackDailyRate,
		DisableFallback:   cfg.Engine.DisableFallback,
	})

	return &session{snapshot: snap, src: src, clock: clk, engine: engine}, nil
}

// now returns the session's evaluation instant.
func (s *session) now() time.Time {
	return s.clock.Now()
}
