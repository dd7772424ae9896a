package pruner

import (
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
)

const (
	// DefaultBatchSize is the default amount of versions pruned per domain per cycle.
	DefaultBatchSize = 500
	// DefaultLedgerPruneWindow is the default amount of recent versions the
	// ledger domain keeps.
	DefaultLedgerPruneWindow = 10_000_000
	// DefaultStatePruneWindow is the default amount of recent versions the
	// state domain keeps.
	DefaultStatePruneWindow = 1_000_000
)

type Option func(*Params)

type Params struct {
	// batchSize is the max amount of versions every domain prunes in one
	// cycle of the worker.
	batchSize uint64
	// windows holds the amount of recent versions kept per domain.
	windows [NumDomains]uint64
	// commandBuffer is the capacity of the command channel.
	commandBuffer int
	// pollInterval is how often WakeAndWait checks the progress.
	pollInterval time.Duration
	clock        clock.Clock
	metrics      bool
}

func (p *Params) Validate() error {
	if p.batchSize == 0 {
		return fmt.Errorf("invalid batch size given, value should be positive and non-zero")
	}
	if p.commandBuffer < 0 {
		return fmt.Errorf("invalid command buffer given, value should not be negative")
	}
	if p.pollInterval <= 0 {
		return fmt.Errorf("invalid poll interval given, value should be positive and non-zero")
	}
	if p.clock == nil {
		return fmt.Errorf("nil clock given")
	}
	return nil
}

func DefaultParams() Params {
	return Params{
		batchSize: DefaultBatchSize,
		windows: [NumDomains]uint64{
			LedgerDomain: DefaultLedgerPruneWindow,
			StateDomain:  DefaultStatePruneWindow,
		},
		commandBuffer: 64,
		pollInterval:  10 * time.Millisecond,
		clock:         clock.New(),
	}
}

// WithBatchSize configures the max amount of versions pruned per domain
// in one cycle.
func WithBatchSize(size uint64) Option {
	return func(p *Params) {
		p.batchSize = size
	}
}

// WithPruneWindow configures how many recent versions the domain keeps.
func WithPruneWindow(d Domain, window uint64) Option {
	return func(p *Params) {
		if int(d) >= 0 && int(d) < NumDomains {
			p.windows[d] = window
		}
	}
}

// WithCommandBuffer configures the capacity of the command channel.
func WithCommandBuffer(size int) Option {
	return func(p *Params) {
		p.commandBuffer = size
	}
}

// WithPollInterval configures how often WakeAndWait checks the progress.
func WithPollInterval(interval time.Duration) Option {
	return func(p *Params) {
		p.pollInterval = interval
	}
}

// WithClock sets the clock used by the Service.
func WithClock(clk clock.Clock) Option {
	return func(p *Params) {
		p.clock = clk
	}
}

// WithPrunerMetrics turns on otel metrics of the Service.
func WithPrunerMetrics() Option {
	return func(p *Params) {
		p.metrics = true
	}
}
