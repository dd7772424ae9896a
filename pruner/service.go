package pruner

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	logging "github.com/ipfs/go-log/v2"
	"go.uber.org/multierr"
)

var log = logging.Logger("pruner")

var (
	// ErrStarted is returned on attempt to start an already started Service.
	ErrStarted = errors.New("pruner: service already started")
	// ErrNotStarted is returned on attempt to use a Service that was not started.
	ErrNotStarted = errors.New("pruner: service not started")
)

// Service owns the pruning worker and the sending side of its command channel.
// It turns newly committed versions into prune targets, keeping the configured
// window of recent versions of every domain.
type Service struct {
	committer Committer
	registry  *Registry
	progress  *Progress
	params    Params

	commands chan Command

	lastSentLk sync.Mutex
	lastSent   Version

	started atomic.Bool
	stopped atomic.Bool
	cancel  context.CancelFunc
	done    chan struct{}

	metrics *metrics
}

// NewService constructs a Service over the given pruners. The initial progress
// is read from the pruners, which recover their watermarks on construction.
func NewService(committer Committer, registry *Registry, opts ...Option) (*Service, error) {
	params := DefaultParams()
	for _, opt := range opts {
		opt(&params)
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("pruner: service creation failed: %w", err)
	}

	s := &Service{
		committer: committer,
		registry:  registry,
		progress:  newProgress(registry.snapshot()),
		params:    params,
		commands:  make(chan Command, params.commandBuffer),
		done:      make(chan struct{}),
	}
	if params.metrics {
		if err := s.WithMetrics(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Start spawns the pruning worker.
func (s *Service) Start(context.Context) error {
	if !s.started.CompareAndSwap(false, true) {
		return ErrStarted
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	w := newWorker(s.committer, s.commands, s.registry, s.progress, s.params.batchSize, s.metrics)
	go func() {
		defer close(s.done)
		w.work(ctx)
	}()

	log.Infow("started pruner", "batch_size", s.params.batchSize, "snapshot", s.progress.Read())
	return nil
}

// Stop tells the worker to quit and waits until it does or ctx is done.
// The worker finishes its current cycle first. If ctx is done first, the
// worker outlives Stop and exits once it receives the Quit.
func (s *Service) Stop(ctx context.Context) error {
	if !s.started.Load() {
		return ErrNotStarted
	}
	if !s.stopped.CompareAndSwap(false, true) {
		return nil
	}
	defer s.cancel()

	select {
	case s.commands <- Quit():
	case <-s.done:
	case <-ctx.Done():
		// deliver Quit once the worker gets back to the channel
		go func() {
			select {
			case s.commands <- Quit():
			case <-s.done:
			}
		}()
		return multierr.Combine(ctx.Err(), s.metrics.close())
	}

	select {
	case <-s.done:
	case <-ctx.Done():
		return multierr.Combine(ctx.Err(), s.metrics.close())
	}
	return s.metrics.close()
}

// Wake asks the worker to prune every enabled domain up to latest minus the
// domain's prune window.
func (s *Service) Wake(ctx context.Context, latest Version) error {
	if !s.started.Load() {
		return ErrNotStarted
	}

	select {
	case s.commands <- Prune(s.targets(latest)...):
	case <-s.done:
		return fmt.Errorf("pruner: worker stopped")
	case <-ctx.Done():
		return ctx.Err()
	}

	s.lastSentLk.Lock()
	if latest > s.lastSent {
		s.lastSent = latest
	}
	s.lastSentLk.Unlock()
	return nil
}

// MaybeWake wakes the worker only once latest is at least a whole batch ahead
// of the version the worker was last woken with.
func (s *Service) MaybeWake(ctx context.Context, latest Version) error {
	s.lastSentLk.Lock()
	due := latest >= s.lastSent+s.params.batchSize
	s.lastSentLk.Unlock()
	if !due {
		return nil
	}
	return s.Wake(ctx, latest)
}

// WakeAndWait wakes the worker and waits until every enabled domain has been
// pruned up to its target, or ctx is done.
func (s *Service) WakeAndWait(ctx context.Context, latest Version) error {
	if err := s.Wake(ctx, latest); err != nil {
		return err
	}

	targets := s.targets(latest)
	ticker := s.params.clock.Ticker(s.params.pollInterval)
	defer ticker.Stop()
	for {
		if s.reached(targets) {
			return nil
		}

		select {
		case <-ticker.C:
		case <-s.done:
			return fmt.Errorf("pruner: worker stopped")
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Progress returns the latest published progress snapshot.
func (s *Service) Progress() Snapshot {
	return s.progress.Read()
}

// MinReadableVersion returns the min readable version of the domain, if
// pruning is enabled for it.
func (s *Service) MinReadableVersion(d Domain) (Version, bool) {
	return s.progress.MinReadableVersion(d)
}

// PruneWindow returns the amount of recent versions kept in the domain.
func (s *Service) PruneWindow(d Domain) uint64 {
	if int(d) < 0 || int(d) >= NumDomains {
		return 0
	}
	return s.params.windows[d]
}

// targets computes the prune targets for latest, absent for disabled domains.
func (s *Service) targets(latest Version) []OptionalVersion {
	targets := make([]OptionalVersion, s.registry.Len())
	for i := range targets {
		d := Domain(i)
		if !s.registry.Enabled(d) {
			continue
		}
		window := s.PruneWindow(d)
		if latest <= window {
			targets[i] = Some(0)
			continue
		}
		targets[i] = Some(latest - window)
	}
	return targets
}

func (s *Service) reached(targets []OptionalVersion) bool {
	snap := s.progress.Read()
	for d, target := range targets {
		if !target.Valid {
			continue
		}
		minReadable, ok := snap.MinReadableVersion(Domain(d))
		if ok && minReadable < target.Version {
			return false
		}
	}
	return true
}
