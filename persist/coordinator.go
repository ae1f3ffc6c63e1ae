package persist

import (
	"context"
	"sync"
	"time"

	"github.com/smallnest/flowcanvas/graph"
	"github.com/smallnest/flowcanvas/log"
	"github.com/smallnest/flowcanvas/notify"
)

const (
	// DefaultDebounce is the quiescence window between the last mutation
	// and the save it triggers.
	DefaultDebounce = time.Second

	// DefaultSaveTimeout bounds a single save call.
	DefaultSaveTimeout = 30 * time.Second
)

// Coordinator debounces graph mutations into snapshot saves. It registers
// as a mutation listener on the graph store; every commit re-arms the timer,
// and when the window elapses the snapshot current at that moment is saved.
// At most one save is in flight at a time; a fire during an in-flight save
// re-arms instead of issuing a concurrent request.
type Coordinator struct {
	store       *graph.Store
	dest        SnapshotStore
	projectID   string
	debounce    time.Duration
	saveTimeout time.Duration
	notifier    notify.Notifier
	logger      log.Logger

	mu        sync.Mutex
	cond      *sync.Cond
	timer     *time.Timer
	inFlight  bool
	rearm     bool
	closed    bool
	lastSaved time.Time
}

var _ graph.MutationListener = (*Coordinator)(nil)

// CoordinatorOption configures a Coordinator.
type CoordinatorOption func(*Coordinator)

// WithDebounce overrides the quiescence window.
func WithDebounce(d time.Duration) CoordinatorOption {
	return func(c *Coordinator) { c.debounce = d }
}

// WithSaveTimeout overrides the per-save timeout.
func WithSaveTimeout(d time.Duration) CoordinatorOption {
	return func(c *Coordinator) { c.saveTimeout = d }
}

// WithNotifier routes save failures to a notifier.
func WithNotifier(n notify.Notifier) CoordinatorOption {
	return func(c *Coordinator) { c.notifier = n }
}

// WithLogger sets the coordinator's logger.
func WithLogger(l log.Logger) CoordinatorOption {
	return func(c *Coordinator) { c.logger = l }
}

// NewCoordinator creates a coordinator saving store snapshots for projectID
// into dest, and subscribes it to the store's mutation stream.
func NewCoordinator(store *graph.Store, dest SnapshotStore, projectID string, opts ...CoordinatorOption) *Coordinator {
	c := &Coordinator{
		store:       store,
		dest:        dest,
		projectID:   projectID,
		debounce:    DefaultDebounce,
		saveTimeout: DefaultSaveTimeout,
		notifier:    notify.NopNotifier{},
		logger:      log.GetDefaultLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.cond = sync.NewCond(&c.mu)
	store.Subscribe(c)
	return c
}

// OnGraphMutation implements graph.MutationListener; every committed store
// mutation lands here and re-arms the debounce timer.
func (c *Coordinator) OnGraphMutation(op graph.Mutation) {
	c.Schedule()
}

// Schedule arms or re-arms the debounce timer.
func (c *Coordinator) Schedule() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	if c.timer == nil {
		c.timer = time.AfterFunc(c.debounce, c.fire)
		return
	}
	c.timer.Reset(c.debounce)
}

// fire runs when the debounce window elapses.
func (c *Coordinator) fire() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	if c.inFlight {
		// Defer: the running save will re-arm when it completes.
		c.rearm = true
		c.mu.Unlock()
		return
	}
	c.inFlight = true
	c.mu.Unlock()

	go c.save()
}

// save serializes the snapshot current at fire time, never one captured when
// the timer was armed, so a superseded save cannot overwrite newer state.
func (c *Coordinator) save() {
	snap := c.store.Snapshot()

	ctx, cancel := context.WithTimeout(context.Background(), c.saveTimeout)
	err := c.dest.Save(ctx, c.projectID, snap)
	cancel()

	c.mu.Lock()
	c.inFlight = false
	if err != nil {
		// The in-memory graph stays authoritative; the next save
		// retries with the then-current snapshot.
		c.logger.Warn("save project %s failed: %v", c.projectID, err)
		c.notifier.Error("Saving failed. Your changes are kept locally and will be retried.")
	} else {
		c.lastSaved = time.Now()
		c.logger.Debug("saved project %s (%d nodes, %d edges)",
			c.projectID, len(snap.Nodes), len(snap.Edges))
	}
	rearm := c.rearm && !c.closed
	c.rearm = false
	c.cond.Broadcast()
	c.mu.Unlock()

	if rearm {
		c.Schedule()
	}
}

// Flush saves the current snapshot synchronously, waiting out any in-flight
// save first. Used at teardown and by CLI tooling.
func (c *Coordinator) Flush(ctx context.Context) error {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
	}
	for c.inFlight {
		c.cond.Wait()
	}
	c.inFlight = true
	c.mu.Unlock()

	snap := c.store.Snapshot()
	err := c.dest.Save(ctx, c.projectID, snap)

	c.mu.Lock()
	c.inFlight = false
	if err == nil {
		c.lastSaved = time.Now()
	}
	c.cond.Broadcast()
	c.mu.Unlock()

	return err
}

// Close stops the timer and waits for an in-flight save to finish. Pending
// unsaved mutations are not flushed; call Flush first when they matter.
func (c *Coordinator) Close() {
	c.mu.Lock()
	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
	}
	for c.inFlight {
		c.cond.Wait()
	}
	c.mu.Unlock()
}

// LastSaved returns when the last successful save completed, zero if none
// has. A passive "last saved" indicator polls this.
func (c *Coordinator) LastSaved() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastSaved
}
