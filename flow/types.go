package flow

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/flowmatch/bfs"
)

// ErrVerification is returned when a solved network fails a sanity check.
var ErrVerification = errors.New("flow: verification failed")

// State is a phase of the Edmonds–Karp loop.
type State int

const (
	// StateSearching looks for an augmenting path.
	StateSearching State = iota
	// StateAugmenting pushes the bottleneck along a found path.
	StateAugmenting
	// StateDone is terminal: no augmenting path remains.
	StateDone
)

func (s State) String() string {
	switch s {
	case StateSearching:
		return "SEARCHING"
	case StateAugmenting:
		return "AUGMENTING"
	case StateDone:
		return "DONE"
	default:
		return "UNKNOWN"
	}
}

// Augmentation records one iteration of the main loop.
type Augmentation struct {
	Path       bfs.Path
	Bottleneck int64
}

// FlowEdge is an edge carrying positive flow in the final assignment.
type FlowEdge struct {
	From, To int
	Flow     int64
	Capacity int64
}

// Result is the outcome of a solve.
type Result struct {
	// RunID identifies the solve in log output.
	RunID string

	Source, Sink int

	// TotalFlow is the maximum flow value.
	TotalFlow int64

	// Augmentations lists every augmenting path in the order applied.
	Augmentations []Augmentation

	// Edges lists every edge with Flow > 0, in node then insertion order.
	Edges []FlowEdge
}

// Options configures an Engine.
//   - Logger:    receives debug records for state changes and augmentations.
//   - OnAugment: called after each augmentation is applied.
//   - OnState:   called on every state transition.
//   - Verify:    run Verify after solving and fail with ErrVerification.
type Options struct {
	Logger    *log.Logger
	OnAugment func(Augmentation)
	OnState   func(State)
	Verify    bool
}

// Option configures an Engine via functional arguments.
type Option func(*Options)

// DefaultOptions returns options with a discarding logger and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Logger:    log.New(io.Discard),
		OnAugment: func(Augmentation) {},
		OnState:   func(State) {},
	}
}

// WithLogger routes engine debug output to l.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnAugment registers a callback invoked after each augmentation.
func WithOnAugment(fn func(Augmentation)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAugment = fn
		}
	}
}

// WithOnState registers a callback invoked on every state transition.
func WithOnState(fn func(State)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnState = fn
		}
	}
}

// WithVerify enables post-solve sanity checks.
func WithVerify(on bool) Option {
	return func(o *Options) { o.Verify = on }
}
