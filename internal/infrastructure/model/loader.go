package model

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

// Slot names the thing a model is loaded for, typically a character
type Slot uint32

// Result is the outcome of one load request
type Result struct {
	Slot   Slot
	Source string
	Model  *Model
	Err    error

	gen uint64
}

// DecodeFunc turns a source into a model. It should return early when ctx
// is canceled.
type DecodeFunc func(ctx context.Context, src Source) (*Model, error)

// Loader runs model loads in the background. A newer request for a slot
// supersedes the older one: the old request is canceled and its result,
// if it still arrives, is dropped by Poll.
type Loader struct {
	decode DecodeFunc
	log    *zap.Logger

	mu      sync.Mutex
	gens    map[Slot]uint64
	cancels map[Slot]context.CancelFunc
	results []Result

	wg sync.WaitGroup
}

// LoaderOption configures a Loader
type LoaderOption func(*Loader)

// WithDecoder replaces the default glTF decoder
func WithDecoder(fn DecodeFunc) LoaderOption {
	return func(l *Loader) { l.decode = fn }
}

// NewLoader creates a new loader
func NewLoader(log *zap.Logger, opts ...LoaderOption) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	l := &Loader{
		decode:  decodeWithContext,
		log:     log,
		gens:    make(map[Slot]uint64),
		cancels: make(map[Slot]context.CancelFunc),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func decodeWithContext(ctx context.Context, src Source) (*Model, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return DecodeSource(src)
}

// Load starts loading src into slot and returns the request generation
func (l *Loader) Load(ctx context.Context, slot Slot, src Source) uint64 {
	l.mu.Lock()
	if cancel, ok := l.cancels[slot]; ok {
		cancel()
	}
	l.gens[slot]++
	gen := l.gens[slot]
	ctx, cancel := context.WithCancel(ctx)
	l.cancels[slot] = cancel
	l.wg.Add(1)
	l.mu.Unlock()

	l.log.Debug("model load started",
		zap.Uint32("slot", uint32(slot)),
		zap.String("source", src.Name()),
		zap.Uint64("gen", gen),
	)

	go func() {
		defer l.wg.Done()
		defer cancel()

		m, err := l.decode(ctx, src)
		if err == nil && ctx.Err() != nil {
			m, err = nil, ctx.Err()
		}

		l.mu.Lock()
		l.results = append(l.results, Result{
			Slot:   slot,
			Source: src.Name(),
			Model:  m,
			Err:    err,
			gen:    gen,
		})
		l.mu.Unlock()
	}()

	return gen
}

// Poll returns finished results of the latest request per slot, oldest first.
// It never blocks.
func (l *Loader) Poll() []Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.results) == 0 {
		return nil
	}

	var out []Result
	for _, r := range l.results {
		if r.gen != l.gens[r.Slot] {
			l.log.Debug("stale model load discarded",
				zap.Uint32("slot", uint32(r.Slot)),
				zap.String("source", r.Source),
				zap.Uint64("gen", r.gen),
				zap.Bool("canceled", errors.Is(r.Err, context.Canceled)),
			)
			continue
		}
		delete(l.cancels, r.Slot)
		out = append(out, r)
	}
	l.results = l.results[:0]
	return out
}

// Pending reports whether slot has a request whose result has not been polled
func (l *Loader) Pending(slot Slot) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.cancels[slot]
	return ok
}

// Wait blocks until every started load has finished or ctx is done
func (l *Loader) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		l.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close cancels every outstanding request
func (l *Loader) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for slot, cancel := range l.cancels {
		cancel()
		delete(l.cancels, slot)
	}
}
