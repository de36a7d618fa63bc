package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/Lodziarka/GOD-X/internal/provider/foodlens"
)

// LookupClient is the remote food oracle: text search and image
// recognition, both returning per-100g candidates.
type LookupClient interface {
	Search(ctx context.Context, query string) ([]foodlens.Candidate, error)
	Recognize(ctx context.Context, image []byte) ([]foodlens.Candidate, error)
}

type LookupResult struct {
	Candidates []foodlens.Candidate
	Err        error
}

// Lookup serializes requests to the lookup service. Every new request
// supersedes the previous one: the old context is cancelled and a late
// result from a superseded request is dropped instead of overwriting
// newer state. Delivery runs under the same lock as supersession, so
// deliver callbacks must not call back into the Lookup.
type Lookup struct {
	client LookupClient

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
}

func NewLookup(client LookupClient) *Lookup {
	return &Lookup{client: client}
}

// Search starts an asynchronous product search. The deliver callback
// runs at most once, and only if no newer request has been issued in
// the meantime.
func (l *Lookup) Search(ctx context.Context, query string, deliver func(LookupResult)) {
	l.start(ctx, deliver, func(reqCtx context.Context) ([]foodlens.Candidate, error) {
		return l.client.Search(reqCtx, query)
	}, fmt.Sprintf("search %q", query))
}

// Recognize starts an asynchronous image recognition request with the
// same supersede semantics as Search.
func (l *Lookup) Recognize(ctx context.Context, image []byte, deliver func(LookupResult)) {
	l.start(ctx, deliver, func(reqCtx context.Context) ([]foodlens.Candidate, error) {
		return l.client.Recognize(reqCtx, image)
	}, "recognize image")
}

// Cancel discards the in-flight request, if any. Its result will not
// be delivered.
func (l *Lookup) Cancel() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.supersedeLocked()
}

func (l *Lookup) start(ctx context.Context, deliver func(LookupResult), call func(context.Context) ([]foodlens.Candidate, error), label string) {
	l.mu.Lock()
	l.supersedeLocked()
	reqCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	gen := l.gen
	l.mu.Unlock()

	go func() {
		defer cancel()
		candidates, err := call(reqCtx)

		// The staleness check and the delivery share one critical
		// section: the generation cannot move between them, so a
		// supersede either lands before this block (result dropped)
		// or after the callback has completed.
		l.mu.Lock()
		defer l.mu.Unlock()
		if gen != l.gen {
			return
		}

		switch {
		case err != nil:
			deliver(LookupResult{Err: fmt.Errorf("%s: %v: %w", label, err, ErrLookup)})
		case len(candidates) == 0:
			deliver(LookupResult{Err: fmt.Errorf("%s: no results: %w", label, ErrLookup)})
		default:
			deliver(LookupResult{Candidates: candidates})
		}
	}()
}

// supersedeLocked bumps the generation and cancels the previous
// request. Callers must hold l.mu.
func (l *Lookup) supersedeLocked() {
	l.gen++
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}

// BasisFromCandidate turns a lookup result into the per-100g scaling
// basis a meal draft is built from.
func BasisFromCandidate(c foodlens.Candidate) ScaleBasis {
	return ScaleBasis{
		Name:     c.Name,
		Calories: c.Calories,
		ProteinG: c.ProteinG,
		CarbsG:   c.CarbsG,
		FatG:     c.FatG,
	}
}
