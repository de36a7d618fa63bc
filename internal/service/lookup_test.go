package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lodziarka/GOD-X/internal/provider/foodlens"
	"github.com/Lodziarka/GOD-X/internal/service"
)

// fakeLookupClient serves scripted results per query and can hold a
// response until released, to simulate a slow request. With
// ignoreCancel set, a held request keeps running through its
// cancellation and still returns its scripted result.
type fakeLookupClient struct {
	results      map[string][]foodlens.Candidate
	err          error
	hold         map[string]chan struct{}
	ignoreCancel bool
}

func (f *fakeLookupClient) Search(ctx context.Context, query string) ([]foodlens.Candidate, error) {
	if gate, ok := f.hold[query]; ok {
		if f.ignoreCancel {
			<-gate
		} else {
			select {
			case <-gate:
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.results[query], nil
}

func (f *fakeLookupClient) Recognize(ctx context.Context, image []byte) ([]foodlens.Candidate, error) {
	return f.Search(ctx, "image")
}

func TestLookupDeliversResults(t *testing.T) {
	t.Parallel()
	client := &fakeLookupClient{results: map[string][]foodlens.Candidate{
		"oats": {{Name: "Rolled Oats", Calories: 379, ProteinG: 13.2}},
	}}
	lookup := service.NewLookup(client)

	results := make(chan service.LookupResult, 1)
	lookup.Search(context.Background(), "oats", func(r service.LookupResult) { results <- r })

	res := <-results
	require.NoError(t, res.Err)
	require.Len(t, res.Candidates, 1)
	assert.Equal(t, "Rolled Oats", res.Candidates[0].Name)
}

func TestLookupWrapsFailuresAndEmptyResults(t *testing.T) {
	t.Parallel()

	failing := service.NewLookup(&fakeLookupClient{err: errors.New("boom")})
	results := make(chan service.LookupResult, 1)
	failing.Search(context.Background(), "oats", func(r service.LookupResult) { results <- r })
	res := <-results
	require.ErrorIs(t, res.Err, service.ErrLookup)

	empty := service.NewLookup(&fakeLookupClient{})
	empty.Search(context.Background(), "unknown thing", func(r service.LookupResult) { results <- r })
	res = <-results
	require.ErrorIs(t, res.Err, service.ErrLookup)
	assert.Empty(t, res.Candidates)
}

func TestSupersededLookupResultIsDropped(t *testing.T) {
	t.Parallel()
	gate := make(chan struct{})
	client := &fakeLookupClient{
		results: map[string][]foodlens.Candidate{
			"chicken":        {{Name: "Chicken Breast", Calories: 165}},
			"chicken breast": {{Name: "Chicken Breast Fillet", Calories: 164}},
		},
		hold: map[string]chan struct{}{"chicken": gate},
	}
	lookup := service.NewLookup(client)

	delivered := make(chan service.LookupResult, 2)
	lookup.Search(context.Background(), "chicken", func(r service.LookupResult) { delivered <- r })
	// The user refined the query before the first search resolved.
	lookup.Search(context.Background(), "chicken breast", func(r service.LookupResult) { delivered <- r })
	close(gate)

	res := <-delivered
	require.NoError(t, res.Err)
	require.Len(t, res.Candidates, 1)
	assert.Equal(t, "Chicken Breast Fillet", res.Candidates[0].Name)

	// The stale first result must never arrive.
	select {
	case stale := <-delivered:
		t.Fatalf("superseded search delivered %+v", stale)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestLateResultFromSupersededSearchIsDropped(t *testing.T) {
	t.Parallel()
	gate := make(chan struct{})
	client := &fakeLookupClient{
		results: map[string][]foodlens.Candidate{
			"rice":       {{Name: "White Rice", Calories: 130}},
			"rice cakes": {{Name: "Rice Cakes", Calories: 387}},
		},
		hold:         map[string]chan struct{}{"rice": gate},
		ignoreCancel: true,
	}
	lookup := service.NewLookup(client)

	delivered := make(chan service.LookupResult, 2)
	lookup.Search(context.Background(), "rice", func(r service.LookupResult) { delivered <- r })
	lookup.Search(context.Background(), "rice cakes", func(r service.LookupResult) { delivered <- r })

	fresh := <-delivered
	require.NoError(t, fresh.Err)
	require.Len(t, fresh.Candidates, 1)
	assert.Equal(t, "Rice Cakes", fresh.Candidates[0].Name)

	// The first request runs past its cancellation and resolves
	// successfully only after the newer result was applied. It must
	// still be dropped, not delivered on top of the newer result.
	close(gate)
	select {
	case stale := <-delivered:
		t.Fatalf("superseded search delivered %+v after the newer result", stale)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestCancelledLookupDeliversNothing(t *testing.T) {
	t.Parallel()
	gate := make(chan struct{})
	client := &fakeLookupClient{
		results: map[string][]foodlens.Candidate{"oats": {{Name: "Oats"}}},
		hold:    map[string]chan struct{}{"oats": gate},
	}
	lookup := service.NewLookup(client)

	delivered := make(chan service.LookupResult, 1)
	lookup.Search(context.Background(), "oats", func(r service.LookupResult) { delivered <- r })
	lookup.Cancel()
	close(gate)

	select {
	case res := <-delivered:
		t.Fatalf("cancelled search delivered %+v", res)
	case <-time.After(50 * time.Millisecond):
	}
}
