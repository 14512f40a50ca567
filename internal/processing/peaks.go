package processing

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
)

// ErrNoPeakRange is returned for labels that have no peak-current range.
var ErrNoPeakRange = errors.New("no peak current range for concentration")

type peakRange struct {
	lo, hi float64
}

// Peak current ranges in amperes.
var peakRanges = map[Concentration]peakRange{
	Conc500uM: {90e-9, 100e-9},
	Conc400uM: {60e-9, 80e-9},
	Conc250uM: {30e-9, 50e-9},
	Conc100uM: {3e-9, 20e-9},
	Conc10uM:  {1e-9, 2e-9},
	Conc1uM:   {0.1e-9, 1e-9},
	Buffer:    {0, 0},
}

// PeakRange returns the [lo, hi) range a label's peak current is drawn from.
func PeakRange(c Concentration) (lo, hi float64, ok bool) {
	r, ok := peakRanges[c]
	return r.lo, r.hi, ok
}

// RandomSource yields uniform values in [0, 1).
type RandomSource interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// PeakStore keeps the peak current drawn for each label of a session.
type PeakStore interface {
	Load(ctx context.Context, sessionID string, c Concentration) (float64, bool, error)
	// StoreIfAbsent saves value unless one exists and returns the stored value.
	StoreIfAbsent(ctx context.Context, sessionID string, c Concentration, value float64) (float64, error)
	Reset(ctx context.Context, sessionID string) error
}

var _ PeakStore = (*MemoryPeakStore)(nil)

// MemoryPeakStore is an in-process PeakStore.
type MemoryPeakStore struct {
	mu       sync.Mutex
	sessions map[string]map[Concentration]float64
}

// NewMemoryPeakStore creates an empty in-process store
func NewMemoryPeakStore() *MemoryPeakStore {
	return &MemoryPeakStore{sessions: make(map[string]map[Concentration]float64)}
}

func (s *MemoryPeakStore) Load(_ context.Context, sessionID string, c Concentration) (float64, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.sessions[sessionID][c]
	return v, ok, nil
}

func (s *MemoryPeakStore) StoreIfAbsent(_ context.Context, sessionID string, c Concentration, value float64) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	peaks, ok := s.sessions[sessionID]
	if !ok {
		peaks = make(map[Concentration]float64)
		s.sessions[sessionID] = peaks
	}
	if existing, ok := peaks[c]; ok {
		return existing, nil
	}
	peaks[c] = value
	return value, nil
}

func (s *MemoryPeakStore) Reset(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

// PeakGenerator draws a peak current for a label once per session and
// returns the same value afterwards.
type PeakGenerator struct {
	store PeakStore

	mu  sync.Mutex
	rng RandomSource
}

// NewPeakGenerator creates a generator. A nil rng uses the global source.
func NewPeakGenerator(store PeakStore, rng RandomSource) *PeakGenerator {
	if rng == nil {
		rng = globalSource{}
	}
	return &PeakGenerator{store: store, rng: rng}
}

// Generate returns the session's peak current for c, drawing it on first use.
func (g *PeakGenerator) Generate(ctx context.Context, sessionID string, c Concentration) (float64, error) {
	lo, hi, ok := PeakRange(c)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNoPeakRange, c)
	}

	if v, found, err := g.store.Load(ctx, sessionID, c); err != nil {
		return 0, fmt.Errorf("failed to load peak current: %w", err)
	} else if found {
		return v, nil
	}

	g.mu.Lock()
	value := lo + g.rng.Float64()*(hi-lo)
	g.mu.Unlock()

	stored, err := g.store.StoreIfAbsent(ctx, sessionID, c, value)
	if err != nil {
		return 0, fmt.Errorf("failed to store peak current: %w", err)
	}
	return stored, nil
}

// Reset forgets every peak drawn for the session.
func (g *PeakGenerator) Reset(ctx context.Context, sessionID string) error {
	return g.store.Reset(ctx, sessionID)
}
