package domain

import (
	"context"
	"errors"
	"sync"

	catalog "givehope_backend/internal/catalog/domain"
	"givehope_backend/platform/logger"
)

// StorageKey is the fixed key the cart state lives under in its scope.
const StorageKey = "cart"

// Storage is the persistence port: a key-value store already scoped to one
// client.
type Storage interface {
	// Get returns the stored value and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set overwrites the value under key.
	Set(ctx context.Context, key, value string) error
}

// Store owns one client's cart state. Each dispatch applies the reducer and
// writes the result through to storage before the next dispatch can observe
// the state.
type Store struct {
	mu      sync.Mutex
	state   State
	storage Storage
	log     *logger.Logger
}

type loadResult int

const (
	loadFound loadResult = iota
	loadAbsent
	loadFailed
)

// NewStore reads storage once and seeds the state from it. An absent or
// corrupt value starts empty and the empty state is written back. A failed
// read is logged and starts empty in memory only, leaving the stored value
// in place.
func NewStore(ctx context.Context, storage Storage, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Discard()
	}
	s := &Store{state: Empty(), storage: storage, log: log}

	initial, result := s.load(ctx)
	switch result {
	case loadFound:
		s.Dispatch(ctx, LoadCart{State: initial})
	case loadAbsent:
		s.mu.Lock()
		s.persist(ctx, s.state)
		s.mu.Unlock()
	}
	return s
}

func (s *Store) load(ctx context.Context) (State, loadResult) {
	value, found, err := s.storage.Get(ctx, StorageKey)
	if err != nil {
		s.log.WithContext(ctx).CartPersistenceError("load", StorageKey, err)
		return State{}, loadFailed
	}
	if !found {
		return State{}, loadAbsent
	}

	state, err := Decode(value)
	if err != nil {
		s.log.WithContext(ctx).CartPersistenceError("decode", StorageKey, err)
		return State{}, loadAbsent
	}
	return state, loadFound
}

// persist must be called with mu held. Failures are logged and dropped; the
// in-memory state stays authoritative.
func (s *Store) persist(ctx context.Context, state State) {
	encoded, err := Encode(state)
	if err == nil {
		err = s.storage.Set(ctx, StorageKey, encoded)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		s.log.WithContext(ctx).CartPersistenceError("save", StorageKey, err)
	}
}

// State returns a copy of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Dispatch applies action and persists the resulting state.
func (s *Store) Dispatch(ctx context.Context, action Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = Reduce(s.state, action)
	s.persist(ctx, s.state)
	s.log.WithContext(ctx).CartAction(action.Name(), len(s.state.Items), s.state.ItemCount, s.state.Total)
	return s.state.clone()
}

// AddItem dispatches AddItem.
func (s *Store) AddItem(ctx context.Context, p catalog.Product) State {
	return s.Dispatch(ctx, AddItem{Product: p})
}

// RemoveItem dispatches RemoveItem.
func (s *Store) RemoveItem(ctx context.Context, productID string) State {
	return s.Dispatch(ctx, RemoveItem{ProductID: productID})
}

// UpdateQuantity dispatches UpdateQuantity.
func (s *Store) UpdateQuantity(ctx context.Context, productID string, quantity int) State {
	return s.Dispatch(ctx, UpdateQuantity{ProductID: productID, Quantity: quantity})
}

// IncreaseQuantity dispatches IncreaseQuantity.
func (s *Store) IncreaseQuantity(ctx context.Context, productID string) State {
	return s.Dispatch(ctx, IncreaseQuantity{ProductID: productID})
}

// DecreaseQuantity dispatches DecreaseQuantity.
func (s *Store) DecreaseQuantity(ctx context.Context, productID string) State {
	return s.Dispatch(ctx, DecreaseQuantity{ProductID: productID})
}

// ClearCart dispatches ClearCart.
func (s *Store) ClearCart(ctx context.Context) State {
	return s.Dispatch(ctx, ClearCart{})
}

// Load dispatches LoadCart.
func (s *Store) Load(ctx context.Context, state State) State {
	return s.Dispatch(ctx, LoadCart{State: state})
}
