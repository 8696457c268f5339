package memory

import (
	"context"
	"sync"

	"pet-care-dashboard/internal/domain/screens"
)

type screenKey struct {
	owner  string
	screen screens.Screen
}

type screenRepo struct {
	mu     sync.RWMutex
	states map[screenKey]screens.State
}

func NewScreenRepo() screens.Repository {
	return &screenRepo{
		states: make(map[screenKey]screens.State),
	}
}

func (r *screenRepo) Get(ctx context.Context, ownerUserID string, screen screens.Screen) (screens.State, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	st, ok := r.states[screenKey{owner: ownerUserID, screen: screen}]
	return st, ok, nil
}

func (r *screenRepo) Save(ctx context.Context, ownerUserID string, st screens.State) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.states[screenKey{owner: ownerUserID, screen: st.Screen}] = st
	return nil
}
