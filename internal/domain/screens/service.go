package screens

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrUnknownScreen = errors.New("unknown screen")
	ErrUnknownDialog = errors.New("unknown dialog")
	ErrNoSelection   = errors.New("no item selected")
)

type Service struct {
	repo      Repository
	resolvers map[Screen]Resolver
	now       func() time.Time
}

// NewService recibe un Resolver por pantalla; solo esas pantallas existen.
func NewService(repo Repository, resolvers map[Screen]Resolver) *Service {
	rs := make(map[Screen]Resolver, len(resolvers))
	for k, v := range resolvers {
		rs[k] = v
	}
	return &Service{
		repo:      repo,
		resolvers: rs,
		now:       time.Now,
	}
}

func (s *Service) ParseScreen(v string) (Screen, bool) {
	sc := Screen(strings.ToLower(strings.TrimSpace(v)))
	_, ok := s.resolvers[sc]
	return sc, ok
}

// Get devuelve el estado actual; una pantalla nunca tocada está vacía y cerrada.
// Si el item seleccionado ya no existe, la selección se limpia y se cierran view/edit.
func (s *Service) Get(ctx context.Context, ownerUserID string, screen Screen) (State, error) {
	resolve, ok := s.resolvers[screen]
	if !ok {
		return State{}, ErrUnknownScreen
	}
	st, found, err := s.repo.Get(ctx, ownerUserID, screen)
	if err != nil {
		return State{}, err
	}
	if !found {
		return State{Screen: screen}, nil
	}
	if st.SelectedID == "" {
		return st, nil
	}

	exists, err := resolve(ctx, ownerUserID, st.SelectedID)
	if err != nil {
		return State{}, err
	}
	if exists {
		return st, nil
	}
	st.SelectedID = ""
	if st.OpenDialog.needsSelection() {
		st.OpenDialog = ""
	}
	return s.save(ctx, ownerUserID, st)
}

// Select marca el item; si el id no existe la selección queda vacía (sin error).
func (s *Service) Select(ctx context.Context, ownerUserID string, screen Screen, id string) (State, error) {
	st, err := s.Get(ctx, ownerUserID, screen)
	if err != nil {
		return State{}, err
	}

	st.SelectedID = ""
	if id = strings.TrimSpace(id); id != "" {
		ok, err := s.resolvers[screen](ctx, ownerUserID, id)
		if err != nil {
			return State{}, err
		}
		if ok {
			st.SelectedID = id
		}
	}
	// sin selección no puede quedar abierto view/edit
	if st.SelectedID == "" && st.OpenDialog.needsSelection() {
		st.OpenDialog = ""
	}
	return s.save(ctx, ownerUserID, st)
}

func (s *Service) ClearSelection(ctx context.Context, ownerUserID string, screen Screen) (State, error) {
	return s.Select(ctx, ownerUserID, screen, "")
}

// OpenDialog abre d y cierra los demás. view/edit requieren selección.
func (s *Service) OpenDialog(ctx context.Context, ownerUserID string, screen Screen, d Dialog) (State, error) {
	if _, ok := ParseDialog(string(d)); !ok {
		return State{}, ErrUnknownDialog
	}
	st, err := s.Get(ctx, ownerUserID, screen)
	if err != nil {
		return State{}, err
	}
	if d.needsSelection() && st.SelectedID == "" {
		return State{}, ErrNoSelection
	}

	st.OpenDialog = d
	return s.save(ctx, ownerUserID, st)
}

// CloseDialog cierra d; cerrar view/edit limpia la selección. Cerrar algo ya cerrado es no-op.
func (s *Service) CloseDialog(ctx context.Context, ownerUserID string, screen Screen, d Dialog) (State, error) {
	if _, ok := ParseDialog(string(d)); !ok {
		return State{}, ErrUnknownDialog
	}
	st, err := s.Get(ctx, ownerUserID, screen)
	if err != nil {
		return State{}, err
	}
	if st.OpenDialog != d {
		return st, nil
	}

	st.OpenDialog = ""
	if d.needsSelection() {
		st.SelectedID = ""
	}
	return s.save(ctx, ownerUserID, st)
}

// SetFilter guarda el valor del filtro de la pantalla ("" = todos).
func (s *Service) SetFilter(ctx context.Context, ownerUserID string, screen Screen, value string) (State, error) {
	st, err := s.Get(ctx, ownerUserID, screen)
	if err != nil {
		return State{}, err
	}
	st.Filter = strings.TrimSpace(value)
	return s.save(ctx, ownerUserID, st)
}

func (s *Service) save(ctx context.Context, ownerUserID string, st State) (State, error) {
	st.UpdatedAt = s.now()
	if err := s.repo.Save(ctx, ownerUserID, st); err != nil {
		return State{}, err
	}
	return st, nil
}
