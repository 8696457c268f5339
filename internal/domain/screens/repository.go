package screens

import "context"

type Repository interface {
	Get(ctx context.Context, ownerUserID string, screen Screen) (State, bool, error)
	Save(ctx context.Context, ownerUserID string, state State) error
}

// Resolver indica si id es un item visible para el usuario en esa pantalla.
type Resolver func(ctx context.Context, ownerUserID, id string) (bool, error)
