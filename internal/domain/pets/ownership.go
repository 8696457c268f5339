package pets

import (
	"context"
	"errors"
)

// OwnerOf expone el ownerUserID de una mascota.
// Lo usan health y screens sin depender del modelo completo.
func (s *Service) OwnerOf(ctx context.Context, petID string) (string, error) {
	p, err := s.GetByID(ctx, petID)
	if err != nil {
		return "", err
	}
	return p.OwnerUserID, nil
}

// Exists indica si la mascota existe y pertenece al usuario.
func (s *Service) Exists(ctx context.Context, ownerUserID, petID string) (bool, error) {
	p, err := s.GetByID(ctx, petID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return p.OwnerUserID == ownerUserID, nil
}
