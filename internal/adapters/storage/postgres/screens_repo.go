package postgres

import (
	"context"
	"database/sql"
	"errors"

	"pet-care-dashboard/internal/domain/screens"
)

type ScreensRepo struct {
	db *sql.DB
}

func NewScreensRepo(db *sql.DB) *ScreensRepo {
	return &ScreensRepo{db: db}
}

func (r *ScreensRepo) Get(ctx context.Context, ownerUserID string, screen screens.Screen) (screens.State, bool, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT selected_id, open_dialog, filter, updated_at
		FROM screen_states
		WHERE owner_user_id = $1 AND screen = $2
	`, ownerUserID, string(screen))

	st := screens.State{Screen: screen}
	var dialog string
	if err := row.Scan(&st.SelectedID, &dialog, &st.Filter, &st.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return screens.State{}, false, nil
		}
		return screens.State{}, false, err
	}
	st.OpenDialog = screens.Dialog(dialog)
	return st, true, nil
}

func (r *ScreensRepo) Save(ctx context.Context, ownerUserID string, st screens.State) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO screen_states (owner_user_id, screen, selected_id, open_dialog, filter, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (owner_user_id, screen) DO UPDATE
		SET
			selected_id = EXCLUDED.selected_id,
			open_dialog = EXCLUDED.open_dialog,
			filter = EXCLUDED.filter,
			updated_at = EXCLUDED.updated_at
	`,
		ownerUserID,
		string(st.Screen),
		st.SelectedID,
		string(st.OpenDialog),
		st.Filter,
		st.UpdatedAt,
	)
	return err
}
