package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/opencode-ai/shade/internal/theme"
)

// Preference repository errors.
var (
	ErrPreferenceNotFound = errors.New("preference not found")
)

const prefActiveMode = "active_mode"

// Override is a persisted single-color change for one mode.
type Override struct {
	ID        string
	Mode      theme.Mode
	Key       theme.ColorKey
	Color     theme.Color
	UpdatedAt time.Time
}

// PreferenceRepository persists the active mode and color overrides.
type PreferenceRepository struct {
	db *DB
}

// NewPreferenceRepository creates a new PreferenceRepository.
func NewPreferenceRepository(db *DB) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

// GetMode returns the saved active mode.
func (r *PreferenceRepository) GetMode(ctx context.Context) (theme.Mode, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM preferences WHERE name = ?`, prefActiveMode,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return theme.Light, ErrPreferenceNotFound
	}
	if err != nil {
		return theme.Light, fmt.Errorf("failed to read mode: %w", err)
	}
	return theme.ParseMode(value)
}

// SaveMode stores the active mode.
func (r *PreferenceRepository) SaveMode(ctx context.Context, mode theme.Mode) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO preferences (name, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, prefActiveMode, mode.String(), now())
	if err != nil {
		return fmt.Errorf("failed to save mode: %w", err)
	}
	return nil
}

// SaveOverride upserts a color for (mode, key).
func (r *PreferenceRepository) SaveOverride(ctx context.Context, mode theme.Mode, key theme.ColorKey, c theme.Color) error {
	if !key.Valid() {
		return fmt.Errorf("%w: %s", theme.ErrUnknownColorKey, key)
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO color_overrides (id, mode, color_key, color, updated_at) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(mode, color_key) DO UPDATE SET color = excluded.color, updated_at = excluded.updated_at
	`, uuid.New().String(), mode.String(), key.String(), c.Hex(), now())
	if err != nil {
		return fmt.Errorf("failed to save override: %w", err)
	}
	return nil
}

// ListOverrides returns the overrides for mode ordered by key name.
func (r *PreferenceRepository) ListOverrides(ctx context.Context, mode theme.Mode) ([]Override, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, color_key, color, updated_at
		FROM color_overrides WHERE mode = ? ORDER BY color_key
	`, mode.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query overrides: %w", err)
	}
	defer rows.Close()

	var overrides []Override
	for rows.Next() {
		var (
			o                     Override
			keyName, hex, updated string
		)
		if err := rows.Scan(&o.ID, &keyName, &hex, &updated); err != nil {
			return nil, fmt.Errorf("failed to scan override: %w", err)
		}
		o.Mode = mode
		if o.Key, err = theme.ParseColorKey(keyName); err != nil {
			return nil, err
		}
		if o.Color, err = theme.ParseColor(hex); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, updated); err == nil {
			o.UpdatedAt = t
		}
		overrides = append(overrides, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating overrides: %w", err)
	}
	return overrides, nil
}

// DeleteOverrides removes all overrides for mode and returns how many went.
func (r *PreferenceRepository) DeleteOverrides(ctx context.Context, mode theme.Mode) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM color_overrides WHERE mode = ?`, mode.String())
	if err != nil {
		return 0, fmt.Errorf("failed to delete overrides: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return affected, nil
}

// Restore applies the saved mode and overrides to s. A missing mode leaves
// the store's mode untouched.
func (r *PreferenceRepository) Restore(ctx context.Context, s *theme.Store) error {
	mode, err := r.GetMode(ctx)
	switch {
	case err == nil:
		s.SetActiveMode(mode)
	case !errors.Is(err, ErrPreferenceNotFound):
		return err
	}

	for _, m := range []theme.Mode{theme.Dark, theme.Light} {
		overrides, err := r.ListOverrides(ctx, m)
		if err != nil {
			return err
		}
		if len(overrides) == 0 {
			continue
		}
		patch := make(theme.Palette, len(overrides))
		for _, o := range overrides {
			patch[o.Key] = o.Color
		}
		if err := s.MergePalette(m, patch); err != nil {
			return err
		}
	}
	return nil
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
