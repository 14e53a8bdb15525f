package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"boothplan/internal/domain"
	"boothplan/internal/infra"
	"boothplan/internal/sqlinline"
)

// ProfileRepositoryPG implements domain.ProfileRepository backed by PostgreSQL.
type ProfileRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewProfileRepository creates a new ProfileRepositoryPG.
func NewProfileRepository(sql infra.SQLExecutor) *ProfileRepositoryPG {
	return &ProfileRepositoryPG{sql: sql}
}

// FindByUser fetches the single profile of userID.
func (r *ProfileRepositoryPG) FindByUser(ctx context.Context, userID string) (*domain.Profile, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QSelectProfileByUser, userID)
	var p domain.Profile
	if err := row.Scan(&p.ID, &p.UserID, &p.FullName, &p.City, &p.Services, &p.Events, &p.BrandStyle, &p.PostFrequency); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Patch writes only the fields present in patch.
func (r *ProfileRepositoryPG) Patch(ctx context.Context, userID string, patch domain.ProfilePatch) error {
	columns, values := profileColumns(patch)
	query, err := sqlinline.QPatchProfile(columns)
	if err != nil {
		return err
	}
	args := append([]any{userID}, values...)
	tag, err := r.sql.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// profileColumns translates the provided patch fields to profiles columns.
func profileColumns(patch domain.ProfilePatch) ([]string, []any) {
	var (
		columns []string
		values  []any
	)
	add := func(col string, v any) {
		columns = append(columns, col)
		values = append(values, v)
	}
	if patch.FullName != nil {
		add("full_name", *patch.FullName)
	}
	if patch.City != nil {
		add("city", *patch.City)
	}
	if patch.Services != nil {
		add("services", *patch.Services)
	}
	if patch.Events != nil {
		add("events", *patch.Events)
	}
	if patch.BrandStyle != nil {
		add("brand_style", *patch.BrandStyle)
	}
	if patch.PostFrequency != nil {
		add("post_frequency", *patch.PostFrequency)
	}
	return columns, values
}

var _ domain.ProfileRepository = (*ProfileRepositoryPG)(nil)
