package users

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const userColumns = `id, external_id, email, name, industry, experience, skills, bio, created_at, updated_at`

func (r *PGRepo) GetByExternalID(ctx context.Context, externalID string) (User, error) {
	const query = `
SELECT ` + userColumns + `
FROM users
WHERE external_id = $1
LIMIT 1`
	return scanUser(r.DB.QueryRowContext(ctx, query, externalID))
}

func (r *PGRepo) UpsertFromAuth(ctx context.Context, user User) (User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	const query = `
INSERT INTO users (id, external_id, email, name, created_at, updated_at)
VALUES ($1, $2, $3, $4, now(), now())
ON CONFLICT (external_id) DO UPDATE SET
  email = EXCLUDED.email,
  name = EXCLUDED.name,
  updated_at = now()
RETURNING ` + userColumns
	return scanUser(r.DB.QueryRowContext(ctx, query, user.ID, user.ExternalID, user.Email, user.Name))
}

func (r *PGRepo) UpdateProfile(ctx context.Context, externalID string, profile Profile) (User, error) {
	const query = `
UPDATE users
SET industry = $2, experience = $3, skills = $4, bio = $5, updated_at = now()
WHERE external_id = $1
RETURNING ` + userColumns
	return scanUser(r.DB.QueryRowContext(ctx, query,
		externalID,
		profile.Industry,
		profile.Experience,
		pq.Array(profile.Skills),
		profile.Bio,
	))
}

func scanUser(row *sql.Row) (User, error) {
	var user User
	var skills pq.StringArray
	err := row.Scan(
		&user.ID,
		&user.ExternalID,
		&user.Email,
		&user.Name,
		&user.Industry,
		&user.Experience,
		&skills,
		&user.Bio,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	if skills != nil {
		user.Skills = []string(skills)
	}
	return user, nil
}

var _ Repo = (*PGRepo)(nil)
