package coverletters

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const letterColumns = `id, user_id, job_title, company_name, job_description, status, content, created_at, updated_at`

// Create inserts a cover letter.
func (r *PGRepo) Create(ctx context.Context, letter CoverLetter) error {
	const query = `
INSERT INTO cover_letters (` + letterColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.DB.ExecContext(ctx, query,
		letter.ID,
		letter.UserID,
		letter.JobTitle,
		letter.CompanyName,
		letter.JobDescription,
		letter.Status,
		letter.Content,
		letter.CreatedAt,
		letter.UpdatedAt,
	)
	return err
}

// ListByUser lists a user's letters newest first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]CoverLetter, error) {
	const query = `
SELECT ` + letterColumns + `
FROM cover_letters
WHERE user_id = $1
ORDER BY created_at DESC, id DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	letters := make([]CoverLetter, 0)
	for rows.Next() {
		letter, err := scanLetter(rows)
		if err != nil {
			return nil, err
		}
		letters = append(letters, letter)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return letters, nil
}

// GetByID returns the letter matching both id and owner.
func (r *PGRepo) GetByID(ctx context.Context, userID, id string) (CoverLetter, error) {
	const query = `
SELECT ` + letterColumns + `
FROM cover_letters
WHERE id = $1 AND user_id = $2
LIMIT 1`
	letter, err := scanLetter(r.DB.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CoverLetter{}, ErrNotFound
		}
		return CoverLetter{}, err
	}
	return letter, nil
}

// Delete removes the letter matching both id and owner.
func (r *PGRepo) Delete(ctx context.Context, userID, id string) error {
	const query = `DELETE FROM cover_letters WHERE id = $1 AND user_id = $2`
	res, err := r.DB.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLetter(row rowScanner) (CoverLetter, error) {
	var letter CoverLetter
	err := row.Scan(
		&letter.ID,
		&letter.UserID,
		&letter.JobTitle,
		&letter.CompanyName,
		&letter.JobDescription,
		&letter.Status,
		&letter.Content,
		&letter.CreatedAt,
		&letter.UpdatedAt,
	)
	return letter, err
}

var _ Repo = (*PGRepo)(nil)
