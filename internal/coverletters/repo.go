package coverletters

import "context"

// Repo defines owner-scoped persistence for cover letters.
type Repo interface {
	Create(ctx context.Context, letter CoverLetter) error
	ListByUser(ctx context.Context, userID string) ([]CoverLetter, error)
	GetByID(ctx context.Context, userID, id string) (CoverLetter, error)
	Delete(ctx context.Context, userID, id string) error
}
