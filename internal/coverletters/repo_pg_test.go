package coverletters

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

var letterRowColumns = []string{"id", "user_id", "job_title", "company_name", "job_description", "status", "content", "created_at", "updated_at"}

func newMockRepo(t *testing.T) (*PGRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return &PGRepo{DB: db}, mock
}

func TestPGRepoCreate(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now().UTC()
	letter := CoverLetter{
		ID: "cl-1", UserID: "u-1", JobTitle: "Engineer", CompanyName: "Acme",
		JobDescription: "Build things", Status: StatusCompleted, Content: "Hi", CreatedAt: now, UpdatedAt: now,
	}

	mock.ExpectExec("INSERT INTO cover_letters").
		WithArgs("cl-1", "u-1", "Engineer", "Acme", "Build things", StatusCompleted, "Hi", now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Create(context.Background(), letter); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListByUserOrdersNewestFirst(t *testing.T) {
	repo, mock := newMockRepo(t)
	newer := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	older := newer.Add(-time.Hour)

	mock.ExpectQuery("SELECT (.+) FROM cover_letters WHERE user_id = \\$1 ORDER BY created_at DESC").
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows(letterRowColumns).
			AddRow("cl-2", "u-1", "B", "B Co", "desc", StatusCompleted, "two", newer, newer).
			AddRow("cl-1", "u-1", "A", "A Co", "desc", StatusCompleted, "one", older, older))

	letters, err := repo.ListByUser(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(letters) != 2 || letters[0].ID != "cl-2" || letters[1].ID != "cl-1" {
		t.Fatalf("unexpected letters %+v", letters)
	}
}

func TestPGRepoListByUserEmpty(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM cover_letters").
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows(letterRowColumns))

	letters, err := repo.ListByUser(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if letters == nil || len(letters) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", letters)
	}
}

func TestPGRepoGetByIDScopesToOwner(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM cover_letters WHERE id = \\$1 AND user_id = \\$2").
		WithArgs("cl-1", "u-2").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "u-2", "cl-1")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoDelete(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("DELETE FROM cover_letters WHERE id = \\$1 AND user_id = \\$2").
		WithArgs("cl-1", "u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM cover_letters").
		WithArgs("cl-1", "u-2").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), "u-1", "cl-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(context.Background(), "u-2", "cl-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoStoreErrorPropagates(t *testing.T) {
	repo, mock := newMockRepo(t)
	boom := errors.New("connection reset")

	mock.ExpectQuery("SELECT (.+) FROM cover_letters").
		WithArgs("u-1").
		WillReturnError(boom)

	if _, err := repo.ListByUser(context.Background(), "u-1"); !errors.Is(err, boom) {
		t.Fatalf("expected store error, got %v", err)
	}
}
