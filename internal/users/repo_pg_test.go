package users

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoUpsertKeepsExistingPasswordHash(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	user := User{
		ID:       "google:123",
		Email:    "ada@example.com",
		FullName: "Ada Lovelace",
	}

	mock.ExpectExec("INSERT INTO users").
		WithArgs(
			user.ID,
			user.Email,
			user.FullName,
			nil, // given_name
			nil, // family_name
			nil, // picture_url
			nil, // password_hash stays untouched on conflict
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Upsert(context.Background(), user); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByEmailScansNullableColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	created := time.Now().UTC()

	rows := sqlmock.NewRows([]string{
		"id", "email", "full_name", "given_name", "family_name", "picture_url", "password_hash", "created_at", "updated_at",
	}).AddRow("local:abc", "ada@example.com", "Ada Lovelace", nil, nil, nil, "hash", created, nil)

	mock.ExpectQuery("SELECT id, email, full_name").
		WithArgs("ada@example.com").
		WillReturnRows(rows)

	user, err := repo.GetByEmail(context.Background(), " ada@example.com ")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if user.ID != "local:abc" {
		t.Fatalf("expected id local:abc, got %s", user.ID)
	}
	if user.PasswordHash != "hash" {
		t.Fatalf("expected password hash to be scanned")
	}
	if user.GivenName != "" {
		t.Fatalf("expected empty given name for NULL column")
	}
	if user.UpdatedAt.IsZero() {
		t.Fatalf("expected updated_at fallback for NULL column")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByEmailNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("SELECT id, email, full_name").
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "email", "full_name", "given_name", "family_name", "picture_url", "password_hash", "created_at", "updated_at",
		}))

	if _, err := repo.GetByEmail(context.Background(), "nobody@example.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
