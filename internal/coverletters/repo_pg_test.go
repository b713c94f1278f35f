package coverletters

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	letter := CoverLetter{
		ID:                 "letter-1",
		ResumeID:           "resume-1",
		CustomerID:         "customer-1",
		JobDescriptionText: "jd",
		GeneratedText:      "Dear Hiring Manager",
		InputLogName:       "input-log-1",
		CreatedAt:          time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO cover_letters").
		WithArgs(
			letter.ID,
			letter.ResumeID,
			letter.CustomerID,
			letter.JobDescriptionText,
			letter.GeneratedText,
			letter.InputLogName,
			nil, // rating starts unset
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), letter); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("SELECT (.+) FROM cover_letters").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "resume_id", "customer_id", "job_description_text",
			"generated_text", "input_log_name", "rating", "created_at",
		}))

	repo := &PGRepo{DB: db}
	if _, err := repo.GetByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoUpdateRating(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	now := time.Now().UTC()
	mock.ExpectQuery("UPDATE cover_letters").
		WithArgs("letter-1", "thumbs_down").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "resume_id", "customer_id", "job_description_text",
			"generated_text", "input_log_name", "rating", "created_at",
		}).AddRow("letter-1", "resume-1", "customer-1", "jd", "text", "input-log-1", "thumbs_down", now))

	repo := &PGRepo{DB: db}
	letter, err := repo.UpdateRating(context.Background(), "letter-1", RatingThumbsDown)
	if err != nil {
		t.Fatalf("UpdateRating: %v", err)
	}
	if letter.Rating == nil || *letter.Rating != RatingThumbsDown {
		t.Fatalf("unexpected rating %+v", letter.Rating)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
