package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"healthmate/internal/model"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("open sqlmock failed: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	if err != nil {
		t.Fatalf("open gorm failed: %v", err)
	}
	return db, mock
}

func TestInsightRepositoryCreate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInsightRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `insights`").
		WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectCommit()

	insight := &model.Insight{
		UserID:           3,
		FileID:           7,
		SummaryEnglish:   "ok",
		SummaryRomanUrdu: "theek",
		Highlights:       model.StringList{"LDL 190"},
	}
	if err := repo.Create(insight); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if insight.ID != 5 {
		t.Fatalf("expected assigned id 5, got %d", insight.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInsightRepositoryGetByFileID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInsightRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "file_id", "summary_english", "summary_roman_urdu",
		"highlights", "questions_for_doctor", "suggestions", "created_at",
	}).AddRow(5, 3, 7, "ok", "theek", `["LDL 190"]`, `[]`, `["walk daily"]`, now)

	mock.ExpectQuery("SELECT (.+) FROM `insights` WHERE file_id = ").
		WithArgs(7, 1).
		WillReturnRows(rows)

	insight, err := repo.GetByFileID(7)
	if err != nil {
		t.Fatalf("get by file id failed: %v", err)
	}
	if insight == nil {
		t.Fatal("expected insight, got nil")
	}
	if insight.FileID != 7 || insight.SummaryEnglish != "ok" {
		t.Fatalf("unexpected insight: %+v", insight)
	}
	if len(insight.Highlights) != 1 || insight.Highlights[0] != "LDL 190" {
		t.Fatalf("highlights not scanned from json column: %v", insight.Highlights)
	}
	if len(insight.Suggestions) != 1 || insight.Suggestions[0] != "walk daily" {
		t.Fatalf("suggestions not scanned from json column: %v", insight.Suggestions)
	}
}

func TestInsightRepositoryGetByFileIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInsightRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM `insights` WHERE file_id = ").
		WithArgs(99, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	insight, err := repo.GetByFileID(99)
	if err != nil {
		t.Fatalf("missing insight must not be an error, got %v", err)
	}
	if insight != nil {
		t.Fatalf("expected nil insight, got %+v", insight)
	}
}
