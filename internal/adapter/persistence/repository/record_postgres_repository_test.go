package repository

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"inspection_estimator/internal/domain/entities"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var recordColumns = []string{
	"id", "created_at", "first_name", "last_name", "email", "phone", "property_address",
	"payment_session_id", "payment_status", "document_name", "document_size", "estimate",
	"termites_mentioned", "pests_mentioned", "rot_mentioned", "handyman_total", "contractor_total",
}

func sampleRecord() entities.StoredRecord {
	return entities.StoredRecord{
		ID:                "6f1c2b8e-8d4a-4c3e-9a57-1f2e3d4c5b6a",
		CreatedAt:         time.Date(2026, time.March, 5, 10, 30, 0, 0, time.UTC),
		FirstName:         "Jane",
		LastName:          "Doe",
		Email:             "jane@example.com",
		Phone:             "555-0100",
		PropertyAddress:   "123 Main St",
		PaymentSessionID:  "cs_test_1",
		PaymentStatus:     "paid",
		DocumentName:      "inspection.pdf",
		DocumentSize:      2048,
		EstimateRaw:       json.RawMessage(`{"repair_categories":[{"category_name":"Roof Repair","handyman_cost":500,"contractor_cost":1200}]}`),
		TermitesMentioned: true,
		HandymanTotal:     500,
		ContractorTotal:   1200,
	}
}

func newMockRepo(t *testing.T) (*RecordPostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewRecordPostgresRepository(db), mock
}

func TestRecordPostgresRepository_EnsureSchema(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS inspection_reports")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordPostgresRepository_Create(t *testing.T) {
	t.Run("inserts every column", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		rec := sampleRecord()
		mock.ExpectExec(regexp.QuoteMeta(insertRecordSQL)).
			WithArgs(rec.ID, rec.CreatedAt, "Jane", "Doe", "jane@example.com", "555-0100", "123 Main St",
				"cs_test_1", "paid", "inspection.pdf", int64(2048), string(rec.EstimateRaw),
				true, false, false, 500.0, 1200.0).
			WillReturnResult(sqlmock.NewResult(0, 1))

		got, err := repo.Create(context.Background(), rec)
		require.NoError(t, err)
		assert.Equal(t, rec.ID, got.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate id", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectExec(regexp.QuoteMeta(insertRecordSQL)).
			WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

		_, err := repo.Create(context.Background(), sampleRecord())
		assert.True(t, errors.Is(err, ErrRecordAlreadyExists), "got %v", err)
	})

	t.Run("driver error", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		boom := errors.New("connection refused")
		mock.ExpectExec(regexp.QuoteMeta(insertRecordSQL)).WillReturnError(boom)

		_, err := repo.Create(context.Background(), sampleRecord())
		assert.ErrorIs(t, err, boom)
	})
}

func TestRecordPostgresRepository_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		rec := sampleRecord()
		mock.ExpectQuery(regexp.QuoteMeta(selectRecordSQL)).
			WithArgs(rec.ID).
			WillReturnRows(sqlmock.NewRows(recordColumns).AddRow(
				rec.ID, rec.CreatedAt, rec.FirstName, rec.LastName, rec.Email, rec.Phone, rec.PropertyAddress,
				rec.PaymentSessionID, rec.PaymentStatus, rec.DocumentName, rec.DocumentSize, []byte(rec.EstimateRaw),
				rec.TermitesMentioned, rec.PestsMentioned, rec.RotMentioned, rec.HandymanTotal, rec.ContractorTotal,
			))

		got, err := repo.GetByID(context.Background(), rec.ID)
		require.NoError(t, err)
		assert.Equal(t, rec, got)

		est, err := got.Estimate()
		require.NoError(t, err)
		assert.Equal(t, "Roof Repair", est.RepairCategories[0].CategoryName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found returns empty record", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		const missingID = "9b2d8f5e-0c61-4d7a-8f0a-2f7e5c1d3b44"
		mock.ExpectQuery(regexp.QuoteMeta(selectRecordSQL)).
			WithArgs(missingID).
			WillReturnRows(sqlmock.NewRows(recordColumns))

		got, err := repo.GetByID(context.Background(), missingID)
		require.NoError(t, err)
		assert.Empty(t, got.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("non uuid id is not found without querying", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		got, err := repo.GetByID(context.Background(), "missing")
		require.NoError(t, err)
		assert.Empty(t, got.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
