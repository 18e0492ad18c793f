package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"inspection_estimator/internal/domain/entities"
	"inspection_estimator/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

const createRecordsTableSQL = `CREATE TABLE IF NOT EXISTS inspection_reports (
	id                 UUID PRIMARY KEY,
	created_at         TIMESTAMPTZ NOT NULL,
	first_name         TEXT NOT NULL,
	last_name          TEXT NOT NULL,
	email              TEXT NOT NULL,
	phone              TEXT NOT NULL DEFAULT '',
	property_address   TEXT NOT NULL,
	payment_session_id TEXT NOT NULL DEFAULT '',
	payment_status     TEXT NOT NULL DEFAULT '',
	document_name      TEXT NOT NULL DEFAULT '',
	document_size      BIGINT NOT NULL DEFAULT 0,
	estimate           JSONB NOT NULL,
	termites_mentioned BOOLEAN NOT NULL DEFAULT FALSE,
	pests_mentioned    BOOLEAN NOT NULL DEFAULT FALSE,
	rot_mentioned      BOOLEAN NOT NULL DEFAULT FALSE,
	handyman_total     DOUBLE PRECISION NOT NULL DEFAULT 0,
	contractor_total   DOUBLE PRECISION NOT NULL DEFAULT 0
)`

const insertRecordSQL = `INSERT INTO inspection_reports (
	id, created_at, first_name, last_name, email, phone, property_address,
	payment_session_id, payment_status, document_name, document_size, estimate,
	termites_mentioned, pests_mentioned, rot_mentioned, handyman_total, contractor_total
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

const selectRecordSQL = `SELECT
	id, created_at, first_name, last_name, email, phone, property_address,
	payment_session_id, payment_status, document_name, document_size, estimate,
	termites_mentioned, pests_mentioned, rot_mentioned, handyman_total, contractor_total
FROM inspection_reports WHERE id = $1`

// RecordPostgresRepository persists StoredRecord entities in PostgreSQL through
// database/sql on the pgx driver. Rows are insert-only.
type RecordPostgresRepository struct {
	db *sql.DB
}

var _ interfaces.IRecordRepository = (*RecordPostgresRepository)(nil)

func NewRecordPostgresRepository(db *sql.DB) *RecordPostgresRepository {
	return &RecordPostgresRepository{db: db}
}

// EnsureSchema creates the records table when missing.
func (r *RecordPostgresRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, createRecordsTableSQL)
	return err
}

func (r *RecordPostgresRepository) Create(ctx context.Context, rec entities.StoredRecord) (entities.StoredRecord, error) {
	estimate := string(rec.EstimateRaw)
	if estimate == "" {
		estimate = "{}"
	}
	_, err := r.db.ExecContext(ctx, insertRecordSQL,
		rec.ID, rec.CreatedAt.UTC(), rec.FirstName, rec.LastName, rec.Email, rec.Phone, rec.PropertyAddress,
		rec.PaymentSessionID, rec.PaymentStatus, rec.DocumentName, rec.DocumentSize, estimate,
		rec.TermitesMentioned, rec.PestsMentioned, rec.RotMentioned, rec.HandymanTotal, rec.ContractorTotal,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return entities.StoredRecord{}, ErrRecordAlreadyExists
		}
		return entities.StoredRecord{}, err
	}
	return rec, nil
}

// GetByID returns an empty record when id is unknown. Ids that are not UUIDs
// cannot exist in the table and are treated as unknown without a query.
func (r *RecordPostgresRepository) GetByID(ctx context.Context, id string) (entities.StoredRecord, error) {
	if _, err := uuid.Parse(id); err != nil {
		return entities.StoredRecord{}, nil
	}
	var (
		rec      entities.StoredRecord
		estimate []byte
	)
	err := r.db.QueryRowContext(ctx, selectRecordSQL, id).Scan(
		&rec.ID, &rec.CreatedAt, &rec.FirstName, &rec.LastName, &rec.Email, &rec.Phone, &rec.PropertyAddress,
		&rec.PaymentSessionID, &rec.PaymentStatus, &rec.DocumentName, &rec.DocumentSize, &estimate,
		&rec.TermitesMentioned, &rec.PestsMentioned, &rec.RotMentioned, &rec.HandymanTotal, &rec.ContractorTotal,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.StoredRecord{}, nil
	}
	if err != nil {
		return entities.StoredRecord{}, err
	}
	rec.EstimateRaw = json.RawMessage(estimate)
	return rec, nil
}
