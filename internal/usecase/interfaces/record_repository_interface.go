package interfaces

import (
	"context"
	"inspection_estimator/internal/domain/entities"
)

// IRecordRepository abstracts persistence of StoredRecord (DynamoDB or PostgreSQL).
//
// Records are append-only:
//   - one record is created per analyzed submission
//   - records are read back only to regenerate a report
//   - nothing updates or deletes a record

type IRecordRepository interface {
	Create(ctx context.Context, r entities.StoredRecord) (entities.StoredRecord, error)
	GetByID(ctx context.Context, id string) (entities.StoredRecord, error)
}
