package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"inspection_estimator/internal/domain/entities"
	"inspection_estimator/internal/usecase"
	"inspection_estimator/internal/usecase/interfaces"
	mock_interfaces "inspection_estimator/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const roofEstimateJSON = `{
  "repair_categories": [
    {
      "category_name": "Roof Repair",
      "inspection_items": [{"section_number": 3.2, "description": "Missing shingles"}],
      "handyman_cost": 500,
      "contractor_cost": 1200,
      "recommended_trade": "Roofer"
    }
  ],
  "termites_mentioned": false,
  "pests_mentioned": false,
  "rot_mentioned": false
}`

func writeEstimate(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "estimate.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRun_EstimateFile(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), renderOptions{
		estimatePath: writeEstimate(t, roofEstimateJSON),
		firstName:    "Jane",
		lastName:     "Doe",
		address:      "123 Main St",
		date:         "2026-03-05",
	}, &out)
	require.NoError(t, err)

	report := out.String()
	assert.Contains(t, report, "Customer: Jane Doe")
	assert.Contains(t, report, "Date: March 5, 2026")
	assert.Contains(t, report, "Section 3.2 – Missing shingles")
	assert.Contains(t, report, "Contractor Total: $1,200")
}

func TestRun_Errors(t *testing.T) {
	t.Run("no source", func(t *testing.T) {
		err := run(context.Background(), renderOptions{}, &bytes.Buffer{})
		assert.ErrorIs(t, err, errSourceRequired)
	})

	t.Run("both sources", func(t *testing.T) {
		err := run(context.Background(), renderOptions{recordID: "rec-1", estimatePath: "x.json"}, &bytes.Buffer{})
		assert.ErrorIs(t, err, errSourceRequired)
	})

	t.Run("bad date", func(t *testing.T) {
		err := run(context.Background(), renderOptions{estimatePath: writeEstimate(t, roofEstimateJSON), date: "05/03/2026"}, &bytes.Buffer{})
		assert.ErrorContains(t, err, "invalid --date")
	})

	t.Run("malformed estimate", func(t *testing.T) {
		err := run(context.Background(), renderOptions{estimatePath: writeEstimate(t, `{"categories":[]}`)}, &bytes.Buffer{})
		assert.True(t, errors.Is(err, interfaces.ErrMalformedResponse), "got %v", err)
	})
}

func TestRegenerate_ReadsRecordOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	records := mock_interfaces.NewMockIRecordRepository(ctrl)

	stored := entities.StoredRecord{
		ID:              "3f0c3c3e-8f1e-4b5e-9a61-4c1f0f7f2a10",
		FirstName:       "Jane",
		LastName:        "Doe",
		PropertyAddress: "123 Main St",
		EstimateRaw:     []byte(`{"repair_categories":[{"category_name":"Roof Repair","handyman_cost":500,"contractor_cost":1200,"recommended_trade":"Roofer"}]}`),
	}
	records.EXPECT().GetByID(gomock.Any(), stored.ID).Return(stored, nil)

	out, err := regenerate(context.Background(), records, "Acme Inspections", nil, stored.ID, time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Contains(t, out, "Customer: Jane Doe")
	assert.Contains(t, out, "Prepared by: Acme Inspections")
	assert.Contains(t, out, "Estimated Cost: $500 - $1,200")
}

func TestRegenerate_MissingRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	records := mock_interfaces.NewMockIRecordRepository(ctrl)
	records.EXPECT().GetByID(gomock.Any(), "not-a-uuid").Return(entities.StoredRecord{}, nil)

	_, err := regenerate(context.Background(), records, "", nil, "not-a-uuid", time.Now())
	assert.ErrorIs(t, err, usecase.ErrRecordNotFound)
}
