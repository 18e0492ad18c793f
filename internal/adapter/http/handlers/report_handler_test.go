package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"inspection_estimator/internal/adapter/http/handlers/mocks"
	"inspection_estimator/internal/domain/entities"
	"inspection_estimator/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

var samplePDF = []byte("%PDF-1.7\n1 0 obj\n<<>>\nendobj\n%%EOF")

func validFields() map[string]string {
	return map[string]string{
		"firstName":       "Jane",
		"lastName":        "Doe",
		"email":           "jane@example.com",
		"phone":           "555-0100",
		"propertyAddress": "123 Main St",
		"sessionId":       "cs_test_1",
	}
}

func multipartRequest(t *testing.T, fields map[string]string, filename string, file []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if file != nil {
		part, err := w.CreateFormFile("pdf", filename)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		_, _ = part.Write(file)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/process-report", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func newReportRouter(h *ReportHandler) *gin.Engine {
	r := gin.New()
	r.POST("/api/process-report", h.ProcessReport)
	return r
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestReportHandler_ProcessReport(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc, 0, nil)

		uc.EXPECT().ProcessReport(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, s entities.Submission) (entities.ProcessResult, error) {
				if s.Identity.FullName() != "Jane Doe" || s.PaymentSessionID != "cs_test_1" {
					t.Fatalf("unexpected submission: %+v", s.Identity)
				}
				if s.Document.Filename != "inspection.pdf" || !bytes.Equal(s.Document.Content, samplePDF) {
					t.Fatalf("unexpected document: %s", s.Document.Filename)
				}
				return entities.ProcessResult{RecordID: "rec-1", Report: "REPORT", Status: entities.ProcessStatusComplete}, nil
			})

		w := httptest.NewRecorder()
		newReportRouter(h).ServeHTTP(w, multipartRequest(t, validFields(), "inspection.pdf", samplePDF))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != true || body["report"] != "REPORT" || body["recordId"] != "rec-1" || body["status"] != "complete" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("partial result is reported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc, 0, nil)

		uc.EXPECT().ProcessReport(gomock.Any(), gomock.Any()).Return(entities.ProcessResult{
			Report: "REPORT",
			Status: entities.ProcessStatusPartial,
			Failures: []entities.StepFailure{
				{Stage: entities.ProcessStageNotified, Target: entities.NotificationClient, Error: "smtp down"},
			},
		}, nil)

		w := httptest.NewRecorder()
		newReportRouter(h).ServeHTTP(w, multipartRequest(t, validFields(), "inspection.pdf", samplePDF))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Status   string `json:"status"`
			Failures []struct {
				Stage  string `json:"stage"`
				Target string `json:"target"`
			} `json:"failures"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Status != "partial" || len(body.Failures) != 1 || body.Failures[0].Target != "client" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("missing required field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc, 0, nil)

		fields := validFields()
		delete(fields, "propertyAddress")
		w := httptest.NewRecorder()
		newReportRouter(h).ServeHTTP(w, multipartRequest(t, fields, "inspection.pdf", samplePDF))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if decodeError(t, w)["code"] != "INVALID_REQUEST" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc, 0, nil)

		fields := validFields()
		fields["email"] = "not-an-email"
		w := httptest.NewRecorder()
		newReportRouter(h).ServeHTTP(w, multipartRequest(t, fields, "inspection.pdf", samplePDF))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing pdf", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc, 0, nil)

		w := httptest.NewRecorder()
		newReportRouter(h).ServeHTTP(w, multipartRequest(t, validFields(), "", nil))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if decodeError(t, w)["code"] != "MISSING_DOCUMENT" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("not a pdf", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc, 0, nil)

		w := httptest.NewRecorder()
		newReportRouter(h).ServeHTTP(w, multipartRequest(t, validFields(), "photo.png", []byte("\x89PNG\r\n\x1a\n")))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if decodeError(t, w)["code"] != "INVALID_DOCUMENT" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("file too large", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc, 16, nil)

		w := httptest.NewRecorder()
		newReportRouter(h).ServeHTTP(w, multipartRequest(t, validFields(), "inspection.pdf", append(samplePDF, bytes.Repeat([]byte("x"), 64)...)))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if decodeError(t, w)["code"] != "DOCUMENT_TOO_LARGE" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	errorCases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", &usecase.StageError{Stage: entities.ProcessStageExtracted, Err: usecase.ErrNoExtractableText}, http.StatusBadRequest, "INVALID_REQUEST"},
		{"unpaid session", usecase.ErrPaymentNotCompleted, http.StatusBadRequest, "INVALID_REQUEST"},
		{"upstream", &usecase.StageError{Stage: entities.ProcessStageAnalyzed, Kind: usecase.ErrUpstream, Err: errors.New("503 from model")}, http.StatusBadGateway, "UPSTREAM_FAILURE"},
		{"malformed", &usecase.StageError{Stage: entities.ProcessStageAnalyzed, Err: fmt.Errorf("%w: missing repair_categories", usecase.ErrMalformedResponse)}, http.StatusBadGateway, "MALFORMED_RESPONSE"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range errorCases {
		t.Run("usecase error "+tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIReportUseCase(ctrl)
			h := NewReportHandler(uc, 0, nil)

			uc.EXPECT().ProcessReport(gomock.Any(), gomock.Any()).Return(entities.ProcessResult{}, tc.err)

			w := httptest.NewRecorder()
			newReportRouter(h).ServeHTTP(w, multipartRequest(t, validFields(), "inspection.pdf", samplePDF))

			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			body := decodeError(t, w)
			if body["code"] != tc.code {
				t.Fatalf("expected code %s, got %s", tc.code, body["code"])
			}
			if body["error"] == "" {
				t.Fatalf("expected error message")
			}
		})
	}
}
