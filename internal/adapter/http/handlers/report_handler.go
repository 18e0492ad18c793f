package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	request "inspection_estimator/internal/adapter/http/dto/request"
	response "inspection_estimator/internal/adapter/http/dto/response"
	"inspection_estimator/internal/infrastructure/pdf"
	"inspection_estimator/internal/usecase"
	"inspection_estimator/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const DefaultUploadMaxBytes int64 = 20 << 20

// multipart framing and text fields on top of the document itself
const formOverheadBytes int64 = 1 << 20

var (
	errMissingDocument = pkg.NewDomainErrorSimple("MISSING_DOCUMENT", "A pdf file is required in the \"pdf\" field", http.StatusBadRequest)
	errInvalidDocument = pkg.NewDomainErrorSimple("INVALID_DOCUMENT", "Uploaded file is not a PDF", http.StatusBadRequest)
)

// ReportHandler handles inspection report submissions.
type ReportHandler struct {
	usecase        usecase.IReportUseCase
	uploadMaxBytes int64
	logger         *zap.Logger
}

func NewReportHandler(uc usecase.IReportUseCase, uploadMaxBytes int64, logger *zap.Logger) *ReportHandler {
	if uploadMaxBytes <= 0 {
		uploadMaxBytes = DefaultUploadMaxBytes
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportHandler{usecase: uc, uploadMaxBytes: uploadMaxBytes, logger: logger.Named("report_handler")}
}

// ProcessReport godoc
// @Summary      Process an inspection report
// @Description  Extracts the PDF text, estimates repair costs, stores the record and emails the report.
// @Tags         reports
// @Accept       multipart/form-data
// @Produce      json
// @Param        pdf              formData  file    true   "Inspection report (PDF)"
// @Param        firstName        formData  string  true   "Customer first name"
// @Param        lastName         formData  string  true   "Customer last name"
// @Param        email            formData  string  true   "Customer email"
// @Param        phone            formData  string  false  "Customer phone"
// @Param        propertyAddress  formData  string  true   "Inspected property address"
// @Param        sessionId        formData  string  false  "Checkout session id"
// @Success      200  {object}  response.ProcessReportResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /process-report [post]
func (h *ReportHandler) ProcessReport(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.uploadMaxBytes+formOverheadBytes)

	var payload request.ProcessReportRequest
	if err := c.ShouldBind(&payload); err != nil {
		h.logger.Info("invalid submission", zap.Error(err))
		appErr := mapBindError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	fh, err := c.FormFile(request.FormFieldPDF)
	if err != nil {
		c.JSON(errMissingDocument.HTTPStatus, errMissingDocument.ToHTTPError())
		return
	}
	if fh.Size > h.uploadMaxBytes {
		appErr := tooLarge(h.uploadMaxBytes)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	content, err := readFormFile(fh, h.uploadMaxBytes)
	if err != nil {
		appErr := pkg.NewDomainError("INVALID_DOCUMENT", "Could not read uploaded file", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if !pdf.IsPDF(content) {
		c.JSON(errInvalidDocument.HTTPStatus, errInvalidDocument.ToHTTPError())
		return
	}

	h.logger.Info("process start", zap.String("filename", fh.Filename), zap.Int("size", len(content)))
	result, err := h.usecase.ProcessReport(c.Request.Context(), payload.ToSubmission(fh.Filename, content))
	if err != nil {
		appErr := mapReportError(err)
		h.logger.Warn("process failed", zap.Int("status", appErr.HTTPStatus), zap.Error(err))
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.logger.Info("process done",
		zap.String("record_id", result.RecordID),
		zap.String("status", string(result.Status)),
		zap.Int("failures", len(result.Failures)),
	)

	c.JSON(http.StatusOK, response.FromProcessResult(result))
}

func readFormFile(fh *multipart.FileHeader, limit int64) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, limit+1))
}

func tooLarge(limit int64) *pkg.AppError {
	return pkg.NewDomainErrorSimple("DOCUMENT_TOO_LARGE", fmt.Sprintf("Uploaded file exceeds %d bytes", limit), http.StatusBadRequest)
}

func mapBindError(err error) *pkg.AppError {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return pkg.NewDomainErrorSimple("DOCUMENT_TOO_LARGE", "Request body too large", http.StatusBadRequest)
	}
	return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
}

// mapReportError turns the use case error taxonomy into an HTTP response.
func mapReportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMalformedResponse):
		return pkg.NewDomainError("MALFORMED_RESPONSE", "Estimate service returned an unusable response", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrUpstream):
		return pkg.NewDomainError("UPSTREAM_FAILURE", "An upstream service failed", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
