package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"inspection_estimator/internal/domain/entities"
	"inspection_estimator/internal/domain/report"
	"inspection_estimator/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const DefaultMaxInputChars = 40000

// IReportUseCase runs the inspection report workflow.
//
//   - POST /api/process-report => ProcessReport()
//   - render CLI                => RegenerateReport()
type IReportUseCase interface {
	ProcessReport(ctx context.Context, s entities.Submission) (entities.ProcessResult, error)
	RegenerateReport(ctx context.Context, recordID string, now time.Time) (string, error)
}

// ReportDeps are the collaborators of ReportUseCase. Checkout may be nil when
// payment sessions are not looked up.
type ReportDeps struct {
	Extractor interfaces.ITextExtractor
	Analyzer  interfaces.IEstimateAnalyzer
	Records   interfaces.IRecordRepository
	Checkout  interfaces.ICheckoutGateway
	Notifier  INotificationUseCase
	Formatter *report.Formatter
	Logger    *zap.Logger
	Clock     func() time.Time
}

type ReportOptions struct {
	// MaxInputChars caps the extracted text sent to the analyzer. Longer text is cut
	// hard at the limit, so trailing inspection items may not be analyzed.
	MaxInputChars   int
	AnalyzerTimeout time.Duration
	// RequirePaidSession rejects submissions whose checkout session is not paid.
	RequirePaidSession bool
}

type ReportUseCase struct {
	deps ReportDeps
	opts ReportOptions
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(deps ReportDeps, opts ReportOptions) *ReportUseCase {
	deps.Logger = orNop(deps.Logger).Named("report")
	if deps.Clock == nil {
		deps.Clock = time.Now
	}
	if deps.Formatter == nil {
		deps.Formatter = report.NewFormatter("")
	}
	if opts.MaxInputChars <= 0 {
		opts.MaxInputChars = DefaultMaxInputChars
	}
	return &ReportUseCase{deps: deps, opts: opts}
}

func (u *ReportUseCase) ProcessReport(ctx context.Context, s entities.Submission) (entities.ProcessResult, error) {
	log := u.deps.Logger.With(zap.String("email", s.Identity.Email), zap.String("session_id", s.PaymentSessionID))
	log.Info("process start", zap.String("document", s.Document.Filename), zap.Int("document_size", len(s.Document.Content)))

	if err := validateSubmission(s); err != nil {
		log.Info("invalid submission", zap.Error(err))
		return entities.ProcessResult{}, &StageError{Stage: entities.ProcessStageReceived, Err: err}
	}

	payment, err := u.lookupPayment(ctx, s.PaymentSessionID)
	if err != nil {
		log.Warn("payment check failed", zap.Error(err))
		return entities.ProcessResult{}, err
	}

	text, err := u.deps.Extractor.ExtractText(ctx, s.Document.Content)
	if err != nil {
		log.Warn("extract failed", zap.Error(err))
		return entities.ProcessResult{}, stageFailure(entities.ProcessStageExtracted, err)
	}
	if strings.TrimSpace(text) == "" {
		log.Info("extract produced no text")
		return entities.ProcessResult{}, &StageError{Stage: entities.ProcessStageExtracted, Err: ErrNoExtractableText}
	}
	text, truncated := TruncateText(text, u.opts.MaxInputChars)
	log.Info("extracted", zap.Int("chars", utf8.RuneCountInString(text)), zap.Bool("truncated", truncated))

	estimate, err := u.analyze(ctx, text)
	if err != nil {
		log.Warn("analyze failed", zap.Error(err))
		return entities.ProcessResult{}, stageFailure(entities.ProcessStageAnalyzed, err)
	}
	log.Info("analyzed",
		zap.Int("categories", len(estimate.RepairCategories)),
		zap.Bool("termites", estimate.TermitesMentioned),
		zap.Bool("pests", estimate.PestsMentioned),
	)

	now := u.deps.Clock().UTC()
	result := entities.ProcessResult{
		Report:   u.deps.Formatter.Format(s.Identity, estimate, now),
		Estimate: estimate,
		Stage:    entities.ProcessStageFormatted,
	}

	record, err := u.store(ctx, s, payment, estimate, now)
	if err != nil {
		log.Error("store failed", zap.Error(err))
		result.Failures = append(result.Failures, entities.StepFailure{Stage: entities.ProcessStageStored, Error: err.Error()})
	} else {
		result.RecordID = record.ID
		result.Stage = entities.ProcessStageStored
		log.Info("stored", zap.String("record_id", record.ID))
	}

	if u.deps.Notifier != nil {
		outcome := u.deps.Notifier.Dispatch(ctx, NotificationRequest{
			Identity:         s.Identity,
			PaymentSessionID: s.PaymentSessionID,
			Report:           result.Report,
			Estimate:         estimate,
		})
		result.Failures = append(result.Failures, outcome.Failures...)
		if outcome.Err != nil {
			log.Warn("notify incomplete", zap.Error(outcome.Err))
		}
		if len(outcome.Sent) > 0 {
			result.Stage = entities.ProcessStageNotified
		}
	} else {
		result.Failures = append(result.Failures, entities.StepFailure{
			Stage: entities.ProcessStageNotified,
			Error: ErrMailTransportNotConfigured.Error(),
		})
	}

	result.Status = entities.ProcessStatusComplete
	if len(result.Failures) > 0 {
		result.Status = entities.ProcessStatusPartial
	} else {
		result.Stage = entities.ProcessStageComplete
	}
	log.Info("process done", zap.String("status", string(result.Status)), zap.Int("failures", len(result.Failures)))
	return result, nil
}

func (u *ReportUseCase) RegenerateReport(ctx context.Context, recordID string, now time.Time) (string, error) {
	recordID = strings.TrimSpace(recordID)
	if recordID == "" {
		return "", ErrInvalidRecordID
	}
	if u.deps.Records == nil {
		return "", ErrRecordStoreNotConfigured
	}

	rec, err := u.deps.Records.GetByID(ctx, recordID)
	if err != nil {
		return "", err
	}
	if rec.ID == "" {
		return "", ErrRecordNotFound
	}
	estimate, err := rec.Estimate()
	if err != nil {
		return "", fmt.Errorf("decode stored estimate record_id=%s: %w", recordID, err)
	}
	return u.deps.Formatter.Format(rec.Identity(), estimate, now), nil
}

// lookupPayment returns the session metadata to persist with the record. A failed
// lookup only matters when paid sessions are required.
func (u *ReportUseCase) lookupPayment(ctx context.Context, sessionID string) (entities.CheckoutSession, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		if u.opts.RequirePaidSession {
			return entities.CheckoutSession{}, &StageError{Stage: entities.ProcessStageReceived, Err: ErrPaymentNotCompleted}
		}
		return entities.CheckoutSession{}, nil
	}
	if u.deps.Checkout == nil {
		if u.opts.RequirePaidSession {
			return entities.CheckoutSession{}, ErrCheckoutGatewayNotConfigured
		}
		return entities.CheckoutSession{ID: sessionID, PaymentStatus: entities.CheckoutPaymentStatusUnknown}, nil
	}

	session, err := u.deps.Checkout.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		if u.opts.RequirePaidSession {
			return entities.CheckoutSession{}, stageFailure(entities.ProcessStageReceived, err)
		}
		u.deps.Logger.Warn("payment lookup failed", zap.String("session_id", sessionID), zap.Error(err))
		return entities.CheckoutSession{ID: sessionID, PaymentStatus: entities.CheckoutPaymentStatusUnknown}, nil
	}
	if u.opts.RequirePaidSession && !session.IsPaid() {
		return entities.CheckoutSession{}, &StageError{Stage: entities.ProcessStageReceived, Err: ErrPaymentNotCompleted}
	}
	return session, nil
}

func (u *ReportUseCase) analyze(ctx context.Context, text string) (entities.CostEstimate, error) {
	if u.opts.AnalyzerTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.opts.AnalyzerTimeout)
		defer cancel()
	}
	return u.deps.Analyzer.Analyze(ctx, text)
}

func (u *ReportUseCase) store(ctx context.Context, s entities.Submission, payment entities.CheckoutSession, estimate entities.CostEstimate, now time.Time) (entities.StoredRecord, error) {
	if u.deps.Records == nil {
		return entities.StoredRecord{}, ErrRecordStoreNotConfigured
	}
	raw, err := json.Marshal(estimate)
	if err != nil {
		return entities.StoredRecord{}, err
	}

	rec := entities.StoredRecord{
		ID:                uuid.NewString(),
		CreatedAt:         now,
		FirstName:         s.Identity.FirstName,
		LastName:          s.Identity.LastName,
		Email:             s.Identity.Email,
		Phone:             s.Identity.Phone,
		PropertyAddress:   s.Identity.PropertyAddress,
		PaymentSessionID:  strings.TrimSpace(s.PaymentSessionID),
		PaymentStatus:     string(payment.PaymentStatus),
		DocumentName:      s.Document.Filename,
		DocumentSize:      int64(len(s.Document.Content)),
		EstimateRaw:       raw,
		TermitesMentioned: estimate.TermitesMentioned,
		PestsMentioned:    estimate.PestsMentioned,
		RotMentioned:      estimate.RotMentioned,
		HandymanTotal:     estimate.HandymanTotal(),
		ContractorTotal:   estimate.ContractorTotal(),
	}
	return u.deps.Records.Create(ctx, rec)
}

func validateSubmission(s entities.Submission) error {
	switch {
	case len(s.Document.Content) == 0:
		return ErrMissingDocument
	case strings.TrimSpace(s.Identity.FirstName) == "":
		return ErrMissingFirstName
	case strings.TrimSpace(s.Identity.LastName) == "":
		return ErrMissingLastName
	case strings.TrimSpace(s.Identity.Email) == "":
		return ErrMissingEmail
	case strings.TrimSpace(s.Identity.PropertyAddress) == "":
		return ErrMissingAddress
	}
	return nil
}

// TruncateText cuts text to at most maxChars characters (runes). It reports
// whether anything was dropped.
func TruncateText(text string, maxChars int) (string, bool) {
	if maxChars <= 0 || utf8.RuneCountInString(text) <= maxChars {
		return text, false
	}
	n := 0
	for i := range text {
		if n == maxChars {
			return text[:i], true
		}
		n++
	}
	return text, false
}
