package entities

// ProcessStage is the lifecycle of one "process a report" request.
//
// Received -> Extracted -> Analyzed -> Formatted -> Stored -> Notified -> Complete.
// A failure before Formatted ends the request with an error. Storage and notification
// failures after Formatted are collected and the request finishes as partial.
type ProcessStage string

const (
	ProcessStageReceived  ProcessStage = "received"
	ProcessStageExtracted ProcessStage = "extracted"
	ProcessStageAnalyzed  ProcessStage = "analyzed"
	ProcessStageFormatted ProcessStage = "formatted"
	ProcessStageStored    ProcessStage = "stored"
	ProcessStageNotified  ProcessStage = "notified"
	ProcessStageComplete  ProcessStage = "complete"
	ProcessStageFailed    ProcessStage = "failed"
)

// ProcessStatus tells the caller whether every post-analysis step succeeded.
type ProcessStatus string

const (
	ProcessStatusComplete ProcessStatus = "complete"
	ProcessStatusPartial  ProcessStatus = "partial"
)

// StepFailure records a non-fatal failure of a post-analysis step.
type StepFailure struct {
	Stage  ProcessStage     `json:"stage"`
	Target NotificationKind `json:"target,omitempty"`
	Error  string           `json:"error"`
}

// ProcessResult is returned for every request that produced a report.
type ProcessResult struct {
	RecordID string
	Report   string
	Estimate CostEstimate
	Stage    ProcessStage
	Status   ProcessStatus
	Failures []StepFailure
}
