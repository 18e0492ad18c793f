package response

import "inspection_estimator/internal/domain/entities"

type StepFailureResponse struct {
	Stage  string `json:"stage"`
	Target string `json:"target,omitempty"`
	Error  string `json:"error"`
}

type ProcessReportResponse struct {
	Success  bool                  `json:"success"`
	Report   string                `json:"report"`
	RecordID string                `json:"recordId,omitempty"`
	Status   string                `json:"status"`
	Failures []StepFailureResponse `json:"failures"`
}

func FromProcessResult(r entities.ProcessResult) ProcessReportResponse {
	failures := make([]StepFailureResponse, 0, len(r.Failures))
	for _, f := range r.Failures {
		failures = append(failures, StepFailureResponse{
			Stage:  string(f.Stage),
			Target: string(f.Target),
			Error:  f.Error,
		})
	}
	return ProcessReportResponse{
		Success:  true,
		Report:   r.Report,
		RecordID: r.RecordID,
		Status:   string(r.Status),
		Failures: failures,
	}
}
