package llm

import "context"

type contextKey string

const (
	purposeKey contextKey = "llm_purpose"
	runKey     contextKey = "llm_run"
)

// WithPurpose attaches a purpose label to the context for event logging,
// e.g. "section-fill" or "question-revise".
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label from the context.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}

// WithRun attaches a generation run ID so audit events can be correlated
// with the tracked run that issued them.
func WithRun(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runKey, runID)
}

// RunFrom extracts the run ID from the context, empty when untracked.
func RunFrom(ctx context.Context) string {
	if v, ok := ctx.Value(runKey).(string); ok {
		return v
	}
	return ""
}
