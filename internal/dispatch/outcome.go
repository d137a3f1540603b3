package dispatch

// Failure kinds, machine-readable.
const (
	KindOperationNotFound = "operation_not_found"
	KindInvalidArguments  = "invalid_arguments"
	KindExecutionFailed   = "execution_failed"
)

// Failure describes why an invocation did not produce a value.
type Failure struct {
	Kind    string         `json:"kind"`
	Message string         `json:"message"`
	Context map[string]any `json:"context,omitempty"`
}

// Outcome is the normalized result of Invoke: either a success value of
// arbitrary shape or a structured failure, never both, never a raised
// error. An outer protocol adapter can serialize it directly.
type Outcome struct {
	OK      bool     `json:"ok"`
	Value   any      `json:"value,omitempty"`
	Failure *Failure `json:"failure,omitempty"`
}

func succeed(value any) Outcome {
	return Outcome{OK: true, Value: value}
}

func fail(kind, message string, context map[string]any) Outcome {
	return Outcome{Failure: &Failure{Kind: kind, Message: message, Context: context}}
}
