package diag

import "github.com/patcheck/exhaustive/internal/schema"

// Fix represents a suggested fix with a confidence score, carried through
// to diagnostics consumers that render actionable hints.
type Fix struct {
	Suggestion string  `json:"suggestion"`
	Confidence float64 `json:"confidence"`
}

// Encoded is a structured diagnostic in the same AI-first JSON shape the
// rest of the toolchain emits: a schema tag, a stable session id, the code,
// a message, an optional fix, free-form context, and an optional rendered
// source span.
type Encoded struct {
	Schema     string `json:"schema"`
	SID        string `json:"sid"`
	Phase      string `json:"phase"`
	Code       string `json:"code"`
	Message    string `json:"message"`
	Fix        Fix    `json:"fix"`
	Context    any    `json:"context,omitempty"`
	SourceSpan string `json:"source_span,omitempty"`
	Meta       any    `json:"meta,omitempty"`
}

// New creates an exhaustiveness diagnostic for the given session id, error
// code, and message, with free-form context attached.
func New(sid, code, msg string, ctx any) Encoded {
	if sid == "" {
		sid = "unknown"
	}
	return Encoded{
		Schema:  schema.DiagnosticV1,
		SID:     sid,
		Phase:   "exhaustiveness",
		Code:    code,
		Message: msg,
		Fix:     Fix{Suggestion: "", Confidence: 0.0},
		Context: ctx,
	}
}

// WithFix attaches a suggested fix to the diagnostic.
func (e Encoded) WithFix(suggestion string, confidence float64) Encoded {
	e.Fix = Fix{Suggestion: suggestion, Confidence: confidence}
	return e
}

// WithSourceSpan attaches a rendered source location to the diagnostic.
func (e Encoded) WithSourceSpan(span string) Encoded {
	e.SourceSpan = span
	return e
}

// WithMeta attaches arbitrary structured metadata to the diagnostic.
func (e Encoded) WithMeta(meta any) Encoded {
	e.Meta = meta
	return e
}

// ToJSON renders the diagnostic as deterministic JSON, so repeated runs
// over the same matrix produce byte-identical output.
func (e Encoded) ToJSON() ([]byte, error) {
	data, err := schema.MarshalDeterministic(e)
	if err != nil {
		fallback := Encoded{
			Schema:  schema.DiagnosticV1,
			Message: "encoding failed",
			Meta:    map[string]string{"original_error": err.Error()},
		}
		return schema.MarshalDeterministic(fallback)
	}
	return schema.FormatJSON(data)
}
