package models

// Status is the result of building one output document.
type Status string

const (
	// StatusProduced means the document was written.
	StatusProduced Status = "produced"
	// StatusSkipped means the document was deliberately not built.
	StatusSkipped Status = "skipped"
	// StatusFailed means building or writing the document failed.
	StatusFailed Status = "failed"
)

// Outcome records what happened to one output document.
type Outcome struct {
	// Document is the document name (e.g. "map", "issuance").
	Document string `json:"document"`
	// Path is the written file, empty unless produced.
	Path string `json:"path,omitempty"`
	// Status is the build result.
	Status Status `json:"status"`
	// Reason explains a skip.
	Reason string `json:"reason,omitempty"`
	// Err is the failure cause.
	Err error `json:"-"`
}
