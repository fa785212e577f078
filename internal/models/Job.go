package models

type Job struct {
	ID       int64  `json:"id" yaml:"id"`
	Title    string `json:"title" yaml:"title"`
	Company  string `json:"company" yaml:"company"`
	Location string `json:"location" yaml:"location"`
	URL      string `json:"url" yaml:"url"`
	Source   string `json:"source" yaml:"source"`
}

type SearchQuery struct {
	Source string `json:"source"` // Backend path segment (e.g. "stepstone", "monster")
	Title  string `json:"title"`
	City   string `json:"city"`
}

// JobsEnvelope is the wrapped response body returned by the backend.
type JobsEnvelope struct {
	Jobs              []Job  `json:"jobs"`
	DatabaseAvailable bool   `json:"databaseAvailable"`
	TimeoutOccurred   bool   `json:"timeoutOccurred"`
	Error             string `json:"error,omitempty"`
}

type ResponseFormat string

const (
	// EnvelopeFormat expects a JobsEnvelope body.
	EnvelopeFormat ResponseFormat = "envelope"
	// ListFormat expects a bare JSON array of jobs.
	ListFormat ResponseFormat = "list"
)

// Known backend sources.
const (
	SourceStepstone = "stepstone"
	SourceMonster   = "monster"
)
