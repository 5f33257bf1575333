package domain

// ImportStatus is the per-item outcome of an import batch.
type ImportStatus string

const (
	StatusImported         ImportStatus = "imported"
	StatusUpdated          ImportStatus = "updated"
	StatusDuplicate        ImportStatus = "duplicate"
	StatusNotFound         ImportStatus = "not found"
	StatusValidationFailed ImportStatus = "validation failed"
	StatusMalformedRow     ImportStatus = "malformed row"
)

// ImportResult is one entry of the ordered batch report.
type ImportResult struct {
	Item   string            `json:"item"`
	Status ImportStatus      `json:"status"`
	Errors map[string]string `json:"errors,omitempty"`
}

// RatingRow is a parsed CSV rating-import row. Rating is already rescaled
// onto the internal 10-point scale.
type RatingRow struct {
	Title  string
	Rating *float64
	Year   int
}

// DedupMode selects which key the reconciler checks for an existing record.
type DedupMode int

const (
	// DedupByExternalID matches on the external identifier; an existing
	// match is always a skip, never an update.
	DedupByExternalID DedupMode = iota
	// DedupByTitle matches on a case-insensitive exact title; an existing
	// match may have its personal rating updated.
	DedupByTitle
)

// ActionType is the reconciler's decision for a single entry.
type ActionType int

const (
	ActionCreate ActionType = iota
	ActionUpdateRating
	ActionSkip
)

// Action describes what the orchestrator should do with an entry. Film is
// set for creates; FilmID and Rating for rating updates; Reason for skips.
type Action struct {
	Type   ActionType
	Film   *Film
	FilmID int64
	Rating float64
	Reason string
}

// UnresolvedEntry records a batch entry that could not be resolved against
// the external service, written to the unresolved sidecar file for manual
// follow-up.
type UnresolvedEntry struct {
	Item   string `yaml:"item"`
	Status string `yaml:"status"`
}

type UnresolvedReport struct {
	Entries []UnresolvedEntry `yaml:"unresolved"`
}

// ImportSummary aggregates a finished batch for logging and notifications.
type ImportSummary struct {
	Total            int
	Imported         int
	Updated          int
	Duplicates       int
	NotFound         int
	ValidationFailed int
	MalformedRows    int
}

// Summarize folds an ordered batch report into counts.
func Summarize(results []ImportResult) ImportSummary {
	s := ImportSummary{Total: len(results)}
	for _, r := range results {
		switch r.Status {
		case StatusImported:
			s.Imported++
		case StatusUpdated:
			s.Updated++
		case StatusDuplicate:
			s.Duplicates++
		case StatusNotFound:
			s.NotFound++
		case StatusValidationFailed:
			s.ValidationFailed++
		case StatusMalformedRow:
			s.MalformedRows++
		}
	}
	return s
}
