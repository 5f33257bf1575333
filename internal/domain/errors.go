package domain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// ErrNotFound is returned when a record does not exist, either locally or at
// the external metadata service. Resolution failures at the external service
// are folded into this error as well; the underlying cause is logged by the
// caller, not propagated.
var ErrNotFound = errors.New("not found")

// ErrListCategory is returned when a membership operation does not match the
// list's category, e.g. adding a book to a films list.
var ErrListCategory = errors.New("entry does not match list category")

// ValidationError carries per-field validation detail for a rejected record.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}

	return "validation failed: " + strings.Join(parts, "; ")
}
