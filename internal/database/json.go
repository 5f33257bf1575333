package database

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

// JSON-array columns are stored as TEXT. NULL and empty text both decode to
// a nil slice; encoding a nil slice writes NULL so optional columns stay
// optional.

func encodeJSON(v any) (any, error) {
	if v == nil {
		return nil, nil
	}

	b, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "error encoding json column")
	}

	s := string(b)
	if s == "null" {
		return nil, nil
	}

	return s, nil
}

func decodeJSON(col sql.NullString, dest any) error {
	if !col.Valid || col.String == "" {
		return nil
	}

	if err := json.Unmarshal([]byte(col.String), dest); err != nil {
		return errors.Wrap(err, "error decoding json column")
	}

	return nil
}

// Nullable column helpers. Zero values map to NULL for optional columns.

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullInt64(v int64) any {
	if v == 0 {
		return nil
	}
	return v
}

func nullIntPtr(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullInt64Ptr(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullFloatPtr(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullDuration(d time.Duration) any {
	if d == 0 {
		return nil
	}
	return int64(d / time.Second)
}

func durationFromSeconds(col sql.NullInt64) time.Duration {
	if !col.Valid {
		return 0
	}
	return time.Duration(col.Int64) * time.Second
}

func intPtr(col sql.NullInt64) *int {
	if !col.Valid {
		return nil
	}
	v := int(col.Int64)
	return &v
}

func int64Ptr(col sql.NullInt64) *int64 {
	if !col.Valid {
		return nil
	}
	v := col.Int64
	return &v
}

func floatPtr(col sql.NullFloat64) *float64 {
	if !col.Valid {
		return nil
	}
	v := col.Float64
	return &v
}
