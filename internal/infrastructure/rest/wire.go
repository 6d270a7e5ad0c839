package rest

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/dentastore/backoffice-client/pkg/money"
)

// DateFormat is the backend's date-only wire format.
const DateFormat = "2006-01-02"

// Date wraps time.Time to accept the backend's two date encodings: plain
// dates and full RFC 3339 timestamps. It always serializes back as a plain
// date.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		d.Time = time.Time{}
		return nil
	}
	if t, err := time.Parse(DateFormat, raw); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return fmt.Errorf("unrecognized date %q", raw)
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.Time.Format(DateFormat) + `"`), nil
}

// Amount parses a string-encoded decimal from the wire. Malformed values are
// coerced to zero with a diagnostic instead of failing the whole mapping; the
// backend owns the numbers and a single bad field must not hide a record.
func Amount(log zerolog.Logger, resource, field, raw string) decimal.Decimal {
	value, err := money.Parse(raw)
	if err != nil {
		log.Warn().Str("resource", resource).Str("field", field).Str("value", raw).
			Msg("malformed decimal, coerced to zero")
		return decimal.Zero
	}
	return value
}

// CoercedEnum logs the diagnostic emitted whenever an unexpected wire value
// fell back to an enum's default.
func CoercedEnum(log zerolog.Logger, resource, field, raw string) {
	log.Warn().Str("resource", resource).Str("field", field).Str("value", raw).
		Msg("unexpected enum value, coerced to default")
}
