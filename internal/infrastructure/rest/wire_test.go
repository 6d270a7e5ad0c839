package rest

import (
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestDateUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain date", raw: `"2025-03-15"`, want: "2025-03-15"},
		{name: "rfc3339 timestamp", raw: `"2025-03-15T14:30:00Z"`, want: "2025-03-15"},
		{name: "null", raw: `null`, want: "0001-01-01"},
		{name: "empty string", raw: `""`, want: "0001-01-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			if err := json.Unmarshal([]byte(tt.raw), &d); err != nil {
				t.Fatalf("unmarshal %s: %v", tt.raw, err)
			}
			if got := d.Format(DateFormat); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}

	var d Date
	if err := json.Unmarshal([]byte(`"15/03/2025"`), &d); err == nil {
		t.Error("accepted a slash-formatted date")
	}
}

func TestDateMarshal(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"2025-03-15T14:30:00Z"`), &d); err != nil {
		t.Fatal(err)
	}
	out, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `"2025-03-15"` {
		t.Errorf("marshaled %s, want date-only form", out)
	}

	zero, err := json.Marshal(Date{})
	if err != nil {
		t.Fatal(err)
	}
	if string(zero) != `null` {
		t.Errorf("zero date marshaled as %s, want null", zero)
	}
}

func TestAmountCoercesMalformed(t *testing.T) {
	log := zerolog.Nop()
	if got := Amount(log, "quotations", "total", "150.75"); got.String() != "150.75" {
		t.Errorf("well-formed amount mangled: %s", got)
	}
	if got := Amount(log, "quotations", "total", "not-a-number"); !got.IsZero() {
		t.Errorf("malformed amount = %s, want zero", got)
	}
	if got := Amount(log, "quotations", "total", ""); !got.IsZero() {
		t.Errorf("empty amount = %s, want zero", got)
	}
}
