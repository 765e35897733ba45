package optionbook

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2025-06-20", want: NewDate(2025, time.June, 20)},
		{in: "2025-6-20", want: NewDate(2025, time.June, 20)},
		{in: " 2025-06-20 ", want: NewDate(2025, time.June, 20)},
		{in: "1999-01-15", want: NewDate(1999, time.January, 15)},
		{in: "", wantErr: true},
		{in: "someday", wantErr: true},
		{in: "2025-13-01", wantErr: true},
		{in: "20-06-2025", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := ParseDate(tc.in)
		if tc.wantErr {
			if !IsValidation(err) {
				t.Errorf("ParseDate(%q) error = %v, want a ValidationError", tc.in, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("ParseDate(%q) = %v, %v, want %v", tc.in, got, err, tc.want)
		}
	}
}

func TestDate_String(t *testing.T) {
	d := NewDate(2025, time.June, 20)
	if got := d.String(); got != "2025-06-20" {
		t.Errorf("String() = %q, want %q", got, "2025-06-20")
	}
}

func TestDate_JSON(t *testing.T) {
	d := NewDate(2025, time.June, 20)
	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(raw) != `"2025-06-20"` {
		t.Errorf("Marshal() = %s, want %q", raw, `"2025-06-20"`)
	}
	var back Date
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}

func TestDate_BeforeAfter(t *testing.T) {
	a := NewDate(2025, time.June, 20)
	b := NewDate(2025, time.June, 21)
	if !a.Before(b) || a.After(b) || b.Before(a) {
		t.Errorf("ordering of %v and %v is wrong", a, b)
	}
	if a.Before(a) || a.After(a) {
		t.Errorf("%v compared to itself is wrong", a)
	}
}
