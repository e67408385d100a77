package schedule

import (
	"testing"
)

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		in       string
		expected string
		wantErr  bool
	}{
		{in: "09:00:00", expected: "09:00:00"},
		{in: "09:00", expected: "09:00:00"},
		{in: "14:35:07", expected: "14:35:07"},
		{in: "14:00:00.000001", expected: "14:00:00"},
		{in: "14:00:00.999999", expected: "14:00:00"},
		{in: "23:59:59", expected: "23:59:59"},
		{in: "00:00:00", expected: "00:00:00"},
		{in: "24:00:00", wantErr: true},
		{in: "09:60", wantErr: true},
		{in: "garbage", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range cases {
		got, err := ParseTimeOfDay(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseTimeOfDay(%q): expected error, got %v", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTimeOfDay(%q): unexpected error %v", tc.in, err)
			continue
		}
		if got.String() != tc.expected {
			t.Errorf("ParseTimeOfDay(%q) = %s, expected %s", tc.in, got, tc.expected)
		}
	}
}

func TestSubSecondInsensitivity(t *testing.T) {
	a, err := ParseTimeOfDay("14:00:00.000001")
	if err != nil {
		t.Fatal(err)
	}
	b, err := ParseTimeOfDay("14:00:00")
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("times differing only in microseconds must compare equal: %v != %v", a, b)
	}
}

func TestTimeOfDayAddMinutes(t *testing.T) {
	start := NewTimeOfDay(9, 0, 0)

	if got := start.AddMinutes(30).String(); got != "09:30:00" {
		t.Errorf("09:00 + 30min = %s", got)
	}
	if got := start.AddMinutes(90).String(); got != "10:30:00" {
		t.Errorf("09:00 + 90min = %s", got)
	}
}

func TestTimeOfDayMarshalJSON(t *testing.T) {
	v := NewTimeOfDay(9, 5, 0)
	b, err := v.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"09:05:00"` {
		t.Errorf("MarshalJSON = %s", b)
	}
}
