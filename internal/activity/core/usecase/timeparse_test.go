package usecase

import (
	"testing"
	"time"
)

func TestParseEventTime(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2020-03-13T19:04:20Z", "2020-03-13 19:04:20"},
		{"2020-03-13T19:04:20.123456Z", "2020-03-13 19:04:20.123456"},
		{"2020-03-13T19:04:20", "2020-03-13 19:04:20"},
		{"2020-03-13T19:04:20.123456", "2020-03-13 19:04:20.123456"},
		{"2020-03-13 19:04:20", "2020-03-13 19:04:20"},
		{"2020-03-13 19:04:20.123456", "2020-03-13 19:04:20.123456"},
		{"2020-03-13", "2020-03-13 00:00:00"},
	}

	for _, tc := range cases {
		got, err := parseEventTime(tc.in)
		if err != nil {
			t.Errorf("parseEventTime(%q): unexpected error %v", tc.in, err)
			continue
		}
		if got.Location() != time.UTC {
			t.Errorf("parseEventTime(%q): not UTC", tc.in)
		}
		if s := got.Format("2006-01-02 15:04:05.999999"); s != tc.want {
			t.Errorf("parseEventTime(%q) = %s, want %s", tc.in, s, tc.want)
		}
	}
}

func TestParseEventTime_NormalizesOffsets(t *testing.T) {
	got, err := parseEventTime("2020-03-13T19:04:20+02:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s := got.Format("2006-01-02 15:04:05"); s != "2020-03-13 17:04:20" {
		t.Errorf("offset not normalized to UTC: %s", s)
	}
}

func TestParseEventTime_Rejects(t *testing.T) {
	for _, in := range []string{"", "ABCDEFG", "1234567890", "13/03/2020"} {
		if _, err := parseEventTime(in); err == nil {
			t.Errorf("parseEventTime(%q): expected error", in)
		}
	}
}
