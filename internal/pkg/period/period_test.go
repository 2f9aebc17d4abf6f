package period

import (
	"testing"
	"time"
)

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth("2024-03")
	if err != nil {
		t.Fatalf("ParseMonth(2024-03) error: %v", err)
	}
	if m.Year != 2024 || m.Month != time.March {
		t.Errorf("ParseMonth(2024-03) = %+v", m)
	}

	for _, bad := range []string{"2024-13", "2024", "03-2024", "", "2024-3x"} {
		if _, err := ParseMonth(bad); err == nil {
			t.Errorf("ParseMonth(%q) expected error", bad)
		}
	}
}

func TestMonthInterval(t *testing.T) {
	cases := []struct {
		key       string
		wantStart string
		wantNext  string
	}{
		{"2024-03", "2024-03-01", "2024-04-01"},
		{"2024-12", "2024-12-01", "2025-01-01"}, // year rollover
		{"2024-02", "2024-02-01", "2024-03-01"}, // leap February
		{"2023-02", "2023-02-01", "2023-03-01"},
	}
	for _, c := range cases {
		m, err := ParseMonth(c.key)
		if err != nil {
			t.Fatalf("ParseMonth(%q): %v", c.key, err)
		}
		if got := m.Start().Format("2006-01-02"); got != c.wantStart {
			t.Errorf("%s Start = %s, want %s", c.key, got, c.wantStart)
		}
		if got := m.Next().Format("2006-01-02"); got != c.wantNext {
			t.Errorf("%s Next = %s, want %s", c.key, got, c.wantNext)
		}
	}
}

func TestMonthContains(t *testing.T) {
	m, _ := ParseMonth("2024-03")

	in := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	last := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	before := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	after := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	if !m.Contains(in) || !m.Contains(last) {
		t.Error("Contains should include in-month dates")
	}
	if m.Contains(before) || m.Contains(after) {
		t.Error("Contains should exclude out-of-month dates")
	}
}

func TestMonthKeyRoundTrip(t *testing.T) {
	for _, key := range []string{"2024-01", "2024-12", "1999-06"} {
		m, err := ParseMonth(key)
		if err != nil {
			t.Fatalf("ParseMonth(%q): %v", key, err)
		}
		if m.Key() != key {
			t.Errorf("Key() = %s, want %s", m.Key(), key)
		}
	}
}

func TestOfDay(t *testing.T) {
	d := time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC)
	m := OfDay(d)
	if m.Key() != "2024-12" {
		t.Errorf("OfDay Dec 31 = %s", m.Key())
	}
	if m.Next().Format("2006-01-02") != "2025-01-01" {
		t.Errorf("Next after Dec = %s", m.Next())
	}
}
