package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidPhone(t *testing.T) {
	valid := []string{"9876543210", "0123456789"}
	invalid := []string{"987654321", "98765432101", "98765abcde", "98-7654321", "", "+919876543210"}
	for _, phone := range valid {
		if !IsValidPhone(phone) {
			t.Errorf("IsValidPhone(%q) = false, want true", phone)
		}
	}
	for _, phone := range invalid {
		if IsValidPhone(phone) {
			t.Errorf("IsValidPhone(%q) = true, want false", phone)
		}
	}
}

func TestIsValidBankAccount(t *testing.T) {
	valid := []string{"1234567890", "000123", "98765432109876"}
	invalid := []string{"12345-678", "12 345", "ABC123", ""}
	for _, acc := range valid {
		if !IsValidBankAccount(acc) {
			t.Errorf("IsValidBankAccount(%q) = false, want true", acc)
		}
	}
	for _, acc := range invalid {
		if IsValidBankAccount(acc) {
			t.Errorf("IsValidBankAccount(%q) = true, want false", acc)
		}
	}
}

func TestIsValidIFSC(t *testing.T) {
	valid := []string{"SBIN0001234", "hdfc0000123"}
	invalid := []string{"SBIN1001234", "SBI0001234", "SBIN000123", ""}
	for _, code := range valid {
		if !IsValidIFSC(code) {
			t.Errorf("IsValidIFSC(%q) = false, want true", code)
		}
	}
	for _, code := range invalid {
		if IsValidIFSC(code) {
			t.Errorf("IsValidIFSC(%q) = true, want false", code)
		}
	}
}

func TestIsValidMonthKey(t *testing.T) {
	valid := []string{"2024-01", "2024-12", "1999-06"}
	invalid := []string{"2024-13", "2024-00", "2024-1", "202401", "2024/01", ""}
	for _, m := range valid {
		if !IsValidMonthKey(m) {
			t.Errorf("IsValidMonthKey(%q) = false, want true", m)
		}
	}
	for _, m := range invalid {
		if IsValidMonthKey(m) {
			t.Errorf("IsValidMonthKey(%q) = true, want false", m)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2024-02-29"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		input string
		ok    bool
		want  string
	}{
		{"250.00", true, "250"},
		{" 100 ", true, "100"},
		{"-50.25", true, "-50.25"},
		{"abc", false, ""},
		{"", false, ""},
		{"12,50", false, ""},
	}
	for _, c := range cases {
		got, ok := ParseAmount(c.input)
		if ok != c.ok {
			t.Errorf("ParseAmount(%q) ok = %v, want %v", c.input, ok, c.ok)
			continue
		}
		if ok && got.String() != c.want {
			t.Errorf("ParseAmount(%q) = %s, want %s", c.input, got, c.want)
		}
	}
}
