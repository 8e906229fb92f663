package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestConstructors(t *testing.T) {
	d := decimal.NewFromFloat(10.125)
	if m := New(d); !m.Decimal.Equal(d) {
		t.Fatalf("New mismatch: got %s want %s", m.Decimal, d)
	}

	m, err := NewFromString("123.45")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.String() != "123.45" {
		t.Fatalf("NewFromString display mismatch: got %s", m.String())
	}

	if _, err := NewFromString("not-a-number"); err == nil {
		t.Fatalf("expected error for invalid string")
	}
}

func TestPeriodConversions(t *testing.T) {
	if got := NewFromInt(120000).Monthly().String(); got != "10000.00" {
		t.Fatalf("Monthly got %s", got)
	}
	if got := NewFromInt(500).Annual().String(); got != "6000.00" {
		t.Fatalf("Annual got %s", got)
	}
	if got := NewFromInt(7).Add(NewFromInt(3)).Sub(NewFromInt(1)).String(); got != "9.00" {
		t.Fatalf("Add/Sub got %s", got)
	}
}

func TestAbbreviate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "$0"},
		{"999", "$999"},
		{"1000", "$1K"},
		{"150000", "$150K"},
		{"150499", "$150K"},
		{"1000000", "$1.0M"},
		{"1234567", "$1.2M"},
		{"25750000", "$25.8M"},
		{"-2400", "-$2K"},
		{"-3500000", "-$3.5M"},
	}
	for _, c := range cases {
		got := Abbreviate(decimal.RequireFromString(c.in))
		if got != c.want {
			t.Errorf("Abbreviate(%s) got %s want %s", c.in, got, c.want)
		}
	}
}

func TestAbbreviateMonthly(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"60000", "$5K"},
		{"40000", "$3K"},
		{"6000", "$500"},
		{"24000000", "$2.0M"},
	}
	for _, c := range cases {
		got := AbbreviateMonthly(decimal.RequireFromString(c.in))
		if got != c.want {
			t.Errorf("AbbreviateMonthly(%s) got %s want %s", c.in, got, c.want)
		}
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "$0"},
		{"999.49", "$999"},
		{"1000", "$1,000"},
		{"1234567.8", "$1,234,568"},
		{"-480300", "-$480,300"},
	}
	for _, c := range cases {
		if got := Format(decimal.RequireFromString(c.in)); got != c.want {
			t.Errorf("Format(%s) got %s want %s", c.in, got, c.want)
		}
	}
}

func TestMinMax(t *testing.T) {
	a, b := NewFromInt(5), NewFromInt(7)
	if !Min(a, b).Equal(a.Decimal) || !Max(a, b).Equal(b.Decimal) {
		t.Fatalf("Min/Max mismatch")
	}
}
