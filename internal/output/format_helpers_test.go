package output

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatCurrency(t *testing.T) {
	v := decimal.NewFromFloat(1234.567)
	got := FormatCurrency(v)
	want := "$1,235"
	if got != want {
		t.Errorf("FormatCurrency(%v) = %q, want %q", v, got, want)
	}
}

func TestFormatPercentage(t *testing.T) {
	cases := map[string]string{
		"12.3456": "12.35%",
		"10":      "10%",
		"2.5":     "2.5%",
		"32.50":   "32.5%",
	}
	for in, want := range cases {
		if got := FormatPercentage(decimal.RequireFromString(in)); got != want {
			t.Errorf("FormatPercentage(%s) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatShare(t *testing.T) {
	if got := FormatShare(decimal.RequireFromString("74.96")); got != "75.0%" {
		t.Errorf("FormatShare = %q", got)
	}
}

func TestFormatShortNegative(t *testing.T) {
	if got := FormatShort(decimal.NewFromInt(-2400)); got != "-$2K" {
		t.Errorf("FormatShort(-2400) = %q", got)
	}
}
