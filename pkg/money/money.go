package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	thousand = decimal.NewFromInt(1000)
	million  = decimal.NewFromInt(1000000)
	twelve   = decimal.NewFromInt(12)
)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// New wraps a decimal.Decimal
func New(d decimal.Decimal) Money {
	return Money{d}
}

// NewFromInt creates a Money from whole dollars
func NewFromInt(v int64) Money {
	return Money{decimal.NewFromInt(v)}
}

// NewFromString creates a new Money instance from a string
func NewFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round rounds the money amount to cents
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Annual converts a monthly amount to annual
func (m Money) Annual() Money {
	return Money{m.Decimal.Mul(twelve)}
}

// Monthly converts an annual amount to monthly
func (m Money) Monthly() Money {
	return Money{m.Decimal.Div(twelve)}
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Min returns the minimum of two Money amounts
func Min(a, b Money) Money {
	if a.LessThan(b.Decimal) {
		return a
	}
	return b
}

// Max returns the maximum of two Money amounts
func Max(a, b Money) Money {
	if a.GreaterThan(b.Decimal) {
		return a
	}
	return b
}

// String returns the amount with two decimal places
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount as whole dollars with thousands separators,
// e.g. "$1,234,567".
func (m Money) Format() string {
	whole := m.Decimal.Round(0)
	sign := ""
	if whole.IsNegative() {
		sign = "-"
		whole = whole.Abs()
	}
	return sign + "$" + groupThousands(whole.StringFixed(0))
}

// Abbreviate renders the short dashboard form: "$1.2M" at a million and
// above, "$150K" at a thousand and above, whole dollars below that.
func (m Money) Abbreviate() string {
	abs := m.Decimal.Abs()
	sign := ""
	if m.Decimal.IsNegative() {
		sign = "-"
	}
	switch {
	case abs.GreaterThanOrEqual(million):
		return sign + "$" + abs.Div(million).StringFixed(1) + "M"
	case abs.GreaterThanOrEqual(thousand):
		return sign + "$" + abs.Div(thousand).StringFixed(0) + "K"
	default:
		return sign + "$" + abs.StringFixed(0)
	}
}

// AbbreviateMonthly rounds the annual amount to a whole monthly figure
// and abbreviates it.
func (m Money) AbbreviateMonthly() string {
	return Money{m.Monthly().Decimal.Round(0)}.Abbreviate()
}

// Abbreviate is shorthand for New(d).Abbreviate().
func Abbreviate(d decimal.Decimal) string {
	return New(d).Abbreviate()
}

// AbbreviateMonthly is shorthand for New(d).AbbreviateMonthly().
func AbbreviateMonthly(d decimal.Decimal) string {
	return New(d).AbbreviateMonthly()
}

// Format is shorthand for New(d).Format().
func Format(d decimal.Decimal) string {
	return New(d).Format()
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
