package output

import (
	"github.com/shopspring/decimal"
	"github.com/wealthmap/household-projection/pkg/money"
)

// FormatCurrency formats a decimal as whole US dollars with separators.
func FormatCurrency(amount decimal.Decimal) string { return money.Format(amount) }

// FormatShort formats a decimal in the abbreviated $1.2M / $150K form.
func FormatShort(amount decimal.Decimal) string { return money.Abbreviate(amount) }

// FormatMonthly abbreviates one twelfth of an annual amount.
func FormatMonthly(amount decimal.Decimal) string { return money.AbbreviateMonthly(amount) }

// FormatPercentage formats a percentage value, trimming trailing zeros.
func FormatPercentage(pct decimal.Decimal) string { return pct.Round(2).String() + "%" }

// FormatShare formats a fraction-of-total percentage with one decimal.
func FormatShare(pct decimal.Decimal) string { return pct.StringFixed(1) + "%" }
