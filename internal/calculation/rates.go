package calculation

import "github.com/shopspring/decimal"

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// fraction converts a percentage (10 means 10%) to a fraction.
func fraction(pct decimal.Decimal) decimal.Decimal {
	return pct.Div(hundred)
}

// growthFactor returns 1 + pct/100.
func growthFactor(pct decimal.Decimal) decimal.Decimal {
	return one.Add(fraction(pct))
}

// compound applies prior*(1+pct/100) + contribution.
func compound(prior, pct, contribution decimal.Decimal) decimal.Decimal {
	return prior.Mul(growthFactor(pct)).Add(contribution)
}

// powInt raises base to an integer exponent by repeated multiplication,
// dividing for negative exponents. A zero base to a negative power is zero.
func powInt(base decimal.Decimal, exp int) decimal.Decimal {
	result := one
	n := exp
	if n < 0 {
		n = -n
	}
	for i := 0; i < n; i++ {
		result = result.Mul(base)
	}
	if exp < 0 {
		if result.IsZero() {
			return decimal.Zero
		}
		return one.Div(result)
	}
	return result
}
