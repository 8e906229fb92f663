package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/wealthmap/household-projection/internal/domain"
)

// ApplyMargin runs the margin-loan model for one year.
//
// The loan is a mark-to-market credit limit: it is reset to
// primary*ratio every active year rather than accumulated. The invested
// balance grows at the primary return and is topped up by the borrowing
// needed to reach the new ceiling. Order of operations matters:
// reset ceiling, grow prior, back-solve increment, add. The back-solved
// pre-growth balance is priorInvested itself, so a -100% return needs no
// division.
func ApplyMargin(priorInvested, primaryValue decimal.Decimal, age int, cfg domain.Configuration) domain.MarginPosition {
	if age < cfg.MarginStartAge {
		loan, invested := decimal.Zero, decimal.Zero
		return domain.MarginPosition{
			Loan:         loan,
			Invested:     invested,
			NetArbitrage: marginArbitrage(loan, invested, cfg),
		}
	}

	loan := MarginCeiling(primaryValue, cfg)

	invested := priorInvested.Mul(growthFactor(cfg.PrimaryReturn))
	increment := decimal.Max(decimal.Zero, loan.Sub(priorInvested))
	invested = invested.Add(increment)

	return domain.MarginPosition{
		Loan:         loan,
		Invested:     invested,
		NetArbitrage: marginArbitrage(loan, invested, cfg),
	}
}

// MarginCeiling is the allowable loan for a primary holding value.
func MarginCeiling(primaryValue decimal.Decimal, cfg domain.Configuration) decimal.Decimal {
	return primaryValue.Mul(fraction(cfg.MarginRatio))
}

// marginArbitrage is the gain on the invested balance less interest on the
// full loan.
func marginArbitrage(loan, invested decimal.Decimal, cfg domain.Configuration) decimal.Decimal {
	gain := invested.Mul(fraction(cfg.PrimaryReturn))
	interest := loan.Mul(fraction(cfg.MarginRate))
	return gain.Sub(interest)
}
