package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/wealthmap/household-projection/internal/domain"
	"github.com/wealthmap/household-projection/pkg/dateutil"
)

// AdvanceYear computes end-of-year balances for age from the prior year's
// balances and the phase bundle. The margin pair is carried through
// unchanged; ApplyMargin owns it.
func AdvanceYear(prior domain.Balances, age int, bundle domain.PhaseBundle, cfg domain.Configuration) domain.Balances {
	next := prior

	next.Primary = compound(prior.Primary, cfg.PrimaryReturn, bundle.PrimaryContribution)
	next.Retirement = compound(prior.Retirement, cfg.RetirementReturn, bundle.RetirementContribution)
	// IRA coasts at the primary holding's return.
	next.IRA = compound(prior.IRA, cfg.PrimaryReturn, decimal.Zero)

	next.HomeEquity = advanceHomeEquity(prior.HomeEquity, age, cfg)
	next.NewHomeEquity = advanceNewHomeEquity(prior.NewHomeEquity, age, cfg)
	next.LandEquity, next.Acres = advanceLand(prior.LandEquity, prior.Acres, age, cfg)
	next.Secondary = advanceSecondary(prior.Secondary, age, bundle, cfg)
	next.Venture = advanceVenture(prior.Venture, age, bundle, cfg)

	return next
}

func advanceHomeEquity(prior decimal.Decimal, age int, cfg domain.Configuration) decimal.Decimal {
	if age >= cfg.MoveOutAge {
		return compound(prior, cfg.HomeAppreciation, cfg.HomePrincipalPaydown)
	}
	return compound(prior, cfg.HomeAppreciation, decimal.Zero)
}

// advanceNewHomeEquity adds the principal payment before growth, unlike every
// other holding.
func advanceNewHomeEquity(prior decimal.Decimal, age int, cfg domain.Configuration) decimal.Decimal {
	if age < cfg.MoveOutAge {
		return decimal.Zero
	}
	return prior.Add(cfg.NewHomePrincipal).Mul(growthFactor(cfg.NewHomeAppreciation))
}

func advanceLand(prior, acres decimal.Decimal, age int, cfg domain.Configuration) (decimal.Decimal, decimal.Decimal) {
	equity := compound(prior, cfg.LandAppreciation, decimal.Zero)
	for _, purchase := range cfg.LandPurchases {
		if purchase.Age != age {
			continue
		}
		equity = equity.Add(LandAcquisitionValue(purchase, cfg))
		acres = acres.Add(purchase.Acres)
	}
	return equity, acres
}

// LandAcquisitionValue back-values a purchase as though the acreage had been
// appreciating since the first projected year.
func LandAcquisitionValue(purchase domain.LandPurchase, cfg domain.Configuration) decimal.Decimal {
	years := dateutil.YearsFrom(cfg.CurrentAge, purchase.Age)
	return purchase.Acres.
		Mul(cfg.LandPricePerAcre).
		Mul(powInt(growthFactor(cfg.LandAppreciation), years))
}

// advanceSecondary contributes only inside the peak window. Before and after
// the window the account compounds with no contribution.
func advanceSecondary(prior decimal.Decimal, age int, bundle domain.PhaseBundle, cfg domain.Configuration) decimal.Decimal {
	switch {
	case age < cfg.JamieStartAge:
		return compound(prior, cfg.SecondaryReturn, decimal.Zero)
	case age > cfg.JamieEndAge:
		return compound(prior, cfg.SecondaryReturn, decimal.Zero)
	default:
		return compound(prior, cfg.SecondaryReturn, bundle.SecondaryContribution)
	}
}

func advanceVenture(prior decimal.Decimal, age int, bundle domain.PhaseBundle, cfg domain.Configuration) decimal.Decimal {
	if age <= cfg.JamieEndAge {
		return compound(prior, cfg.VentureReturn, bundle.VentureContribution)
	}
	return compound(prior, cfg.VentureReturn, decimal.Zero)
}
