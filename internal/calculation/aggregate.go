package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/wealthmap/household-projection/internal/domain"
	"github.com/wealthmap/household-projection/pkg/dateutil"
)

// Rental describes the rented-out home's economics for one year.
type Rental struct {
	GrossRent   decimal.Decimal `json:"gross_rent"`
	Mortgage    decimal.Decimal `json:"mortgage"`
	Maintenance decimal.Decimal `json:"maintenance"`
	Net         decimal.Decimal `json:"net"`
}

// Aggregation is the derived figures for one year.
type Aggregation struct {
	NetWorth       decimal.Decimal
	FreeCash       decimal.Decimal
	Ledger         domain.CashFlowLedger
	Rental         Rental
	PassiveIncome  decimal.Decimal
	SafeWithdrawal decimal.Decimal
}

// RentalForAge computes rental economics. Rent starts at move-out and grows
// geometrically from the year-one figure; the mortgage stops at the payoff age.
func RentalForAge(age int, cfg domain.Configuration) Rental {
	if age < cfg.MoveOutAge {
		return Rental{
			GrossRent:   decimal.Zero,
			Mortgage:    decimal.Zero,
			Maintenance: decimal.Zero,
			Net:         decimal.Zero,
		}
	}
	gross := cfg.RentYearOne.Mul(powInt(growthFactor(cfg.RentGrowth), dateutil.YearsFrom(cfg.MoveOutAge, age)))
	mortgage := decimal.Zero
	if age < cfg.MortgagePaidOffAge {
		mortgage = cfg.MortgagePayment
	}
	maintenance := gross.Mul(fraction(cfg.MaintenanceRate))
	return Rental{
		GrossRent:   gross,
		Mortgage:    mortgage,
		Maintenance: maintenance,
		Net:         gross.Sub(mortgage).Sub(maintenance),
	}
}

// Aggregate derives net worth, the reconciled free-cash ledger and passive
// income for a year.
func Aggregate(balances domain.Balances, bundle domain.PhaseBundle, margin domain.MarginPosition, age int, cfg domain.Configuration) Aggregation {
	rental := RentalForAge(age, cfg)

	netWorth := balances.HoldingsTotal().Add(margin.Invested).Sub(margin.Loan)

	rentalIncome := decimal.Max(decimal.Zero, rental.Net)
	rentalShortfall := decimal.Min(decimal.Zero, rental.Net).Abs()

	totalIn := bundle.EarnerOneIncome.
		Add(bundle.EarnerTwoIncome).
		Add(rentalIncome).
		Add(margin.NetArbitrage).
		Add(bundle.BusinessIncome)
	totalOut := bundle.LivingExpenses.
		Add(bundle.StaffExpense).
		Add(bundle.PrimaryContribution).
		Add(bundle.SecondaryContribution).
		Add(bundle.VentureContribution).
		Add(rentalShortfall)
	freeCash := totalIn.Sub(totalOut)

	ledger := domain.NewCashFlowLedger(domain.CashFlowTerms{
		EarnerOneIncome:       bundle.EarnerOneIncome,
		EarnerTwoIncome:       bundle.EarnerTwoIncome,
		RentalIncome:          rentalIncome,
		MarginArbitrage:       margin.NetArbitrage,
		BusinessIncome:        bundle.BusinessIncome,
		LivingExpenses:        bundle.LivingExpenses.Neg(),
		StaffExpense:          bundle.StaffExpense.Neg(),
		PrimaryContribution:   bundle.PrimaryContribution.Neg(),
		SecondaryContribution: bundle.SecondaryContribution.Neg(),
		VentureContribution:   bundle.VentureContribution.Neg(),
		RentalShortfall:       rentalShortfall.Neg(),
	})

	safeWithdrawal := netWorth.Mul(fraction(cfg.SafeWithdrawalRate))
	passive := rental.Net.Add(bundle.BusinessIncome).Add(safeWithdrawal)

	return Aggregation{
		NetWorth:       netWorth,
		FreeCash:       freeCash,
		Ledger:         ledger,
		Rental:         rental,
		PassiveIncome:  passive,
		SafeWithdrawal: safeWithdrawal,
	}
}
