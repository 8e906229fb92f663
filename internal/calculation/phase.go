package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/wealthmap/household-projection/internal/domain"
)

// ClassifyPhase resolves the income regime active at age. Guards are
// evaluated top to bottom and the first match wins, so overlapping ranges
// in an edited configuration never activate two phases.
func ClassifyPhase(age int, cfg domain.Configuration) domain.PhaseBundle {
	switch {
	case age <= cfg.CurrentAge+1:
		return currentPhase(cfg)
	case age < cfg.JamieStartAge-1:
		return transitionPhase(cfg)
	case age == cfg.JamieStartAge-1:
		return gapPhase(cfg)
	case age >= cfg.JamieStartAge && age <= cfg.JamieEndAge:
		return peakPhase(age, cfg)
	default:
		return coastPhase(age, cfg)
	}
}

func currentPhase(cfg domain.Configuration) domain.PhaseBundle {
	return domain.PhaseBundle{
		Phase:                  domain.PhaseCurrent,
		EarnerOneIncome:        cfg.Current.EarnerOneIncome,
		EarnerTwoIncome:        cfg.Current.EarnerTwoIncome,
		BusinessIncome:         decimal.Zero,
		PrimaryContribution:    cfg.Current.PrimaryContribution,
		RetirementContribution: cfg.RetirementContribution,
		SecondaryContribution:  decimal.Zero,
		VentureContribution:    cfg.Current.VentureContribution,
		LivingExpenses:         cfg.LivingExpenses,
		StaffExpense:           decimal.Zero,
	}
}

func transitionPhase(cfg domain.Configuration) domain.PhaseBundle {
	return domain.PhaseBundle{
		Phase:                  domain.PhaseTransition,
		EarnerOneIncome:        cfg.Transition.EarnerOneIncome,
		EarnerTwoIncome:        cfg.Transition.EarnerTwoIncome,
		BusinessIncome:         decimal.Zero,
		PrimaryContribution:    cfg.Transition.PrimaryContribution,
		RetirementContribution: cfg.RetirementContribution,
		SecondaryContribution:  decimal.Zero,
		VentureContribution:    cfg.Transition.VentureContribution,
		LivingExpenses:         cfg.LivingExpenses,
		StaffExpense:           cfg.StaffExpenseBase,
	}
}

func gapPhase(cfg domain.Configuration) domain.PhaseBundle {
	return domain.PhaseBundle{
		Phase:                  domain.PhaseGap,
		EarnerOneIncome:        cfg.Gap.EarnerOneIncome,
		EarnerTwoIncome:        cfg.Gap.EarnerTwoIncome,
		BusinessIncome:         decimal.Zero,
		PrimaryContribution:    cfg.Gap.PrimaryContribution,
		RetirementContribution: cfg.RetirementContribution,
		SecondaryContribution:  decimal.Zero,
		VentureContribution:    cfg.Gap.VentureContribution,
		LivingExpenses:         cfg.LivingExpenses,
		StaffExpense:           cfg.StaffExpenseBase,
	}
}

func peakPhase(age int, cfg domain.Configuration) domain.PhaseBundle {
	years := decimal.NewFromInt(int64(age - cfg.JamieStartAge))

	ramp := decimal.Min(years.Mul(cfg.StaffExpenseStep), cfg.StaffExpenseMax.Sub(cfg.StaffExpenseBase))
	business := decimal.Max(decimal.Zero, years.Mul(cfg.BusinessIncomeStep))

	return domain.PhaseBundle{
		Phase:                  domain.PhasePeak,
		EarnerOneIncome:        cfg.Peak.EarnerOneIncome,
		EarnerTwoIncome:        cfg.Peak.EarnerTwoIncome,
		BusinessIncome:         business,
		PrimaryContribution:    cfg.Peak.PrimaryContribution,
		RetirementContribution: cfg.RetirementContribution,
		SecondaryContribution:  cfg.SecondaryContribution,
		VentureContribution:    cfg.Peak.VentureContribution,
		LivingExpenses:         cfg.LivingExpenses,
		StaffExpense:           cfg.StaffExpenseBase.Add(ramp),
	}
}

func coastPhase(age int, cfg domain.Configuration) domain.PhaseBundle {
	years := decimal.NewFromInt(int64(age - cfg.JamieEndAge))
	return domain.PhaseBundle{
		Phase:                  domain.PhaseCoast,
		EarnerOneIncome:        cfg.Coast.EarnerOneIncome,
		EarnerTwoIncome:        cfg.Coast.EarnerTwoIncome,
		BusinessIncome:         cfg.BusinessIncomeCoastBase.Add(years.Mul(cfg.BusinessIncomeCoastStep)),
		PrimaryContribution:    cfg.Coast.PrimaryContribution,
		RetirementContribution: decimal.Zero,
		SecondaryContribution:  decimal.Zero,
		VentureContribution:    decimal.Zero,
		LivingExpenses:         cfg.LivingExpenses,
		StaffExpense:           cfg.StaffExpenseMax,
	}
}
