package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Phase identifies one of the five mutually exclusive income regimes.
type Phase int

const (
	PhaseCurrent Phase = iota + 1
	PhaseTransition
	PhaseGap
	PhasePeak
	PhaseCoast
)

var phaseNames = map[Phase]string{
	PhaseCurrent:    "current",
	PhaseTransition: "transition",
	PhaseGap:        "gap",
	PhasePeak:       "peak",
	PhaseCoast:      "coast",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// MarshalText lets phases render by name in JSON, YAML and CSV output.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText parses a phase name.
func (p *Phase) UnmarshalText(text []byte) error {
	for phase, name := range phaseNames {
		if name == string(text) {
			*p = phase
			return nil
		}
	}
	return fmt.Errorf("unknown phase %q", text)
}

// AllPhases lists the phases in guard order.
func AllPhases() []Phase {
	return []Phase{PhaseCurrent, PhaseTransition, PhaseGap, PhasePeak, PhaseCoast}
}

// PhaseBundle is the resolved set of income, contribution and expense
// figures active for a single year. Every field is set by the phase that
// produced it.
type PhaseBundle struct {
	Phase Phase `json:"phase"`

	EarnerOneIncome decimal.Decimal `json:"earner_one_income"`
	EarnerTwoIncome decimal.Decimal `json:"earner_two_income"`
	BusinessIncome  decimal.Decimal `json:"business_income"`

	PrimaryContribution    decimal.Decimal `json:"primary_contribution"`
	RetirementContribution decimal.Decimal `json:"retirement_contribution"`
	SecondaryContribution  decimal.Decimal `json:"secondary_contribution"`
	VentureContribution    decimal.Decimal `json:"venture_contribution"`

	LivingExpenses decimal.Decimal `json:"living_expenses"`
	StaffExpense   decimal.Decimal `json:"staff_expense"`
}

// Equal compares two bundles field by field using decimal equality.
func (b PhaseBundle) Equal(other PhaseBundle) bool {
	return b.Phase == other.Phase &&
		b.EarnerOneIncome.Equal(other.EarnerOneIncome) &&
		b.EarnerTwoIncome.Equal(other.EarnerTwoIncome) &&
		b.BusinessIncome.Equal(other.BusinessIncome) &&
		b.PrimaryContribution.Equal(other.PrimaryContribution) &&
		b.RetirementContribution.Equal(other.RetirementContribution) &&
		b.SecondaryContribution.Equal(other.SecondaryContribution) &&
		b.VentureContribution.Equal(other.VentureContribution) &&
		b.LivingExpenses.Equal(other.LivingExpenses) &&
		b.StaffExpense.Equal(other.StaffExpense)
}

// TotalIncome is the labor and business income for the year.
func (b PhaseBundle) TotalIncome() decimal.Decimal {
	return b.EarnerOneIncome.Add(b.EarnerTwoIncome).Add(b.BusinessIncome)
}
