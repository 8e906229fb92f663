package domain

import (
	"github.com/shopspring/decimal"
	"github.com/wealthmap/household-projection/pkg/dateutil"
)

// Configuration holds every assumption the projection engine reads.
// Rates are percentages (10 means 10%) and are divided by 100 where used.
type Configuration struct {
	// Timeline
	CurrentAge int `yaml:"current_age" json:"current_age"`
	EndAge     int `yaml:"end_age" json:"end_age"`
	StartYear  int `yaml:"start_year" json:"start_year"`

	// Starting balances
	PrimaryStart       decimal.Decimal `yaml:"primary_start" json:"primary_start"`
	RetirementStart    decimal.Decimal `yaml:"retirement_start" json:"retirement_start"`
	IRAStart           decimal.Decimal `yaml:"ira_start" json:"ira_start"`
	HomeEquityStart    decimal.Decimal `yaml:"home_equity_start" json:"home_equity_start"`
	NewHomeEquityStart decimal.Decimal `yaml:"new_home_equity_start" json:"new_home_equity_start"`
	SecondaryStart     decimal.Decimal `yaml:"secondary_start" json:"secondary_start"`
	VentureStart       decimal.Decimal `yaml:"venture_start" json:"venture_start"`
	InitialAcres       decimal.Decimal `yaml:"initial_acres" json:"initial_acres"`
	LandPricePerAcre   decimal.Decimal `yaml:"land_price_per_acre" json:"land_price_per_acre"`

	// Returns and appreciation (percent per year)
	PrimaryReturn       decimal.Decimal `yaml:"primary_return" json:"primary_return"`
	RetirementReturn    decimal.Decimal `yaml:"retirement_return" json:"retirement_return"`
	SecondaryReturn     decimal.Decimal `yaml:"secondary_return" json:"secondary_return"`
	VentureReturn       decimal.Decimal `yaml:"venture_return" json:"venture_return"`
	HomeAppreciation    decimal.Decimal `yaml:"home_appreciation" json:"home_appreciation"`
	NewHomeAppreciation decimal.Decimal `yaml:"new_home_appreciation" json:"new_home_appreciation"`
	LandAppreciation    decimal.Decimal `yaml:"land_appreciation" json:"land_appreciation"`

	// Milestone ages
	JamieStartAge      int `yaml:"jamie_start_age" json:"jamie_start_age"`
	JamieEndAge        int `yaml:"jamie_end_age" json:"jamie_end_age"`
	MoveOutAge         int `yaml:"move_out_age" json:"move_out_age"`
	MortgagePaidOffAge int `yaml:"mortgage_paid_off_age" json:"mortgage_paid_off_age"`
	MarginStartAge     int `yaml:"margin_start_age" json:"margin_start_age"`

	// Per-phase income and contribution figures
	Current    PhaseIncome `yaml:"current" json:"current"`
	Transition PhaseIncome `yaml:"transition" json:"transition"`
	Gap        PhaseIncome `yaml:"gap" json:"gap"`
	Peak       PhaseIncome `yaml:"peak" json:"peak"`
	Coast      CoastIncome `yaml:"coast" json:"coast"`

	SecondaryContribution  decimal.Decimal `yaml:"secondary_contribution" json:"secondary_contribution"`
	RetirementContribution decimal.Decimal `yaml:"retirement_contribution" json:"retirement_contribution"`
	LivingExpenses         decimal.Decimal `yaml:"living_expenses" json:"living_expenses"`

	// Staff / operations expense
	StaffExpenseBase decimal.Decimal `yaml:"staff_expense_base" json:"staff_expense_base"`
	StaffExpenseStep decimal.Decimal `yaml:"staff_expense_step" json:"staff_expense_step"`
	StaffExpenseMax  decimal.Decimal `yaml:"staff_expense_max" json:"staff_expense_max"`

	// Business income
	BusinessIncomeStep      decimal.Decimal `yaml:"business_income_step" json:"business_income_step"`
	BusinessIncomeCoastBase decimal.Decimal `yaml:"business_income_coast_base" json:"business_income_coast_base"`
	BusinessIncomeCoastStep decimal.Decimal `yaml:"business_income_coast_step" json:"business_income_coast_step"`

	// Rental economics
	RentYearOne          decimal.Decimal `yaml:"rent_year_one" json:"rent_year_one"`
	RentGrowth           decimal.Decimal `yaml:"rent_growth" json:"rent_growth"`
	MortgagePayment      decimal.Decimal `yaml:"mortgage_payment" json:"mortgage_payment"`
	MaintenanceRate      decimal.Decimal `yaml:"maintenance_rate" json:"maintenance_rate"`
	HomePrincipalPaydown decimal.Decimal `yaml:"home_principal_paydown" json:"home_principal_paydown"`
	NewHomePrincipal     decimal.Decimal `yaml:"new_home_principal" json:"new_home_principal"`

	// Land acquisitions
	LandPurchases []LandPurchase `yaml:"land_purchases" json:"land_purchases"`

	// Margin loan
	MarginRatio decimal.Decimal `yaml:"margin_ratio" json:"margin_ratio"`
	MarginRate  decimal.Decimal `yaml:"margin_rate" json:"margin_rate"`

	SafeWithdrawalRate decimal.Decimal `yaml:"safe_withdrawal_rate" json:"safe_withdrawal_rate"`

	// Heirs is the divisor used for the legacy split breakdown.
	Heirs int `yaml:"heirs" json:"heirs"`
}

// PhaseIncome is the configured income and contribution set for one phase.
type PhaseIncome struct {
	EarnerOneIncome     decimal.Decimal `yaml:"earner_one_income" json:"earner_one_income"`
	EarnerTwoIncome     decimal.Decimal `yaml:"earner_two_income" json:"earner_two_income"`
	PrimaryContribution decimal.Decimal `yaml:"primary_contribution" json:"primary_contribution"`
	VentureContribution decimal.Decimal `yaml:"venture_contribution" json:"venture_contribution"`
}

// CoastIncome is the coast phase's income set. Coast years make no venture
// contribution, so there is no knob for one.
type CoastIncome struct {
	EarnerOneIncome     decimal.Decimal `yaml:"earner_one_income" json:"earner_one_income"`
	EarnerTwoIncome     decimal.Decimal `yaml:"earner_two_income" json:"earner_two_income"`
	PrimaryContribution decimal.Decimal `yaml:"primary_contribution" json:"primary_contribution"`
}

// LandPurchase is a one-time acquisition of acreage at a given age.
type LandPurchase struct {
	Age   int             `yaml:"age" json:"age"`
	Acres decimal.Decimal `yaml:"acres" json:"acres"`
}

// DefaultConfiguration returns the baseline household assumptions.
func DefaultConfiguration() Configuration {
	d := decimal.NewFromInt
	return Configuration{
		CurrentAge: 31,
		EndAge:     85,
		StartYear:  2026,

		PrimaryStart:       d(100000),
		RetirementStart:    d(15000),
		IRAStart:           d(5000),
		HomeEquityStart:    d(30000),
		NewHomeEquityStart: decimal.Zero,
		SecondaryStart:     decimal.Zero,
		VentureStart:       decimal.Zero,
		InitialAcres:       d(20),
		LandPricePerAcre:   d(6000),

		PrimaryReturn:       d(10),
		RetirementReturn:    d(8),
		SecondaryReturn:     d(10),
		VentureReturn:       d(1),
		HomeAppreciation:    d(6),
		NewHomeAppreciation: d(5),
		LandAppreciation:    d(4),

		JamieStartAge:      36,
		JamieEndAge:        45,
		MoveOutAge:         34,
		MortgagePaidOffAge: 64,
		MarginStartAge:     36,

		Current: PhaseIncome{
			EarnerOneIncome:     d(200000),
			EarnerTwoIncome:     d(100000),
			PrimaryContribution: d(180000),
			VentureContribution: decimal.Zero,
		},
		Transition: PhaseIncome{
			EarnerOneIncome:     d(150000),
			EarnerTwoIncome:     d(100000),
			PrimaryContribution: d(90000),
			VentureContribution: d(50000),
		},
		Gap: PhaseIncome{
			EarnerOneIncome:     d(50000),
			EarnerTwoIncome:     decimal.Zero,
			PrimaryContribution: decimal.Zero,
			VentureContribution: d(50000),
		},
		Peak: PhaseIncome{
			EarnerOneIncome:     d(50000),
			EarnerTwoIncome:     d(300000),
			PrimaryContribution: d(100000),
			VentureContribution: d(50000),
		},
		Coast: CoastIncome{
			EarnerOneIncome:     d(50000),
			EarnerTwoIncome:     decimal.Zero,
			PrimaryContribution: decimal.Zero,
		},

		SecondaryContribution:  d(70000),
		RetirementContribution: d(12000),
		LivingExpenses:         d(60000),

		StaffExpenseBase: d(50000),
		StaffExpenseStep: d(10000),
		StaffExpenseMax:  d(100000),

		BusinessIncomeStep:      d(15000),
		BusinessIncomeCoastBase: d(150000),
		BusinessIncomeCoastStep: d(5000),

		RentYearOne:          d(72000),
		RentGrowth:           decimal.NewFromFloat(2.5),
		MortgagePayment:      d(67200),
		MaintenanceRate:      d(10),
		HomePrincipalPaydown: d(18000),
		NewHomePrincipal:     d(15000),

		LandPurchases: []LandPurchase{
			{Age: 34, Acres: d(15)},
			{Age: 40, Acres: d(100)},
		},

		MarginRatio: decimal.NewFromFloat(32.5),
		MarginRate:  decimal.NewFromFloat(4.5),

		SafeWithdrawalRate: d(4),
		Heirs:              5,
	}
}

// Clone returns a deep copy so callers can derive a new configuration
// without touching the original's land purchase slice.
func (c Configuration) Clone() Configuration {
	out := c
	if c.LandPurchases != nil {
		out.LandPurchases = append([]LandPurchase(nil), c.LandPurchases...)
	}
	return out
}

// YearCount returns the number of projected years, zero for an inverted range.
func (c Configuration) YearCount() int {
	return dateutil.SpanLength(c.CurrentAge, c.EndAge)
}

// CalendarYear maps an age onto the calendar.
func (c Configuration) CalendarYear(age int) int {
	return dateutil.CalendarYear(c.StartYear, c.CurrentAge, age)
}
