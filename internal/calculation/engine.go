package calculation

import (
	"github.com/wealthmap/household-projection/internal/domain"
)

// ProjectionEngine folds the yearly transition over the configured age range.
type ProjectionEngine struct {
	Debug  bool // log every year's balances and ledger
	Logger Logger
}

// NewProjectionEngine creates an engine with a no-op logger.
func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (pe *ProjectionEngine) SetLogger(l Logger) {
	pe.Logger = loggerOrNop(l)
}

// Project runs the full projection for cfg. It is a pure function of cfg:
// identical configurations always produce identical projections.
func (pe *ProjectionEngine) Project(cfg domain.Configuration) domain.Projection {
	log := loggerOrNop(pe.Logger)
	cfg = cfg.Clone()

	years := make([]domain.YearSnapshot, 0, cfg.YearCount())
	balances := domain.StartingBalances(cfg)

	for age := cfg.CurrentAge; age <= cfg.EndAge; age++ {
		snapshot, next := pe.projectYear(balances, age, cfg)
		if !snapshot.Ledger.Total().Equal(snapshot.FreeCash) {
			log.Errorf("age %d: ledger total %s does not reconcile with free cash %s",
				age, snapshot.Ledger.Total().StringFixed(2), snapshot.FreeCash.StringFixed(2))
		}
		years = append(years, snapshot)
		balances = next
	}

	log.Infof("projected %d years from age %d to %d", len(years), cfg.CurrentAge, cfg.EndAge)
	return domain.NewProjection(years)
}

// projectYear is one step of the fold: classify, advance, margin, aggregate.
func (pe *ProjectionEngine) projectYear(prior domain.Balances, age int, cfg domain.Configuration) (domain.YearSnapshot, domain.Balances) {
	bundle := ClassifyPhase(age, cfg)

	next := AdvanceYear(prior, age, bundle, cfg)
	margin := ApplyMargin(prior.MarginInvested, next.Primary, age, cfg)
	next.MarginLoan = margin.Loan
	next.MarginInvested = margin.Invested

	agg := Aggregate(next, bundle, margin, age, cfg)

	if pe.Debug {
		log := loggerOrNop(pe.Logger)
		log.Debugf("age %d (%s): primary=%s land=%s acres=%s margin_loan=%s margin_invested=%s",
			age, bundle.Phase,
			next.Primary.StringFixed(2), next.LandEquity.StringFixed(2), next.Acres.String(),
			margin.Loan.StringFixed(2), margin.Invested.StringFixed(2))
		log.Debugf("age %d: net_worth=%s free_cash=%s passive=%s",
			age, agg.NetWorth.StringFixed(2), agg.FreeCash.StringFixed(2), agg.PassiveIncome.StringFixed(2))
	}

	snapshot := domain.YearSnapshot{
		Age:             age,
		Year:            cfg.CalendarYear(age),
		Phase:           bundle.Phase,
		Balances:        next,
		Margin:          margin,
		EarnerOneIncome: bundle.EarnerOneIncome,
		EarnerTwoIncome: bundle.EarnerTwoIncome,
		BusinessIncome:  bundle.BusinessIncome,
		RentalNet:       agg.Rental.Net,
		NetWorth:        agg.NetWorth,
		FreeCash:        agg.FreeCash,
		Ledger:          agg.Ledger,
		PassiveIncome:   agg.PassiveIncome,
		SafeWithdrawal:  agg.SafeWithdrawal,
	}
	return snapshot, next
}

// Project runs a projection with a default engine.
func Project(cfg domain.Configuration) domain.Projection {
	return NewProjectionEngine().Project(cfg)
}
