package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/wealthmap/household-projection/internal/domain"
)

func TestApplyMargin(t *testing.T) {
	cfg := domain.DefaultConfiguration()

	tests := []struct {
		name          string
		age           int
		priorInvested string
		primary       string
		wantLoan      string
		wantInvested  string
		wantNet       string
	}{
		{"inactive before start", 35, "0", "1000000", "0", "0", "0"},
		{"first active year", 36, "0", "1000000", "325000", "325000", "17875"},
		{"ceiling rises", 37, "325000", "1200000", "390000", "422500", "24700"},
		{"ceiling falls", 37, "325000", "500000", "162500", "357500", "28437.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyMargin(
				decimal.RequireFromString(tt.priorInvested),
				decimal.RequireFromString(tt.primary),
				tt.age, cfg)

			assert.True(t, got.Loan.Equal(decimal.RequireFromString(tt.wantLoan)), "loan %s", got.Loan)
			assert.True(t, got.Invested.Equal(decimal.RequireFromString(tt.wantInvested)), "invested %s", got.Invested)
			assert.True(t, got.NetArbitrage.Equal(decimal.RequireFromString(tt.wantNet)), "net %s", got.NetArbitrage)
		})
	}
}

func TestApplyMargin_InactiveIgnoresPriorInvested(t *testing.T) {
	cfg := domain.DefaultConfiguration()
	got := ApplyMargin(decimal.NewFromInt(50000), decimal.NewFromInt(1000000), cfg.MarginStartAge-1, cfg)

	assert.True(t, got.Loan.IsZero())
	assert.True(t, got.Invested.IsZero())
	assert.True(t, got.NetArbitrage.IsZero())
}

func TestMarginCeiling(t *testing.T) {
	cfg := domain.DefaultConfiguration()
	assert.True(t, MarginCeiling(decimal.NewFromInt(200000), cfg).Equal(decimal.NewFromInt(65000)))
}

func TestApplyMargin_TotalLoss(t *testing.T) {
	cfg := domain.DefaultConfiguration()
	cfg.PrimaryReturn = decimal.NewFromInt(-100)

	var got domain.MarginPosition
	assert.NotPanics(t, func() {
		got = ApplyMargin(decimal.NewFromInt(325000), decimal.NewFromInt(1000000), 37, cfg)
	})

	// Prior invested already meets the ceiling, so nothing is borrowed on top
	// and the wiped-out balance stays at zero.
	assert.True(t, got.Loan.Equal(decimal.NewFromInt(325000)), "loan %s", got.Loan)
	assert.True(t, got.Invested.IsZero(), "invested %s", got.Invested)
	wantNet := decimal.NewFromInt(325000).Mul(fraction(cfg.MarginRate)).Neg()
	assert.True(t, got.NetArbitrage.Equal(wantNet), "net %s", got.NetArbitrage)

	got = ApplyMargin(decimal.NewFromInt(325000), decimal.Zero, 37, cfg)
	assert.True(t, got.Loan.IsZero())
	assert.True(t, got.Invested.IsZero())
	assert.True(t, got.NetArbitrage.IsZero())
}
