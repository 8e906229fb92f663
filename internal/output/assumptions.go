package output

import (
	"fmt"
	"strings"

	"github.com/wealthmap/household-projection/internal/domain"
)

// GenerateAssumptions creates the assumptions list rendered in detailed
// outputs from the actual configuration values.
func GenerateAssumptions(cfg domain.Configuration) []string {
	lines := []string{
		fmt.Sprintf("Projection: age %d to %d (%d-%d)", cfg.CurrentAge, cfg.EndAge,
			cfg.CalendarYear(cfg.CurrentAge), cfg.CalendarYear(cfg.EndAge)),
		fmt.Sprintf("Primary holding return: %s annually", FormatPercentage(cfg.PrimaryReturn)),
		fmt.Sprintf("Retirement account return: %s annually", FormatPercentage(cfg.RetirementReturn)),
		fmt.Sprintf("Secondary investments return: %s annually", FormatPercentage(cfg.SecondaryReturn)),
		fmt.Sprintf("Home / new home / land appreciation: %s / %s / %s",
			FormatPercentage(cfg.HomeAppreciation), FormatPercentage(cfg.NewHomeAppreciation), FormatPercentage(cfg.LandAppreciation)),
		fmt.Sprintf("Peak earnings window: age %d to %d", cfg.JamieStartAge, cfg.JamieEndAge),
		fmt.Sprintf("Move out and rent from age %d; mortgage paid off at %d", cfg.MoveOutAge, cfg.MortgagePaidOffAge),
		fmt.Sprintf("Rent %s in year one, growing %s annually, %s maintenance",
			FormatCurrency(cfg.RentYearOne), FormatPercentage(cfg.RentGrowth), FormatPercentage(cfg.MaintenanceRate)),
		fmt.Sprintf("Margin loan from age %d at %s of primary, %s interest",
			cfg.MarginStartAge, FormatPercentage(cfg.MarginRatio), FormatPercentage(cfg.MarginRate)),
		fmt.Sprintf("Safe withdrawal rate: %s", FormatPercentage(cfg.SafeWithdrawalRate)),
	}
	if len(cfg.LandPurchases) > 0 {
		parts := make([]string, 0, len(cfg.LandPurchases))
		for _, p := range cfg.LandPurchases {
			parts = append(parts, fmt.Sprintf("%s acres at %d", p.Acres.String(), p.Age))
		}
		lines = append(lines, "Land purchases: "+strings.Join(parts, ", "))
	}
	return lines
}

// DefaultAssumptions lists the assumptions of the default configuration.
var DefaultAssumptions = GenerateAssumptions(domain.DefaultConfiguration())
