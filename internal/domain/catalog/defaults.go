package catalog

import (
	"techflow_billing/internal/domain/money"

	"github.com/shopspring/decimal"
)

var (
	standardMultiplier = decimal.NewFromInt(1)
	sameDayMultiplier  = decimal.RequireFromString("1.1")
)

func tiered(standard, sameDay string) map[UrgencyTier]string {
	return map[UrgencyTier]string{TierStandard: standard, TierSameDay: sameDay}
}

func defaultMultipliers() map[UrgencyTier]decimal.Decimal {
	return map[UrgencyTier]decimal.Decimal{
		TierStandard: standardMultiplier,
		TierSameDay:  sameDayMultiplier,
	}
}

// Default returns the built-in TechFlow service catalog.
func Default() *Catalog {
	entries := []Entry{
		{
			ServiceID: "remote-support",
			Name:      "Remote Support",
			BasePrice: money.FromInt(80),
			FlatRate:  true,
			CompletionWindows: tiered(
				"Connect in minutes - work completed within 1-2 hours",
				"Connect instantly - priority support",
			),
			Recommendations: []Recommendation{
				{ServiceID: "performance-optimization", Reason: "Often needed after remote fixes"},
				{ServiceID: "virus-removal", Reason: "Common remote support request"},
			},
		},
		{
			ServiceID: "diagnostic",
			Name:      "Computer Diagnostic",
			BasePrice: money.FromInt(125),
			CompletionWindows: tiered(
				"2-4 hours for complete system analysis",
				"1-2 hours with priority scheduling",
			),
			Recommendations: []Recommendation{
				{ServiceID: "ssd-upgrade", Reason: "Most common performance improvement"},
				{ServiceID: "performance-optimization", Reason: "Usually follows diagnostic"},
			},
		},
		{
			ServiceID: "virus-removal",
			Name:      "Virus Removal",
			BasePrice: money.FromInt(200),
			CompletionWindows: tiered(
				"4-8 hours for thorough cleaning and protection setup",
				"2-4 hours with expedited service",
			),
			Recommendations: []Recommendation{
				{ServiceID: "performance-optimization", Reason: "Restore optimal performance"},
				{ServiceID: "remote-support", Reason: "Ongoing protection monitoring"},
			},
		},
		{
			ServiceID: "performance-optimization",
			Name:      "Performance Optimization",
			BasePrice: money.FromInt(175),
			CompletionWindows: tiered(
				"3-6 hours for complete system optimization",
				"2-3 hours with priority service",
			),
			Recommendations: []Recommendation{
				{ServiceID: "ssd-upgrade", Reason: "Best performance boost available"},
				{ServiceID: "ram-upgrade", Reason: "Complement optimization efforts"},
			},
		},
		{
			ServiceID: "ssd-upgrade",
			Name:      "SSD Upgrade",
			BasePrice: money.FromInt(225),
			CompletionWindows: tiered(
				"Same day service - 2-4 hours including data migration",
				"1-2 hours with priority installation",
			),
			Recommendations: []Recommendation{
				{ServiceID: "performance-optimization", Reason: "Maximize your new SSD performance"},
				{ServiceID: "ram-upgrade", Reason: "Complete performance package"},
			},
		},
		{
			ServiceID: "ram-upgrade",
			Name:      "RAM Upgrade",
			BasePrice: money.FromInt(150),
			CompletionWindows: tiered(
				"Same day service - 1-2 hours installation",
				"30-60 minutes with priority service",
			),
			Recommendations: []Recommendation{
				{ServiceID: "ssd-upgrade", Reason: "Ultimate performance combination"},
				{ServiceID: "performance-optimization", Reason: "Optimize for new hardware"},
			},
		},
		{
			ServiceID: "network-setup",
			Name:      "Network Setup",
			BasePrice: money.FromInt(300),
			CompletionWindows: tiered(
				"4-6 hours for complete network configuration",
				"2-3 hours with expedited setup",
			),
			Recommendations: []Recommendation{
				{ServiceID: "remote-support", Reason: "Ongoing network maintenance"},
				{ServiceID: "diagnostic", Reason: "Ensure all devices are optimized"},
			},
		},
		{
			ServiceID: "data-recovery",
			Name:      "Data Recovery",
			BasePrice: money.FromInt(450),
			CompletionWindows: tiered(
				"24-72 hours depending on drive condition",
				"4-12 hours for urgent recovery attempts",
			),
			Recommendations: []Recommendation{
				{ServiceID: "ssd-upgrade", Reason: "Prevent future data loss"},
				{ServiceID: "diagnostic", Reason: "Identify what caused the failure"},
			},
		},
		{
			ServiceID: "custom-build",
			Name:      "Custom PC Build",
			BasePrice: money.FromInt(450),
			CompletionWindows: tiered(
				"2-3 days for complete build and testing",
				"Same day build available for standard configurations",
			),
			Recommendations: []Recommendation{
				{ServiceID: "performance-optimization", Reason: "Optimize your new system"},
				{ServiceID: "network-setup", Reason: "Professional network integration"},
			},
		},
	}
	for i := range entries {
		entries[i].Multipliers = defaultMultipliers()
	}

	rates := []HourlyRate{
		{ServiceTypeID: "remote", Label: "Remote Support", Rate: money.FromInt(80)},
		{ServiceTypeID: "onsite", Label: "On-Site Service", Rate: money.FromInt(100)},
		{ServiceTypeID: "emergency", Label: "Emergency Service", Rate: money.FromInt(110)},
	}

	suggestions := []Suggestion{
		{Description: "PC Repair & Diagnostics", DefaultHours: decimal.NewFromInt(2)},
		{Description: "Virus & Malware Removal", DefaultHours: decimal.RequireFromString("1.5")},
		{Description: "Performance Optimization", DefaultHours: decimal.NewFromInt(1)},
		{Description: "Hardware Installation", DefaultHours: decimal.RequireFromString("1.5")},
		{Description: "Network Setup & Configuration", DefaultHours: decimal.RequireFromString("2.5")},
		{Description: "Data Recovery", DefaultHours: decimal.NewFromInt(3)},
		{Description: "Software Installation & Setup", DefaultHours: decimal.NewFromInt(1)},
		{Description: "System Maintenance", DefaultHours: decimal.RequireFromString("1.5")},
		{Description: "Custom PC Build", DefaultHours: decimal.NewFromInt(4)},
		{Description: "Remote Support Session", DefaultHours: decimal.NewFromInt(1)},
	}

	c, err := New(entries, rates, suggestions, money.FromInt(100))
	if err != nil {
		panic("catalog: invalid built-in data: " + err.Error())
	}
	return c
}
