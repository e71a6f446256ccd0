package services

import (
	"errors"
	"time"
)

var ErrUnknownPlan = errors.New("unknown subscription package")

const (
	PackageWeekly  = "weekly"
	PackageMonthly = "monthly"
	PackageYearly  = "yearly"
)

// PlanCatalog maps the three subscription packages to their price and renewal
// rule. Prices are VND, the currency the MoMo gateway settles in.
type PlanCatalog struct {
	prices map[string]int64
}

func NewPlanCatalog() *PlanCatalog {
	return &PlanCatalog{
		prices: map[string]int64{
			PackageWeekly:  50000,
			PackageMonthly: 150000,
			PackageYearly:  1500000,
		},
	}
}

func (c *PlanCatalog) PriceOf(pkg string) (int64, error) {
	price, ok := c.prices[pkg]
	if !ok {
		return 0, ErrUnknownPlan
	}
	return price, nil
}

// ExpirationFrom computes the subscription expiration for a package bought at
// now. Monthly and yearly renewals are calendar-aware rather than fixed 30 or
// 365 day windows; when the anchor day does not exist in the target month the
// date clamps to that month's last day (Jan 31 + 1 month = Feb 28/29).
func (c *PlanCatalog) ExpirationFrom(now time.Time, pkg string) (time.Time, error) {
	switch pkg {
	case PackageWeekly:
		return now.AddDate(0, 0, 7), nil
	case PackageMonthly:
		return addCalendarMonths(now, 1), nil
	case PackageYearly:
		return addCalendarMonths(now, 12), nil
	default:
		return time.Time{}, ErrUnknownPlan
	}
}

func addCalendarMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()

	// Normalize the target month first, then clamp the day. A bare AddDate
	// would roll Jan 31 + 1 month over into March.
	firstOfTarget := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	if last := daysInMonth(firstOfTarget.Year(), firstOfTarget.Month()); day > last {
		day = last
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, hour, min, sec, t.Nanosecond(), t.Location())
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
