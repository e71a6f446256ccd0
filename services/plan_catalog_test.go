package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceOf(t *testing.T) {
	catalog := NewPlanCatalog()

	weekly, err := catalog.PriceOf(PackageWeekly)
	require.NoError(t, err)
	monthly, err := catalog.PriceOf(PackageMonthly)
	require.NoError(t, err)
	yearly, err := catalog.PriceOf(PackageYearly)
	require.NoError(t, err)

	assert.Less(t, weekly, monthly)
	assert.Less(t, monthly, yearly)

	_, err = catalog.PriceOf("biweekly")
	assert.ErrorIs(t, err, ErrUnknownPlan)

	_, err = catalog.PriceOf("")
	assert.ErrorIs(t, err, ErrUnknownPlan)
}

func TestExpirationFrom(t *testing.T) {
	catalog := NewPlanCatalog()

	tests := []struct {
		name string
		now  time.Time
		pkg  string
		want time.Time
	}{
		{
			"weekly adds seven days",
			time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC),
			PackageWeekly,
			time.Date(2024, time.March, 17, 12, 0, 0, 0, time.UTC),
		},
		{
			"weekly crosses month boundary",
			time.Date(2024, time.March, 28, 8, 30, 0, 0, time.UTC),
			PackageWeekly,
			time.Date(2024, time.April, 4, 8, 30, 0, 0, time.UTC),
		},
		{
			"monthly advances the calendar month",
			time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
			PackageMonthly,
			time.Date(2024, time.April, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			"monthly from Jan 31 clamps to end of February",
			time.Date(2024, time.January, 31, 10, 0, 0, 0, time.UTC),
			PackageMonthly,
			time.Date(2024, time.February, 29, 10, 0, 0, 0, time.UTC),
		},
		{
			"monthly from Jan 31 clamps to Feb 28 outside leap years",
			time.Date(2023, time.January, 31, 10, 0, 0, 0, time.UTC),
			PackageMonthly,
			time.Date(2023, time.February, 28, 10, 0, 0, 0, time.UTC),
		},
		{
			"monthly from December rolls into the next year",
			time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
			PackageMonthly,
			time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			"yearly advances the calendar year",
			time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
			PackageYearly,
			time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			"yearly from Feb 29 clamps to Feb 28",
			time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
			PackageYearly,
			time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := catalog.ExpirationFrom(tt.now, tt.pkg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := catalog.ExpirationFrom(time.Now(), "daily")
	assert.ErrorIs(t, err, ErrUnknownPlan)
}
