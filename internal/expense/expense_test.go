package expense

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mrivera-hn/subtrack/internal/models"
)

func TestMonthlyTotal_TableTests(t *testing.T) {
	tests := []struct {
		name    string
		subs    []models.Subscription
		usdRate float64
		want    float64
	}{
		{
			name:    "empty collection",
			subs:    nil,
			usdRate: 26,
			want:    0,
		},
		{
			name: "monthly HNL passes through",
			subs: []models.Subscription{
				{Price: 100, Currency: models.CurrencyHNL, Frequency: models.FrequencyMonthly},
			},
			usdRate: 26,
			want:    100,
		},
		{
			name: "monthly USD converted",
			subs: []models.Subscription{
				{Price: 10, Currency: models.CurrencyUSD, Frequency: models.FrequencyMonthly},
			},
			usdRate: 26,
			want:    260,
		},
		{
			name: "yearly HNL divided by 12",
			subs: []models.Subscription{
				{Price: 12, Currency: models.CurrencyHNL, Frequency: models.FrequencyYearly},
			},
			usdRate: 26,
			want:    1,
		},
		{
			name: "yearly USD divided then converted",
			subs: []models.Subscription{
				{Price: 120, Currency: models.CurrencyUSD, Frequency: models.FrequencyYearly},
			},
			usdRate: 26,
			want:    260,
		},
		{
			name: "mixed collection",
			subs: []models.Subscription{
				{Price: 10, Currency: models.CurrencyUSD, Frequency: models.FrequencyMonthly},
				{Price: 12, Currency: models.CurrencyHNL, Frequency: models.FrequencyYearly},
			},
			usdRate: 26,
			want:    261,
		},
		{
			name: "zero price contributes nothing",
			subs: []models.Subscription{
				{Price: 0, Currency: models.CurrencyUSD, Frequency: models.FrequencyMonthly},
				{Price: 50, Currency: models.CurrencyHNL, Frequency: models.FrequencyMonthly},
			},
			usdRate: 26,
			want:    50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthlyTotal(tt.subs, tt.usdRate)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}
