// Package expense содержит чистую функцию подсчёта суммарных месячных
// расходов по подпискам в домашней валюте (HNL).
package expense

import "github.com/mrivera-hn/subtrack/internal/models"

// MonthlyTotal приводит каждую подписку к месячной стоимости в домашней
// валюте и возвращает сумму: годовая цена делится на 12, цена в USD
// умножается на курс usdRate (лемпир за 1 доллар). Курс приходит из
// конфигурации и здесь не зашит.
func MonthlyTotal(subs []models.Subscription, usdRate float64) float64 {
	var total float64
	for _, sub := range subs {
		monthly := sub.Price
		if sub.Frequency == models.FrequencyYearly {
			monthly /= 12
		}
		if sub.Currency == models.CurrencyUSD {
			monthly *= usdRate
		}
		total += monthly
	}
	return total
}
