// Команда expense-report запрашивает у сервера все подписки и печатает
// таблицу с суммарными месячными расходами в домашней валюте (HNL).
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/mrivera-hn/subtrack/internal/client"
	"github.com/mrivera-hn/subtrack/internal/config"
)

func main() {
	cfg := config.MustLoadClient()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	api := client.New(cfg.APIBaseURL, cfg.Timeout)
	store := client.NewStore(api, cfg.ExchangeRate, logger)

	if err := store.FetchAll(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "failed to fetch subscriptions: %v\n", err)
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tCURRENCY\tFREQUENCY\tNEXT PAYMENT")
	for _, sub := range store.Subscriptions() {
		fmt.Fprintf(w, "%d\t%s\t%.2f\t%s\t%s\t%s\n",
			sub.ID, sub.Name, sub.Price, sub.Currency, sub.Frequency, sub.PaymentDate)
	}
	w.Flush()

	fmt.Printf("\nTotal monthly expense: %.2f HNL (at %.2f HNL/USD)\n",
		store.TotalMonthlyExpense(), cfg.ExchangeRate)
}
