package client

import (
	"context"
	"log/slog"

	"github.com/mrivera-hn/subtrack/internal/expense"
	"github.com/mrivera-hn/subtrack/internal/lib/sl"
	"github.com/mrivera-hn/subtrack/internal/models"
)

// Store хранит локальную копию коллекции подписок, синхронизируемую
// с сервером через Client, а также флаг загрузки и последнюю ошибку.
//
// Состояние изменяется только методами Store. Store не рассчитан на
// конкурентное использование: вызывающая сторона сериализует обращения
// и не запускает операции, пока Loading() возвращает true.
type Store struct {
	api     *Client
	log     *slog.Logger
	usdRate float64 // лемпир за 1 доллар, из конфигурации

	subscriptions []models.Subscription
	loading       bool
	lastErr       error
}

// NewStore создаёт Store поверх клиента API с заданным курсом доллара.
func NewStore(api *Client, usdRate float64, log *slog.Logger) *Store {
	return &Store{
		api:     api,
		log:     log,
		usdRate: usdRate,
	}
}

// Subscriptions возвращает копию текущей коллекции в серверном порядке.
func (s *Store) Subscriptions() []models.Subscription {
	out := make([]models.Subscription, len(s.subscriptions))
	copy(out, s.subscriptions)
	return out
}

// Loading сообщает, выполняется ли сейчас операция с сервером.
func (s *Store) Loading() bool {
	return s.loading
}

// Err возвращает ошибку последней операции или nil, если она прошла успешно.
func (s *Store) Err() error {
	return s.lastErr
}

// TotalMonthlyExpense возвращает суммарные месячные расходы по текущей
// коллекции в домашней валюте. Считается заново при каждом вызове.
func (s *Store) TotalMonthlyExpense() float64 {
	return expense.MonthlyTotal(s.subscriptions, s.usdRate)
}

// begin открывает скобку загрузки: поднимает флаг и сбрасывает ошибку.
// Возвращённая функция закрывает скобку и вызывается через defer,
// чтобы флаг снимался и при успехе, и при ошибке.
func (s *Store) begin() func() {
	s.loading = true
	s.lastErr = nil
	return func() { s.loading = false }
}

// FetchAll запрашивает у сервера полную коллекцию и замещает ею локальную,
// сохраняя серверный порядок. При ошибке коллекция остаётся нетронутой,
// ошибка записывается в слот Err и возвращается.
func (s *Store) FetchAll(ctx context.Context) error {
	defer s.begin()()

	subs, err := s.api.List(ctx)
	if err != nil {
		s.log.Error("failed to fetch subscriptions", sl.Err(err))
		s.lastErr = err
		return err
	}

	s.subscriptions = subs
	s.log.Info("fetched subscriptions", slog.Int("count", len(subs)))
	return nil
}

// Create создаёт подписку на сервере и после подтверждения добавляет
// возвращённую запись в начало коллекции. При ошибке коллекция не меняется,
// ошибка записывается в слот Err и возвращается вызывающему.
func (s *Store) Create(ctx context.Context, in models.DummyCreateEntry) (*models.Subscription, error) {
	defer s.begin()()

	created, err := s.api.Create(ctx, in)
	if err != nil {
		s.log.Error("failed to create subscription", sl.Err(err))
		s.lastErr = err
		return nil, err
	}

	s.subscriptions = append([]models.Subscription{*created}, s.subscriptions...)
	s.log.Info("created subscription", slog.Int("id", created.ID))
	return created, nil
}

// Update отправляет частичное обновление. Возвращённая сервером запись
// замещает локальную с тем же id, сохраняя её позицию; если записи нет
// локально, она добавляется в начало коллекции.
func (s *Store) Update(ctx context.Context, id int, in models.DummyUpdateEntry) (*models.Subscription, error) {
	defer s.begin()()

	updated, err := s.api.Update(ctx, id, in)
	if err != nil {
		s.log.Error("failed to update subscription", slog.Int("id", id), sl.Err(err))
		s.lastErr = err
		return nil, err
	}

	replaced := false
	for i := range s.subscriptions {
		if s.subscriptions[i].ID == id {
			s.subscriptions[i] = *updated
			replaced = true
			break
		}
	}
	if !replaced {
		s.subscriptions = append([]models.Subscription{*updated}, s.subscriptions...)
	}

	s.log.Info("updated subscription", slog.Int("id", id))
	return updated, nil
}

// Delete удаляет подписку на сервере и убирает запись с тем же id из
// локальной коллекции (не более одной).
func (s *Store) Delete(ctx context.Context, id int) error {
	defer s.begin()()

	if err := s.api.Delete(ctx, id); err != nil {
		s.log.Error("failed to delete subscription", slog.Int("id", id), sl.Err(err))
		s.lastErr = err
		return err
	}

	for i := range s.subscriptions {
		if s.subscriptions[i].ID == id {
			s.subscriptions = append(s.subscriptions[:i], s.subscriptions[i+1:]...)
			break
		}
	}

	s.log.Info("deleted subscription", slog.Int("id", id))
	return nil
}
