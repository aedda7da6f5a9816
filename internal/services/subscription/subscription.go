// Package services содержит бизнес-логику для управления подписками.
// Каждая операция — один круговой обход до хранилища, без побочных эффектов.
package services

import (
	"context"
	"log/slog"

	"github.com/mrivera-hn/subtrack/internal/models"
)

// SubscriptionRepository определяет методы для работы с подписками в хранилище.
type SubscriptionRepository interface {
	// CreateSubscription добавляет новую подписку и возвращает её в полном виде.
	CreateSubscription(ctx context.Context, name string, price float64,
		currency, frequency string, paymentDate models.Date) (*models.Subscription, error)
	// ListSubscriptions возвращает все подписки, новые первыми.
	ListSubscriptions(ctx context.Context) ([]models.Subscription, error)
	// ReadSubscription возвращает подписку по ID.
	ReadSubscription(ctx context.Context, id int) (*models.Subscription, error)
	// UpdateSubscription применяет частичное обновление и возвращает запись целиком.
	UpdateSubscription(ctx context.Context, id int, upd models.DummyUpdateEntry) (*models.Subscription, error)
	// RemoveSubscription удаляет подписку по ID.
	RemoveSubscription(ctx context.Context, id int) error
}

// SubscriptionService реализует бизнес-логику работы с подписками.
type SubscriptionService struct {
	repo SubscriptionRepository
	log  *slog.Logger
}

// NewSubscriptionService создает новый экземпляр SubscriptionService.
func NewSubscriptionService(repo SubscriptionRepository, log *slog.Logger) *SubscriptionService {
	return &SubscriptionService{
		repo: repo,
		log:  log,
	}
}

// Create создает новую подписку из провалидированного запроса.
// ID и CreatedAt назначает база данных, клиентские значения не принимаются.
func (s *SubscriptionService) Create(ctx context.Context, req models.DummyCreateEntry) (*models.Subscription, error) {
	sub, err := s.repo.CreateSubscription(ctx,
		req.Name, *req.Price, req.Currency, req.Frequency, *req.PaymentDate)
	if err != nil {
		return nil, err
	}

	s.log.Info("created new subscription", slog.Int("id", sub.ID))
	return sub, nil
}

// List возвращает все подписки, отсортированные по дате создания, новые первыми.
func (s *SubscriptionService) List(ctx context.Context) ([]models.Subscription, error) {
	return s.repo.ListSubscriptions(ctx)
}

// Read возвращает подписку по ID.
func (s *SubscriptionService) Read(ctx context.Context, id int) (*models.Subscription, error) {
	return s.repo.ReadSubscription(ctx, id)
}

// Update применяет частичное обновление: отсутствующие поля не изменяются,
// пустой запрос оставляет запись как есть и не считается ошибкой.
func (s *SubscriptionService) Update(ctx context.Context, id int, req models.DummyUpdateEntry) (*models.Subscription, error) {
	sub, err := s.repo.UpdateSubscription(ctx, id, req)
	if err != nil {
		return nil, err
	}

	s.log.Info("updated subscription", slog.Int("id", id))
	return sub, nil
}

// Remove удаляет подписку по ID.
func (s *SubscriptionService) Remove(ctx context.Context, id int) error {
	if err := s.repo.RemoveSubscription(ctx, id); err != nil {
		return err
	}

	s.log.Info("removed subscription", slog.Int("id", id))
	return nil
}
