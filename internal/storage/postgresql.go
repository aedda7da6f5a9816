// Package storage реализует хранилище данных на основе PostgreSQL
// для управления подписками. Предоставляет методы создания, чтения,
// обновления и удаления записей.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/mrivera-hn/subtrack/internal/models"
)

// ErrSubscriptionNotFound возвращается, когда запись с указанным ID отсутствует.
// Отличает промах по ключу от прочих ошибок хранилища.
var ErrSubscriptionNotFound = errors.New("subscription not found")

// Storage инкапсулирует соединение с базой данных PostgreSQL
// и реализует методы работы с подписками.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL и проверяет его доступность.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{DB: db}, nil
}

// subscriptionColumns — список колонок, возвращаемых всеми запросами чтения.
const subscriptionColumns = `id, name, price, currency, frequency, payment_date, created_at`

// CreateSubscription вставляет новую запись и возвращает её в полном виде,
// включая назначенные базой id и created_at.
func (s *Storage) CreateSubscription(ctx context.Context, name string, price float64,
	currency, frequency string, paymentDate models.Date) (*models.Subscription, error) {
	const op = "storage.CreateSubscription"

	query := `INSERT INTO subscriptions (name, price, currency, frequency, payment_date)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING ` + subscriptionColumns
	row := s.DB.QueryRowContext(ctx, query, name, price, currency, frequency, paymentDate)

	sub, err := scanSubscription(row)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return sub, nil
}

// ListSubscriptions возвращает все подписки, отсортированные по дате создания,
// новые первыми.
func (s *Storage) ListSubscriptions(ctx context.Context) ([]models.Subscription, error) {
	const op = "storage.ListSubscriptions"

	query := `SELECT ` + subscriptionColumns + `
			  FROM subscriptions
			  ORDER BY created_at DESC, id DESC`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	result := make([]models.Subscription, 0)
	for rows.Next() {
		var sub models.Subscription
		if err := rows.Scan(&sub.ID, &sub.Name, &sub.Price, &sub.Currency,
			&sub.Frequency, &sub.PaymentDate, &sub.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ReadSubscription возвращает подписку по её ID
// или ErrSubscriptionNotFound, если записи нет.
func (s *Storage) ReadSubscription(ctx context.Context, id int) (*models.Subscription, error) {
	const op = "storage.ReadSubscription"

	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	sub, err := scanSubscription(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, ErrSubscriptionNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return sub, nil
}

// UpdateSubscription применяет частичное обновление: nil-поля остаются
// нетронутыми за счёт COALESCE, запрос выполняется за один круговой обход
// и возвращает запись целиком. Пустое обновление возвращает запись без изменений.
func (s *Storage) UpdateSubscription(ctx context.Context, id int, upd models.DummyUpdateEntry) (*models.Subscription, error) {
	const op = "storage.UpdateSubscription"

	query := `UPDATE subscriptions
			  SET name = COALESCE($1, name),
			      price = COALESCE($2, price),
			      currency = COALESCE($3, currency),
			      frequency = COALESCE($4, frequency),
			      payment_date = COALESCE($5, payment_date)
			  WHERE id = $6
			  RETURNING ` + subscriptionColumns

	var paymentDate any
	if upd.PaymentDate != nil {
		paymentDate = *upd.PaymentDate
	}
	row := s.DB.QueryRowContext(ctx, query,
		upd.Name, upd.Price, upd.Currency, upd.Frequency, paymentDate, id)

	sub, err := scanSubscription(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, ErrSubscriptionNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return sub, nil
}

// RemoveSubscription удаляет подписку по ID.
// Возвращает ErrSubscriptionNotFound, если ни одна строка не была удалена.
func (s *Storage) RemoveSubscription(ctx context.Context, id int) error {
	const op = "storage.RemoveSubscription"

	query := `DELETE FROM subscriptions WHERE id = $1`
	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, ErrSubscriptionNotFound)
	}
	return nil
}

func scanSubscription(row *sql.Row) (*models.Subscription, error) {
	var sub models.Subscription
	if err := row.Scan(&sub.ID, &sub.Name, &sub.Price, &sub.Currency,
		&sub.Frequency, &sub.PaymentDate, &sub.CreatedAt); err != nil {
		return nil, err
	}
	return &sub, nil
}
