package update

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mrivera-hn/subtrack/internal/models"
	"github.com/mrivera-hn/subtrack/internal/storage"
)

// MockService реализует интерфейс update.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Update(ctx context.Context, id int, req models.DummyUpdateEntry) (*models.Subscription, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subscription), args.Error(1)
}

func TestUpdateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	updated := &models.Subscription{
		ID:          123,
		Name:        "Spotify",
		Price:       12.99,
		Currency:    models.CurrencyUSD,
		Frequency:   models.FrequencyMonthly,
		PaymentDate: models.NewDate(2025, time.December, 1),
		CreatedAt:   time.Date(2025, time.November, 20, 10, 30, 0, 0, time.UTC),
	}

	tests := []struct {
		name           string
		id             string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешное обновление цены",
			id:   "123",
			body: `{"price":12.99}`,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, 123, mock.Anything).Return(updated, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"price":12.99`,
		},
		{
			name: "пустое обновление — no-op",
			id:   "123",
			body: `{}`,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, 123, models.DummyUpdateEntry{}).Return(updated, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"id":123`,
		},
		{
			name:           "некорректный id",
			id:             "abc",
			body:           `{}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"invalid id"`,
		},
		{
			name:           "недопустимая периодичность",
			id:             "123",
			body:           `{"frequency":"weekly"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"frequency":"field frequency must be one of [monthly yearly]"`,
		},
		{
			name: "подписка не найдена",
			id:   "777",
			body: `{"price":1}`,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, 777, mock.Anything).Return(nil,
					fmt.Errorf("storage.UpdateSubscription: %w", storage.ErrSubscriptionNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"error":"Not found"`,
		},
		{
			name: "ошибка сервиса",
			id:   "123",
			body: `{"price":1}`,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, 123, mock.Anything).Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"Server error"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPut, "/subscriptions/"+tt.id, strings.NewReader(tt.body))
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
