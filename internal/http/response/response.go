// Package response содержит вспомогательные типы и функции для формирования
// унифицированных JSON‑ответов HTTP‑обработчиков: ошибок сервера и
// структурированных сообщений валидации.
package response

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator"
)

// ErrorResponse описывает JSON‑тело ответа с ошибкой.
// Details заполняется только для ошибок валидации и содержит
// сообщение для каждого нарушенного поля.
type ErrorResponse struct {
	Error   string            `json:"error" example:"Server error"`
	Details map[string]string `json:"details,omitempty"`
}

// Тексты ошибок, видимые клиенту. Детали внутренних сбоев наружу не отдаются.
const (
	MsgServerError      = "Server error"
	MsgNotFound         = "Not found"
	MsgValidationFailed = "Validation failed"
)

// Error возвращает ErrorResponse с переданным сообщением.
func Error(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}

// ServerError возвращает обезличенную ошибку сервера.
func ServerError() ErrorResponse {
	return ErrorResponse{Error: MsgServerError}
}

// NotFound возвращает ошибку отсутствия записи.
func NotFound() ErrorResponse {
	return ErrorResponse{Error: MsgNotFound}
}

// ValidationError формирует ответ со статусом "Validation failed" на основе
// ошибок валидации. Для каждого поля формируется человеко‑читаемое сообщение,
// ключ — имя поля в snake_case, как оно приходит в JSON.
func ValidationError(errs validator.ValidationErrors) ErrorResponse {
	details := make(map[string]string, len(errs))

	for _, err := range errs {
		field := toSnakeCase(err.Field())
		switch err.ActualTag() {
		case "required":
			details[field] = fmt.Sprintf("field %s is a required field", field)
		case "min":
			details[field] = fmt.Sprintf("field %s must not be empty", field)
		case "gte":
			details[field] = fmt.Sprintf("field %s must be greater than or equal to %s", field, err.Param())
		case "oneof":
			details[field] = fmt.Sprintf("field %s must be one of [%s]", field, err.Param())
		default:
			details[field] = fmt.Sprintf("field %s is not valid", field)
		}
	}
	return ErrorResponse{
		Error:   MsgValidationFailed,
		Details: details,
	}
}

// toSnakeCase переводит имя поля структуры (PaymentDate) в имя JSON‑поля (payment_date).
func toSnakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
