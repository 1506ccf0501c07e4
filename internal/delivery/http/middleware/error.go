package middleware

import (
	"errors"
	"fmt"

	"career-advisor/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"
)

type AppError struct {
	StatusCode int
	Message    string
	Data       interface{}
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, data interface{}, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Data: data, Cause: cause}
}

type ErrorMiddleware struct {
	logger       zerolog.Logger
	exposeErrors bool
}

func NewErrorMiddleware(logger zerolog.Logger, exposeErrors bool) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger, exposeErrors: exposeErrors}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				cause := fmt.Errorf("panic: %v", r)
				m.logger.Error().Err(cause).Str("path", c.Path()).Msg("panic recovered")
				err = response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, m.detail(cause), nil)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, msg, data, cause := normalizeError(err)
		if status >= 500 {
			m.logger.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Int("status", status).Msg("request failed")
			return response.Error(c, status, msg, m.detail(cause), nil)
		}
		return response.Error(c, status, msg, "", data)
	}
}

func (m *ErrorMiddleware) detail(cause error) string {
	if !m.exposeErrors || cause == nil {
		return ""
	}
	return cause.Error()
}

func normalizeError(err error) (int, string, interface{}, error) {
	if err == nil {
		return fiber.StatusInternalServerError, response.MessageInternalServerError, nil, nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.StatusCode <= 0 {
			return fiber.StatusInternalServerError, response.MessageInternalServerError, nil, appErr.Cause
		}

		status := appErr.StatusCode
		msg := appErr.Message
		if msg == "" {
			msg = response.DefaultMessageForStatus(status)
		}

		if status >= 500 {
			return fiber.StatusInternalServerError, response.MessageInternalServerError, nil, appErr.Cause
		}
		return status, msg, appErr.Data, appErr.Cause
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status := fiberErr.Code
		if status <= 0 {
			status = fiber.StatusInternalServerError
		}

		if status >= 500 {
			return fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err
		}

		msg := fiberErr.Message
		if msg == "" {
			msg = response.DefaultMessageForStatus(status)
		}
		return status, msg, nil, nil
	}

	return fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err
}
