package services

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/products_accounts/internal/apperrors"
	portsrepo "github.com/SscSPs/products_accounts/internal/core/ports/repositories"
	"github.com/SscSPs/products_accounts/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	EventPublisher portsrepo.EventPublisher
}

// ServiceOption is a functional option shared by the services in this package
type ServiceOption func(*BaseService)

// WithEventPublisher makes the service emit lifecycle events after successful writes
func WithEventPublisher(publisher portsrepo.EventPublisher) ServiceOption {
	return func(s *BaseService) {
		s.EventPublisher = publisher
	}
}

func (s *BaseService) applyOptions(options []ServiceOption) {
	for _, option := range options {
		option(s)
	}
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// PublishEvent emits an event when a publisher is configured.
// A failed publish is logged and never fails the write that triggered it.
func (s *BaseService) PublishEvent(ctx context.Context, stream, eventType string, data any) {
	if s.EventPublisher == nil {
		return
	}
	if err := s.EventPublisher.Publish(ctx, stream, eventType, data); err != nil {
		s.LogError(ctx, err, "Failed to publish event",
			slog.String("stream", stream),
			slog.String("event_type", eventType))
	}
}

// saveErrorCode is 400 when the store rejected the entity itself, 500 otherwise.
func saveErrorCode(err error) int {
	if errors.Is(err, apperrors.ErrValidation) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
