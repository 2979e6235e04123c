package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/firm_books/internal/middleware"
	"github.com/SscSPs/firm_books/internal/utils"
)

// BaseService gives every service the request-scoped logger.
type BaseService struct{}

// GetLogger gets the logger from context or returns the default one.
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs err under msg with any extra attributes.
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	s.GetLogger(ctx).Error(msg, append([]any{slog.String("error", err.Error())}, keyvals...)...)
}

func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// LogCoerced warns once per numeric field the parser turned into zero.
func (s *BaseService) LogCoerced(ctx context.Context, msg string, parser *utils.NumericParser) {
	logger := s.GetLogger(ctx)
	for _, w := range parser.Warnings {
		logger.Warn(msg, slog.String("field", w.Field), slog.String("value", w.Value))
	}
}

// LogWarnings logs each message at warn level, e.g. the coercions reported by an import.
func (s *BaseService) LogWarnings(ctx context.Context, msg string, warnings []string) {
	logger := s.GetLogger(ctx)
	for _, w := range warnings {
		logger.Warn(msg, slog.String("warning", w))
	}
}
