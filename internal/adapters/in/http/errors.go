package http

import (
	"errors"
	"net/http"

	"workmarket/internal/core/domain/model/order"
	"workmarket/internal/generated/servers"
	"workmarket/internal/pkg/errs"
	"workmarket/internal/pkg/logging"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const internalErrorMessage = "internal server error"

// classify maps a use case error to its status and wire error. The order of
// checks matters: an invalid transition also matches errs.ErrInvalidState.
func classify(err error) (int, servers.Error) {
	switch {
	case errs.IsValidation(err):
		return http.StatusBadRequest, servers.Error{Code: servers.ErrorCodeValidation, Message: err.Error()}
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden, servers.Error{Code: servers.ErrorCodeForbidden, Message: err.Error()}
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, servers.Error{Code: servers.ErrorCodeNotFound, Message: err.Error()}
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict, servers.Error{Code: servers.ErrorCodeConflict, Message: err.Error()}
	case errors.Is(err, order.ErrInvalidTransition):
		return http.StatusUnprocessableEntity, servers.Error{Code: servers.ErrorCodeInvalidTransition, Message: err.Error()}
	case errors.Is(err, errs.ErrInvalidState):
		return http.StatusUnprocessableEntity, servers.Error{Code: servers.ErrorCodeInvalidState, Message: err.Error()}
	default:
		return http.StatusInternalServerError, servers.Error{Code: servers.ErrorCodeInternal, Message: internalErrorMessage}
	}
}

// fail renders err and logs the ones the client cannot act on.
func (s *Server) fail(ctx echo.Context, err error) error {
	status, body := classify(err)
	if status == http.StatusInternalServerError {
		logging.FromContext(ctx.Request().Context(), s.logger).Error("request failed", zap.Error(err))
	}
	return ctx.JSON(status, body)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    servers.ErrorCodeValidation,
		Message: message,
	})
}

// NewHTTPErrorHandler renders errors that escape handlers, such as parameter
// binding failures and unknown routes, in the same shape as use case errors.
func NewHTTPErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		body := servers.Error{Code: servers.ErrorCodeInternal, Message: internalErrorMessage}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			body = servers.Error{Code: codeForStatus(status), Message: http.StatusText(status)}
			if msg, ok := he.Message.(string); ok && status < http.StatusInternalServerError {
				body.Message = msg
			}
		} else {
			status, body = classify(err)
		}

		if status >= http.StatusInternalServerError {
			logging.FromContext(ctx.Request().Context(), logger).Error("unhandled error", zap.Error(err))
		}

		var writeErr error
		if ctx.Request().Method == http.MethodHead {
			writeErr = ctx.NoContent(status)
		} else {
			writeErr = ctx.JSON(status, body)
		}
		if writeErr != nil {
			logger.Warn("write error response", zap.Error(writeErr))
		}
	}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return servers.ErrorCodeValidation
	case http.StatusForbidden:
		return servers.ErrorCodeForbidden
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		return servers.ErrorCodeNotFound
	case http.StatusConflict:
		return servers.ErrorCodeConflict
	default:
		if status >= http.StatusInternalServerError {
			return servers.ErrorCodeInternal
		}
		return http.StatusText(status)
	}
}
