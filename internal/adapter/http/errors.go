package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"loans-service/internal/domain/loan"
	"loans-service/internal/infrastructure/logging"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	StatusCreated  = "201"
	MessageCreated = "Loan created successfully"
	StatusOK       = "200"
	MessageOK      = "Request processed successfully"
	Status500      = "500"
	Message500     = "An error occurred. Please try again, or contact the support team"
)

// ResponseDto is the body of every successful write.
type ResponseDto struct {
	StatusCode    string `json:"statusCode"`
	StatusMessage string `json:"statusMessage"`
}

// ErrorResponseDto is the body of every failed request.
type ErrorResponseDto struct {
	APIPath      string       `json:"apiPath"`
	ErrorCode    string       `json:"errorCode"`
	ErrorMessage string       `json:"errorMessage"`
	ErrorTime    time.Time    `json:"errorTime"`
	Details      []FieldError `json:"details,omitempty"`
}

// validationError carries the batch of field violations of one request.
type validationError struct{ fields []FieldError }

func (e *validationError) Error() string { return "validation failed" }

func newValidationError(fields []FieldError) error { return &validationError{fields: fields} }

func errorBody(c echo.Context, code int, msg string, details []FieldError) ErrorResponseDto {
	return ErrorResponseDto{
		APIPath:      "uri=" + c.Request().URL.RequestURI(),
		ErrorCode:    strconv.Itoa(code),
		ErrorMessage: msg,
		ErrorTime:    time.Now().UTC(),
		Details:      details,
	}
}

// writeError is the single place mapping an error to a status and body.
func writeError(c echo.Context, err error) error {
	var ve *validationError
	var he *echo.HTTPError
	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest, errorBody(c, http.StatusBadRequest, ve.Error(), ve.fields))
	case errors.Is(err, loan.ErrNotFound):
		return c.JSON(http.StatusNotFound, errorBody(c, http.StatusNotFound, err.Error(), nil))
	case errors.Is(err, loan.ErrAlreadyExists):
		return c.JSON(http.StatusConflict, errorBody(c, http.StatusConflict, err.Error(), nil))
	case errors.As(err, &he) && he.Code < http.StatusInternalServerError:
		return c.JSON(he.Code, errorBody(c, he.Code, httpErrorMessage(he), nil))
	default:
		logging.FromContext(c.Request().Context()).Error("request failed",
			zap.String("path", c.Request().URL.Path), zap.Error(err))
		code := http.StatusInternalServerError
		if he != nil {
			code = he.Code
		}
		return c.JSON(code, errorBody(c, code, Message500, nil))
	}
}

func httpErrorMessage(he *echo.HTTPError) string {
	if s, ok := he.Message.(string); ok {
		return s
	}
	return http.StatusText(he.Code)
}

// HTTPErrorHandler renders errors that escape handlers and middleware
// (routing misses, bind failures, idempotency rejections) in the same shape.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	if c.Request().Method == http.MethodHead {
		var he *echo.HTTPError
		code := http.StatusInternalServerError
		if errors.As(err, &he) {
			code = he.Code
		}
		_ = c.NoContent(code)
		return
	}
	if werr := writeError(c, err); werr != nil {
		logging.FromContext(c.Request().Context()).Error("write error response", zap.Error(werr))
	}
}
