package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

type errorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

// HTTPErrorHandler normalizes every error that escapes a handler. Known HTTP
// errors keep their status with an empty body; anything else becomes a 500
// with the {error, status} envelope. If the response is already committed the
// error is only logged, never written.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		c.Logger().Error(err)
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && httpErr.Code != http.StatusInternalServerError {
		if werr := c.NoContent(httpErr.Code); werr != nil {
			c.Logger().Error(werr)
		}
		return
	}

	werr := c.JSON(http.StatusInternalServerError, errorResponse{
		Error:  err.Error(),
		Status: http.StatusInternalServerError,
	})
	if werr != nil {
		c.Logger().Error(werr)
	}
}
