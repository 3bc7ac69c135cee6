package http

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
)

// bindAndValidate decodes the JSON body into dst and checks it.
func bindAndValidate(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if fe := Violations(dst); len(fe) > 0 {
		return newValidationError(fe)
	}
	return nil
}

// pathParam returns the named path parameter, percent-decoded so "%2B" reads as "+".
func pathParam(c echo.Context, name string) string {
	v := c.Param(name)
	if u, err := url.PathUnescape(v); err == nil {
		return u
	}
	return v
}
