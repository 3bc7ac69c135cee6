package http

import "github.com/labstack/echo/v4"

// Register mounts every route; extra middleware applies to the loan write routes only.
func Register(e *echo.Echo, h *Handler, lh *LoanHandler, writeMW ...echo.MiddlewareFunc) {
	e.GET("/health", h.Health)

	g := e.Group(loansBasePath)
	g.GET("/contact-info", h.ContactInfo)
	g.GET("/env-variable/:name", h.EnvVariable)

	g.GET("/:mobileNumber", lh.FetchLoan)
	g.POST("", lh.CreateLoan, writeMW...)
	g.PUT("", lh.UpdateLoan, writeMW...)
	g.DELETE("/:mobileNumber", lh.DeleteLoan, writeMW...)
}
