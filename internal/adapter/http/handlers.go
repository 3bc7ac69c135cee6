package http

import (
	"net/http"
	"os"
	"strings"
	"time"

	"loans-service/internal/config"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	contact *config.ContactInfo
	lookup  func(string) (string, bool)
}

func NewHandler(contact *config.ContactInfo) *Handler {
	if contact == nil {
		contact = config.DefaultContactInfo()
	}
	return &Handler{contact: contact, lookup: os.LookupEnv}
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

func (h *Handler) ContactInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, h.contact)
}

// EnvVariable returns the raw value of one environment variable. Unset and
// secret-bearing variables both read as empty.
func (h *Handler) EnvVariable(c echo.Context) error {
	name := c.Param("name")
	if isSecretName(name) {
		return c.String(http.StatusOK, "")
	}
	v, _ := h.lookup(name)
	return c.String(http.StatusOK, v)
}

var secretMarkers = []string{"PASS", "SECRET", "TOKEN", "CREDENTIAL", "PRIVATE"}

func isSecretName(name string) bool {
	n := strings.ToUpper(name)
	if strings.HasSuffix(n, "_KEY") || n == "KEY" || strings.HasSuffix(n, "_DSN") {
		return true
	}
	for _, m := range secretMarkers {
		if strings.Contains(n, m) {
			return true
		}
	}
	return false
}
