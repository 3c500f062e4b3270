package handlers

import (
	"encoding/json"

	"retailnexa_site/config"
	"retailnexa_site/models"

	"github.com/labstack/echo/v4"
)

// Context keys set by the server for every request
const (
	ConfigKey  = "config"
	LandingKey = "landing"
)

// Inject makes the config and the content catalog available to handlers
func Inject(cfg *config.Config, landing *models.Landing) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(ConfigKey, cfg)
			c.Set(LandingKey, landing)
			return next(c)
		}
	}
}

func getConfig(c echo.Context) *config.Config {
	return c.Get(ConfigKey).(*config.Config)
}

func getLanding(c echo.Context) *models.Landing {
	return c.Get(LandingKey).(*models.Landing)
}

func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

// triggerAfterSwap asks htmx to dispatch event with detail once the
// response has been swapped into the page.
func triggerAfterSwap(c echo.Context, event string, detail interface{}) error {
	payload, err := json.Marshal(map[string]interface{}{event: detail})
	if err != nil {
		return err
	}
	c.Response().Header().Set("HX-Trigger-After-Swap", string(payload))
	return nil
}

// render writes a templ component or gomponents node through the echo renderer
func render(c echo.Context, status int, component interface{}) error {
	return c.Render(status, "", component)
}
