package site

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wutian475-collab/wutian111/domain/viewstate"
)

const sessionKey = "site.session"

// SessionMiddleware attaches the visitor's controller to the request,
// starting a new session when the visitor has none or it expired. The cookie
// is re-issued on every request so its lifetime slides with the server ttl.
func (h *Handler) SessionMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		var id string
		if cookie, err := c.Cookie(h.cfg.Session.CookieName); err == nil {
			id = cookie.Value
		}

		id, ctrl, _ := h.sessions.GetOrCreate(id)
		c.SetCookie(&http.Cookie{
			Name:     h.cfg.Session.CookieName,
			Value:    id,
			Path:     "/",
			MaxAge:   int(h.cfg.Session.TTL.Seconds()),
			HttpOnly: true,
			Secure:   h.cfg.Session.Secure,
			SameSite: http.SameSiteLaxMode,
		})

		c.Set(sessionKey, ctrl)
		return next(c)
	}
}

func controller(c echo.Context) *viewstate.Controller {
	return c.Get(sessionKey).(*viewstate.Controller)
}
