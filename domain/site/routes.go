package site

import (
	"github.com/labstack/echo/v4"

	"github.com/wutian475-collab/wutian111/static"
)

// RegisterRoutes registers the page, fragment, catalog and static routes
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.StaticFS("/static", static.FS)

	e.GET("/api/catalog/products", h.ListProducts)
	e.GET("/api/catalog/services", h.ListServices)

	session := h.SessionMiddleware
	e.GET("/", h.Index, session)
	e.POST("/contact", h.SubmitContact, session)

	ui := e.Group("/ui")
	ui.GET("/contact", h.ContactPanel, session)
	ui.POST("/category", h.SelectCategory, session)
	ui.POST("/menu/toggle", h.ToggleMenu, session)
	ui.POST("/nav", h.FollowNavLink, session)
	ui.POST("/cta", h.InvokePrimaryCTA, session)
	ui.POST("/scroll", h.ObserveScroll, session)
}
