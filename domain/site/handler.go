package site

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"

	"github.com/wutian475-collab/wutian111/domain/catalog"
	"github.com/wutian475-collab/wutian111/domain/contact"
	"github.com/wutian475-collab/wutian111/domain/viewstate"
	"github.com/wutian475-collab/wutian111/internal/components"
	"github.com/wutian475-collab/wutian111/internal/config"
	"github.com/wutian475-collab/wutian111/pkg/apperror"
	"github.com/wutian475-collab/wutian111/pkg/logger"
	"github.com/wutian475-collab/wutian111/pkg/tracing"
)

// Handler serves the landing page and the events that change a visitor's
// view state.
type Handler struct {
	cfg      *config.Config
	catalog  *catalog.Store
	sessions *viewstate.Store
	limiter  *contact.RateLimiter
	log      *slog.Logger
}

// NewHandler creates a new site handler
func NewHandler(cfg *config.Config, store *catalog.Store, sessions *viewstate.Store, limiter *contact.RateLimiter, log *slog.Logger) *Handler {
	return &Handler{
		cfg:      cfg,
		catalog:  store,
		sessions: sessions,
		limiter:  limiter,
		log:      log.With(logger.Scope("site")),
	}
}

// ContactRequest is the posted contact form. JSON bodies use the same names.
type ContactRequest struct {
	Name        string `form:"name" json:"name"`
	Contact     string `form:"contact" json:"contact"`
	ProjectType string `form:"projectType" json:"projectType"`
	Budget      string `form:"budget" json:"budget"`
	Description string `form:"description" json:"description"`
}

func (r ContactRequest) raw() contact.Raw {
	return contact.Raw{
		Name:        r.Name,
		Contact:     r.Contact,
		ProjectType: r.ProjectType,
		Budget:      r.Budget,
		Description: r.Description,
	}
}

// SubmitResponse is returned to JSON clients of POST /contact.
type SubmitResponse struct {
	Status viewstate.FormStatus `json:"status"`
}

// ProductList is the JSON view of the filtered products.
type ProductList struct {
	Category catalog.Category  `json:"category"`
	Products []catalog.Product `json:"products"`
	Total    int               `json:"total"`
}

// ServiceList is the JSON view of the services.
type ServiceList struct {
	Services []catalog.Service `json:"services"`
	Total    int               `json:"total"`
}

func (h *Handler) pageData(state viewstate.ViewState) components.PageData {
	return components.PageData{
		SiteName: h.cfg.Site.Name,
		BaseURL:  h.cfg.Site.BaseURL,
		ICP:      h.cfg.Site.ICP,
		State:    state,
		Products: h.catalog.Filter(state.ActiveCategory),
		Counts:   h.catalog.CountByCategory(),
		Services: h.catalog.Services(),
		Agents:   catalog.Agents(),
		Contact:  catalog.Contact(),
	}
}

func (h *Handler) page(c echo.Context, status int, state viewstate.ViewState) error {
	return render(c, status, renderPage, components.Page(h.pageData(state)))
}

// Index handles GET /
func (h *Handler) Index(c echo.Context) error {
	ctrl := controller(c)
	state := ctrl.State()

	if raw := c.QueryParam("category"); raw != "" {
		cat, err := catalog.ParseCategory(raw)
		if err != nil {
			return apperror.ErrUnknownCategory.WithInternal(err)
		}
		if state, err = ctrl.SelectCategory(cat); err != nil {
			return apperror.ErrUnknownCategory.WithInternal(err)
		}
	}

	return h.page(c, http.StatusOK, state)
}

// SelectCategory handles POST /ui/category
func (h *Handler) SelectCategory(c echo.Context) error {
	cat, err := catalog.ParseCategory(c.FormValue("category"))
	if err != nil {
		return apperror.ErrUnknownCategory.WithInternal(err)
	}

	state, err := controller(c).SelectCategory(cat)
	if err != nil {
		return apperror.ErrUnknownCategory.WithInternal(err)
	}

	if !isHTMX(c) {
		return redirect(c, "products")
	}
	return render(c, http.StatusOK, renderFragment,
		components.Products(state.ActiveCategory, h.catalog.Filter(state.ActiveCategory), h.catalog.CountByCategory()))
}

// ToggleMenu handles POST /ui/menu/toggle
func (h *Handler) ToggleMenu(c echo.Context) error {
	state := controller(c).ToggleMenu()
	if !isHTMX(c) {
		return redirect(c, "")
	}
	return render(c, http.StatusOK, renderFragment, components.Navbar(h.cfg.Site.Name, state))
}

// FollowNavLink handles POST /ui/nav
func (h *Handler) FollowNavLink(c echo.Context) error {
	state, anchor, err := controller(c).FollowNavLink(c.FormValue("href"))
	if err != nil {
		if errors.Is(err, catalog.ErrUnknownAnchor) {
			return apperror.ErrUnknownAnchor.WithInternal(err)
		}
		return apperror.NewInternal("failed to follow link", err)
	}
	return h.navigated(c, state, anchor)
}

// InvokePrimaryCTA handles POST /ui/cta
func (h *Handler) InvokePrimaryCTA(c echo.Context) error {
	state, anchor := controller(c).InvokePrimaryCTA()
	return h.navigated(c, state, anchor)
}

func (h *Handler) navigated(c echo.Context, state viewstate.ViewState, anchor string) error {
	if !isHTMX(c) {
		return redirect(c, anchor)
	}
	triggerScroll(c, anchor)
	return render(c, http.StatusOK, renderFragment, components.Navbar(h.cfg.Site.Name, state))
}

// ObserveScroll handles POST /ui/scroll
func (h *Handler) ObserveScroll(c echo.Context) error {
	offset, err := strconv.ParseFloat(c.FormValue("offset"), 64)
	if err != nil {
		return apperror.NewBadRequest("offset must be a number")
	}

	state := controller(c).ObserveScroll(offset)
	if !isHTMX(c) {
		return redirect(c, "")
	}
	return render(c, http.StatusOK, renderFragment, components.Navbar(h.cfg.Site.Name, state))
}

// ContactPanel handles GET /ui/contact
func (h *Handler) ContactPanel(c echo.Context) error {
	return render(c, http.StatusOK, renderFragment, components.ContactPanel(controller(c).State()))
}

// SubmitContact handles POST /contact
func (h *Handler) SubmitContact(c echo.Context) error {
	ip := c.RealIP()
	if h.limiter.Exhausted(ip) {
		h.log.Warn("contact submission rate limited", slog.String("ip", ip))
		return apperror.ErrRateLimited
	}

	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid contact form")
	}

	ctx, span := tracing.Start(c.Request().Context(), "site.contact.submit",
		attribute.String("contact.project_type", req.ProjectType),
	)
	defer span.End()

	state, err := controller(c).Submit(ctx, req.raw())
	status := http.StatusOK
	if err != nil {
		tracing.RecordError(span, err)

		var verr *contact.ValidationError
		switch {
		case errors.As(err, &verr):
			if wantsJSON(c) {
				return apperror.NewValidation(verr.Fields)
			}
			status = http.StatusUnprocessableEntity
		case errors.Is(err, viewstate.ErrSubmitNotAllowed):
			if wantsJSON(c) {
				return apperror.ErrSubmitNotAllowed.WithInternal(err)
			}
			status = http.StatusConflict
		default:
			return apperror.NewInternal("failed to submit contact form", err)
		}
	} else {
		// Only accepted submissions count against the limit.
		h.limiter.Allow(ip)
	}

	switch {
	case wantsJSON(c):
		return c.JSON(http.StatusAccepted, SubmitResponse{Status: state.FormStatus})
	case isHTMX(c):
		return render(c, status, renderFragment, components.ContactPanel(state))
	case status != http.StatusOK:
		return h.page(c, status, state)
	default:
		return redirect(c, "contact")
	}
}

// ListProducts handles GET /api/catalog/products
func (h *Handler) ListProducts(c echo.Context) error {
	cat, err := catalog.ParseCategory(c.QueryParam("category"))
	if err != nil {
		return apperror.ErrUnknownCategory.WithInternal(err)
	}

	products := h.catalog.Filter(cat)
	return c.JSON(http.StatusOK, ProductList{
		Category: cat,
		Products: products,
		Total:    len(products),
	})
}

// ListServices handles GET /api/catalog/services
func (h *Handler) ListServices(c echo.Context) error {
	services := h.catalog.Services()
	return c.JSON(http.StatusOK, ServiceList{
		Services: services,
		Total:    len(services),
	})
}
