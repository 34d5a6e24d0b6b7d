package site

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"

	"github.com/wutian475-collab/wutian111/pkg/metrics"
)

const (
	renderPage     = "page"
	renderFragment = "fragment"

	// scrollEvent is the HX-Trigger event site.js listens to.
	scrollEvent = "site:scroll"
)

func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

func wantsJSON(c echo.Context) bool {
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON)
}

func render(c echo.Context, status int, kind string, n g.Node) error {
	metrics.PageRenders.WithLabelValues(kind).Inc()

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().Header().Set("Vary", "HX-Request")
	c.Response().WriteHeader(status)
	return n.Render(c.Response())
}

// triggerScroll asks the client to move to anchor after the swap.
func triggerScroll(c echo.Context, anchor string) {
	b, _ := json.Marshal(map[string]map[string]string{
		scrollEvent: {"anchor": anchor},
	})
	c.Response().Header().Set("HX-Trigger", string(b))
}

func redirect(c echo.Context, anchor string) error {
	target := "/"
	if anchor != "" {
		target += "#" + anchor
	}
	return c.Redirect(http.StatusSeeOther, target)
}
