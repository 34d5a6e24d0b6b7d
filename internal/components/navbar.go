package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/wutian475-collab/wutian111/domain/catalog"
	"github.com/wutian475-collab/wutian111/domain/viewstate"
)

// Navbar renders the fixed top bar. It is also the htmx target of the menu,
// navigation and call-to-action events.
func Navbar(siteName string, state viewstate.ViewState) g.Node {
	links := catalog.NavLinks()

	return Nav(
		ID("navbar"),
		Class(classes("navbar", state.Scrolled, "scrolled")),
		g.Attr("data-scrolled", boolAttr(state.Scrolled)),
		g.Attr("data-menu-open", boolAttr(state.MenuOpen)),

		Div(
			Class("navbar-inner container"),

			A(Href("#hero"), Class("navbar-brand"), Logo(siteName)),

			Div(
				Class("navbar-links"),
				g.Group(g.Map(links, func(l catalog.NavLink) g.Node {
					return A(
						Href(l.Href),
						Class("navbar-link"),
						hx("post", "/ui/nav"),
						hxVals(map[string]string{"href": l.Href}),
						hx("target", "#navbar"),
						hx("swap", "outerHTML"),
						g.Text(l.Label),
					)
				})),
				CTAButton("开启合作", "primary"),
			),

			Form(
				Class("menu-toggle"),
				Method("post"),
				Action("/ui/menu/toggle"),
				hx("post", "/ui/menu/toggle"),
				hx("target", "#navbar"),
				hx("swap", "outerHTML"),
				Button(
					Type("submit"),
					g.Attr("aria-expanded", boolAttr(state.MenuOpen)),
					g.Attr("aria-controls", "mobile-menu"),
					g.If(state.MenuOpen, Icon("lucide:x", "关闭菜单")),
					g.If(!state.MenuOpen, Icon("lucide:menu", "打开菜单")),
				),
			),
		),

		g.If(state.MenuOpen, MobileMenu(links)),
	)
}

func MobileMenu(links []catalog.NavLink) g.Node {
	return Div(
		ID("mobile-menu"),
		Class("mobile-menu"),
		g.Group(g.Map(links, func(l catalog.NavLink) g.Node {
			return NavButton(l.Label, l.Href, "mobile-menu-link")
		})),
		CTAButton("开启合作", "primary"),
	)
}

// classes appends extra to base when cond holds.
func classes(base string, cond bool, extra string) string {
	if cond {
		return base + " " + extra
	}
	return base
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
