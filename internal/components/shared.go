package components

import (
	"encoding/json"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/wutian475-collab/wutian111/domain/catalog"
)

func itoa(i int) string { return strconv.Itoa(i) }

// hx renders an htmx attribute.
func hx(name, value string) g.Node {
	return g.Attr("hx-"+name, value)
}

// hxVals renders hx-vals from a string map.
func hxVals(vals map[string]string) g.Node {
	b, _ := json.Marshal(vals)
	return g.Attr("hx-vals", string(b))
}

func Logo(name string) g.Node {
	return Div(
		Class("logo"),
		Icon("lucide:sparkles", ""),
		Span(Class("logo-text"), g.Text(name)),
	)
}

func Icon(name, ariaLabel string) g.Node {
	if ariaLabel != "" {
		return Span(
			Class("iconify inline-block"),
			g.Attr("data-icon", name),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}
	return Span(
		Class("iconify inline-block"),
		g.Attr("data-icon", name),
		g.Attr("aria-hidden", "true"),
	)
}

// IconName maps a catalog icon to its lucide glyph. Every catalog.Icon has
// an entry; unknown values fall back to the sparkles glyph.
func IconName(i catalog.Icon) string {
	switch i {
	case catalog.IconCPU:
		return "lucide:cpu"
	case catalog.IconVideo:
		return "lucide:video"
	case catalog.IconUsers:
		return "lucide:users"
	case catalog.IconBarChart:
		return "lucide:bar-chart-3"
	default:
		return "lucide:sparkles"
	}
}

func SectionTitle(title, subtitle string) g.Node {
	return Div(
		Class("section-title"),
		H2(g.Text(title)),
		Div(Class("section-title-bar")),
		P(g.Text(subtitle)),
	)
}

// CTAButton posts the primary call-to-action, which closes the menu and
// moves to the contact section.
func CTAButton(label, variant string) g.Node {
	return Form(
		Class("cta-form"),
		Method("post"),
		Action("/ui/cta"),
		hx("post", "/ui/cta"),
		hx("target", "#navbar"),
		hx("swap", "outerHTML"),
		Button(
			Type("submit"),
			Class("btn btn-"+variant),
			g.Attr("data-cta", "primary"),
			g.Text(label),
		),
	)
}

// NavButton is an in-page link rendered as a form so that following it
// also closes the mobile menu without JavaScript.
func NavButton(label, href, class string, children ...g.Node) g.Node {
	return Form(
		Class("nav-form"),
		Method("post"),
		Action("/ui/nav"),
		hx("post", "/ui/nav"),
		hx("target", "#navbar"),
		hx("swap", "outerHTML"),
		Input(Type("hidden"), Name("href"), Value(href)),
		Button(
			Type("submit"),
			Class(class),
			g.Attr("data-href", href),
			g.Text(label),
			g.Group(children),
		),
	)
}
