package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/wutian475-collab/wutian111/domain/catalog"
)

func SiteFooter(siteName, icp string) g.Node {
	return Footer(
		Class("footer"),
		Div(
			Class("container"),
			Div(
				Class("footer-top"),
				Logo(siteName),
				Div(
					Class("footer-links"),
					g.Group(g.Map(catalog.NavLinks(), func(l catalog.NavLink) g.Node {
						return A(Href(l.Href), g.Text(l.Label))
					})),
				),
			),
			Div(
				Class("footer-bottom"),
				P(g.Raw("&copy; "), g.Text("2024 "+siteName+". All rights reserved.")),
				Div(
					Class("footer-icp"),
					Icon("lucide:globe", ""),
					Span(g.Text("ICP备案号："+icp)),
				),
			),
		),
	)
}
