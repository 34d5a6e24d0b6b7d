package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/wutian475-collab/wutian111/domain/catalog"
)

// Products renders the product showcase for the active category. products
// must already be filtered.
func Products(active catalog.Category, products []catalog.Product, counts map[catalog.Category]int) g.Node {
	return Section(
		ID("products"),
		Class("section products"),
		Div(
			Class("container"),
			SectionTitle("核心产品矩阵", "覆盖企业运营全生命周期，四大核心板块适配专属 AI 智能体，打造场景化与智能化兼备的产品体系。"),
			FilterTabs(active, counts),
			Div(
				Class("product-grid"),
				g.Attr("data-category", string(active)),
				g.Group(g.Map(products, ProductCard)),
			),
		),
	)
}

func FilterTabs(active catalog.Category, counts map[catalog.Category]int) g.Node {
	return Form(
		Class("filter-tabs"),
		Method("post"),
		Action("/ui/category"),
		hx("post", "/ui/category"),
		hx("target", "#products"),
		hx("swap", "outerHTML"),
		g.Attr("role", "tablist"),
		g.Group(g.Map(catalog.FilterTabs(), func(tab catalog.FilterTab) g.Node {
			selected := tab.Category == active
			return Button(
				Type("submit"),
				Name("category"),
				Value(string(tab.Category)),
				Class(classes("filter-tab", selected, "filter-tab-active")),
				g.Attr("role", "tab"),
				g.Attr("aria-selected", boolAttr(selected)),
				g.Text(tab.Label),
				g.If(counts != nil, Span(Class("filter-tab-count"), g.Text(itoa(counts[tab.Category])))),
			)
		})),
	)
}

func ProductCard(p catalog.Product) g.Node {
	return Div(
		Class("product-card"),
		g.Attr("data-product-id", p.ID),
		g.Attr("data-category", string(p.Category)),
		Div(
			Class("product-media"),
			Img(Src(p.ImageURL), Alt(p.Title), g.Attr("loading", "lazy")),
		),
		Div(
			Class("product-body"),
			Div(Class("product-icon"), Icon(IconName(p.Icon()), "")),
			H3(g.Text(p.Title)),
			P(g.Text(p.Description)),
			A(Href("#contact"), Class("product-more"), g.Text("了解详情 "), Icon("lucide:arrow-right", "")),
		),
	)
}
