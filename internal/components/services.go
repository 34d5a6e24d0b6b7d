package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/wutian475-collab/wutian111/domain/catalog"
)

func Services(services []catalog.Service) g.Node {
	return Section(
		ID("services"),
		Class("section services"),
		Div(
			Class("container"),
			SectionTitle("精选服务方案", "从品牌塑造到流量变现，我们提供灵活且专业的服务组合，助力企业长期增值。"),
			Div(
				Class("service-grid"),
				g.Group(g.Map(services, ServiceCard)),
			),
		),
	)
}

func ServiceCard(s catalog.Service) g.Node {
	return Div(
		Class("service-card"),
		g.Attr("data-service-id", s.ID),
		Div(Class("service-icon"), Icon(IconName(s.Icon), "")),
		H3(g.Text(s.Title)),
		P(Class("service-description"), g.Text(s.Description)),
		Div(
			Class("service-meta"),
			Div(Span(g.Text("预算范围")), Span(Class("service-price"), g.Text(s.PriceRange))),
			Div(Span(g.Text("交付周期")), Span(Class("service-delivery"), g.Text(s.DeliveryTime))),
		),
		CTAButton("立即预约", "outline"),
	)
}
