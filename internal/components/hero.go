package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Hero() g.Node {
	return Section(
		ID("hero"),
		Class("hero"),
		Div(Class("hero-blob hero-blob-purple")),
		Div(Class("hero-blob hero-blob-blue")),
		Div(Class("hero-blob hero-blob-cyan")),

		Div(
			Class("container hero-content"),
			Div(Class("hero-badge"), Span(g.Text("AI 驱动 · 降本增效 · 业绩增长"))),
			H1(
				g.Text("以 "),
				Span(Class("gradient-text"), g.Text("AI 智能体")),
				Br(),
				g.Text("重构商业运营新生态"),
			),
			P(
				Class("hero-lead"),
				g.Text("AI 技术赋能获客｜全链路破解运营销售低效。商途 AI 为您提供“产品 + 服务 + 工具”三位一体的解决方案。"),
			),
			Div(
				Class("hero-actions"),
				NavButton("产品介绍", "#products", "btn btn-primary", Icon("lucide:arrow-right", "")),
				CTAButton("开启合作", "secondary"),
			),
		),

		Div(Class("scroll-hint"), Span(g.Text("Scroll"))),
	)
}
