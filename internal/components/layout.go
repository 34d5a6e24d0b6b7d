package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"

type PageConfig struct {
	Title       string
	Description string
	// URL is the canonical address of the page; empty omits the tags.
	URL string
	// RefreshAfter adds a <noscript> meta refresh so visitors without
	// JavaScript see the form status advance. Zero disables it.
	RefreshAfter int
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = "商途 AI - 以 AI 智能体重构商业运营新生态"
	}

	if config.Description == "" {
		config.Description = "AI 技术赋能获客，全链路破解运营销售低效。商途 AI 提供产品、服务与工具三位一体的解决方案。"
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("zh-CN"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				g.If(config.URL != "", Meta(g.Attr("property", "og:url"), Content(config.URL))),
				g.If(config.URL != "", Link(Rel("canonical"), Href(config.URL))),

				g.If(config.RefreshAfter > 0,
					g.El("noscript", Meta(g.Attr("http-equiv", "refresh"), Content(itoa(config.RefreshAfter)))),
				),

				Link(Rel("stylesheet"), Href("/static/styles.css")),
				Script(Src(htmxSrc), g.Attr("defer")),
				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
			),
			Body(
				Class("site"),
				g.Group(content),

				Script(Type("module"), Src("/static/js/site.js")),
			),
		),
	})
}
