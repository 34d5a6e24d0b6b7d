package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/wutian475-collab/wutian111/domain/catalog"
)

var agentIcons = map[string]string{
	"content":   "lucide:pen-tool",
	"operation": "lucide:trending-up",
	"service":   "lucide:message-square",
}

func Agents(agents []catalog.Agent) g.Node {
	return Section(
		ID("ai-agents"),
		Class("section agents"),
		Div(
			Class("container"),
			SectionTitle("商途 AI 智能体系列", "打造您的 24 小时“金牌员工”，针对运营各环节自动化执行核心业务流程，实现真正的降本增效。"),
			Div(
				Class("agent-grid"),
				g.Group(g.Map(agents, AgentCard)),
			),
		),
	)
}

func AgentCard(a catalog.Agent) g.Node {
	icon, ok := agentIcons[a.ID]
	if !ok {
		icon = "lucide:bot"
	}

	return Div(
		Class("agent-card agent-"+a.Accent),
		g.Attr("data-agent-id", a.ID),
		Div(
			Class("agent-media"),
			Video(
				g.Attr("autoplay"),
				g.Attr("loop"),
				g.Attr("muted"),
				g.Attr("playsinline"),
				g.Attr("poster", a.PosterURL),
				Source(Src(a.VideoURL), Type("video/mp4")),
			),
		),
		Div(
			Class("agent-body"),
			Div(Class("agent-icon"), Icon(icon, "")),
			H3(g.Text(a.Title)),
			P(Class("agent-tagline"), g.Text(a.Tagline)),
			Ul(
				Class("agent-highlights"),
				g.Group(g.Map(a.Highlights, func(h string) g.Node {
					return Li(Icon("lucide:zap", ""), Span(g.Text(h)))
				})),
			),
			CTAButton("预约演示", "outline"),
		),
	)
}
