package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/wutian475-collab/wutian111/domain/catalog"
	"github.com/wutian475-collab/wutian111/domain/contact"
	"github.com/wutian475-collab/wutian111/domain/viewstate"
)

// ContactSection renders the contact info and the form panel.
func ContactSection(channels catalog.ContactChannels, state viewstate.ViewState) g.Node {
	return Section(
		ID("contact"),
		Class("section contact"),
		Div(
			Class("container contact-grid"),
			ContactInfo(channels),
			ContactPanel(state),
		),
	)
}

func ContactInfo(c catalog.ContactChannels) g.Node {
	return Div(
		Class("contact-info"),
		H2(g.Text("准备好开启"), Br(), g.Text("您的商业增长之旅了吗？")),
		P(g.Text("无论您是需要全案代运营，还是希望打造专属 AI 智能体，商途 AI 都在这里为您服务。填写表单，我们将在 24 小时内与您联系。")),
		Div(
			Class("contact-channels"),
			contactChannel("lucide:mail", "发送邮件",
				A(Href("mailto:"+c.Email), g.Text(c.Email)),
			),
			contactChannel("lucide:phone", "电话 / 微信",
				A(Href("tel:"+c.Phone), g.Text(c.Phone)),
				Span(Class("contact-wechat"), g.Text("Wechat: "+c.WeChat)),
			),
			contactChannel("lucide:users", "社交媒体",
				g.Group(g.Map(c.Social, func(s catalog.SocialLink) g.Node {
					return A(Href(s.URL), g.Attr("target", "_blank"), Rel("noopener noreferrer"), g.Text(s.Label))
				})),
			),
		),
	)
}

func contactChannel(icon, label string, children ...g.Node) g.Node {
	return Div(
		Class("contact-channel"),
		Div(Class("contact-channel-icon"), Icon(icon, "")),
		Div(
			P(Class("contact-channel-label"), g.Text(label)),
			Div(Class("contact-channel-value"), g.Group(children)),
		),
	)
}

// ContactPanel is the swappable part of the contact section. While a
// submission is in flight or on hold it polls /ui/contact until the status
// settles. A failed panel holds an editable form and does not poll.
func ContactPanel(state viewstate.ViewState) g.Node {
	polling := state.FormStatus.Settling()

	var body g.Node
	switch state.FormStatus {
	case viewstate.FormSuccess:
		body = SuccessNotice()
	case viewstate.FormFailed:
		body = g.Group{FailureNotice(state.Failure), ContactForm(state)}
	default:
		body = ContactForm(state)
	}

	return Div(
		ID("contact-panel"),
		Class("contact-panel"),
		g.Attr("data-form-status", string(state.FormStatus)),
		g.If(polling, hx("get", "/ui/contact")),
		g.If(polling, hx("trigger", "every 1s")),
		g.If(polling, hx("swap", "outerHTML")),
		body,
	)
}

func SuccessNotice() g.Node {
	return Div(
		Class("contact-success"),
		g.Attr("role", "status"),
		Div(Class("contact-success-icon"), Icon("lucide:check-circle-2", "")),
		H3(g.Text("需求已提交")),
		P(g.Text("感谢您的信任，我们会在 24 小时内通过您预留的联系方式与您取得联系。")),
	)
}

func FailureNotice(f *viewstate.Failure) g.Node {
	msg := contact.FailureMessage(contact.FailureTransport)
	kind := string(contact.FailureTransport)
	if f != nil {
		msg, kind = f.Message, string(f.Kind)
	}
	return Div(
		Class("contact-failure"),
		g.Attr("role", "alert"),
		g.Attr("data-failure-kind", kind),
		Icon("lucide:alert-triangle", ""),
		P(g.Text(msg)),
	)
}

func ContactForm(state viewstate.ViewState) g.Node {
	busy := state.FormStatus.Busy()
	draft := state.Draft
	if busy && state.Submission != nil {
		s := state.Submission
		draft = contact.Raw{Name: s.Name, Contact: s.Contact, ProjectType: s.ProjectType, Budget: s.Budget, Description: s.Description}
	}
	errs := state.FieldErrors

	label := "提交需求"
	if busy {
		label = "提交中..."
	}

	return Form(
		ID("contact-form"),
		Class("contact-form"),
		Method("post"),
		Action("/contact"),
		hx("post", "/contact"),
		hx("target", "#contact-panel"),
		hx("swap", "outerHTML"),

		Div(
			Class("form-row"),
			textField(contact.FieldName, "您的姓名", "请输入姓名", draft.Name, errs),
			textField(contact.FieldContact, "联系方式", "电话 / 微信", draft.Contact, errs),
		),
		Div(
			Class("form-row"),
			selectField(contact.FieldProjectType, "项目类型", catalog.ProjectTypes(), draft.ProjectType, errs),
			selectField(contact.FieldBudget, "预算范围", catalog.Budgets(), draft.Budget, errs),
		),
		Div(
			Class("form-field"),
			Label(g.Attr("for", fieldID(contact.FieldDescription)), g.Text("项目描述")),
			Textarea(
				ID(fieldID(contact.FieldDescription)),
				Name(contact.FieldDescription),
				g.Attr("rows", "4"),
				g.Attr("required"),
				Placeholder("请简要描述您的需求或痛点..."),
				g.Text(draft.Description),
			),
			fieldError(contact.FieldDescription, errs),
		),
		Button(
			Type("submit"),
			Class("btn btn-primary btn-block"),
			g.If(busy, g.Attr("disabled")),
			g.Text(label),
		),
	)
}

func textField(name, label, placeholder, value string, errs map[string]string) g.Node {
	return Div(
		Class("form-field"),
		Label(g.Attr("for", fieldID(name)), g.Text(label)),
		Input(
			ID(fieldID(name)),
			Name(name),
			Type("text"),
			g.Attr("required"),
			Placeholder(placeholder),
			Value(value),
		),
		fieldError(name, errs),
	)
}

func selectField(name, label string, opts []catalog.Option, value string, errs map[string]string) g.Node {
	return Div(
		Class("form-field"),
		Label(g.Attr("for", fieldID(name)), g.Text(label)),
		Select(
			ID(fieldID(name)),
			Name(name),
			g.Group(g.Map(opts, func(o catalog.Option) g.Node {
				return Option(Value(o.Value), g.If(o.Value == value, g.Attr("selected")), g.Text(o.Label))
			})),
		),
		fieldError(name, errs),
	)
}

// fieldID keeps control ids apart from the section anchors; "contact" is both
// a field name and a section.
func fieldID(name string) string {
	return "field-" + name
}

func fieldError(name string, errs map[string]string) g.Node {
	msg, ok := errs[name]
	if !ok {
		return nil
	}
	return P(Class("field-error"), g.Attr("data-field", name), g.Text(msg))
}
