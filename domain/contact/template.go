package contact

import (
	"fmt"
	"strings"

	"github.com/aymerick/raymond"

	"github.com/wutian475-collab/wutian111/domain/catalog"
)

const leadSubjectTemplate = `新的合作需求：{{{name}}}（{{{projectType}}}）`

const leadTextTemplate = `新的合作需求

姓名：{{{name}}}
联系方式：{{{contact}}}
项目类型：{{{projectType}}}
预算范围：{{{budget}}}

项目描述：
{{{description}}}

提交时间：{{{submittedAt}}}
`

const leadHTMLTemplate = `<h2>新的合作需求</h2>
<table>
  <tr><td>姓名</td><td>{{name}}</td></tr>
  <tr><td>联系方式</td><td>{{contact}}</td></tr>
  <tr><td>项目类型</td><td>{{projectType}}</td></tr>
  <tr><td>预算范围</td><td>{{budget}}</td></tr>
</table>
<p>{{#each paragraphs}}{{this}}<br>{{/each}}</p>
<p><small>提交时间：{{submittedAt}}</small></p>
`

// LeadEmail is a rendered lead notification.
type LeadEmail struct {
	Subject string
	Text    string
	HTML    string
}

// leadRenderer renders lead emails with handlebars templates parsed once.
type leadRenderer struct {
	subject *raymond.Template
	text    *raymond.Template
	html    *raymond.Template
}

func newLeadRenderer() (*leadRenderer, error) {
	subject, err := raymond.Parse(leadSubjectTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse subject template: %w", err)
	}
	text, err := raymond.Parse(leadTextTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse text template: %w", err)
	}
	html, err := raymond.Parse(leadHTMLTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse html template: %w", err)
	}
	return &leadRenderer{subject: subject, text: text, html: html}, nil
}

func (r *leadRenderer) Render(s Submission) (LeadEmail, error) {
	ctx := map[string]any{
		"name":        s.Name,
		"contact":     s.Contact,
		"projectType": catalog.OptionLabel(catalog.ProjectTypes(), s.ProjectType),
		"budget":      catalog.OptionLabel(catalog.Budgets(), s.Budget),
		"description": s.Description,
		"paragraphs":  strings.Split(s.Description, "\n"),
		"submittedAt": s.SubmittedAt.Format("2006-01-02 15:04:05"),
	}

	var out LeadEmail
	var err error
	if out.Subject, err = r.subject.Exec(ctx); err != nil {
		return LeadEmail{}, fmt.Errorf("render subject: %w", err)
	}
	if out.Text, err = r.text.Exec(ctx); err != nil {
		return LeadEmail{}, fmt.Errorf("render text: %w", err)
	}
	if out.HTML, err = r.html.Exec(ctx); err != nil {
		return LeadEmail{}, fmt.Errorf("render html: %w", err)
	}
	return out, nil
}
