package contact

import (
	"html"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"

	"github.com/wutian475-collab/wutian111/domain/catalog"
)

const (
	maxNameLen        = 64
	maxContactLen     = 128
	maxDescriptionLen = 2000
)

var strictPolicy = bluemonday.StrictPolicy()

// Raw holds the untrusted form values as posted.
type Raw struct {
	Name        string
	Contact     string
	ProjectType string
	Budget      string
	Description string
}

// clean strips all markup and surrounding whitespace. StrictPolicy escapes
// entities, so the result is unescaped back to plain text.
func clean(s string) string {
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
}

// Normalize converts raw form values into a Submission. Empty select values
// fall back to the first option of the form.
func Normalize(r Raw) Submission {
	s := Submission{
		Name:        clean(r.Name),
		Contact:     clean(r.Contact),
		ProjectType: strings.TrimSpace(r.ProjectType),
		Budget:      strings.TrimSpace(r.Budget),
		Description: clean(r.Description),
	}
	if s.ProjectType == "" {
		s.ProjectType = catalog.ProjectTypes()[0].Value
	}
	if s.Budget == "" {
		s.Budget = catalog.Budgets()[0].Value
	}
	return s
}

// Validate checks the required fields and the select values. It returns a
// *ValidationError or nil.
func Validate(s Submission) error {
	fields := map[string]string{}

	switch {
	case s.Name == "":
		fields[FieldName] = "请输入姓名"
	case utf8.RuneCountInString(s.Name) > maxNameLen:
		fields[FieldName] = "姓名过长"
	}
	switch {
	case s.Contact == "":
		fields[FieldContact] = "请输入联系方式"
	case utf8.RuneCountInString(s.Contact) > maxContactLen:
		fields[FieldContact] = "联系方式过长"
	}
	switch {
	case s.Description == "":
		fields[FieldDescription] = "请简要描述您的需求"
	case utf8.RuneCountInString(s.Description) > maxDescriptionLen:
		fields[FieldDescription] = "需求描述请控制在 2000 字以内"
	}
	if !hasOption(catalog.ProjectTypes(), s.ProjectType) {
		fields[FieldProjectType] = "请选择项目类型"
	}
	if !hasOption(catalog.Budgets(), s.Budget) {
		fields[FieldBudget] = "请选择预算范围"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func hasOption(opts []catalog.Option, v string) bool {
	for _, o := range opts {
		if o.Value == v {
			return true
		}
	}
	return false
}

// LooksLikeEmail reports whether the contact field can be used as a reply-to.
func LooksLikeEmail(s string) bool {
	at := strings.IndexByte(s, '@')
	return at > 0 && at < len(s)-1 && !strings.ContainsAny(s, " <>")
}
