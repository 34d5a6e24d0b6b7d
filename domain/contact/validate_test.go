package contact

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRaw() Raw {
	return Raw{
		Name:        "张三",
		Contact:     "13800000000",
		ProjectType: "agent",
		Budget:      "5w-10w",
		Description: "想做一个企业知识库客服",
	}
}

func TestNormalize_StripsMarkupAndWhitespace(t *testing.T) {
	r := validRaw()
	r.Name = "  <b>张三</b> "
	r.Description = "<script>alert(1)</script>需要 AT&T 对接"

	s := Normalize(r)

	assert.Equal(t, "张三", s.Name)
	assert.Equal(t, "需要 AT&T 对接", s.Description)
}

func TestNormalize_DefaultsSelects(t *testing.T) {
	r := validRaw()
	r.ProjectType = ""
	r.Budget = " "

	s := Normalize(r)

	assert.Equal(t, "operation", s.ProjectType)
	assert.Equal(t, "1w-5w", s.Budget)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(r *Raw)
		wantFields []string
	}{
		{"valid", func(r *Raw) {}, nil},
		{"missing name", func(r *Raw) { r.Name = "   " }, []string{FieldName}},
		{"markup only contact", func(r *Raw) { r.Contact = "<i></i>" }, []string{FieldContact}},
		{"missing description", func(r *Raw) { r.Description = "" }, []string{FieldDescription}},
		{"all required missing", func(r *Raw) {
			r.Name, r.Contact, r.Description = "", "", ""
		}, []string{FieldName, FieldContact, FieldDescription}},
		{"unknown project type", func(r *Raw) { r.ProjectType = "mining" }, []string{FieldProjectType}},
		{"unknown budget", func(r *Raw) { r.Budget = "1000w" }, []string{FieldBudget}},
		{"description too long", func(r *Raw) { r.Description = strings.Repeat("字", 2001) }, []string{FieldDescription}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRaw()
			tt.mutate(&r)

			err := Validate(Normalize(r))
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Len(t, verr.Fields, len(tt.wantFields))
			for _, f := range tt.wantFields {
				assert.Contains(t, verr.Fields, f)
			}
		})
	}
}

func TestLooksLikeEmail(t *testing.T) {
	assert.True(t, LooksLikeEmail("lead@example.com"))
	assert.False(t, LooksLikeEmail("15706672666"))
	assert.False(t, LooksLikeEmail("@example.com"))
	assert.False(t, LooksLikeEmail("lead@"))
	assert.False(t, LooksLikeEmail("a b@example.com"))
}

func TestClassify(t *testing.T) {
	assert.Equal(t, FailureNone, Classify(nil))
	assert.Equal(t, FailureRejected, Classify(&ServerRejection{Status: 400}))
	assert.Equal(t, FailureTransport, Classify(&TransportError{Err: assert.AnError}))
	assert.Equal(t, FailureTransport, Classify(assert.AnError))
	assert.NotEmpty(t, FailureMessage(FailureRejected))
	assert.NotEqual(t, FailureMessage(FailureRejected), FailureMessage(FailureTransport))
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{FieldName: "x", FieldContact: "y"}}
	assert.Equal(t, "invalid submission: contact, name", err.Error())
}
