package contact

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ValidationError reports missing or malformed form fields. Fields maps the
// form field name to a visitor-facing message.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		names = append(names, k)
	}
	sort.Strings(names)
	return "invalid submission: " + strings.Join(names, ", ")
}

// TransportError wraps a network or timeout failure talking to the intake.
type TransportError struct {
	Intake string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s intake unreachable: %v", e.Intake, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ServerRejection is returned when the intake answered but refused the
// submission.
type ServerRejection struct {
	Intake string
	Status int
	Reason string
}

func (e *ServerRejection) Error() string {
	return fmt.Sprintf("%s intake rejected submission (status %d): %s", e.Intake, e.Status, e.Reason)
}

// FailureKind classifies an intake error for display.
type FailureKind string

const (
	FailureNone      FailureKind = ""
	FailureTransport FailureKind = "transport"
	FailureRejected  FailureKind = "rejected"
)

// Classify maps an intake error to its FailureKind. Unknown errors count as
// transport failures since the outcome at the intake is unknown.
func Classify(err error) FailureKind {
	if err == nil {
		return FailureNone
	}
	var rej *ServerRejection
	if errors.As(err, &rej) {
		return FailureRejected
	}
	return FailureTransport
}

// FailureMessage is the visitor-facing text for a failure kind.
func FailureMessage(kind FailureKind) string {
	switch kind {
	case FailureRejected:
		return "提交未被受理，请检查填写内容或直接通过电话 / 微信联系我们。"
	case FailureTransport:
		return "网络繁忙，提交失败，请稍后重试。"
	default:
		return ""
	}
}
