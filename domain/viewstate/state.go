// Package viewstate holds the per-visitor view state of the site and the
// transitions user events apply to it.
package viewstate

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/wutian475-collab/wutian111/domain/catalog"
	"github.com/wutian475-collab/wutian111/domain/contact"
)

// ScrollThreshold is the offset past which the navbar switches to its
// scrolled style.
const ScrollThreshold = 50

// PrimaryCTAAnchor is where the primary call-to-action leads.
const PrimaryCTAAnchor = "contact"

var (
	// ErrSubmitNotAllowed is returned for a submit while the form is busy or
	// showing its success notice.
	ErrSubmitNotAllowed = errors.New("submit not allowed in current form state")
	// ErrInvalidTransition is returned when a form transition does not apply.
	ErrInvalidTransition = errors.New("invalid form transition")
)

// FormStatus is the contact form lifecycle state.
type FormStatus string

const (
	FormIdle       FormStatus = "idle"
	FormSubmitting FormStatus = "submitting"
	FormSuccess    FormStatus = "success"
	// FormFailed is only reachable when the intake reports an error.
	FormFailed FormStatus = "failed"
)

var formTransitions = map[FormStatus][]FormStatus{
	FormIdle:       {FormSubmitting},
	FormSubmitting: {FormSuccess, FormFailed},
	FormSuccess:    {FormIdle},
	FormFailed:     {FormSubmitting, FormIdle},
}

// CanTransitionTo reports whether the form may move from s to next.
func (s FormStatus) CanTransitionTo(next FormStatus) bool {
	return slices.Contains(formTransitions[s], next)
}

// Busy reports whether the submit button must be disabled.
func (s FormStatus) Busy() bool {
	return s == FormSubmitting
}

// Settling reports whether the status will change without a visitor
// event, so views showing it should refresh.
func (s FormStatus) Settling() bool {
	return s == FormSubmitting || s == FormSuccess
}

// Failure describes why the last submission did not go through.
type Failure struct {
	Kind    contact.FailureKind
	Message string
}

// ViewState is everything that decides what one visitor currently sees.
type ViewState struct {
	ActiveCategory catalog.Category
	MenuOpen       bool
	Scrolled       bool
	FormStatus     FormStatus

	// Submission is the snapshot captured when the form entered submitting.
	Submission *contact.Submission
	// Failure is set only while FormStatus is FormFailed.
	Failure *Failure
	// FieldErrors holds validation messages from the last rejected submit.
	FieldErrors map[string]string
	// Draft keeps the posted values so a rejected form can be refilled.
	Draft contact.Raw
}

// New returns the initial view state.
func New() ViewState {
	return ViewState{
		ActiveCategory: catalog.CategoryAll,
		FormStatus:     FormIdle,
	}
}

// Clone returns a copy that shares no mutable data with v.
func (v ViewState) Clone() ViewState {
	if v.Submission != nil {
		s := *v.Submission
		v.Submission = &s
	}
	if v.Failure != nil {
		f := *v.Failure
		v.Failure = &f
	}
	v.FieldErrors = maps.Clone(v.FieldErrors)
	return v
}

// FilteredProducts projects the catalog through the active category.
func (v ViewState) FilteredProducts(products []catalog.Product) []catalog.Product {
	return catalog.FilterByCategory(products, v.ActiveCategory)
}

// SetActiveCategory overwrites the product filter. Selecting the current
// category is allowed and changes nothing.
func (v ViewState) SetActiveCategory(c catalog.Category) (ViewState, error) {
	if !c.Valid() {
		return v, fmt.Errorf("%w: %q", catalog.ErrUnknownCategory, c)
	}
	v.ActiveCategory = c
	return v, nil
}

// ToggleMenu opens or closes the mobile menu.
func (v ViewState) ToggleMenu() ViewState {
	v.MenuOpen = !v.MenuOpen
	return v
}

// FollowNavLink closes the menu and returns the anchor the link points at.
func (v ViewState) FollowNavLink(href string) (ViewState, string, error) {
	anchor, err := catalog.ResolveAnchor(href)
	if err != nil {
		return v, "", err
	}
	v.MenuOpen = false
	return v, anchor, nil
}

// InvokePrimaryCTA closes the menu; the page moves to the contact section.
func (v ViewState) InvokePrimaryCTA() ViewState {
	v.MenuOpen = false
	return v
}

// ObserveScroll records the latest vertical scroll offset.
func (v ViewState) ObserveScroll(offset float64) ViewState {
	v.Scrolled = offset > ScrollThreshold
	return v
}

// RejectSubmit records validation errors without leaving the current status.
func (v ViewState) RejectSubmit(fields map[string]string, draft contact.Raw) ViewState {
	v.FieldErrors = maps.Clone(fields)
	v.Draft = draft
	return v
}

// BeginSubmit moves the form to submitting and captures the snapshot.
func (v ViewState) BeginSubmit(s contact.Submission) (ViewState, error) {
	if !v.FormStatus.CanTransitionTo(FormSubmitting) {
		return v, fmt.Errorf("%w: form is %s", ErrSubmitNotAllowed, v.FormStatus)
	}
	v.FormStatus = FormSubmitting
	v.Submission = &s
	v.Failure = nil
	v.FieldErrors = nil
	v.Draft = contact.Raw{}
	return v, nil
}

// CompleteSubmit applies the intake outcome: success on nil, failed otherwise.
func (v ViewState) CompleteSubmit(intakeErr error) (ViewState, error) {
	next := FormSuccess
	if intakeErr != nil {
		next = FormFailed
	}
	if !v.FormStatus.CanTransitionTo(next) {
		return v, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, v.FormStatus, next)
	}
	v.FormStatus = next
	if intakeErr != nil {
		kind := contact.Classify(intakeErr)
		v.Failure = &Failure{Kind: kind, Message: contact.FailureMessage(kind)}
		// Keep the values so the visitor can retry without retyping.
		if v.Submission != nil {
			v.Draft = contact.Raw{
				Name:        v.Submission.Name,
				Contact:     v.Submission.Contact,
				ProjectType: v.Submission.ProjectType,
				Budget:      v.Submission.Budget,
				Description: v.Submission.Description,
			}
		}
	}
	return v, nil
}

// ResetForm returns the form from success or failed to idle.
func (v ViewState) ResetForm() (ViewState, error) {
	if !v.FormStatus.CanTransitionTo(FormIdle) {
		return v, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, v.FormStatus, FormIdle)
	}
	v.FormStatus = FormIdle
	v.Submission = nil
	v.Failure = nil
	return v, nil
}
