package contact

import "time"

// Form field names shared by the rendered form, the handler and validation.
const (
	FieldName        = "name"
	FieldContact     = "contact"
	FieldProjectType = "projectType"
	FieldBudget      = "budget"
	FieldDescription = "description"
)

// Submission is the snapshot of the contact form captured when the visitor
// submits it.
type Submission struct {
	Name        string    `json:"name"`
	Contact     string    `json:"contact"`
	ProjectType string    `json:"projectType"`
	Budget      string    `json:"budget"`
	Description string    `json:"description"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// Receipt is returned by an intake that accepted a submission.
type Receipt struct {
	ID         string
	Intake     string
	AcceptedAt time.Time
}
