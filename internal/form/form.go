package form

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/thomas-vilte/tickety/internal/models"
)

// Step is a collapsible group of the add-ticket form.
type Step int

const (
	StepTitle Step = iota
	StepNumber
	StepContent
)

// Steps lists the groups in display and validation order.
var Steps = []Step{StepTitle, StepNumber, StepContent}

func (s Step) String() string {
	switch s {
	case StepTitle:
		return "title"
	case StepNumber:
		return "number"
	case StepContent:
		return "content"
	default:
		return "unknown"
	}
}

// fields mirrors the form inputs. Number is nil when the typed text is not an integer.
// The max bound is models.MaxTicketNumber.
type fields struct {
	Title   string `validate:"required"`
	Number  *int   `validate:"required,min=1,max=9007199254740991"`
	Content string `validate:"required"`
}

var stepByField = map[string]Step{
	"Title":   StepTitle,
	"Number":  StepNumber,
	"Content": StepContent,
}

var validate = validator.New()

// Form is the add-ticket state machine: one group is expanded at a time and
// a failed submit expands the first invalid group.
type Form struct {
	values     fields
	numberText string
	active     Step
	validated  bool
}

func New() *Form {
	return &Form{active: StepTitle}
}

func (f *Form) Expand(step Step) {
	f.active = step
}

func (f *Form) Active() Step {
	return f.active
}

// Validated reports whether a submit was attempted and failed, so errors should be shown.
func (f *Form) Validated() bool {
	return f.validated
}

func (f *Form) SetTitle(title string) {
	f.values.Title = title
}

// SetNumberText stores the raw number input; text that is not an integer leaves the number absent.
func (f *Form) SetNumberText(text string) {
	f.numberText = text
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		f.values.Number = nil
		return
	}
	f.values.Number = &n
}

func (f *Form) SetContent(content string) {
	f.values.Content = content
}

func (f *Form) Title() string      { return f.values.Title }
func (f *Form) NumberText() string { return f.numberText }
func (f *Form) Content() string    { return f.values.Content }

// Invalid reports whether step currently fails validation.
func (f *Form) Invalid(step Step) bool {
	for _, s := range f.invalidSteps() {
		if s == step {
			return true
		}
	}
	return false
}

// Submit returns the candidate when every group is valid. Otherwise it
// expands the first invalid group and reports false.
func (f *Form) Submit() (models.TicketCandidate, bool) {
	invalid := f.invalidSteps()
	if len(invalid) > 0 {
		f.validated = true
		f.active = invalid[0]
		return models.TicketCandidate{}, false
	}

	return models.TicketCandidate{
		Title:   f.values.Title,
		Number:  *f.values.Number,
		Content: f.values.Content,
	}, true
}

// Reset clears every input and expands the first group.
func (f *Form) Reset() {
	*f = Form{active: StepTitle}
}

// invalidSteps returns the failing groups in form order.
func (f *Form) invalidSteps() []Step {
	err := validate.Struct(f.values)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []Step{StepTitle}
	}

	failing := make(map[Step]bool, len(verrs))
	for _, fe := range verrs {
		if step, ok := stepByField[fe.StructField()]; ok {
			failing[step] = true
		}
	}

	var steps []Step
	for _, step := range Steps {
		if failing[step] {
			steps = append(steps, step)
		}
	}
	return steps
}
