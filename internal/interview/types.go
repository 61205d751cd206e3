package interview

import "fmt"

// Role is the position the user is practicing for. It is shown in the
// settings form and recorded on the run; question selection does not
// branch on it.
type Role string

const (
	RoleSoftwareEngineer Role = "Software Engineer"
	RoleProductManager   Role = "Product Manager"
	RoleDataAnalyst      Role = "Data Analyst"
	RoleDesigner         Role = "Designer"
)

// Roles returns all selectable roles in display order.
func Roles() []Role {
	return []Role{RoleSoftwareEngineer, RoleProductManager, RoleDataAnalyst, RoleDesigner}
}

// Mode is the question category for a run.
type Mode string

const (
	ModeTechnical    Mode = "Technical"
	ModeBehavioral   Mode = "Behavioral"
	ModeSystemDesign Mode = "System Design"
)

// Modes returns all selectable modes in display order.
func Modes() []Mode {
	return []Mode{ModeTechnical, ModeBehavioral, ModeSystemDesign}
}

// Question count bounds for a run.
const (
	MinQuestions     = 1
	MaxQuestions     = 5
	DefaultQuestions = 3
)

// Settings holds the user's choices for one practice run. Frozen when the
// run starts; editing settings mid-run requires a reset.
type Settings struct {
	// Role is the position being practiced for.
	Role Role

	// Domain is an optional free-text focus area, e.g. "Python" or "React".
	// Empty means no domain.
	Domain string

	// Mode selects the question category.
	Mode Mode

	// NumQuestions is how many questions the run asks (1-5).
	NumQuestions int
}

// DefaultSettings returns the initial form values.
func DefaultSettings() Settings {
	return Settings{
		Role:         RoleSoftwareEngineer,
		Mode:         ModeTechnical,
		NumQuestions: DefaultQuestions,
	}
}

// Validate checks that the settings describe a startable run.
func (s Settings) Validate() error {
	switch s.Role {
	case RoleSoftwareEngineer, RoleProductManager, RoleDataAnalyst, RoleDesigner:
	default:
		return fmt.Errorf("unknown role %q", s.Role)
	}

	switch s.Mode {
	case ModeTechnical, ModeBehavioral, ModeSystemDesign:
	default:
		return fmt.Errorf("unknown mode %q", s.Mode)
	}

	if s.NumQuestions < MinQuestions || s.NumQuestions > MaxQuestions {
		return fmt.Errorf("number of questions must be between %d and %d, got %d", MinQuestions, MaxQuestions, s.NumQuestions)
	}

	return nil
}

// Result records one answered question. Created once per submitted answer
// and never mutated afterwards. Skipped questions produce no Result.
type Result struct {
	// Question is the question text as it was shown.
	Question string

	// Answer is the user's submitted answer.
	Answer string

	// Feedback is the evaluator's feedback text (or the fallback text
	// when the model call failed).
	Feedback string

	// Score is the score extracted from Feedback (0-10 scale).
	Score float64
}
