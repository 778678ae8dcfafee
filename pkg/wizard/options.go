package wizard

import (
	"strings"

	"github.com/google/uuid"

	"github.com/goliatone/go-surveymodel/pkg/model"
)

// Option configures a Wizard.
type Option func(*Wizard)

// WithPromptDriver overrides the terminal driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(w *Wizard) {
		if driver != nil {
			w.driver = driver
		}
	}
}

// WithRegistry selects the registry whose kinds are offered and whose
// constraint tables validate answers.
func WithRegistry(reg *model.Registry) Option {
	return func(w *Wizard) {
		if reg != nil {
			w.registry = reg
		}
	}
}

// WithNameGenerator replaces the generator used for blank question names.
func WithNameGenerator(fn func() string) Option {
	return func(w *Wizard) {
		if fn != nil {
			w.names = fn
		}
	}
}

func generatedName() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "question_" + id[:12]
}
