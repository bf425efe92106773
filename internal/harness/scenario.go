package harness

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is a scripted end-to-end exercise of the board core, loaded
// from a YAML file. Scenarios seed a user directory, replay a sequence
// of board operations, and record a transcript for golden comparison.
type Scenario struct {
	// Name identifies the scenario; the golden file shares it.
	Name string `yaml:"name"`

	// Description explains what the scenario demonstrates.
	Description string `yaml:"description,omitempty"`

	// Users seeds the directory before any steps run.
	Users []UserSeed `yaml:"users"`

	// Steps are replayed in order.
	Steps []Step `yaml:"steps"`
}

// UserSeed describes one seeded account.
type UserSeed struct {
	ID             int    `yaml:"id"`
	Name           string `yaml:"name"`
	Password       string `yaml:"password"`
	Username       string `yaml:"username"`
	Email          string `yaml:"email"`
	AllowAnonymous bool   `yaml:"allow_anonymous,omitempty"`
	Admin          bool   `yaml:"admin,omitempty"`
}

// Step is one board operation.
//
// Op is one of: ask, answer, delete, inbox, outbox, thread.
// Actor is the acting user id. For ask, To/Text/Anonymous/Parent apply
// (Parent omitted or 0 means top-level). For answer and delete, ID names
// the question. For thread, ID names the parent.
type Step struct {
	Op        string `yaml:"op"`
	Actor     int    `yaml:"actor"`
	ID        int    `yaml:"id,omitempty"`
	To        int    `yaml:"to,omitempty"`
	Parent    int    `yaml:"parent,omitempty"`
	Anonymous bool   `yaml:"anonymous,omitempty"`
	Text      string `yaml:"text,omitempty"`
}

var validOps = map[string]bool{
	"ask":    true,
	"answer": true,
	"delete": true,
	"inbox":  true,
	"outbox": true,
	"thread": true,
}

// LoadScenario reads and validates a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}

	if s.Name == "" {
		return nil, fmt.Errorf("scenario %s: name is required", path)
	}
	if len(s.Users) == 0 {
		return nil, fmt.Errorf("scenario %s: at least one user is required", s.Name)
	}
	for i, step := range s.Steps {
		if !validOps[step.Op] {
			return nil, fmt.Errorf("scenario %s: step %d has unknown op %q", s.Name, i, step.Op)
		}
		if step.Actor <= 0 {
			return nil, fmt.Errorf("scenario %s: step %d needs an actor", s.Name, i)
		}
	}

	return &s, nil
}
