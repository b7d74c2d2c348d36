package environment

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownEnvironment is returned by Parse for names it does not recognize.
var ErrUnknownEnvironment = errors.New("unknown environment")

// Environment represents application environment.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
	// Test is used by integration tests against real databases.
	Test Environment = "test"
)

// Parse maps a name or its short alias to an Environment. Matching ignores
// case and surrounding spaces; an empty name means Development.
func Parse(name string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "dev", string(Development):
		return Development, nil
	case "stage", string(Staging):
		return Staging, nil
	case "prod", string(Production):
		return Production, nil
	case string(Test):
		return Test, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEnvironment, name)
}

func (e *Environment) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

func (e Environment) String() string { return string(e) }

// IsProduction also holds for staging: both run with production defaults.
func (e Environment) IsProduction() bool { return e == Production || e == Staging }
