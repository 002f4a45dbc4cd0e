package environment

import (
	"errors"
	"strings"
)

// Environment identifies a deployment environment by its short code.
type Environment string

// Well-known deployment environments.
const (
	Development   Environment = "DEV"
	Build         Environment = "BLD"
	Integration   Environment = "INT"
	Acceptance    Environment = "ACC"
	PreProduction Environment = "PRE"
	Production    Environment = "PRD"
)

// ErrNoEnvironment is returned when no target environment has been selected.
var ErrNoEnvironment = errors.New("no target environment selected")

// rank orders the well-known environments. PreProduction and Production
// share the top rank.
var rank = map[Environment]int{
	Development:   1,
	Build:         2,
	Integration:   3,
	Acceptance:    4,
	PreProduction: 5,
	Production:    5,
}

var longNames = map[string]Environment{
	"DEVELOPMENT":   Development,
	"BUILD":         Build,
	"INTEGRATION":   Integration,
	"ACCEPTANCE":    Acceptance,
	"PREPRODUCTION": PreProduction,
	"PRODUCTION":    Production,
}

// All returns the well-known environments in ascending order.
func All() []Environment {
	return []Environment{Development, Build, Integration, Acceptance, PreProduction, Production}
}

// Parse converts a short code or a long environment name into an Environment.
// Matching is case-insensitive. Unknown non-empty codes are kept verbatim
// (upper-cased); they satisfy no tiered predicate.
func Parse(s string) (Environment, error) {
	code := strings.ToUpper(strings.TrimSpace(s))
	if code == "" {
		return "", ErrNoEnvironment
	}

	if env, ok := longNames[code]; ok {
		return env, nil
	}

	return Environment(code), nil
}

// String returns the short code.
func (e Environment) String() string {
	return string(e)
}

// IsKnown reports whether e is one of the well-known environments.
func (e Environment) IsKnown() bool {
	_, ok := rank[e]
	return ok
}

// atLeast reports whether e is a well-known environment ranked at or above min.
func (e Environment) atLeast(minimum Environment) bool {
	r, ok := rank[e]
	return ok && r >= rank[minimum]
}

func (e Environment) IsDevelopment() bool {
	return e == Development
}

func (e Environment) IsBuild() bool {
	return e == Build
}

func (e Environment) IsDevelopmentOrBuild() bool {
	return e == Development || e == Build
}

func (e Environment) IsIntegration() bool {
	return e == Integration
}

// IsIntegrationUpwards matches INT, ACC, PRE and PRD.
func (e Environment) IsIntegrationUpwards() bool {
	return e.atLeast(Integration)
}

func (e Environment) IsAcceptance() bool {
	return e == Acceptance
}

// IsAcceptanceUpwards matches ACC, PRE and PRD.
func (e Environment) IsAcceptanceUpwards() bool {
	return e.atLeast(Acceptance)
}

func (e Environment) IsPreProduction() bool {
	return e == PreProduction
}

// IsPreProductionUpwards matches PRE and PRD.
func (e Environment) IsPreProductionUpwards() bool {
	return e.atLeast(PreProduction)
}

func (e Environment) IsProduction() bool {
	return e == Production
}
