// Package logic implements a small backward-chaining deductive reasoner.
//
// Callers seed an Engine with facts, register implication rules, and ask
// it to prove a goal fact. Proof attempts are recorded in a readable
// derivation trace so a verdict can be audited after the fact.
//
// An Engine is not safe for concurrent use; rule slices are immutable
// data and may be shared read-only across engine instances.
package logic

import (
	"fmt"

	"github.com/hamza2masmoudi/BALE-project-sub001/pkg/bale/internalerr"
)

// Fact is a named assertion in the knowledge base.
type Fact struct {
	Name  string
	Value Value
}

// Condition is one required fact value in a rule's conjunction.
type Condition struct {
	Fact string
	Is   Value
}

// Rule is an implication: IF all conditions hold THEN assert the conclusion.
// Rules sharing a conclusion name are alternative proofs of the same goal;
// registration order expresses priority.
type Rule struct {
	Name       string
	Conditions []Condition
	Conclusion Fact

	// Strength is a reserved confidence weight in [0,1]. It is carried
	// for interface compatibility and is not consulted during evaluation.
	Strength float64
}

// NewRule builds a rule with the default strength of 1.0.
func NewRule(name string, conditions []Condition, conclusion Fact) Rule {
	return Rule{
		Name:       name,
		Conditions: conditions,
		Conclusion: conclusion,
		Strength:   1.0,
	}
}

// Validate checks the rule for structural problems. Evaluation assumes
// validated rules, so registration rejects anything malformed up front.
func (r Rule) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: missing rule name", internalerr.ErrInvalidRule)
	}
	if r.Conclusion.Name == "" {
		return fmt.Errorf("%w: rule %q has no conclusion fact", internalerr.ErrInvalidRule, r.Name)
	}
	if len(r.Conditions) == 0 {
		return fmt.Errorf("%w: rule %q has no conditions", internalerr.ErrInvalidRule, r.Name)
	}
	for i, c := range r.Conditions {
		if c.Fact == "" {
			return fmt.Errorf("%w: rule %q condition %d has no fact name", internalerr.ErrInvalidRule, r.Name, i)
		}
	}
	if r.Strength < 0 || r.Strength > 1 {
		return fmt.Errorf("%w: rule %q strength %g outside [0,1]", internalerr.ErrInvalidRule, r.Name, r.Strength)
	}
	return nil
}
