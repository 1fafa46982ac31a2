package logic

import (
	"fmt"

	"github.com/hamza2masmoudi/BALE-project-sub001/pkg/bale/internalerr"
)

// Engine proves goal facts by backward chaining over registered rules.
//
// The fact store and derivation trace are append-only for the lifetime
// of the instance: a second Evaluate call on the same engine sees the
// facts memoized by the first and extends the same trace. Create a new
// engine for an independent session.
type Engine struct {
	rules []Rule
	facts map[string]Value
	trace []string

	// MaxDepth bounds proof recursion when > 0. Unbounded by default;
	// a cyclic rule set with no grounding fact then recurses until the
	// stack runs out.
	MaxDepth int
}

// New creates an empty engine.
func New() *Engine {
	return &Engine{
		facts: make(map[string]Value),
	}
}

// AddRule validates and appends a rule. Registration order is
// semantically significant: the first registered rule that can be
// proved for a goal wins.
func (e *Engine) AddRule(r Rule) error {
	if err := r.Validate(); err != nil {
		return err
	}
	e.rules = append(e.rules, r)
	return nil
}

// SetFact inserts or overwrites a fact. No guard distinguishes seeded
// from derived facts; a caller may overwrite a derived value and later
// proofs will use the overwritten one.
func (e *Engine) SetFact(name string, v Value) {
	e.facts[name] = v
}

// GetFact looks up a fact by name.
func (e *Engine) GetFact(name string) (Value, bool) {
	v, ok := e.facts[name]
	return v, ok
}

// Trace returns a copy of the derivation trace accumulated so far.
func (e *Engine) Trace() []string {
	out := make([]string, len(e.trace))
	copy(out, e.trace)
	return out
}

// Evaluate attempts to prove the goal fact by backward chaining.
//
// It returns (value, true, nil) when the goal is known or provable and
// (zero, false, nil) when it is not: an unproved goal is a normal
// result, not an error. A successful proof memoizes the conclusion in
// the fact store; failures are never memoized, since facts set later in
// the session could still make the goal provable. The only error
// condition is exceeding MaxDepth when one is configured.
func (e *Engine) Evaluate(goal string) (Value, bool, error) {
	return e.prove(goal, 0)
}

func (e *Engine) prove(goal string, depth int) (Value, bool, error) {
	if e.MaxDepth > 0 && depth > e.MaxDepth {
		return Value{}, false, fmt.Errorf("%w: proving %q at depth %d", internalerr.ErrDepthExceeded, goal, depth)
	}

	// Known facts short-circuit silently, whether seeded or derived.
	if v, ok := e.facts[goal]; ok {
		return v, true, nil
	}

	for _, rule := range e.rules {
		if rule.Conclusion.Name != goal {
			continue
		}
		e.trace = append(e.trace, fmt.Sprintf("Attempting to prove %s via Rule: %s", goal, rule.Name))

		met := true
		for _, cond := range rule.Conditions {
			actual, proved, err := e.prove(cond.Fact, depth+1)
			if err != nil {
				return Value{}, false, err
			}
			// An unproved sub-goal matches nothing: "unknown" is
			// distinct from a proven false.
			if !proved || !actual.Equal(cond.Is) {
				shown := "unknown"
				if proved {
					shown = actual.String()
				}
				e.trace = append(e.trace, fmt.Sprintf("  FAILED: %s is %s, needed %s", cond.Fact, shown, cond.Is))
				met = false
				break
			}
			e.trace = append(e.trace, fmt.Sprintf("  MATCH: %s is %s", cond.Fact, actual))
		}

		if met {
			result := rule.Conclusion.Value
			e.facts[goal] = result
			e.trace = append(e.trace, fmt.Sprintf("SUCCESS: Proven %s = %s", goal, result))
			return result, true, nil
		}
	}

	e.trace = append(e.trace, fmt.Sprintf("FAIL: Could not prove %s", goal))
	return Value{}, false, nil
}
