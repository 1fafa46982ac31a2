// Package rulepack provides domain rule sets for the logic engine.
//
// A pack is pure data: an ordered list of rules plus the name of the
// goal the pack is meant to prove. Packs keep the engine itself
// domain-agnostic; a different legal doctrine or jurisdiction is just
// another pack fed to the same engine. Packs ship either as Go
// constructors (see ForceMajeure) or as YAML files loaded at runtime.
package rulepack

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hamza2masmoudi/BALE-project-sub001/pkg/bale/internalerr"
	"github.com/hamza2masmoudi/BALE-project-sub001/pkg/bale/logic"
)

// Pack is an ordered, immutable rule set with a designated goal.
type Pack struct {
	Name  string
	Goal  string
	Rules []logic.Rule
}

// Apply registers the pack's rules on the engine in pack order.
func (p Pack) Apply(e *logic.Engine) error {
	for _, r := range p.Rules {
		if err := e.AddRule(r); err != nil {
			return fmt.Errorf("pack %q: %w", p.Name, err)
		}
	}
	return nil
}

// packFile is the YAML schema for a rule pack.
//
//	name: force-majeure
//	goal: is_valid_force_majeure
//	rules:
//	  - name: Valid Force Majeure Definition
//	    if:
//	      - fact: is_external
//	        is: true
//	    then:
//	      fact: is_valid_force_majeure
//	      is: true
//	    strength: 1.0
type packFile struct {
	Name  string     `yaml:"name"`
	Goal  string     `yaml:"goal"`
	Rules []ruleFile `yaml:"rules"`
}

type ruleFile struct {
	Name     string     `yaml:"name"`
	If       []condFile `yaml:"if"`
	Then     condFile   `yaml:"then"`
	Strength *float64   `yaml:"strength"`
}

type condFile struct {
	Fact string `yaml:"fact"`
	Is   any    `yaml:"is"`
}

// LoadPack reads a YAML rule pack from disk.
func LoadPack(path string) (Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Pack{}, err
	}
	return ParsePack(data)
}

// ParsePack decodes a YAML rule pack and validates every rule.
func ParsePack(data []byte) (Pack, error) {
	var pf packFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return Pack{}, fmt.Errorf("%w: %v", internalerr.ErrInvalidConfig, err)
	}
	if pf.Name == "" {
		return Pack{}, fmt.Errorf("%w: pack has no name", internalerr.ErrInvalidConfig)
	}
	if len(pf.Rules) == 0 {
		return Pack{}, fmt.Errorf("%w: pack %q has no rules", internalerr.ErrInvalidConfig, pf.Name)
	}

	pack := Pack{Name: pf.Name, Goal: pf.Goal, Rules: make([]logic.Rule, 0, len(pf.Rules))}
	for i, rf := range pf.Rules {
		conds := make([]logic.Condition, 0, len(rf.If))
		for _, cf := range rf.If {
			v, err := logic.FromAny(cf.Is)
			if err != nil {
				return Pack{}, fmt.Errorf("%w: pack %q rule %d condition %q: %v",
					internalerr.ErrInvalidConfig, pf.Name, i, cf.Fact, err)
			}
			conds = append(conds, logic.Condition{Fact: cf.Fact, Is: v})
		}

		cv, err := logic.FromAny(rf.Then.Is)
		if err != nil {
			return Pack{}, fmt.Errorf("%w: pack %q rule %d conclusion %q: %v",
				internalerr.ErrInvalidConfig, pf.Name, i, rf.Then.Fact, err)
		}

		rule := logic.NewRule(rf.Name, conds, logic.Fact{Name: rf.Then.Fact, Value: cv})
		if rf.Strength != nil {
			rule.Strength = *rf.Strength
		}
		if err := rule.Validate(); err != nil {
			return Pack{}, fmt.Errorf("pack %q rule %d: %w", pf.Name, i, err)
		}
		pack.Rules = append(pack.Rules, rule)
	}
	return pack, nil
}

// FactsFromJSON decodes a flat JSON object of scalar assertions into
// typed fact values. This is the bridge format: the clerk stage of the
// debate pipeline emits an object like
//
//	{"is_external": true, "is_unforeseeable": true, "is_irresistible": false}
//
// whose members seed the engine's fact store.
func FactsFromJSON(data []byte) (map[string]logic.Value, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrInvalidConfig, err)
	}
	facts := make(map[string]logic.Value, len(raw))
	for name, rv := range raw {
		v, err := logic.FromAny(rv)
		if err != nil {
			return nil, fmt.Errorf("%w: fact %q: %v", internalerr.ErrInvalidConfig, name, err)
		}
		facts[name] = v
	}
	return facts, nil
}
