package rulepack

import (
	"github.com/hamza2masmoudi/BALE-project-sub001/pkg/bale/logic"
)

// GoalValidForceMajeure is the top-level goal of the force majeure pack.
const GoalValidForceMajeure = "is_valid_force_majeure"

// ForceMajeure returns the Article 1218 (French Civil Code) force
// majeure test: a valid force majeure event must be external,
// unforeseeable and irresistible simultaneously. The auxiliary rules
// encode classic case-law exclusions that derive a negative for one of
// the three prongs, defeating the main definition.
func ForceMajeure() Pack {
	return Pack{
		Name: "force-majeure",
		Goal: GoalValidForceMajeure,
		Rules: []logic.Rule{
			logic.NewRule(
				"Valid Force Majeure Definition",
				[]logic.Condition{
					{Fact: "is_external", Is: logic.Bool(true)},
					{Fact: "is_unforeseeable", Is: logic.Bool(true)},
					{Fact: "is_irresistible", Is: logic.Bool(true)},
				},
				logic.Fact{Name: GoalValidForceMajeure, Value: logic.Bool(true)},
			),
			// Economic hardship (imprévision) is never force majeure:
			// a cost increase can be resisted, however painfully.
			logic.NewRule(
				"Economic Hardship Exclusion",
				[]logic.Condition{
					{Fact: "is_economic_change", Is: logic.Bool(true)},
				},
				logic.Fact{Name: "is_irresistible", Value: logic.Bool(false)},
			),
			// A strike internal to the debtor's own workforce is not
			// external to the debtor.
			logic.NewRule(
				"Internal Strike Exclusion",
				[]logic.Condition{
					{Fact: "is_strike", Is: logic.Bool(true)},
					{Fact: "is_internal_dispute", Is: logic.Bool(true)},
				},
				logic.Fact{Name: "is_external", Value: logic.Bool(false)},
			),
			// Pandemics stopped being unforeseeable for contracts
			// signed after 2020.
			logic.NewRule(
				"Covid Predictability",
				[]logic.Condition{
					{Fact: "is_pandemic", Is: logic.Bool(true)},
					{Fact: "contract_date_post_2020", Is: logic.Bool(true)},
				},
				logic.Fact{Name: "is_unforeseeable", Value: logic.Bool(false)},
			),
		},
	}
}
