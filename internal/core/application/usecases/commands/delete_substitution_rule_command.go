package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrDeleteSubstitutionRuleCommandIsNotConstructed = errors.New(
	"DeleteSubstitutionRuleCommand must be created via NewDeleteSubstitutionRuleCommand constructor",
)

// DeleteSubstitutionRuleCommand represents an admin removing a rule.
type DeleteSubstitutionRuleCommand struct { //nolint:recvcheck //using for validation
	ruleID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteSubstitutionRuleCommand creates a command to delete a rule.
func NewDeleteSubstitutionRuleCommand(ruleID kernel.UUID) (DeleteSubstitutionRuleCommand, error) {
	cmd := DeleteSubstitutionRuleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRuleID(ruleID); err != nil {
		return DeleteSubstitutionRuleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteSubstitutionRuleCommand) Validate() error {
	return c.guard.Validate(ErrDeleteSubstitutionRuleCommandIsNotConstructed)
}

// RuleID returns the rule's identifier.
func (c DeleteSubstitutionRuleCommand) RuleID() kernel.UUID { return c.ruleID }

func (c *DeleteSubstitutionRuleCommand) setRuleID(ruleID kernel.UUID) error {
	if err := ruleID.Validate(); err != nil {
		return err
	}
	c.ruleID = ruleID
	return nil
}
