package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/subrule"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrUpsertSubstitutionRuleCommandIsNotConstructed = errors.New(
		"UpsertSubstitutionRuleCommand must be created via NewUpsertSubstitutionRuleCommand constructor",
	)
	ErrProductIsRequired    = errors.New("product id is required")
	ErrCandidatesAreInvalid = errors.New("at least one candidate with a product id is required")
)

// UpsertSubstitutionRuleCommand represents an admin creating or replacing
// the substitution rule for one product/variant pair.
type UpsertSubstitutionRuleCommand struct { //nolint:recvcheck //using for validation
	ruleID     kernel.UUID
	productID  string
	variantID  string
	candidates []subrule.Candidate

	guard guard.ConstructorGuard
}

// NewUpsertSubstitutionRuleCommand creates a command to upsert a rule.
func NewUpsertSubstitutionRuleCommand(
	ruleID kernel.UUID,
	productID, variantID string,
	candidates []subrule.Candidate,
) (UpsertSubstitutionRuleCommand, error) {
	cmd := UpsertSubstitutionRuleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRuleID(ruleID),
		cmd.setProductID(productID),
		cmd.setCandidates(candidates),
	); err != nil {
		return UpsertSubstitutionRuleCommand{}, err
	}

	cmd.variantID = variantID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpsertSubstitutionRuleCommand) Validate() error {
	return c.guard.Validate(ErrUpsertSubstitutionRuleCommandIsNotConstructed)
}

// RuleID returns the rule's identifier.
func (c UpsertSubstitutionRuleCommand) RuleID() kernel.UUID { return c.ruleID }

// ProductID returns the original product reference.
func (c UpsertSubstitutionRuleCommand) ProductID() string { return c.productID }

// VariantID returns the original variant reference, possibly empty.
func (c UpsertSubstitutionRuleCommand) VariantID() string { return c.variantID }

// Candidates returns the replacement candidate list.
func (c UpsertSubstitutionRuleCommand) Candidates() []subrule.Candidate {
	return append([]subrule.Candidate(nil), c.candidates...)
}

func (c *UpsertSubstitutionRuleCommand) setRuleID(ruleID kernel.UUID) error {
	if err := ruleID.Validate(); err != nil {
		return err
	}
	c.ruleID = ruleID
	return nil
}

func (c *UpsertSubstitutionRuleCommand) setProductID(productID string) error {
	if productID == "" {
		return ErrProductIsRequired
	}
	c.productID = productID
	return nil
}

func (c *UpsertSubstitutionRuleCommand) setCandidates(candidates []subrule.Candidate) error {
	if len(candidates) == 0 {
		return ErrCandidatesAreInvalid
	}
	for _, cand := range candidates {
		if cand.ProductID == "" {
			return ErrCandidatesAreInvalid
		}
	}
	c.candidates = append([]subrule.Candidate(nil), candidates...)
	return nil
}
