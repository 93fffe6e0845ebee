package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/subrule"
	"fulfillment/internal/pkg/errs"
)

// UpsertSubstitutionRuleCommandHandler handles rule creation and edits.
// An existing rule for the same product/variant pair is replaced; otherwise
// a new rule is created under the command's rule ID.
type UpsertSubstitutionRuleCommandHandler struct {
	uowFactory RuleUoWFactory
}

// NewUpsertSubstitutionRuleCommandHandler creates a handler for rule upserts.
func NewUpsertSubstitutionRuleCommandHandler(uowFactory RuleUoWFactory) UpsertSubstitutionRuleCommandHandler {
	return UpsertSubstitutionRuleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the upsert command.
func (h UpsertSubstitutionRuleCommandHandler) Handle(ctx context.Context, cmd UpsertSubstitutionRuleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ruleRepo := uow.SubstitutionRuleRepository()

	existing, err := ruleRepo.GetForProduct(ctx, cmd.ProductID(), cmd.VariantID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	replaced := false
	for _, rule := range existing {
		if rule.ProductID() == cmd.ProductID() && rule.VariantID() == cmd.VariantID() {
			if err = rule.ReplaceCandidates(cmd.Candidates()); err != nil {
				return err
			}
			if err = ruleRepo.Update(ctx, rule); err != nil {
				return err
			}
			replaced = true
			break
		}
	}

	if !replaced {
		rule, err := subrule.NewRule(cmd.RuleID(), cmd.ProductID(), cmd.VariantID(), cmd.Candidates())
		if err != nil {
			return err
		}
		if err = ruleRepo.Add(ctx, rule); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
