package commands

import (
	"context"
)

// DeleteSubstitutionRuleCommandHandler handles rule deletion.
type DeleteSubstitutionRuleCommandHandler struct {
	uowFactory RuleUoWFactory
}

// NewDeleteSubstitutionRuleCommandHandler creates a handler for rule deletion.
func NewDeleteSubstitutionRuleCommandHandler(uowFactory RuleUoWFactory) DeleteSubstitutionRuleCommandHandler {
	return DeleteSubstitutionRuleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command.
func (h DeleteSubstitutionRuleCommandHandler) Handle(ctx context.Context, cmd DeleteSubstitutionRuleCommand) error {
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

	if err := uow.SubstitutionRuleRepository().Delete(ctx, cmd.RuleID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
