package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrImportOrdersCommandIsNotConstructed = errors.New(
	"ImportOrdersCommand must be created via NewImportOrdersCommand constructor",
)

// ImportOrdersCommand represents one ingestion sweep: fetch the open orders
// from the commerce platform, create the unseen ones, and dispatch each new
// order to the least busy picker. The sweep is idempotent by external
// reference; carries no parameters.
type ImportOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewImportOrdersCommand creates an import sweep command.
func NewImportOrdersCommand() ImportOrdersCommand {
	return ImportOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ImportOrdersCommand) Validate() error {
	return c.guard.Validate(ErrImportOrdersCommandIsNotConstructed)
}
