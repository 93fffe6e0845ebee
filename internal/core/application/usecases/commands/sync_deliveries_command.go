package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrSyncDeliveriesCommandIsNotConstructed = errors.New(
	"SyncDeliveriesCommand must be created via NewSyncDeliveriesCommand constructor",
)

// SyncDeliveriesCommand represents one delivery sync sweep: fetch today's
// planned stops from the routing platform, mirror routing details onto the
// matching orders, and mark delivered the packed orders whose stop is
// reported complete.
type SyncDeliveriesCommand struct {
	guard guard.ConstructorGuard
}

// NewSyncDeliveriesCommand creates a delivery sync command.
func NewSyncDeliveriesCommand() SyncDeliveriesCommand {
	return SyncDeliveriesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c SyncDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrSyncDeliveriesCommandIsNotConstructed)
}
