package order

import "time"

// Log entry kinds. Stored as plain strings inside the order document so
// the activity feed can render unknown kinds without migration.
const (
	LogImported      = "imported"
	LogPick          = "pick"
	LogUnpick        = "unpick"
	LogPickFlag      = "pickFlag"
	LogSubstitution  = "substitution"
	LogUndoPick      = "undoPick"
	LogPack          = "pack"
	LogUnpack        = "unpack"
	LogPackFlag      = "packFlag"
	LogSubConfirmed  = "subConfirmed"
	LogUndoPack      = "undoPack"
	LogRefund        = "refund"
	LogPickComplete  = "pickComplete"
	LogPackStarted   = "packStarted"
	LogPackComplete  = "packComplete"
	LogDelivered     = "delivered"
	LogApproved      = "approved"
	LogToteAssigned  = "toteAssigned"
	LogToteRemoved   = "toteRemoved"
	LogPhotoAdded    = "photoAdded"
	LogPhotoRemoved  = "photoRemoved"
	LogNotesUpdated  = "notesUpdated"
	LogDeliverySync  = "deliverySync"
	LogPickerChanged = "pickerChanged"
	LogPackerChanged = "packerChanged"
)

// LogEntry is one line in the order's append-only activity feed.
// Entries are written by the aggregate on every mutation and persisted as
// part of the order document; they are never edited or removed.
type LogEntry struct {
	Kind string
	// ItemRef is the affected line item's external reference, empty for
	// order-level events.
	ItemRef string
	// Actor is the operator name or system identity that performed the action.
	Actor string
	// Message is a human-readable summary for the activity feed.
	Message string
	At      time.Time
}
