package order

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// SystemActor is recorded in the activity log for mutations performed by
// background jobs rather than a named operator.
const SystemActor = "system"

// Order is the aggregate root for one customer order moving through the
// warehouse: imported, picked item by item, packed into boxes, handed to the
// delivery platform.
//
// Order maintains these invariants:
//   - the external reference is unique per order and immutable
//   - every quantity mutation goes through a line item, which clamps it
//   - the status only moves forward, except that packing can be re-claimed
//   - a tote appears at most once on the order
//   - every mutation appends an activity log entry
//
// All fields are private; state changes only through methods so the
// invariants above cannot be bypassed.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// externalRef is the commerce platform's order ID, unique across orders
	externalRef string

	// number is the human-facing order number shown on boards
	number string

	// customerName is captured at import for display
	customerName string

	// status is the current lifecycle state
	status Status

	// pickerID is the assigned picker (nil until dispatch)
	pickerID *kernel.UUID

	// packerID is the operator who claimed packing (nil until StartPacking)
	packerID *kernel.UUID

	lineItems []*LineItem

	// toteIDs are the totes currently holding this order's picked goods
	toteIDs []kernel.UUID

	delivery *Delivery
	photos   []Photo

	// boxCount is the number of shipping boxes, set at pack completion
	boxCount int

	adminNote string

	approved bool

	logs []LogEntry

	// version backs optimistic concurrency control in the repository
	version int

	guard guard.ConstructorGuard
}

// NewOrder creates an order from an imported payload. The line items must
// already be constructed; the order starts in New status with an "imported"
// log entry.
//
// Returns a validation error when the ID, external reference, or line items
// are missing.
func NewOrder(id kernel.UUID, externalRef, number, customerName string, lineItems []*LineItem) (*Order, error) {
	o := &Order{
		status: New,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setExternalRef(externalRef),
		o.setLineItems(lineItems),
	); err != nil {
		return nil, err
	}

	o.number = number
	o.customerName = customerName
	o.appendLog(LogImported, "", SystemActor, fmt.Sprintf("order %s imported with %d line items", number, len(lineItems)))
	return o, nil
}

// RestoreOrder reconstructs an order from persistence without re-running
// import side effects. The stored version is kept so the repository can
// perform its compare-and-swap update.
func RestoreOrder(
	id kernel.UUID,
	externalRef, number, customerName string,
	status Status,
	pickerID, packerID *kernel.UUID,
	lineItems []*LineItem,
	toteIDs []kernel.UUID,
	delivery *Delivery,
	photos []Photo,
	boxCount int,
	adminNote string,
	approved bool,
	logs []LogEntry,
	version int,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setExternalRef(externalRef),
		o.setLineItems(lineItems),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	o.number = number
	o.customerName = customerName
	o.status = status
	o.pickerID = pickerID
	o.packerID = packerID
	o.toteIDs = append([]kernel.UUID(nil), toteIDs...)
	o.delivery = delivery
	o.photos = append([]Photo(nil), photos...)
	o.boxCount = boxCount
	o.adminNote = adminNote
	o.approved = approved
	o.logs = append([]LogEntry(nil), logs...)
	o.version = version
	return o, nil
}

// Validate ensures the Order instance was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// ExternalRef returns the commerce platform's order ID.
func (o *Order) ExternalRef() string { return o.externalRef }

// Number returns the human-facing order number.
func (o *Order) Number() string { return o.number }

// CustomerName returns the customer display name captured at import.
func (o *Order) CustomerName() string { return o.customerName }

// Status returns the current lifecycle state.
func (o *Order) Status() Status { return o.status }

// Picker returns the assigned picker's ID, nil if unassigned.
func (o *Order) Picker() *kernel.UUID { return o.pickerID }

// Packer returns the packing operator's ID, nil until packing is claimed.
func (o *Order) Packer() *kernel.UUID { return o.packerID }

// LineItems returns the order's line items. The slice is a copy but the
// items are shared; callers must not mutate them directly.
func (o *Order) LineItems() []*LineItem {
	return append([]*LineItem(nil), o.lineItems...)
}

// ToteIDs returns a copy of the assigned tote IDs.
func (o *Order) ToteIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), o.toteIDs...)
}

// Delivery returns the mirrored routing details, nil before the first sync.
func (o *Order) Delivery() *Delivery { return o.delivery }

// Photos returns a copy of the packing evidence photos.
func (o *Order) Photos() []Photo {
	return append([]Photo(nil), o.photos...)
}

// BoxCount returns the number of shipping boxes, zero before pack completion.
func (o *Order) BoxCount() int { return o.boxCount }

// AdminNote returns the order-level admin note.
func (o *Order) AdminNote() string { return o.adminNote }

// Approved reports whether an admin signed off the order's exceptions.
func (o *Order) Approved() bool { return o.approved }

// Logs returns a copy of the activity feed, oldest first.
func (o *Order) Logs() []LogEntry {
	return append([]LogEntry(nil), o.logs...)
}

// Version returns the persisted version used for optimistic concurrency.
func (o *Order) Version() int { return o.version }

// TotalQuantity sums the ordered quantities across all line items. Used by
// the dispatcher to weigh picker workload.
func (o *Order) TotalQuantity() int {
	total := 0
	for _, li := range o.lineItems {
		total += li.Quantity()
	}
	return total
}

// PickItem adds up to delta verified units to the item's picking bucket.
// The first picking mutation moves a New order to Picking.
// Returns the delta actually applied after clamping.
func (o *Order) PickItem(itemRef string, delta int, actor string) (int, error) {
	li, err := o.findItem(itemRef)
	if err != nil {
		return 0, err
	}

	applied, err := li.AddPickVerified(delta)
	if err != nil {
		return 0, err
	}

	o.status = o.status.RatchetPicking()
	o.appendLog(LogPick, itemRef, actor, fmt.Sprintf("picked %d x %s", applied, li.Name()))
	return applied, nil
}

// UnpickItem removes up to delta verified units from the item's picking
// bucket, clearing the picked flag when the total drops below the quantity.
func (o *Order) UnpickItem(itemRef string, delta int, actor string) (int, error) {
	li, err := o.findItem(itemRef)
	if err != nil {
		return 0, err
	}

	applied, err := li.RemovePickVerified(delta)
	if err != nil {
		return 0, err
	}

	o.status = o.status.RatchetPicking()
	o.appendLog(LogUnpick, itemRef, actor, fmt.Sprintf("unpicked %d x %s", applied, li.Name()))
	return applied, nil
}

// FlagPickException records qty units as damaged or out of stock at picking.
// The exception counts toward the item's picked total.
func (o *Order) FlagPickException(itemRef string, reason ExceptionReason, qty int, actor string) (int, error) {
	li, err := o.findItem(itemRef)
	if err != nil {
		return 0, err
	}

	applied, err := li.FlagPickException(reason, qty)
	if err != nil {
		return 0, err
	}

	o.status = o.status.RatchetPicking()
	o.appendLog(LogPickFlag, itemRef, actor, fmt.Sprintf("flagged %d x %s as %s", applied, li.Name(), reason))
	return applied, nil
}

// RecordSubstitution attaches a substitute product to the item and marks it
// picked. The substitution is a picking-stage decision; the inventory swap
// happens only when packing confirms it.
func (o *Order) RecordSubstitution(itemRef string, reason ExceptionReason, sub Substitute, actor string) error {
	li, err := o.findItem(itemRef)
	if err != nil {
		return err
	}

	if err := li.RecordSubstitution(reason, sub); err != nil {
		return err
	}

	o.status = o.status.RatchetPicking()
	o.appendLog(LogSubstitution, itemRef, actor, fmt.Sprintf("substituted %s with product %s", li.Name(), sub.ProductID))
	return nil
}

// ConfirmSubstitution marks a recorded substitution as used at packing and
// returns the substitute reference for the inventory adjustment.
func (o *Order) ConfirmSubstitution(itemRef string, actor string) (Substitute, error) {
	li, err := o.findItem(itemRef)
	if err != nil {
		return Substitute{}, err
	}

	sub, err := li.ConfirmSubstitution()
	if err != nil {
		return Substitute{}, err
	}

	o.status = o.status.RatchetPacking()
	o.appendLog(LogSubConfirmed, itemRef, actor, fmt.Sprintf("substitution confirmed for %s", li.Name()))
	return sub, nil
}

// UndoItemPick zeroes the item's picking buckets and clears its picked flag
// and any recorded substitution. The order status is left unchanged; an
// order already in Picking stays there even if no picked units remain.
func (o *Order) UndoItemPick(itemRef string, actor string) error {
	li, err := o.findItem(itemRef)
	if err != nil {
		return err
	}

	li.UndoPick()
	o.appendLog(LogUndoPick, itemRef, actor, fmt.Sprintf("pick reset for %s", li.Name()))
	return nil
}

// PackItem adds up to delta verified units to the item's packing bucket.
// The first packing mutation moves a Picked order to Packing.
func (o *Order) PackItem(itemRef string, delta int, actor string) (int, error) {
	li, err := o.findItem(itemRef)
	if err != nil {
		return 0, err
	}

	applied, err := li.AddPackVerified(delta)
	if err != nil {
		return 0, err
	}

	o.status = o.status.RatchetPacking()
	o.appendLog(LogPack, itemRef, actor, fmt.Sprintf("packed %d x %s", applied, li.Name()))
	return applied, nil
}

// UnpackItem removes up to delta verified units from the item's packing bucket.
func (o *Order) UnpackItem(itemRef string, delta int, actor string) (int, error) {
	li, err := o.findItem(itemRef)
	if err != nil {
		return 0, err
	}

	applied, err := li.RemovePackVerified(delta)
	if err != nil {
		return 0, err
	}

	o.status = o.status.RatchetPacking()
	o.appendLog(LogUnpack, itemRef, actor, fmt.Sprintf("unpacked %d x %s", applied, li.Name()))
	return applied, nil
}

// FlagPackException records qty units as damaged or out of stock at packing.
func (o *Order) FlagPackException(itemRef string, reason ExceptionReason, qty int, actor string) (int, error) {
	li, err := o.findItem(itemRef)
	if err != nil {
		return 0, err
	}

	applied, err := li.FlagPackException(reason, qty)
	if err != nil {
		return 0, err
	}

	o.status = o.status.RatchetPacking()
	o.appendLog(LogPackFlag, itemRef, actor, fmt.Sprintf("flagged %d x %s as %s", applied, li.Name(), reason))
	return applied, nil
}

// UndoItemPack zeroes the item's packing buckets and clears its packed flag.
func (o *Order) UndoItemPack(itemRef string, actor string) error {
	li, err := o.findItem(itemRef)
	if err != nil {
		return err
	}

	li.UndoPack()
	o.appendLog(LogUndoPack, itemRef, actor, fmt.Sprintf("pack reset for %s", li.Name()))
	return nil
}

// RefundItem marks the item refunded and flags it. Idempotent: returns true
// only on the first call so the handler emits the refund notification once.
func (o *Order) RefundItem(itemRef string, actor string) (bool, error) {
	li, err := o.findItem(itemRef)
	if err != nil {
		return false, err
	}

	if !li.Refund() {
		return false, nil
	}

	o.appendLog(LogRefund, itemRef, actor, fmt.Sprintf("refund recorded for %s", li.Name()))
	return true, nil
}

// CompletePicking moves the order to Picked. Every line item must be fully
// accounted for; otherwise a precondition error listing the unfinished item
// references is returned and the status is unchanged.
func (o *Order) CompletePicking(actor string) error {
	var unfinished []string
	for _, li := range o.lineItems {
		if !li.Picked() {
			unfinished = append(unfinished, li.Ref())
		}
	}
	if len(unfinished) > 0 {
		return errs.NewPreconditionFailedError("picking", unfinished)
	}

	newStatus, err := o.status.CompletePicking()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.appendLog(LogPickComplete, "", actor, "picking completed")
	return nil
}

// StartPacking claims the order for a packing operator and moves it to
// Packing. Re-claiming an order already in Packing is allowed and replaces
// the packer; this covers shift handovers.
func (o *Order) StartPacking(packerID kernel.UUID, actor string) error {
	if err := packerID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.StartPacking()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.packerID = &packerID
	o.appendLog(LogPackStarted, "", actor, "packing started")
	return nil
}

// CompletePacking moves the order to Packed, records the shipping box count
// and releases all totes. The released tote IDs are returned so the handler
// can mark the totes available again; the order's tote list is cleared.
// Every line item must be fully packed.
func (o *Order) CompletePacking(boxCount int, actor string) ([]kernel.UUID, error) {
	if boxCount <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("boxCount", boxCount, 1, maxBoxCount)
	}

	var unfinished []string
	for _, li := range o.lineItems {
		if !li.Packed() {
			unfinished = append(unfinished, li.Ref())
		}
	}
	if len(unfinished) > 0 {
		return nil, errs.NewPreconditionFailedError("packing", unfinished)
	}

	newStatus, err := o.status.CompletePacking()
	if err != nil {
		return nil, err
	}

	released := o.toteIDs
	o.toteIDs = nil
	o.status = newStatus
	o.boxCount = boxCount
	o.appendLog(LogPackComplete, "", actor, fmt.Sprintf("packing completed in %d boxes", boxCount))
	return released, nil
}

// MarkDelivered moves a Packed order to Delivered. Called by the delivery
// sync job when the delivery platform reports the stop complete.
func (o *Order) MarkDelivered(actor string) error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.appendLog(LogDelivered, "", actor, "order delivered")
	return nil
}

// AssignPicker sets the order's picker. Reassignment is allowed.
func (o *Order) AssignPicker(pickerID kernel.UUID, actor string) error {
	if err := pickerID.Validate(); err != nil {
		return err
	}

	o.pickerID = &pickerID
	o.appendLog(LogPickerChanged, "", actor, "picker assigned")
	return nil
}

// AssignPacker sets the order's packer without a status transition. Used by
// admins to reassign; operators claim via StartPacking instead.
func (o *Order) AssignPacker(packerID kernel.UUID, actor string) error {
	if err := packerID.Validate(); err != nil {
		return err
	}

	o.packerID = &packerID
	o.appendLog(LogPackerChanged, "", actor, "packer assigned")
	return nil
}

// ClaimPacker records the packer on the first pack action when none has been
// assigned yet. Packers who skip StartPacking still end up on the order.
// A no-op once a packer is set.
func (o *Order) ClaimPacker(packerID kernel.UUID, actor string) error {
	if o.packerID != nil {
		return nil
	}
	if err := packerID.Validate(); err != nil {
		return err
	}

	o.packerID = &packerID
	o.appendLog(LogPackerChanged, "", actor, "packer assigned")
	return nil
}

// AddTote attaches a tote to the order. Idempotent: attaching a tote that is
// already on the order is a no-op and returns false.
func (o *Order) AddTote(toteID kernel.UUID, actor string) (bool, error) {
	if err := toteID.Validate(); err != nil {
		return false, err
	}

	for _, existing := range o.toteIDs {
		if existing.IsEqual(toteID) {
			return false, nil
		}
	}

	o.toteIDs = append(o.toteIDs, toteID)
	o.appendLog(LogToteAssigned, "", actor, fmt.Sprintf("tote %s assigned", toteID))
	return true, nil
}

// RemoveTote detaches a tote from the order. Returns an error when the tote
// is not on the order.
func (o *Order) RemoveTote(toteID kernel.UUID, actor string) error {
	for i, existing := range o.toteIDs {
		if existing.IsEqual(toteID) {
			o.toteIDs = append(o.toteIDs[:i], o.toteIDs[i+1:]...)
			o.appendLog(LogToteRemoved, "", actor, fmt.Sprintf("tote %s removed", toteID))
			return nil
		}
	}
	return errs.NewObjectNotFoundError("toteId", toteID)
}

// AddPhoto attaches a packing evidence photo.
func (o *Order) AddPhoto(photo Photo, actor string) error {
	if photo.StorageID == "" {
		return errs.NewValueIsRequiredError("storageId")
	}

	o.photos = append(o.photos, photo)
	o.appendLog(LogPhotoAdded, "", actor, "packing photo added")
	return nil
}

// RemovePhoto detaches a photo by its storage key and returns it so the
// handler can delete the underlying object. The handler must delete the
// object first and only then persist the order; a dangling object is worse
// than a dangling reference.
func (o *Order) RemovePhoto(storageID string, actor string) (Photo, error) {
	for i, photo := range o.photos {
		if photo.StorageID == storageID {
			o.photos = append(o.photos[:i], o.photos[i+1:]...)
			o.appendLog(LogPhotoRemoved, "", actor, "packing photo removed")
			return photo, nil
		}
	}
	return Photo{}, errs.NewObjectNotFoundError("storageId", storageID)
}

// SetAdminNote replaces the order-level admin note.
func (o *Order) SetAdminNote(note string, actor string) {
	o.adminNote = note
	o.appendLog(LogNotesUpdated, "", actor, "order notes updated")
}

// SetItemAdminNote replaces the admin note on one line item.
func (o *Order) SetItemAdminNote(itemRef, note string, actor string) error {
	li, err := o.findItem(itemRef)
	if err != nil {
		return err
	}

	li.SetAdminNote(note)
	o.appendLog(LogNotesUpdated, itemRef, actor, "item notes updated")
	return nil
}

// ApproveOrder marks the whole order's exceptions as signed off, approving
// every line item along the way.
func (o *Order) ApproveOrder(actor string) {
	o.approved = true
	for _, li := range o.lineItems {
		li.Approve()
	}
	o.appendLog(LogApproved, "", actor, "order approved")
}

// ApproveItem marks one line item's exceptions as signed off.
func (o *Order) ApproveItem(itemRef string, actor string) error {
	li, err := o.findItem(itemRef)
	if err != nil {
		return err
	}

	li.Approve()
	o.appendLog(LogApproved, itemRef, actor, fmt.Sprintf("%s approved", li.Name()))
	return nil
}

// AttachDelivery replaces the mirrored routing details. Called by the
// delivery sync job; operators never edit this data.
func (o *Order) AttachDelivery(delivery Delivery) {
	o.delivery = &delivery
	o.appendLog(LogDeliverySync, "", SystemActor, fmt.Sprintf("delivery synced, stop %d", delivery.StopSequence))
}

// FindItem returns the line item with the given external reference.
func (o *Order) FindItem(itemRef string) (*LineItem, error) {
	return o.findItem(itemRef)
}

func (o *Order) findItem(itemRef string) (*LineItem, error) {
	for _, li := range o.lineItems {
		if li.Ref() == itemRef {
			return li, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("lineItemRef", itemRef)
}

func (o *Order) appendLog(kind, itemRef, actor, message string) {
	o.logs = append(o.logs, LogEntry{
		Kind:    kind,
		ItemRef: itemRef,
		Actor:   actor,
		Message: message,
		At:      time.Now().UTC(),
	})
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setExternalRef(externalRef string) error {
	if externalRef == "" {
		return errs.NewValueIsRequiredError("externalRef")
	}
	o.externalRef = externalRef
	return nil
}

func (o *Order) setLineItems(lineItems []*LineItem) error {
	if len(lineItems) == 0 {
		return errs.NewValueIsRequiredError("lineItems")
	}
	for _, li := range lineItems {
		if err := li.Validate(); err != nil {
			return err
		}
	}
	o.lineItems = append([]*LineItem(nil), lineItems...)
	return nil
}

// maxBoxCount bounds the shipping box count; anything larger is a typo.
const maxBoxCount = 1_000
