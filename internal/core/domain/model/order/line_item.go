package order

import (
	"errors"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// FlagRefunded is appended to an item's flags when a refund is recorded.
// The flag is idempotent: repeated refunds never duplicate it.
const FlagRefunded = "Refunded"

// ErrLineItemIsNotConstructed is returned when a LineItem instance was not
// created through NewLineItem or RestoreLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one ordered product/variant/quantity entry within an order.
// It owns the per-stage quantity accounting: two independent ItemStates
// (picking and packing), each split into verified/damaged/outOfStock buckets.
//
// LineItem maintains these invariants:
//   - bucket sums never exceed the ordered quantity, for either stage
//   - picked/packed mirror "bucket sum == quantity" after every quantity
//     mutation; recording a substitution forces picked to true regardless of
//     the accounting, because substitution is a terminal decision for the item
//   - flags are append-only and unique
//   - the ordered quantity is immutable after creation
//
// Line items are created at order ingestion and never deleted individually;
// they are mutated exclusively through the Order aggregate.
type LineItem struct {
	// ref is the external line-item reference from the commerce platform
	ref string
	// productID references the external product
	productID string
	// variantID references the external variant (may be empty on legacy rows)
	variantID string
	// name is the display name captured at import
	name string
	// sku is used only for display sorting within the order
	sku string
	// quantity is the ordered quantity, immutable after creation
	quantity int

	pick ItemState
	pack ItemState

	picked bool
	packed bool

	flags []string

	refund       bool
	subbed       bool
	subConfirmed bool
	approved     bool

	adminNote    string
	customerNote string

	guard guard.ConstructorGuard
}

// NewLineItem creates a line item from an imported order payload entry.
// The external reference and product are required; quantity must be positive.
func NewLineItem(ref, productID, variantID, name, sku string, quantity int) (*LineItem, error) {
	item := &LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setRef(ref),
		item.setProductID(productID),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	item.variantID = variantID
	item.name = name
	item.sku = sku
	return item, nil
}

// RestoreLineItem reconstructs a line item from persistence, including its
// bucket state and exception markers.
func RestoreLineItem(
	ref, productID, variantID, name, sku string,
	quantity int,
	pick, pack ItemState,
	picked, packed bool,
	flags []string,
	refund, subbed, subConfirmed, approved bool,
	adminNote, customerNote string,
) (*LineItem, error) {
	item, err := NewLineItem(ref, productID, variantID, name, sku, quantity)
	if err != nil {
		return nil, err
	}

	item.pick = pick
	item.pack = pack
	item.picked = picked
	item.packed = packed
	item.flags = append([]string(nil), flags...)
	item.refund = refund
	item.subbed = subbed
	item.subConfirmed = subConfirmed
	item.approved = approved
	item.adminNote = adminNote
	item.customerNote = customerNote
	return item, nil
}

// Validate ensures the line item was created through a constructor.
func (li *LineItem) Validate() error {
	if li == nil {
		return ErrLineItemIsNotConstructed
	}
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// Ref returns the external line-item reference.
func (li *LineItem) Ref() string { return li.ref }

// ProductID returns the external product reference.
func (li *LineItem) ProductID() string { return li.productID }

// VariantID returns the external variant reference, empty on legacy rows.
func (li *LineItem) VariantID() string { return li.variantID }

// Name returns the display name captured at import.
func (li *LineItem) Name() string { return li.name }

// SKU returns the stock keeping unit used for display sorting.
func (li *LineItem) SKU() string { return li.sku }

// Quantity returns the ordered quantity.
func (li *LineItem) Quantity() int { return li.quantity }

// PickState returns a copy of the picking-stage bucket state.
func (li *LineItem) PickState() ItemState { return li.pick }

// PackState returns a copy of the packing-stage bucket state.
func (li *LineItem) PackState() ItemState { return li.pack }

// Picked reports whether the item is considered fully picked.
func (li *LineItem) Picked() bool { return li.picked }

// Packed reports whether the item is considered fully packed.
func (li *LineItem) Packed() bool { return li.packed }

// Flags returns a copy of the exception flags.
func (li *LineItem) Flags() []string {
	return append([]string(nil), li.flags...)
}

// Refunded reports whether a refund was recorded for the item.
func (li *LineItem) Refunded() bool { return li.refund }

// Substituted reports whether a substitution was recorded for the item.
func (li *LineItem) Substituted() bool { return li.subbed }

// SubstitutionConfirmed reports whether a recorded substitution was confirmed at pack time.
func (li *LineItem) SubstitutionConfirmed() bool { return li.subConfirmed }

// Approved reports whether an admin signed off the item's exceptions.
func (li *LineItem) Approved() bool { return li.approved }

// AdminNote returns the admin free-text note.
func (li *LineItem) AdminNote() string { return li.adminNote }

// CustomerNote returns the customer free-text note captured at import.
func (li *LineItem) CustomerNote() string { return li.customerNote }

// AddPickVerified adds up to delta units to the picking verified bucket,
// clamped to the remaining capacity, and refreshes the picked flag.
//
// Policy choices (deliberate, see package docs):
//   - an already-picked item is a silent no-op, not an error
//   - over-picks clamp; the applied delta is returned so callers can tell
//
// Returns:
//   - int: the delta actually applied (0..delta)
//   - error: out-of-range error if delta is not positive
func (li *LineItem) AddPickVerified(delta int) (int, error) {
	if delta <= 0 {
		return 0, errs.NewValueIsOutOfRangeError("delta", delta, 1, li.quantity)
	}
	if li.picked {
		return 0, nil
	}

	applied := li.pick.addVerified(delta, li.quantity)
	li.refreshPicked()
	return applied, nil
}

// RemovePickVerified removes up to delta units from the picking verified
// bucket, flooring at zero, and refreshes the picked flag (forcing it false
// when the total drops below the ordered quantity).
func (li *LineItem) RemovePickVerified(delta int) (int, error) {
	if delta <= 0 {
		return 0, errs.NewValueIsOutOfRangeError("delta", delta, 1, li.quantity)
	}

	applied := li.pick.removeVerified(delta)
	li.refreshPicked()
	return applied, nil
}

// FlagPickException adds qty units to the picking bucket selected by reason,
// clamped so the bucket sum never exceeds the ordered quantity; the excess is
// silently dropped. Refreshes the picked flag.
func (li *LineItem) FlagPickException(reason ExceptionReason, qty int) (int, error) {
	if qty <= 0 {
		return 0, errs.NewValueIsOutOfRangeError("quantity", qty, 1, li.quantity)
	}

	applied, err := li.pick.addException(reason, qty, li.quantity)
	if err != nil {
		return 0, err
	}

	li.refreshPicked()
	return applied, nil
}

// RecordSubstitution attaches a substitute reference to the picking bucket
// selected by reason and marks the item picked unconditionally: substitution
// is a terminal decision for the item at the picking stage, regardless of
// quantity accounting.
func (li *LineItem) RecordSubstitution(reason ExceptionReason, sub Substitute) error {
	if err := li.pick.setSubstitute(reason, sub); err != nil {
		return err
	}

	li.subbed = true
	li.picked = true
	return nil
}

// ConfirmSubstitution marks a previously recorded substitution as used and
// returns the substitute reference so the caller can emit the inventory
// adjustment intent. Fails if no substitution was recorded.
func (li *LineItem) ConfirmSubstitution() (Substitute, error) {
	sub := li.substituteRef()
	if !li.subbed || sub == nil {
		return Substitute{}, errs.NewPreconditionFailedError("substitution", []string{li.ref})
	}

	li.subConfirmed = true
	return *sub, nil
}

// UndoPick resets the picked flag and zeroes all three picking buckets,
// clearing any recorded substitution. Flags are left untouched.
func (li *LineItem) UndoPick() {
	li.pick.reset()
	li.picked = false
	li.subbed = false
	li.subConfirmed = false
}

// AddPackVerified mirrors AddPickVerified against the packing state.
func (li *LineItem) AddPackVerified(delta int) (int, error) {
	if delta <= 0 {
		return 0, errs.NewValueIsOutOfRangeError("delta", delta, 1, li.quantity)
	}
	if li.packed {
		return 0, nil
	}

	applied := li.pack.addVerified(delta, li.quantity)
	li.refreshPacked()
	return applied, nil
}

// RemovePackVerified mirrors RemovePickVerified against the packing state.
func (li *LineItem) RemovePackVerified(delta int) (int, error) {
	if delta <= 0 {
		return 0, errs.NewValueIsOutOfRangeError("delta", delta, 1, li.quantity)
	}

	applied := li.pack.removeVerified(delta)
	li.refreshPacked()
	return applied, nil
}

// FlagPackException mirrors FlagPickException against the packing state.
func (li *LineItem) FlagPackException(reason ExceptionReason, qty int) (int, error) {
	if qty <= 0 {
		return 0, errs.NewValueIsOutOfRangeError("quantity", qty, 1, li.quantity)
	}

	applied, err := li.pack.addException(reason, qty, li.quantity)
	if err != nil {
		return 0, err
	}

	li.refreshPacked()
	return applied, nil
}

// UndoPack resets the packed flag and zeroes all three packing buckets.
func (li *LineItem) UndoPack() {
	li.pack.reset()
	li.packed = false
}

// Refund marks the item refunded and appends the Refunded flag.
// Idempotent: returns true only when the refund was newly applied, so the
// caller emits the refund side effects exactly once.
func (li *LineItem) Refund() bool {
	if li.refund {
		return false
	}

	li.refund = true
	li.AddFlag(FlagRefunded)
	return true
}

// AddFlag appends a free-text exception marker, skipping duplicates.
// Returns true when the flag was newly added.
func (li *LineItem) AddFlag(flag string) bool {
	for _, f := range li.flags {
		if f == flag {
			return false
		}
	}

	li.flags = append(li.flags, flag)
	return true
}

// Approve marks the item's exceptions as signed off by an admin.
func (li *LineItem) Approve() {
	li.approved = true
}

// SetAdminNote replaces the admin note.
func (li *LineItem) SetAdminNote(note string) {
	li.adminNote = note
}

// SetCustomerNote records the customer's free-text note at import.
func (li *LineItem) SetCustomerNote(note string) {
	li.customerNote = note
}

// refreshPicked recomputes the cached picked flag from the bucket sums.
func (li *LineItem) refreshPicked() {
	li.picked = li.pick.IsComplete(li.quantity)
}

// refreshPacked recomputes the cached packed flag from the bucket sums.
func (li *LineItem) refreshPacked() {
	li.packed = li.pack.IsComplete(li.quantity)
}

// substituteRef returns the recorded substitute from whichever picking bucket
// holds one, or nil.
func (li *LineItem) substituteRef() *Substitute {
	if li.pick.Damaged.Subbed != nil {
		return li.pick.Damaged.Subbed
	}
	return li.pick.OutOfStock.Subbed
}

func (li *LineItem) setRef(ref string) error {
	if ref == "" {
		return errs.NewValueIsRequiredError("lineItemRef")
	}
	li.ref = ref
	return nil
}

func (li *LineItem) setProductID(productID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("productId")
	}
	li.productID = productID
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxLineItemQuantity)
	}
	li.quantity = quantity
	return nil
}

// maxLineItemQuantity bounds a single line item's ordered quantity; imports
// beyond this are treated as malformed payloads.
const maxLineItemQuantity = 10_000
