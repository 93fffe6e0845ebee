package order

import "fulfillment/internal/pkg/errs"

// Substitute references the product/variant chosen to replace an unavailable
// line item. The variant may be empty for legacy catalog rows.
type Substitute struct {
	ProductID string
	VariantID string
}

// NewSubstitute creates a substitute reference. The product is required;
// the variant is optional.
func NewSubstitute(productID, variantID string) (Substitute, error) {
	if productID == "" {
		return Substitute{}, errs.NewValueIsRequiredError("substituteProductId")
	}
	return Substitute{ProductID: productID, VariantID: variantID}, nil
}

// Bucket is one disposition sub-count of a line item's quantity.
// The damaged and out-of-stock buckets may carry a substitute reference once
// a replacement has been recorded for the shortfall they represent.
type Bucket struct {
	Quantity int
	Subbed   *Substitute
}

// ItemState tracks how a line item's ordered quantity has been accounted for
// during one stage (picking or packing). Every unit is either unaccounted or
// sits in exactly one of the three buckets, so the bucket sum never exceeds
// the ordered quantity.
//
// ItemState is a value type: accessors on LineItem hand out copies, and all
// mutation goes through LineItem methods that enforce the clamp invariant.
type ItemState struct {
	Verified   Bucket
	Damaged    Bucket
	OutOfStock Bucket
}

// Total returns the number of units accounted for across all three buckets.
func (s ItemState) Total() int {
	return s.Verified.Quantity + s.Damaged.Quantity + s.OutOfStock.Quantity
}

// Remaining returns the unaccounted capacity against the ordered quantity.
// Never negative.
func (s ItemState) Remaining(quantity int) int {
	r := quantity - s.Total()
	if r < 0 {
		return 0
	}
	return r
}

// IsComplete reports whether the bucket sum has reached the ordered quantity.
func (s ItemState) IsComplete(quantity int) bool {
	return s.Total() >= quantity
}

// addVerified adds up to delta units to the verified bucket, clamped to the
// remaining capacity. Returns the applied delta.
func (s *ItemState) addVerified(delta, quantity int) int {
	applied := minInt(delta, s.Remaining(quantity))
	s.Verified.Quantity += applied
	return applied
}

// removeVerified removes up to delta units from the verified bucket,
// flooring at zero. Returns the applied delta.
func (s *ItemState) removeVerified(delta int) int {
	applied := minInt(delta, s.Verified.Quantity)
	s.Verified.Quantity -= applied
	return applied
}

// addException adds up to qty units to the bucket selected by reason,
// clamped to the remaining capacity; excess is silently dropped.
// Returns the applied delta.
func (s *ItemState) addException(reason ExceptionReason, qty, quantity int) (int, error) {
	bucket, err := s.bucketFor(reason)
	if err != nil {
		return 0, err
	}

	applied := minInt(qty, s.Remaining(quantity))
	bucket.Quantity += applied
	return applied, nil
}

// setSubstitute records a substitute reference on the bucket selected by reason.
func (s *ItemState) setSubstitute(reason ExceptionReason, sub Substitute) error {
	bucket, err := s.bucketFor(reason)
	if err != nil {
		return err
	}

	bucket.Subbed = &sub
	return nil
}

// reset zeroes all buckets and clears any substitute references.
func (s *ItemState) reset() {
	*s = ItemState{}
}

// bucketFor maps an exception reason to its bucket. The verified bucket is
// never reachable through a reason.
func (s *ItemState) bucketFor(reason ExceptionReason) (*Bucket, error) {
	switch reason {
	case ReasonDamaged:
		return &s.Damaged, nil
	case ReasonOutOfStock:
		return &s.OutOfStock, nil
	default:
		return nil, reason.Validate()
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
