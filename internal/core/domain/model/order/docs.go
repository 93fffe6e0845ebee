// Package order provides domain entities and business logic for warehouse
// order fulfillment. It implements the Order aggregate root with per-item
// quantity accounting and lifecycle management.
//
// The package includes:
//   - Order: The aggregate root holding line items, totes, photos, delivery
//     details and the append-only activity log
//   - LineItem: One ordered product with independent picking and packing
//     quantity accounting
//   - ItemState: The per-stage bucket state (verified, damaged, out of stock)
//   - Status: A state machine that enforces forward-only lifecycle transitions
//
// Key business rules:
//   - Bucket sums never exceed the ordered quantity; over-counts clamp and
//     the applied delta is reported back to the caller
//   - The first pick mutation moves a New order to Picking; the first pack
//     mutation moves a Picked order to Packing
//   - Picking and packing completion require every line item to be fully
//     accounted for, across all three buckets
//   - Substituting an item marks it picked regardless of quantity accounting
//   - Refunds are idempotent so their side effects fire exactly once
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
