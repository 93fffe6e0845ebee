// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the fulfillment system. It
// implements workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - PickerDispatcher: A domain service for assigning imported orders to the
//     least busy active picker
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
