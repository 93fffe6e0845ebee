// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ToteRepoFactory provides access to the tote repository within a transaction.
	ToteRepoFactory interface {
		ToteRepository() ports.ToteRepository
	}

	// OperatorRepoFactory provides access to the operator repository within a transaction.
	OperatorRepoFactory interface {
		OperatorRepository() ports.OperatorRepository
	}

	// RuleRepoFactory provides access to the substitution rule repository within a transaction.
	RuleRepoFactory interface {
		SubstitutionRuleRepository() ports.SubstitutionRuleRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used by the pick/pack mutations, which touch a single order document.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderToteUoW manages transactions spanning an order and its totes.
	// Tote assignment is a two-document invariant; both writes commit together.
	OrderToteUoW interface {
		TxManager
		OrderRepoFactory
		ToteRepoFactory
	}

	// OrderToteUoWFactory creates new order+tote unit of work instances.
	OrderToteUoWFactory interface {
		Create() OrderToteUoW
	}

	// OrderOperatorUoW manages transactions spanning an order and the staff.
	// Used by import, which assigns a picker and charges their counter.
	OrderOperatorUoW interface {
		TxManager
		OrderRepoFactory
		OperatorRepoFactory
	}

	// OrderOperatorUoWFactory creates new order+operator unit of work instances.
	OrderOperatorUoWFactory interface {
		Create() OrderOperatorUoW
	}

	// OperatorUoW manages transactions for staff-only operations.
	OperatorUoW interface {
		TxManager
		OperatorRepoFactory
	}

	// OperatorUoWFactory creates new operator unit of work instances.
	OperatorUoWFactory interface {
		Create() OperatorUoW
	}

	// RuleUoW manages transactions for substitution rule CRUD.
	RuleUoW interface {
		TxManager
		RuleRepoFactory
	}

	// RuleUoWFactory creates new rule unit of work instances.
	RuleUoWFactory interface {
		Create() RuleUoW
	}
)
