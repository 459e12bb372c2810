// Package commands contains the write operations of the resource lifecycle.
// It implements the Command pattern for state-changing operations in the CQRS
// architecture. Every handler follows the same discipline: validate the
// command, open a unit of work, load the aggregate fresh, evaluate the
// authorization predicate, apply the transition, and save with a
// compare-and-swap keyed on the status the aggregate was loaded in.
package commands

import (
	"context"

	"resourceshare/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure the load-check-mutate-save sequence for a single
// resource executes atomically with respect to concurrent callers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ResourceRepoFactory provides access to the resource repository within a transaction.
	ResourceRepoFactory interface {
		ResourceRepository() ports.ResourceRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// ResourceUoW manages transactions for lifecycle operations. Every command
	// touches the resource aggregate and reads users for the projection, so a
	// single unit-of-work shape serves all handlers.
	ResourceUoW interface {
		TxManager
		ResourceRepoFactory
		UserRepoFactory
	}

	// ResourceUoWFactory creates new unit of work instances.
	ResourceUoWFactory interface {
		Create() ResourceUoW
	}
)
