// Package resource provides domain entities and business logic for donated
// resources in the resource sharing system. It implements the Resource
// aggregate root with lifecycle management and state transitions.
//
// The package includes:
//   - Resource: The aggregate root that manages identity, ownership, and lifecycle
//   - Status: A state machine that enforces valid lifecycle transitions
//   - Category: The closed set of donation categories
//
// Key business rules:
//   - Resources must have a valid identifier, donor, title, description,
//     category, and geographic pickup point
//   - Lifecycle follows Available -> Claimed -> InTransit -> Delivered, with
//     cancellation possible from Available and Claimed
//   - Auto-confirm resources skip the Claimed state: a claim moves them
//     directly to InTransit
//   - The donor never changes; the receiver is set once, at claim time
//   - Ownership predicates are evaluated before state predicates on every
//     mutating operation
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package resource
