// Package models defines the core domain models for splitledger.
//
// # Aggregate
//
// A Group is the aggregate root. It owns:
//   - Members: the people sharing expenses
//   - Transactions: expenses advanced by one member and apportioned among members
//   - Payments: direct cash transfers between members
//
// Groups are loaded and saved as whole snapshots. Balances and suggested
// settlements are never stored; they are derived from a snapshot by the
// calculator package whenever they are needed.
//
// # Identity
//
// Every entity carries an opaque string ID (UUID format) assigned by the
// storage layer. Relationships are expressed with ID strings instead of
// pointers, so a snapshot can be copied and compared freely.
//
// # Validation
//
// Struct tags follow go-playground/validator conventions. The storage layer
// validates every decoded snapshot against them before handing it to callers.
package models
