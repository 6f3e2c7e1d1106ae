// Package finance is the project financial calculation engine.
//
// It resolves position totals, derives service surcharges, aggregates the
// project financial summary, decides the position lock from the invoice list
// and seeds invoice snapshots. Every function is pure: callers pass positions,
// flags, payments and invoices explicitly and persist the results themselves.
package finance
