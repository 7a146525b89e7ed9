// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/book, domain/page).
// This root package holds the sentinel errors and the validation error type
// that every layer uses to signal failures.
package domain
