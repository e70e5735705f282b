// Package errors provides structured, coded errors for vlite.
//
// Each error has a unique code (e.g., "E101") that maps to a category,
// a short message, a detailed explanation, and a documentation URL.
// VliteError supports errors.Is (by code) and errors.As, and wraps an
// underlying cause.
//
// # Usage
//
//	err := errors.New("E101").
//	    WithDetailf("tag %q", tag).
//	    WithSuggestion("Use a valid element name such as \"div\".")
//
//	errors.PrintError(err)
package errors
