/*
Package errors implements custom error interfaces for covault.

The package is built around coded root errors. Each root error is
registered with a unique numeric code and a short description. Errors
created during runtime should wrap one of the root errors, adding
context. Use the root's Is method to test an error kind regardless of
how many times it was wrapped:

	if errors.ErrNotFound.Is(err) { ... }

Wrapping attaches a stack trace to the error the first time it
happens, so the trace always points at the place the error originated.
*/
package errors
