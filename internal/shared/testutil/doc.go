// Package testutil holds helpers shared by package tests, mainly an
// in-memory slog handler for asserting on log output.
package testutil
