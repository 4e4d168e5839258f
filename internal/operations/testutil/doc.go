// Package testutil provides mock stages and run state assertions for
// tests of code built on the operations runner.
package testutil
