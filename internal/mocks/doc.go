// Package mocks provides centralized mock implementations for testing.
//
// This package contains testify-based mocks of interfaces used throughout
// the application, so individual test files don't re-declare inline mocks.
package mocks
