// Package mocks provides testify mocks for the ports interfaces, in the
// expecter style mockery produces.
package mocks
