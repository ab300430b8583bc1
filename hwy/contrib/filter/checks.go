//go:build !hwynocheck

package filter

// checkContracts enables the entry-time precondition checks.
const checkContracts = true
