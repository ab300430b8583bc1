//go:build !hwynocheck

package canny

// checkContracts enables the entry-time precondition checks.
const checkContracts = true
