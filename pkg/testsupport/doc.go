// Package testsupport holds fixtures and DOM inspection helpers shared by
// package tests.
package testsupport
