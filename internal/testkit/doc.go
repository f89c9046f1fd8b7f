// Package testkit holds assertions and fixtures shared by handler tests.
package testkit
