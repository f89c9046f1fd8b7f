package testkit

import (
	"fmt"

	"github.com/stretchr/testify/assert"
)

// AssertListsEqual asserts both lists hold the same items with the same
// counts, ignoring order
func AssertListsEqual(t assert.TestingT, first, second any, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}

	if len(msgAndArgs) == 0 {
		msgAndArgs = []any{fmt.Sprintf("Lists are not equal!\n\n%v\n\n!=\n\n%v", first, second)}
	}

	return assert.ElementsMatch(t, first, second, msgAndArgs...)
}

// AssertEqualByIDs asserts both slices carry the same ids in the same order
func AssertEqualByIDs[T any, K comparable](t assert.TestingT, first, second []T, id func(T) K, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}

	firstIDs := ids(first, id)
	secondIDs := ids(second, id)

	if len(msgAndArgs) == 0 {
		msgAndArgs = []any{fmt.Sprintf("ids not equal! %#v != %#v", firstIDs, secondIDs)}
	}

	return assert.Equal(t, firstIDs, secondIDs, msgAndArgs...)
}

func ids[T any, K comparable](items []T, id func(T) K) []K {
	out := make([]K, 0, len(items))
	for _, item := range items {
		out = append(out, id(item))
	}

	return out
}
