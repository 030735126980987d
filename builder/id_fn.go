// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a competitor identifier from its zero-based index.
// It must be pure: the same idx always yields the same string.
type IDFn func(idx int) string

// DefaultIDFn returns "T" followed by the decimal index: 0→"T0", 42→"T42".
func DefaultIDFn(idx int) string {
	return "T" + strconv.Itoa(idx)
}

// ExcelColumnIDFn returns the spreadsheet-style column name for idx,
// e.g. 0→"A", 25→"Z", 26→"AA". Panics if idx < 0.
// Complexity: O(log₂₆ idx).
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// GroupName returns the default label of group k: 0→"Group A", 1→"Group B", 26→"Group AA".
func GroupName(k int) string {
	return "Group " + ExcelColumnIDFn(k)
}
