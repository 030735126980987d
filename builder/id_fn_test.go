// SPDX-License-Identifier: MIT

package builder_test

import (
	"testing"

	"github.com/katalvlaran/lvrate/builder"
	"github.com/stretchr/testify/assert"
)

func TestIDFns(t *testing.T) {
	assert.Equal(t, "T0", builder.DefaultIDFn(0))
	assert.Equal(t, "T42", builder.DefaultIDFn(42))

	for idx, want := range map[int]string{0: "A", 25: "Z", 26: "AA", 27: "AB", 701: "ZZ", 702: "AAA"} {
		assert.Equal(t, want, builder.ExcelColumnIDFn(idx), "idx %d", idx)
	}
	assert.Panics(t, func() { builder.ExcelColumnIDFn(-1) })

	assert.Equal(t, "Group A", builder.GroupName(0))
	assert.Equal(t, "Group AA", builder.GroupName(26))
}
