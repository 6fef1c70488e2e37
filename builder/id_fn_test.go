// SPDX-License-Identifier: MIT
package builder_test

import (
	"testing"

	"github.com/katalvlaran/kirchhoff/builder"
)

// TestIDFns checks every IDFn on representative indices.
func TestIDFns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		fn    builder.IDFn
		input int
		want  string
	}{
		{"Default/0", builder.DefaultIDFn, 0, "0"},
		{"Default/42", builder.DefaultIDFn, 42, "42"},
		{"Excel/0", builder.ExcelColumnIDFn, 0, "A"},
		{"Excel/25", builder.ExcelColumnIDFn, 25, "Z"},
		{"Excel/26", builder.ExcelColumnIDFn, 26, "AA"},
		{"Excel/701", builder.ExcelColumnIDFn, 701, "ZZ"},
		{"Excel/702", builder.ExcelColumnIDFn, 702, "AAA"},
		{"SymbNumb/v3", builder.SymbolNumberIDFn("v"), 3, "v3"},
		{"SymbNumb/empty", builder.SymbolNumberIDFn(""), 12, "12"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.fn(tc.input); got != tc.want {
				t.Errorf("%s(%d) = %q, want %q", tc.name, tc.input, got, tc.want)
			}
		})
	}
}
