// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a vertex identifier from its zero-based index.
// It must be pure: the same idx always yields the same string.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// ExcelColumnIDFn returns the spreadsheet column name of idx:
// 0→"A", 25→"Z", 26→"AA", 701→"ZZ", 702→"AAA".
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var buf []byte
	for i := idx; i >= 0; i = i/26 - 1 {
		buf = append(buf, byte('A'+i%26))
	}
	for l, r := 0, len(buf)-1; l < r; l, r = l+1, r-1 {
		buf[l], buf[r] = buf[r], buf[l]
	}

	return string(buf)
}

// SymbolNumberIDFn returns an IDFn producing prefix + decimal index, e.g. "v0", "v1".
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// WithSymbNumb sets the ID scheme to SymbolNumberIDFn(prefix).
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// WithExcelColumnIDs sets the ID scheme to ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}
