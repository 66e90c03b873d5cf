// SPDX-License-Identifier: MIT

package builder

import "strconv"

// NameFn maps a zero-based vertex index to a display name. It must be pure.
type NameFn func(idx int) string

// DecimalNames returns the decimal index: 0→"0", 42→"42".
func DecimalNames(idx int) string { return strconv.Itoa(idx) }

// ExcelColumnNames returns spreadsheet column names: 0→"A", 25→"Z", 26→"AA".
// Negative indices fall back to DecimalNames.
func ExcelColumnNames(idx int) string {
	if idx < 0 {
		return DecimalNames(idx)
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

// PrefixNames returns prefix + decimal index: "p0", "p1", ...
func PrefixNames(prefix string) NameFn {
	return func(idx int) string { return prefix + strconv.Itoa(idx) }
}
