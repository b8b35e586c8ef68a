package keymap

import (
	"strconv"
	"strings"

	kerrors "github.com/matzehuels/kbdlayout/pkg/errors"
)

// defaultColumns is the selection in effect before any keymaps directive.
func defaultColumns() []int {
	cols := make([]int, 256)
	for i := range cols {
		cols[i] = i
	}
	return cols
}

// ParseColumns expands a keymaps specification such as "0-2,4-5,8" into
// an ascending column list. Every item must start above everything before
// it.
func ParseColumns(spec string) ([]int, error) {
	var cols []int
	highest := -1

	for _, item := range strings.Split(spec, ",") {
		item = strings.TrimSpace(item)
		lo, hi, err := parseColumnRange(item)
		if err != nil {
			return nil, err
		}
		if lo <= highest {
			return nil, kerrors.New(kerrors.ErrCodeInvalidColumns,
				"keymaps %q: %q overlaps or precedes column %d", spec, item, highest)
		}
		for c := lo; c <= hi; c++ {
			cols = append(cols, c)
		}
		highest = hi
	}
	return cols, nil
}

func parseColumnRange(item string) (lo, hi int, err error) {
	loStr, hiStr, isRange := strings.Cut(item, "-")
	if lo, err = parseColumn(item, loStr); err != nil {
		return 0, 0, err
	}
	if !isRange {
		return lo, lo, nil
	}
	if hi, err = parseColumn(item, hiStr); err != nil {
		return 0, 0, err
	}
	if hi < lo {
		return 0, 0, kerrors.New(kerrors.ErrCodeInvalidColumns, "keymaps range %q is backwards", item)
	}
	return lo, hi, nil
}

func parseColumn(item, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 || n > MaxColumn {
		return 0, kerrors.New(kerrors.ErrCodeInvalidColumns, "keymaps item %q: invalid column %q", item, s)
	}
	return n, nil
}
