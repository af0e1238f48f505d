package xlstyle

import (
	"strconv"
	"strings"
)

// names of Excel's built-in styles, by their BIFF istyBuiltIn
var builtinStyleNames = []string{
	"Normal", "RowLevel_", "ColLevel_", "Comma", "Currency", "Percent",
	"Comma [0]", "Currency [0]", "Hyperlink", "Followed Hyperlink", "Note",
	"Warning Text", "Emphasis 1", "Emphasis 2", "Emphasis 3", "Title",
	"Heading 1", "Heading 2", "Heading 3", "Heading 4", "Input", "Output",
	"Calculation", "Check Cell", "Linked Cell", "Total", "Good", "Bad", "Neutral",
	"Accent1", "20% - Accent1", "40% - Accent1", "60% - Accent1",
	"Accent2", "20% - Accent2", "40% - Accent2", "60% - Accent2",
	"Accent3", "20% - Accent3", "40% - Accent3", "60% - Accent3",
	"Accent4", "20% - Accent4", "40% - Accent4", "60% - Accent4",
	"Accent5", "20% - Accent5", "40% - Accent5", "60% - Accent5",
	"Accent6", "20% - Accent6", "40% - Accent6", "60% - Accent6",
	"Explanatory Text",
}

const (
	builtinRowLevel = 1
	builtinColLevel = 2
)

// BuiltinStyleName returns the name of a built-in style. Outline level styles
// (RowLevel_, ColLevel_) carry their 0-based level as a 1-based suffix.
func BuiltinStyleName(id, level int) (string, bool) {
	if id < 0 || id >= len(builtinStyleNames) {
		return "", false
	}
	name := builtinStyleNames[id]
	if id == builtinRowLevel || id == builtinColLevel {
		name += strconv.Itoa(level + 1)
	}
	return name, true
}

// builtinStyleID returns the istyBuiltIn of a style name, or -1.
func builtinStyleID(name string) int {
	for i, n := range builtinStyleNames {
		if i == builtinRowLevel || i == builtinColLevel {
			if rest, ok := strings.CutPrefix(name, n); ok {
				if lvl, err := strconv.Atoi(rest); err == nil && lvl >= 1 && lvl <= 7 {
					return i
				}
			}
			continue
		}
		if strings.EqualFold(n, name) {
			return i
		}
	}
	return -1
}
