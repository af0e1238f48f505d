package xlstyle

import "strings"

// built-in number formats, addressed by the ifmt of an XF record
var builtinNumberFormats = map[uint16]string{
	0:  "",
	1:  "0",
	2:  "0.00",
	3:  "#,##0",
	4:  "#,##0.00",
	5:  `"$"#,##0_);\("$"#,##0\)`,
	6:  `"$"#,##0_);[Red]\("$"#,##0\)`,
	7:  `"$"#,##0.00_);\("$"#,##0.00\)`,
	8:  `"$"#,##0.00_);[Red]\("$"#,##0.00\)`,
	9:  "0%",
	10: "0.00%",
	11: "0.00E+00",
	12: "# ?/?",
	13: "# ??/??",
	14: "m/d/yyyy",
	15: "d-mmm-yy",
	16: "d-mmm",
	17: "mmm-yy",
	18: "h:mm AM/PM",
	19: "h:mm:ss AM/PM",
	20: "h:mm",
	21: "h:mm:ss",
	22: "m/d/yyyy h:mm",
	37: "#,##0_);(#,##0)",
	38: "#,##0_);[Red](#,##0)",
	39: "#,##0.00_);(#,##0.00)",
	40: "#,##0.00_);[Red](#,##0.00)",
	41: `_(* #,##0_);_(* \(#,##0\);_(* "-"_);_(@_)`,
	42: `_("$"* #,##0_);_("$"* \(#,##0\);_("$"* "-"_);_(@_)`,
	43: `_(* #,##0.00_);_(* \(#,##0.00\);_(* "-"??_);_(@_)`,
	44: `_("$"* #,##0.00_);_("$"* \(#,##0.00\);_("$"* "-"??_);_(@_)`,
	45: "mm:ss",
	46: "[h]:mm:ss",
	47: "mm:ss.0",
	48: "##0.0E+0",
	49: "@",
}

// first ifmt a workbook may use for its own FORMAT records
const firstCustomNumberFormat = 164

// BuiltinNumberFormat returns the format string of a built-in ifmt.
func BuiltinNumberFormat(id uint16) (string, bool) {
	s, ok := builtinNumberFormats[id]
	return s, ok
}

// BuiltinNumberFormatID returns the ifmt of a built-in format string. The
// empty format is General.
func BuiltinNumberFormatID(format string) (uint16, bool) {
	if format == "" || strings.EqualFold(format, "general") {
		return 0, true
	}
	for id, s := range builtinNumberFormats {
		if s == format {
			return id, true
		}
	}
	return 0, false
}

// IsDateTimeFormat reports whether a number format renders dates or times.
// Quoted text, escaped characters and [bracketed] sections are skipped, so
// "[Red]" or "\d" do not count.
func IsDateTimeFormat(format string) bool {
	f := strings.ToLower(format)
	if f == "" || f == "general" || f == "@" {
		return false
	}
	inQuote := false
	for i := 0; i < len(f); i++ {
		c := f[i]
		switch {
		case inQuote:
			if c == '"' {
				inQuote = false
			}
		case c == '"':
			inQuote = true
		case c == '[':
			end := strings.IndexByte(f[i:], ']')
			if end < 0 {
				return false
			}
			// elapsed time sections: [h], [mm], [ss]
			if section := f[i+1 : i+end]; section != "" && strings.Trim(section, "hms") == "" {
				return true
			}
			i += end
		case c == '\\' || c == '_' || c == '*':
			i++
		case c == 'e' && i+1 < len(f) && (f[i+1] == '+' || f[i+1] == '-'):
			// scientific exponent
			i++
		case c == 'y' || c == 'd' || c == 'h' || c == 's' || c == 'm':
			return true
		}
	}
	return false
}

// HasDateTime reports whether the format's number format shows a date or time.
func (f *Format) HasDateTime() bool {
	return IsDateTimeFormat(f.NumberFormat)
}
