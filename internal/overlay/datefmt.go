package overlay

import (
	"strconv"
	"strings"
	"time"
)

// dateTokens are tried longest-first at every scan position so that e.g.
// "MMMM" renders the full month name instead of being consumed as two
// "MM" tokens.
var dateTokens = []string{
	"MMMM", "dddd",
	"YYYY",
	"MMM", "ddd",
	"YY", "MM", "DD", "HH", "hh", "mm", "ss",
	"A", "D", "h", "a",
}

// FormatDateTime renders t according to a token-based format string.
// Unknown characters pass through unchanged.
func FormatDateTime(t time.Time, format string) string {
	var b strings.Builder
	b.Grow(len(format) + 8)

	for i := 0; i < len(format); {
		matched := false
		for _, tok := range dateTokens {
			if strings.HasPrefix(format[i:], tok) {
				b.WriteString(renderToken(t, tok))
				i += len(tok)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(format[i])
			i++
		}
	}
	return b.String()
}

func renderToken(t time.Time, tok string) string {
	switch tok {
	case "YYYY":
		return t.Format("2006")
	case "YY":
		return t.Format("06")
	case "MMMM":
		return t.Format("January")
	case "MMM":
		return t.Format("Jan")
	case "MM":
		return t.Format("01")
	case "DD":
		return t.Format("02")
	case "D":
		return strconv.Itoa(t.Day())
	case "dddd":
		return t.Format("Monday")
	case "ddd":
		return t.Format("Mon")
	case "HH":
		return t.Format("15")
	case "hh":
		return t.Format("03")
	case "h":
		return strconv.Itoa(hour12(t))
	case "mm":
		return t.Format("04")
	case "ss":
		return t.Format("05")
	case "A":
		return t.Format("PM")
	case "a":
		return t.Format("pm")
	}
	return tok
}

func hour12(t time.Time) int {
	h := t.Hour() % 12
	if h == 0 {
		h = 12
	}
	return h
}
