package templates

import (
	"strconv"
	"strings"
)

// prefixedStrings renders "T0, T1, ..." style lists.
func prefixedStrings(prefix string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(prefix)
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// readerParams renders "r0 func() T0, r1 func() T1, ..." parameter lists.
func readerParams(count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		n := strconv.Itoa(i)
		sb.WriteString("r")
		sb.WriteString(n)
		sb.WriteString(" func() T")
		sb.WriteString(n)
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}
