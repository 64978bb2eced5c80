package kernel

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatVND renders a whole-unit VND amount with thousands separators,
// e.g. 343000 -> "343,000 VND". Used for human-facing notification bodies.
func FormatVND(amount int64) string {
	s := strconv.FormatInt(amount, 10)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	if neg {
		return fmt.Sprintf("-%s VND", b.String())
	}
	return fmt.Sprintf("%s VND", b.String())
}
