package utils

import (
	"strconv"
	"strings"
)

// ParseLeadingNumber extracts the leading numeric value from a spec string
// such as "8GB", "6.1 inches" or "4000mAh". Returns 0 when the string does
// not start with a number.
func ParseLeadingNumber(s string) float64 {
	s = strings.TrimSpace(s)
	end := 0
	seenDot := false
	for end < len(s) {
		ch := s[end]
		if ch >= '0' && ch <= '9' {
			end++
			continue
		}
		if ch == '.' && !seenDot && end > 0 {
			seenDot = true
			end++
			continue
		}
		break
	}
	if end == 0 {
		return 0
	}
	// A trailing dot ("6." ) is not a valid number; drop it.
	if s[end-1] == '.' {
		end--
	}
	if end == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return v
}
