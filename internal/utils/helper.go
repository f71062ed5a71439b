package utils

import (
	"strconv"
	"strings"
)

// ParseID parses a path id as a positive integer.
func ParseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
