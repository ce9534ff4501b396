package id

import (
	"strconv"
	"strings"
)

// Parse reads a task id from a command token. ok is false when the token is
// not a positive decimal integer; callers treat that as "matches nothing".
func Parse(token string) (id int, ok bool) {
	n, err := strconv.ParseUint(strings.TrimSpace(token), 10, 31)
	if err != nil || n == 0 {
		return 0, false
	}
	return int(n), true
}

// Next returns the id following the highest id in ids.
func Next(ids []int) int {
	highest := 0
	for _, i := range ids {
		if i > highest {
			highest = i
		}
	}
	return highest + 1
}
