// Package duration parses the fetch timeout setting.
//
// Users write "30s", "2m" or "1m30s" (Go syntax), or a bare number of
// seconds such as "45". Values outside [Min, Max] are rejected so a typo
// cannot turn a catalog load into a hang.
package duration

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Bounds for fetch timeouts.
const (
	Min = time.Second
	Max = 10 * time.Minute
)

var seconds = regexp.MustCompile(`^\d+$`)

// Parse parses a timeout string.
func Parse(s string) (time.Duration, error) {
	var d time.Duration
	if seconds.MatchString(s) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("invalid number: %w", err)
		}
		d = time.Duration(n) * time.Second
	} else {
		var err error
		d, err = time.ParseDuration(s)
		if err != nil {
			return 0, fmt.Errorf("invalid duration format: %s (use 30s, 2m or a number of seconds)", s)
		}
	}
	if d < Min || d > Max {
		return 0, fmt.Errorf("duration %s out of range (%s to %s)", d, Min, Max)
	}
	return d, nil
}
