package tldr

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"tldrbot/core"
)

// timePattern matches relative durations like "30m", "1h" or "2d"
var timePattern = regexp.MustCompile(`^(\d+)([mhd])$`)

// ParseTimeAgo parses a relative duration string ("30m", "1h", "2d") into a
// time.Duration. Malformed input fails with a ValidationError whose reason
// names the accepted format.
func ParseTimeAgo(value string) (time.Duration, error) {
	match := timePattern.FindStringSubmatch(strings.ToLower(strings.TrimSpace(value)))
	if match == nil {
		return 0, &core.ValidationError{
			Reason: fmt.Sprintf("invalid time format `%s` - use a format like 30m, 1h or 2d.", value),
		}
	}

	amount, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, &core.ValidationError{
			Reason: fmt.Sprintf("invalid time value `%s`.", value),
		}
	}

	switch match[2] {
	case "m":
		return time.Duration(amount) * time.Minute, nil
	case "h":
		return time.Duration(amount) * time.Hour, nil
	default:
		return time.Duration(amount) * 24 * time.Hour, nil
	}
}
