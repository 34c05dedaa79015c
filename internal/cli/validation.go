package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// parseBreachID parses a breach ID argument. IDs are positive integers; a
// leading '#' as printed by list output is accepted.
func parseBreachID(arg string) (int64, error) {
	s := strings.TrimPrefix(strings.TrimSpace(arg), "#")
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid breach ID '%s'. Expected a number such as 1", arg)
	}
	if id < 1 {
		return 0, fmt.Errorf("invalid breach ID '%s'. IDs start at 1", arg)
	}
	return id, nil
}
