package figma

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidNodeID is returned when a node id is not of the form "<int>:<int>".
var ErrInvalidNodeID = errors.New("figma: invalid node id")

// Go's \d only matches ASCII digits, so full-width digits are rejected too.
var (
	reNodeID    = regexp.MustCompile(`^\d+:\d+$`)
	reURLNodeID = regexp.MustCompile(`^\d+-\d+$`)
)

// ValidateNodeID checks that id looks like "1:1099".
func ValidateNodeID(id string) error {
	if reNodeID.MatchString(id) {
		return nil
	}
	hint := "expected two integers separated by ':' (for example 1:1099)"
	switch {
	case strings.Contains(id, "："):
		hint += "; the input contains a full-width colon '：', use the ASCII ':' instead"
	case reURLNodeID.MatchString(id):
		hint += "; Figma URLs write node ids with '-', replace it with ':'"
	}
	return fmt.Errorf("%w %q: %s", ErrInvalidNodeID, id, hint)
}
