package parse

import (
	"github.com/signadot/univcont/ir"
)

// truncated reports input ending where more was expected.
func truncated(off int, what string, err error) error {
	return ir.Errorf(ir.ErrDeserialization, nil, "%s at offset %d: %v", what, off, err)
}

func malformed(off int, format string, args ...any) error {
	args = append([]any{off}, args...)
	return ir.Errorf(ir.ErrDeserialization, nil, "offset %d: "+format, args...)
}
