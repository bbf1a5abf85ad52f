package schema

import "strings"

// Violation is a set of independent contract failures.
type Violation uint32

const (
	ImproperType Violation = 1 << iota
	ConstraintViolation
	ExtraMapElement
	MissingRequiredMapElement
	MissingRequiredArrayElement
	StringDoesNotMatch

	AllViolations = ImproperType | ConstraintViolation | ExtraMapElement |
		MissingRequiredMapElement | MissingRequiredArrayElement | StringDoesNotMatch
)

var messages = []struct {
	bit Violation
	msg string
}{
	{ImproperType, "element has wrong type"},
	{ConstraintViolation, "a constraint was violated"},
	{ExtraMapElement, "a map element not specified in the contract is present"},
	{MissingRequiredMapElement, "a required map element is missing"},
	{MissingRequiredArrayElement, "an array element that must exist is not present"},
	{StringDoesNotMatch, "a string does not match its regular expression"},
}

// Messages returns a message for every set bit, in bit order.
func (v Violation) Messages() []string {
	var res []string
	for _, m := range messages {
		if v&m.bit != 0 {
			res = append(res, m.msg)
		}
	}
	return res
}

func (v Violation) String() string {
	if v == 0 {
		return "ok"
	}
	return strings.Join(v.Messages(), "; ")
}
