// Package schema compiles contracts from schema Values and checks
// Values against them.
//
//	c, err := schema.New(ir.FromMap(map[string]*ir.Value{
//	    "type": ir.FromString("integer"),
//	    "lower_bound": ir.FromInt(0),
//	}))
//	c.Compare(ir.FromInt(-1)) // ConstraintViolation
//
// A type mismatch at a node is reported alone; the node's other checks
// are skipped. Violations of nested contracts are or-ed together.
package schema
