package schema

import (
	"regexp"

	"github.com/signadot/univcont/debug"
	"github.com/signadot/univcont/ir"
)

// Contract is a compiled schema node. It is immutable once built.
type Contract struct {
	Type ir.Type

	// string
	Regex *regexp.Regexp

	// integer and character
	IntLower, IntUpper *int64

	// real
	RealLower, RealUpper *float64

	// map
	Required, Optional map[string]*Contract

	// array
	Size   *Contract
	Forall *Contract
	Exists []*Contract
}

var kinds = map[string]ir.Type{
	"string":    ir.StringType,
	"integer":   ir.IntegerType,
	"character": ir.CharacterType,
	"real":      ir.RealType,
	"boolean":   ir.BooleanType,
	"map":       ir.MapType,
	"array":     ir.ArrayType,
}

// New compiles a schema. The schema is a Map whose "type" key names
// the kind; other keys depend on the kind:
//
//	string     regex
//	integer    lower_bound upper_bound
//	character  lower_bound upper_bound
//	real       lower_bound upper_bound
//	map        required_members optional_members
//	array      size forall exists
func New(schema *ir.Value) (*Contract, error) {
	if schema.Type() != ir.MapType {
		return nil, ir.Errorf(ir.ErrContractViolation, schema, "contract is a %s, not a map", schema.Type())
	}
	tv, ok := schema.Get("type")
	if !ok {
		return nil, ir.Errorf(ir.ErrContractViolation, schema, "contract has no type")
	}
	name, err := tv.Str()
	if err != nil {
		return nil, ir.Errorf(ir.ErrContractViolation, schema, "contract type: %v", err)
	}
	t, ok := kinds[name]
	if !ok {
		return nil, ir.Errorf(ir.ErrContractViolation, schema, "unknown contract type %q", name)
	}
	c := &Contract{Type: t}
	switch t {
	case ir.StringType:
		err = c.buildString(schema)
	case ir.IntegerType, ir.CharacterType:
		err = c.buildIntBounds(schema)
	case ir.RealType:
		err = c.buildRealBounds(schema)
	case ir.MapType:
		err = c.buildMap(schema)
	case ir.ArrayType:
		err = c.buildArray(schema)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Contract) buildString(schema *ir.Value) error {
	rv, ok := schema.Get("regex")
	if !ok {
		return nil
	}
	expr, err := rv.Str()
	if err != nil {
		return ir.Errorf(ir.ErrContractViolation, schema, "regex: %v", err)
	}
	re, err := regexp.CompilePOSIX(expr)
	if err != nil {
		return ir.Errorf(ir.ErrContractViolation, schema, "regex: %v", err)
	}
	c.Regex = re
	return nil
}

func (c *Contract) buildIntBounds(schema *ir.Value) error {
	for key, dst := range map[string]**int64{"lower_bound": &c.IntLower, "upper_bound": &c.IntUpper} {
		bv, ok := schema.Get(key)
		if !ok {
			continue
		}
		b, err := bv.Int()
		if err != nil {
			return ir.Errorf(ir.ErrContractViolation, schema, "%s: %v", key, err)
		}
		*dst = &b
	}
	return nil
}

func (c *Contract) buildRealBounds(schema *ir.Value) error {
	for key, dst := range map[string]**float64{"lower_bound": &c.RealLower, "upper_bound": &c.RealUpper} {
		bv, ok := schema.Get(key)
		if !ok {
			continue
		}
		b, err := bv.Float()
		if err != nil {
			return ir.Errorf(ir.ErrContractViolation, schema, "%s: %v", key, err)
		}
		*dst = &b
	}
	return nil
}

func members(schema *ir.Value, key string) (map[string]*Contract, error) {
	mv, ok := schema.Get(key)
	if !ok {
		return nil, nil
	}
	if mv.Type() != ir.MapType {
		return nil, ir.Errorf(ir.ErrContractViolation, schema, "%s is a %s, not a map", key, mv.Type())
	}
	res := make(map[string]*Contract)
	for _, k := range mv.Keys() {
		child, _ := mv.Get(k)
		sub, err := New(child)
		if err != nil {
			return nil, err
		}
		res[k] = sub
	}
	return res, nil
}

func (c *Contract) buildMap(schema *ir.Value) error {
	var err error
	if c.Required, err = members(schema, "required_members"); err != nil {
		return err
	}
	c.Optional, err = members(schema, "optional_members")
	return err
}

func (c *Contract) buildArray(schema *ir.Value) error {
	var err error
	if sv, ok := schema.Get("size"); ok {
		if c.Size, err = New(sv); err != nil {
			return err
		}
	}
	if fv, ok := schema.Get("forall"); ok {
		if c.Forall, err = New(fv); err != nil {
			return err
		}
	}
	ev, ok := schema.Get("exists")
	if !ok {
		return nil
	}
	if ev.Type() != ir.ArrayType {
		return ir.Errorf(ir.ErrContractViolation, schema, "exists is a %s, not an array", ev.Type())
	}
	for _, e := range ev.Elems() {
		sub, err := New(e)
		if err != nil {
			return err
		}
		c.Exists = append(c.Exists, sub)
	}
	return nil
}

// Compare returns the violations of v against c, or 0.
func (c *Contract) Compare(v *ir.Value) Violation {
	res := c.compare(v)
	if debug.Contract() {
		debug.Logf("compare %s contract with %s: %s", c.Type, v.Type(), res)
	}
	return res
}

func (c *Contract) compare(v *ir.Value) Violation {
	if v.Type() != c.Type {
		return ImproperType
	}
	switch c.Type {
	case ir.IntegerType, ir.CharacterType:
		x, _ := v.Int()
		if (c.IntLower != nil && x < *c.IntLower) || (c.IntUpper != nil && x > *c.IntUpper) {
			return ConstraintViolation
		}
	case ir.RealType:
		x, _ := v.Float()
		if (c.RealLower != nil && x < *c.RealLower) || (c.RealUpper != nil && x > *c.RealUpper) {
			return ConstraintViolation
		}
	case ir.StringType:
		s, _ := v.Str()
		if c.Regex != nil && !c.Regex.MatchString(s) {
			return StringDoesNotMatch
		}
	case ir.MapType:
		return c.compareMap(v)
	case ir.ArrayType:
		return c.compareArray(v)
	}
	return 0
}

func (c *Contract) compareMap(v *ir.Value) Violation {
	var res Violation
	seen := 0
	for _, k := range v.Keys() {
		child, _ := v.Get(k)
		if sub, ok := c.Required[k]; ok {
			seen++
			res |= sub.compare(child)
		} else if sub, ok := c.Optional[k]; ok {
			res |= sub.compare(child)
		} else {
			res |= ExtraMapElement
		}
	}
	if seen < len(c.Required) {
		res |= MissingRequiredMapElement
	}
	return res
}

func (c *Contract) compareArray(v *ir.Value) Violation {
	var res Violation
	elems := v.Elems()
	if c.Size != nil {
		res |= c.Size.compare(ir.FromInt(int64(len(elems))))
	}
	if c.Forall != nil {
		for _, e := range elems {
			res |= c.Forall.compare(e)
		}
	}
	for _, want := range c.Exists {
		found := false
		for _, e := range elems {
			if want.compare(e) == 0 {
				found = true
				break
			}
		}
		if !found {
			res |= MissingRequiredArrayElement
		}
	}
	return res
}

// Check is CheckMask with every violation enabled.
func (c *Contract) Check(v *ir.Value) error {
	return c.checkMask(v, AllViolations)
}

// CheckMask compares v against c and returns an *ir.Error with code
// ir.ErrContractViolation if any violation in mask occurs.
func (c *Contract) CheckMask(v *ir.Value, mask Violation) error {
	return c.checkMask(v, mask)
}

func (c *Contract) checkMask(v *ir.Value, mask Violation) error {
	res := c.Compare(v) & mask
	if res == 0 {
		return nil
	}
	err := ir.NewError(ir.ErrContractViolation, v)
	err.Violations = res.Messages()
	err.Mask = uint32(res)
	return err
}
