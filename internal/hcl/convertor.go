package hcl

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/un-def/ptl/internal/config"
	"github.com/un-def/ptl/internal/providers"
)

// evaluate returns the value of an attribute expression. A null value means
// the attribute was omitted; gohcl fills omitted optional expressions with
// a static null.
func evaluate(expr hcl.Expression, key string) (cty.Value, error) {
	if expr == nil {
		return cty.NullVal(cty.DynamicPseudoType), nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return cty.NilVal, config.Errorf("%s: %s", key, diags.Error())
	}
	if !val.IsWhollyKnown() {
		return cty.NilVal, config.Errorf("%s: value must be known", key)
	}
	return val, nil
}

func typeError(key, expected string, got cty.Type) error {
	return config.Errorf("%s: %s expected, got %s", key, expected, got.FriendlyName())
}

func decodeString(expr hcl.Expression, key string) (*string, error) {
	val, err := evaluate(expr, key)
	if err != nil || val.IsNull() {
		return nil, err
	}
	if val.Type() != cty.String {
		return nil, typeError(key, "string", val.Type())
	}
	s := val.AsString()
	return &s, nil
}

func decodeInt(expr hcl.Expression, key string) (*int, error) {
	val, err := evaluate(expr, key)
	if err != nil || val.IsNull() {
		return nil, err
	}
	if val.Type() != cty.Number {
		return nil, typeError(key, "number", val.Type())
	}
	var i int
	if err := gocty.FromCtyValue(val, &i); err != nil {
		return nil, config.Errorf("%s: whole number expected", key)
	}
	return &i, nil
}

// decodeCommandLine accepts a string, split with shell rules, or a list of
// strings. The result is non-nil whenever the attribute is set.
func decodeCommandLine(expr hcl.Expression, key string) ([]string, error) {
	val, err := evaluate(expr, key)
	if err != nil || val.IsNull() {
		return nil, err
	}
	const expected = "string or list of strings"

	typ := val.Type()
	switch {
	case typ == cty.String:
		argv, err := providers.SplitCommandLine(val.AsString())
		if err != nil {
			return nil, config.Errorf("%s: %v", key, err)
		}
		if argv == nil {
			argv = []string{}
		}
		return argv, nil
	case typ.IsTupleType() || typ.IsListType():
		argv := make([]string, 0, val.LengthInt())
		for it := val.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			if elem.IsNull() || elem.Type() != cty.String {
				return nil, typeError(key, expected, typ)
			}
			argv = append(argv, elem.AsString())
		}
		return argv, nil
	}
	return nil, typeError(key, expected, typ)
}
