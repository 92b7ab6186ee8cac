// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package attrfile

import (
	"bytes"
	"fmt"
	"math/big"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	hcljson "github.com/hashicorp/hcl/v2/json"
	"github.com/zclconf/go-cty/cty"
	ctyyaml "github.com/zclconf/go-cty-yaml"

	"github.com/opentofu/nodeattrs/internal/errorhandling"
)

// Parse decodes the source of one attribute file into a raw attribute tree.
// The syntax is chosen from the extension of filename.
//
// HCL and JSON files are a flat set of attribute definitions, each of
// which must be a constant expression. A YAML file must contain a single
// mapping, or nothing at all.
func Parse(filename string, src []byte) (map[string]any, error) {
	format, ok := FormatForExt(filepath.Ext(filename))
	if !ok {
		return nil, fmt.Errorf("%s: not an attribute file", filename)
	}

	switch format {
	case FormatYAML:
		return parseYAML(filename, src)
	default:
		var file *hcl.File
		var diags hcl.Diagnostics
		if format == FormatJSON {
			file, diags = hcljson.Parse(src, filename)
		} else {
			file, diags = hclsyntax.ParseConfig(src, filename, hcl.InitialPos)
		}
		if diags.HasErrors() {
			return nil, diags
		}
		return bodyValues(file.Body)
	}
}

func bodyValues(body hcl.Body) (map[string]any, error) {
	hclAttrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}

	ret := make(map[string]any, len(hclAttrs))
	for name, attr := range hclAttrs {
		val, valDiags := attr.Expr.Value(nil)
		diags = append(diags, valDiags...)
		if valDiags.HasErrors() {
			continue
		}
		raw, err := fromCty(val)
		if err != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid attribute value",
				Detail:   fmt.Sprintf("The value of %q cannot be stored as an attribute: %s.", name, err),
				Subject:  attr.Expr.Range().Ptr(),
			})
			continue
		}
		ret[name] = raw
	}
	if diags.HasErrors() {
		return nil, diags
	}
	return ret, nil
}

func parseYAML(filename string, src []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(src)) == 0 {
		return map[string]any{}, nil
	}
	val, err := errorhandling.Safe2(func() (cty.Value, error) {
		ty, err := ctyyaml.Standard.ImpliedType(src)
		if err != nil {
			return cty.NilVal, err
		}
		return ctyyaml.Standard.Unmarshal(src, ty)
	}, func(err error) error {
		return fmt.Errorf("%s: %w", filename, err)
	})
	if err != nil {
		return nil, err
	}

	if val.IsNull() {
		return map[string]any{}, nil
	}
	if !val.Type().IsObjectType() && !val.Type().IsMapType() {
		return nil, fmt.Errorf("%s: top level must be a mapping, not %s", filename, val.Type().FriendlyName())
	}
	raw, err := fromCty(val)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return raw.(map[string]any), nil
}

// fromCty converts a known cty value into a raw attribute value. Whole
// numbers become int, other numbers float64.
func fromCty(val cty.Value) (any, error) {
	if !val.IsWhollyKnown() {
		return nil, fmt.Errorf("value is not known")
	}
	if val.IsNull() {
		return nil, nil
	}

	ty := val.Type()
	switch {
	case ty == cty.String:
		return val.AsString(), nil
	case ty == cty.Bool:
		return val.True(), nil
	case ty == cty.Number:
		return fromCtyNumber(val.AsBigFloat()), nil
	case ty.IsObjectType() || ty.IsMapType():
		ret := make(map[string]any, val.LengthInt())
		for it := val.ElementIterator(); it.Next(); {
			k, v := it.Element()
			raw, err := fromCty(v)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k.AsString(), err)
			}
			ret[k.AsString()] = raw
		}
		return ret, nil
	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		ret := make([]any, 0, val.LengthInt())
		for it := val.ElementIterator(); it.Next(); {
			_, v := it.Element()
			raw, err := fromCty(v)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", len(ret), err)
			}
			ret = append(ret, raw)
		}
		return ret, nil
	default:
		return nil, fmt.Errorf("unsupported type %s", ty.FriendlyName())
	}
}

func fromCtyNumber(bf *big.Float) any {
	if bf.IsInt() {
		if i, acc := bf.Int64(); acc == big.Exact {
			return int(i)
		}
	}
	f, _ := bf.Float64()
	return f
}
