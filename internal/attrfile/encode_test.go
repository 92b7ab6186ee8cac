// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package attrfile

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/zclconf/go-cty-debug/ctydebug"
	"github.com/zclconf/go-cty/cty"
)

func TestToCty(t *testing.T) {
	got, err := ToCty(map[string]any{
		"a": []any{"x", nil},
		"b": 1,
		"c": map[string]any{"d": true, "e": 2.5},
		"f": []any{},
		"g": map[string]any{},
	})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	want := cty.ObjectVal(map[string]cty.Value{
		"a": cty.TupleVal([]cty.Value{cty.StringVal("x"), cty.NullVal(cty.String)}),
		"b": cty.NumberIntVal(1),
		"c": cty.ObjectVal(map[string]cty.Value{
			"d": cty.True,
			"e": cty.NumberFloatVal(2.5),
		}),
		"f": cty.EmptyTupleVal,
		"g": cty.EmptyObjectVal,
	})
	if diff := cmp.Diff(want, got, ctydebug.CmpOptions); diff != "" {
		t.Errorf("wrong result\n%s", diff)
	}
}

func TestToCtyUnsupported(t *testing.T) {
	_, err := ToCty(map[string]any{"a": map[string]any{"b": make(chan int)}})
	if err == nil {
		t.Fatal("succeeded; want error")
	}
	if !strings.Contains(err.Error(), "a.b") {
		t.Errorf("error does not name the path: %s", err)
	}
}

func TestMarshalJSON(t *testing.T) {
	got, err := MarshalJSON(map[string]any{"b": 1, "a": []any{"x", nil}, "m": map[string]any{}})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	want := `{"a":["x",null],"b":1,"m":{}}`
	if string(got) != want {
		t.Errorf("wrong result\ngot:  %s\nwant: %s", got, want)
	}
}

func TestMarshalYAML(t *testing.T) {
	raw := map[string]any{
		"pkg": map[string]any{"names": []any{"a", "b"}, "port": 80, "enabled": true},
	}
	src, err := MarshalYAML(raw)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	got, err := Parse("out.yaml", src)
	if err != nil {
		t.Fatalf("output does not parse: %s\n%s", err, src)
	}
	if diff := cmp.Diff(raw, got); diff != "" {
		t.Errorf("output does not read back the same\n%s\n%s", diff, src)
	}
}

func TestMarshalJSONValues(t *testing.T) {
	tests := map[string]struct {
		value any
		want  string
	}{
		"list":   {[]any{1, "a"}, `[1,"a"]`},
		"string": {"x", `"x"`},
		"null":   {nil, `null`},
		"float":  {1.5, `1.5`},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := MarshalJSON(test.value)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if string(got) != test.want {
				t.Errorf("wrong result %s, want %s", got, test.want)
			}
		})
	}
}
