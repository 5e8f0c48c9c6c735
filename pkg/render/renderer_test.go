package render

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"

	"github.com/goliatone/go-formbuilder/pkg/dom"
	"github.com/goliatone/go-formbuilder/pkg/model"
)

func newRenderer(t *testing.T, options ...Option) *FieldRenderer {
	t.Helper()
	r, err := New(options...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return r
}

func tags(nodes []*html.Node) []string {
	out := make([]string, 0, len(nodes))
	for _, node := range nodes {
		out = append(out, node.Data)
	}
	return out
}

func TestMarkupMatchesLegacyTemplates(t *testing.T) {
	r := newRenderer(t)
	cases := []struct {
		name  string
		field model.FieldDescriptor
		want  string
	}{
		{
			name:  "text required",
			field: model.FieldDescriptor{Name: "name", Label: "Name", Type: model.FieldTypeText, Required: true},
			want:  `<label>Name:</label> <input type="text" name="name" required><br>`,
		},
		{
			name:  "number optional",
			field: model.FieldDescriptor{Name: "age", Label: "Age", Type: model.FieldTypeNumber},
			want:  `<label>Age:</label> <input type="number" name="age" ><br>`,
		},
		{
			name:  "select",
			field: model.FieldDescriptor{Name: "color", Label: "Color", Type: model.FieldTypeSelect, Options: []string{"red", " blue"}},
			want:  `<label>Color:</label> <select name="color" ><option value="red">red</option><option value=" blue"> blue</option></select><br>`,
		},
		{
			name:  "select without options",
			field: model.FieldDescriptor{Name: "color", Label: "Color", Type: model.FieldTypeSelect, Required: true},
			want:  `<label>Color:</label> <select name="color" required></select><br>`,
		},
		{
			name:  "checkbox",
			field: model.FieldDescriptor{Name: "agree", Label: "Agree", Type: model.FieldTypeCheckbox, Required: true},
			want:  `<input type="checkbox" name="agree" required> <label>Agree</label><br>`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := r.Markup(tc.field)
			if err != nil {
				t.Fatalf("markup: %v", err)
			}
			if got != tc.want {
				t.Fatalf("markup mismatch\nwant: %s\n got: %s", tc.want, got)
			}
		})
	}
}

func TestRenderDispatch(t *testing.T) {
	r := newRenderer(t)

	for _, required := range []bool{true, false} {
		for _, typ := range []model.FieldType{model.FieldTypeText, model.FieldTypeNumber} {
			node, err := r.Render(model.FieldDescriptor{Name: "f", Label: "F", Type: typ, Required: required})
			if err != nil {
				t.Fatalf("render %s: %v", typ, err)
			}
			if !dom.HasClass(node, WrapperClass) {
				t.Fatalf("wrapper class missing: %s", dom.OuterHTML(node))
			}
			if diff := cmp.Diff([]string{"label", "input", "br"}, tags(dom.Elements(node))); diff != "" {
				t.Fatalf("%s children mismatch (-want +got):\n%s", typ, diff)
			}
			input := dom.Find(node, "input")
			if got, _ := dom.Attr(input, "type"); got != string(typ) {
				t.Fatalf("input type = %q, want %q", got, typ)
			}
			if got, _ := dom.Attr(input, "name"); got != "f" {
				t.Fatalf("input name = %q", got)
			}
			if _, ok := dom.Attr(input, "required"); ok != required {
				t.Fatalf("%s required attr = %v, want %v", typ, ok, required)
			}
		}
	}
}

func TestRenderSelectOptionsInOrder(t *testing.T) {
	r := newRenderer(t)
	node, err := r.Render(model.FieldDescriptor{
		Name:     "size",
		Label:    "Size",
		Type:     model.FieldTypeSelect,
		Options:  []string{"small", "medium", "large"},
		Required: true,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	sel := dom.Find(node, "select")
	if sel == nil {
		t.Fatalf("select missing: %s", dom.OuterHTML(node))
	}
	if _, ok := dom.Attr(sel, "required"); !ok {
		t.Fatal("select should be required")
	}

	type option struct{ Value, Text string }
	var got []option
	for _, opt := range dom.FindAll(sel, "option") {
		value, _ := dom.Attr(opt, "value")
		got = append(got, option{Value: value, Text: dom.TextContent(opt)})
	}
	want := []option{{"small", "small"}, {"medium", "medium"}, {"large", "large"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderCheckboxPrecedesLabel(t *testing.T) {
	r := newRenderer(t)
	node, err := r.Render(model.FieldDescriptor{Name: "agree", Label: "Agree", Type: model.FieldTypeCheckbox})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if diff := cmp.Diff([]string{"input", "label", "br"}, tags(dom.Elements(node))); diff != "" {
		t.Fatalf("children mismatch (-want +got):\n%s", diff)
	}
	input := dom.Find(node, "input")
	if got, _ := dom.Attr(input, "type"); got != "checkbox" {
		t.Fatalf("input type = %q", got)
	}
	if _, ok := dom.Attr(input, "required"); ok {
		t.Fatal("checkbox should not be required")
	}
	if got := dom.TextContent(dom.Find(node, "label")); got != "Agree" {
		t.Fatalf("label = %q", got)
	}
}

func TestRenderUnknownTypeReturnsEmptyWrapper(t *testing.T) {
	r := newRenderer(t)
	for _, typ := range []model.FieldType{"date", "", "Text", "radio"} {
		node, err := r.Render(model.FieldDescriptor{Name: "when", Label: "When", Type: typ})
		if !errors.Is(err, ErrUnknownFieldType) {
			t.Fatalf("type %q: error = %v, want ErrUnknownFieldType", typ, err)
		}
		if node == nil {
			t.Fatalf("type %q: wrapper is nil", typ)
		}
		if node.FirstChild != nil {
			t.Fatalf("type %q: wrapper not empty: %s", typ, dom.OuterHTML(node))
		}
		if got := dom.OuterHTML(node); got != `<div class="form-field"></div>` {
			t.Fatalf("type %q: wrapper = %s", typ, got)
		}
	}
}

// Verbatim interpolation is the legacy behavior: label markup becomes real
// elements and attribute values can break out of their quotes.
func TestRenderVerbatimInterpolationKeepsMarkup(t *testing.T) {
	r := newRenderer(t)
	node, err := r.Render(model.FieldDescriptor{
		Name:  `x" data-injected="1`,
		Label: `<b>bold</b>`,
		Type:  model.FieldTypeText,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	label := dom.Find(node, "label")
	if dom.Find(label, "b") == nil {
		t.Fatalf("expected <b> inside label: %s", dom.OuterHTML(node))
	}
	input := dom.Find(node, "input")
	if got, _ := dom.Attr(input, "name"); got != "x" {
		t.Fatalf("name = %q, want truncated by injected quote", got)
	}
	if _, ok := dom.Attr(input, "data-injected"); !ok {
		t.Fatal("expected injected attribute")
	}
}

func TestRenderEscapeInterpolation(t *testing.T) {
	r := newRenderer(t, WithInterpolation(InterpolationEscape))
	node, err := r.Render(model.FieldDescriptor{
		Name:  `x" data-injected="1`,
		Label: `<b>bold</b>`,
		Type:  model.FieldTypeText,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	label := dom.Find(node, "label")
	if dom.Find(label, "b") != nil {
		t.Fatal("escaped label should not contain elements")
	}
	if got := dom.TextContent(label); got != "<b>bold</b>:" {
		t.Fatalf("label text = %q", got)
	}
	input := dom.Find(node, "input")
	if got, _ := dom.Attr(input, "name"); got != `x" data-injected="1` {
		t.Fatalf("name = %q", got)
	}
	if _, ok := dom.Attr(input, "data-injected"); ok {
		t.Fatal("escaped name should not inject attributes")
	}
}

func TestRenderSanitizeInterpolation(t *testing.T) {
	r := newRenderer(t, WithInterpolation(InterpolationSanitize))
	node, err := r.Render(model.FieldDescriptor{
		Name:    "pick",
		Label:   `<script>alert(1)</script>Pick <i>one</i>`,
		Type:    model.FieldTypeSelect,
		Options: []string{"<b>a</b>"},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	label := dom.Find(node, "label")
	if dom.Find(label, "script") != nil || dom.Find(label, "i") != nil {
		t.Fatalf("sanitized label kept markup: %s", dom.OuterHTML(label))
	}
	if got := dom.TextContent(label); got != "Pick one:" {
		t.Fatalf("label text = %q", got)
	}
	opt := dom.Find(node, "option")
	if got, _ := dom.Attr(opt, "value"); got != "a" {
		t.Fatalf("option value = %q", got)
	}
}

func TestParseInterpolation(t *testing.T) {
	cases := map[string]Interpolation{
		"":         InterpolationVerbatim,
		"verbatim": InterpolationVerbatim,
		" Escape ": InterpolationEscape,
		"sanitize": InterpolationSanitize,
	}
	for input, want := range cases {
		got, err := ParseInterpolation(input)
		if err != nil {
			t.Fatalf("ParseInterpolation(%q): %v", input, err)
		}
		if got != want {
			t.Fatalf("ParseInterpolation(%q) = %q, want %q", input, got, want)
		}
	}
	if _, err := ParseInterpolation("raw"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}
