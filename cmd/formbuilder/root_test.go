package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-formbuilder/pkg/export"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/prompt"
)

const sampleConfig = `
targetSelector: "#form"
styleRules:
  color: red
fields:
  - { name: age, label: Age, type: number, required: true }
  - { name: when, label: When, type: date }
`

const sampleOpenAPI = `
openapi: 3.0.3
info: { title: Users, version: 1.0.0 }
paths:
  /users:
    post:
      operationId: createUser
      requestBody:
        content:
          application/json:
            schema:
              type: object
              required: [email]
              properties:
                email: { type: string, title: Email }
      responses:
        "201": { description: created }
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, opts *rootOptions, args ...string) (string, string, error) {
	t.Helper()
	var stdout, logs bytes.Buffer
	if opts.logOut == nil {
		opts.logOut = &logs
	}
	cmd := newRootCmd(opts)
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&logs)
	cmd.SetIn(strings.NewReader(""))
	err := cmd.Execute()
	return stdout.String(), logs.String(), err
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "form.yaml", sampleConfig)

	out, _, err := execute(t, &rootOptions{}, "render", "--config", cfg)
	require.NoError(t, err)

	assert.Contains(t, out, `<style>#form { color: red; }</style>`)
	assert.Contains(t, out, `<div class="form-field"><label>Age:</label> <input type="number" name="age" required=""/><br/></div><div class="form-field"></div>`)
}

func TestRenderCommandWritesPageFile(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "form.yaml", "targetSelector: '.slot'\nfields:\n  - { name: ok, label: OK, type: checkbox }\n")
	page := writeFile(t, dir, "page.html", `<html><body><p class="slot"></p></body></html>`)
	target := filepath.Join(dir, "out.html")

	out, _, err := execute(t, &rootOptions{}, "render", "-c", cfg, "--page", page, "--out", target)
	require.NoError(t, err)
	assert.Empty(t, out)

	written, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(written), `<p class="slot"><div class="form-field"><input type="checkbox" name="ok"/> <label>OK</label><br/></div></p>`)
}

func TestRenderCommandStrict(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "form.yaml", sampleConfig)

	_, _, err := execute(t, &rootOptions{}, "render", "--config", cfg, "--strict")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown field type")
}

func TestRenderCommandLogsLenientDegradation(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "form.yaml", "targetSelector: '#missing'\n")

	var logs bytes.Buffer
	_, _, err := execute(t, &rootOptions{logOut: &logs}, "render", "--config", cfg, "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "target container not found")
}

func TestRenderCommandSeedsFromOpenAPI(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "form.yaml", "targetSelector: '#form'\n")
	spec := writeFile(t, dir, "api.yaml", sampleOpenAPI)

	out, _, err := execute(t, &rootOptions{}, "render", "--config", cfg, "--openapi", spec, "--operation", "createUser")
	require.NoError(t, err)
	assert.Contains(t, out, `<label>Email:</label> <input type="text" name="email" required=""/>`)

	_, _, err = execute(t, &rootOptions{}, "render", "--config", cfg, "--openapi", spec)
	require.Error(t, err)
}

func TestRenderCommandInterpolationOverride(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "form.yaml", "targetSelector: '#form'\nfields:\n  - { name: x, label: '<b>X</b>', type: text }\n")

	out, _, err := execute(t, &rootOptions{}, "render", "--config", cfg, "--interpolation", "escape")
	require.NoError(t, err)
	assert.Contains(t, out, `<label>&lt;b&gt;X&lt;/b&gt;:</label>`)

	_, _, err = execute(t, &rootOptions{}, "render", "--config", cfg, "--interpolation", "raw")
	require.Error(t, err)
}

func TestRenderCommandRequiresConfig(t *testing.T) {
	_, _, err := execute(t, &rootOptions{}, "render")
	require.Error(t, err)
}

func TestAddCommand(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "form.yaml", "targetSelector: '#form'\nfields:\n  - { name: age, label: Age, type: number }\n")
	provider := &prompt.Scripted{
		Inputs: []prompt.Reply{
			prompt.Text("color"), prompt.Text("Color"), prompt.Text("select"), prompt.Text("red,blue"),
			prompt.Text("nick"), prompt.Text(""), prompt.Text("text"),
		},
		Confirms: []bool{true, true, false},
	}

	out, _, err := execute(t, &rootOptions{provider: provider}, "add", "--config", cfg, "--format", "yaml")
	require.NoError(t, err)

	assert.Contains(t, out, `<select name="color" required=""><option value="red">red</option><option value="blue">blue</option></select>`)
	assert.NotContains(t, out, `name="nick"`)

	idx := strings.Index(out, "</html>")
	require.GreaterOrEqual(t, idx, 0)
	fields, err := export.Read(strings.NewReader(out[idx+len("</html>"):]))
	require.NoError(t, err)
	assert.Equal(t, []model.FieldDescriptor{
		{Name: "age", Label: "Age", Type: model.FieldTypeNumber},
		{Name: "color", Label: "Color", Type: model.FieldTypeSelect, Options: []string{"red", "blue"}, Required: true},
	}, fields)

	inputs, confirms := provider.Remaining()
	assert.Zero(t, inputs)
	assert.Zero(t, confirms)
}

func TestAddCommandStopsOnCancel(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "form.yaml", "targetSelector: '#form'\n")
	provider := &prompt.Scripted{Inputs: []prompt.Reply{prompt.Cancel}}

	out, _, err := execute(t, &rootOptions{provider: provider}, "add", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "[]")
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "form.json", `{"elementSelector": "#form", "fields": [{"name": "age", "label": "Age", "type": "number", "required": true}]}`)

	out, _, err := execute(t, &rootOptions{}, "export", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "[\n  {\n    \"name\": \"age\",\n    \"label\": \"Age\",\n    \"type\": \"number\",\n    \"required\": true\n  }\n]\n", out)

	out, _, err = execute(t, &rootOptions{}, "export", "--config", cfg, "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "- name: age\n")

	_, _, err = execute(t, &rootOptions{}, "export", "--config", cfg, "--format", "xml")
	require.Error(t, err)
}

func TestUnknownLogLevel(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "form.yaml", sampleConfig)

	_, _, err := execute(t, &rootOptions{}, "render", "--config", cfg, "--log-level", "loud")
	require.Error(t, err)
}
