package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleDocument = `version: "1.0"
templates:
  - id: t1
    rows:
      - index: 1
        bgColor: "#ff0000"
  - id: striped
    table:
      border: "1px solid #000"
    columns:
      - index: 1
        fromBottom: true
        width: 4 em
`

func writeDocument(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func executeCommand(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	t.Cleanup(func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2025-10-03"

	output, _, err := executeCommand(t, "", "version")
	require.NoError(t, err)
	require.Contains(t, output, "1.2.3")
	require.Contains(t, output, "abcdef1")
	require.Contains(t, output, "2025-10-03")
	require.Contains(t, output, "selectors: v1")
}

func TestCompileCommand(t *testing.T) {
	path := writeDocument(t, "styles.yaml", sampleDocument)

	out, _, err := executeCommand(t, "", "compile", path)
	require.NoError(t, err)
	require.Equal(t, `table.t1 tr:nth-of-type(1) > td {
  background-color: #ff0000;
}

table.striped {
  border: 1px solid #000;
}

table.striped tr > td:nth-last-of-type(1) {
  width: 4em;
}
`, out)
}

func TestCompileCommandWritesFileWithScope(t *testing.T) {
	path := writeDocument(t, "styles.yaml", sampleDocument)
	outPath := filepath.Join(t.TempDir(), "out.css")

	out, _, err := executeCommand(t, "", "compile", path, "--out", outPath, "--scope", ".ql-editor")
	require.NoError(t, err)
	require.Empty(t, out)

	css, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(css), ".ql-editor table.t1 tr:nth-of-type(1) > td {"))
}

func TestCompileCommandMissingDocument(t *testing.T) {
	_, _, err := executeCommand(t, "", "compile", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "Check that the document path exists.")
}

func TestValidateCommand(t *testing.T) {
	good := writeDocument(t, "good.yaml", sampleDocument)
	out, _, err := executeCommand(t, "", "validate", good)
	require.NoError(t, err)
	require.Contains(t, out, "valid (2 templates)")

	bad := writeDocument(t, "bad.json", `{"templates": [
  {"id": "t1", "rows": [{"index": "0"}], "cells": [{"x": 0, "y": 0, "color": "nope!"}]},
  {"id": "t1"}
]}`)
	_, _, err = executeCommand(t, "", "validate", bad)
	require.Error(t, err)
	require.Contains(t, err.Error(), "3 problems")
	require.Contains(t, err.Error(), "templates[0].rows[0].index")
}

func TestInspectCommand(t *testing.T) {
	path := writeDocument(t, "styles.yaml", sampleDocument)

	out, _, err := executeCommand(t, "", "inspect", path)
	require.NoError(t, err)
	require.Contains(t, out, "SELECTOR")
	require.Contains(t, out, "table.striped tr > td:nth-last-of-type(1)")
	require.Contains(t, out, "3 rules, selector contract v1")
}

func TestDiffCommand(t *testing.T) {
	before := writeDocument(t, "before.yaml", sampleDocument)
	after := writeDocument(t, "after.yaml", strings.Replace(sampleDocument, "#ff0000", "#00ff00", 1))

	out, _, err := executeCommand(t, "", "diff", before, after)
	require.NoError(t, err)
	require.Contains(t, out, "-  background-color: #ff0000;")
	require.Contains(t, out, "+  background-color: #00ff00;")
	require.Contains(t, out, "1 lines added, 1 removed")

	out, _, err = executeCommand(t, "", "diff", before, before)
	require.NoError(t, err)
	require.Equal(t, "no changes\n", out)
}

func TestIDsCommand(t *testing.T) {
	deltaJSON := `{"ops":[
  {"insert":"a","attributes":{"td":"tb|r1|c1||template1"}},
  {"insert":"b","attributes":{"td":"tb|r1|c2||template3"}},
  {"insert":"c","attributes":{"td":"tb|r2|c1||template1"}}
]}`
	path := writeDocument(t, "delta.json", deltaJSON)

	out, _, err := executeCommand(t, "", "ids", path)
	require.NoError(t, err)
	require.Equal(t, "template1\ntemplate3\n", out)

	out, _, err = executeCommand(t, deltaJSON, "ids", "-")
	require.NoError(t, err)
	require.Equal(t, "template1\ntemplate3\n", out)
}

func TestPreviewCommand(t *testing.T) {
	path := writeDocument(t, "styles.yaml", sampleDocument)

	out, _, err := executeCommand(t, "", "preview", path, "striped", "--rows", "2", "--cols", "2")
	require.NoError(t, err)
	require.Contains(t, out, "template striped (2x2)")
	require.Contains(t, out, "1,1  width: 4em; border: 1px solid #000")

	_, _, err = executeCommand(t, "", "preview", path, "missing")
	require.Error(t, err)
}

func TestSetCommand(t *testing.T) {
	path := writeDocument(t, "styles.yaml", sampleDocument)

	out, _, err := executeCommand(t, "", "set", path, "t1", "--kind", "cell", "--x", "1", "--y", "2", "--property", "color", "--value", "blue")
	require.NoError(t, err)
	require.Contains(t, out, "template.updated t1")

	css, _, err := executeCommand(t, "", "compile", path)
	require.NoError(t, err)
	require.Contains(t, css, "table.t1 tr:nth-of-type(3) > td:nth-of-type(2) {\n  color: blue;\n}\n")

	out, _, err = executeCommand(t, "", "set", path, "fresh", "--create", "--property", "bgColor", "--value", "#123")
	require.NoError(t, err)
	require.Contains(t, out, "template.created fresh")
	require.Contains(t, out, "template.updated fresh")

	_, _, err = executeCommand(t, "", "set", path, "t1", "--kind", "row", "--index", "1", "--property", "width", "--value", "10px")
	require.Error(t, err)
	require.Contains(t, err.Error(), "A row rule accepts")

	_, _, err = executeCommand(t, "", "set", path, "t1", "--kind", "row", "--index", "7", "--property", "color", "--clear")
	require.Error(t, err)

	_, _, err = executeCommand(t, "", "set", path, "t1", "--property", "color")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Pass --value or --clear.")
}
