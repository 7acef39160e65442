package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCmd(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	if stdin != "" {
		cmd.SetIn(strings.NewReader(stdin))
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestVersionFlag(t *testing.T) {
	out, _, err := runCmd(t, "", "--version")
	if err != nil {
		t.Fatalf("--version failed: %v", err)
	}
	if !strings.Contains(out, version) {
		t.Errorf("expected version %q in output, got %q", version, out)
	}
}

func TestExplainExpr(t *testing.T) {
	out, _, err := runCmd(t, "", "-e", "int *x[3];")
	if err != nil {
		t.Fatalf("explain failed: %v", err)
	}
	want := "x: array[3] of pointer to signed int\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestExplainExprError(t *testing.T) {
	out, errOut, err := runCmd(t, "", "-e", "long long x;")
	if err == nil {
		t.Fatal("expected invalid declaration to fail")
	}
	if out != "" {
		t.Errorf("failed explain wrote to stdout: %q", out)
	}
	if !strings.Contains(errOut, "invalid type specifier combination") {
		t.Errorf("unexpected stderr: %q", errOut)
	}
}

func TestExplainStdin(t *testing.T) {
	out, _, err := runCmd(t, "int x;\nchar *s;\n")
	if err != nil {
		t.Fatalf("explain failed: %v", err)
	}
	want := "x:  signed int\ns: pointer to char\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestExplainFilesInArgumentOrder(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.c")
	second := filepath.Join(dir, "second.c")
	if err := os.WriteFile(first, []byte("int a;\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(second, []byte("char b;\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := runCmd(t, "", second, first)
	if err != nil {
		t.Fatalf("explain failed: %v", err)
	}
	want := "b:  char\na:  signed int\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestExplainFileError(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.c")
	bad := filepath.Join(dir, "bad.c")
	if err := os.WriteFile(good, []byte("int a;\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte("int x; char x;\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, errOut, err := runCmd(t, "", good, bad)
	if err == nil {
		t.Fatal("expected explain to fail")
	}
	if !strings.Contains(errOut, "identifier x redeclared") {
		t.Errorf("unexpected stderr: %q", errOut)
	}
	if !strings.Contains(errOut, bad) {
		t.Errorf("expected the failing file name in stderr: %q", errOut)
	}
}

func TestDumpTokens(t *testing.T) {
	out, _, err := runCmd(t, "", "-e", "int x;", "--dtokens")
	if err != nil {
		t.Fatalf("dtokens failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 token lines, got %d: %q", len(lines), out)
	}
	if !strings.Contains(lines[0], "int") {
		t.Errorf("first token line = %q, want int", lines[0])
	}
	if !strings.HasPrefix(lines[1], "1:5\t") {
		t.Errorf("second token line = %q, want position 1:5", lines[1])
	}
	if !strings.Contains(lines[2], ";") {
		t.Errorf("third token line = %q, want ;", lines[2])
	}
}

func TestWatchRequiresOneFile(t *testing.T) {
	_, errOut, err := runCmd(t, "", "--watch")
	if err == nil {
		t.Fatal("expected --watch without a file to fail")
	}
	if !strings.Contains(errOut, "--watch requires exactly one file") {
		t.Errorf("unexpected stderr: %q", errOut)
	}
}
