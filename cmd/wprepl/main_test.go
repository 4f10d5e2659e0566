package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestIntpParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weakprec.repl")
	defer teardown()
	//
	spec, err := loadGrammar("")
	if err != nil {
		t.Fatal(err)
	}
	intp, err := NewIntp(spec, false)
	if err != nil {
		t.Fatal(err)
	}
	for _, line := range []string{"aacbb", "a a c b b"} {
		root, err := intp.Parse(line)
		if err != nil {
			t.Fatal(err)
		}
		if root.Yield() != "aacbb" {
			t.Errorf("expected yield 'aacbb' for %q, is %q", line, root.Yield())
		}
	}
	if _, err := intp.Parse("aab"); err == nil {
		t.Errorf("expected 'aab' to be rejected")
	}
}

func TestIntpCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weakprec.repl")
	defer teardown()
	//
	spec, err := loadGrammar("")
	if err != nil {
		t.Fatal(err)
	}
	intp, err := NewIntp(spec, true)
	if err != nil {
		t.Fatal(err)
	}
	for _, cmd := range []string{":grammar", ":sets", ":rel", ":table", "acb"} {
		if err := intp.Eval(cmd); err != nil {
			t.Errorf("%s failed: %v", cmd, err)
		}
	}
	html := filepath.Join(t.TempDir(), "table.html")
	if err := intp.Eval(":html " + html); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(html); err != nil {
		t.Errorf("expected HTML file to be written: %v", err)
	}
	if err := intp.Eval(":unknown"); err == nil {
		t.Errorf("expected unknown command to fail")
	}
	if err := intp.Eval(":quit"); !errors.Is(err, errQuit) {
		t.Errorf("expected :quit to quit, have %v", err)
	}
}

func TestLoadGrammarFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weakprec.repl")
	defer teardown()
	//
	file := filepath.Join(t.TempDir(), "list.yaml")
	content := "name: list\nstart: L\nend: $\nproductions:\n  - L -> L , x | x\n"
	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	spec, err := loadGrammar(file)
	if err != nil {
		t.Fatal(err)
	}
	intp, err := NewIntp(spec, false)
	if err != nil {
		t.Fatal(err)
	}
	if err := intp.Eval("x,x"); err != nil {
		t.Errorf("expected 'x,x' to be accepted: %v", err)
	}
	if _, err := loadGrammar(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("expected missing grammar file to be reported")
	}
}

func TestTraceKeys(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weakprec.repl")
	defer teardown()
	//
	keys := make(map[string]bool)
	for _, key := range traceKeys {
		keys[key] = true
	}
	for _, pkg := range []string{"repl", "grammar", "precedence", "tree", "scanner"} {
		if !keys["weakprec."+pkg] {
			t.Errorf("expected trace level to be set for weakprec.%s", pkg)
		}
	}
}
