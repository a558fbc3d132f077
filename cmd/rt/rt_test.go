package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/signadot/runtype"
	"github.com/signadot/runtype/ir"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestDecls(t *testing.T) {
	ds, err := decls("a.js", []byte("type A = string"))
	if err != nil {
		t.Fatal(err)
	}
	if len(ds) != 1 || ds[0].Alias().Name != "A" {
		t.Fatalf("got %v", ds)
	}
	ds, err = decls("a.json", []byte(`[{"tag": "TypeAlias", "name": "B", "type": {"tag": "IrreducibleType", "name": "number"}}]`))
	if err != nil {
		t.Fatal(err)
	}
	if len(ds) != 1 || ds[0].Alias().Name != "B" {
		t.Fatalf("got %v", ds)
	}
	if _, err := decls("bad.js", []byte("type = ")); err == nil {
		t.Error("expected error")
	}
}

func TestCheckPatched(t *testing.T) {
	types := writeFile(t, "types.js", "type P = {| name: string, age: number |}")
	typ, err := lookupType(types, "P")
	if err != nil {
		t.Fatal(err)
	}
	doc := writeFile(t, "doc.yaml", "name: x\nage: one\n")
	v, err := readDoc(nil, doc, nil)
	if err != nil {
		t.Fatal(err)
	}
	if runtype.Is(v, typ) {
		t.Errorf("%s should not be a P", ir.ToJSON(v))
	}
	patch, err := readPatch(writeFile(t, "patch.yaml", "- op: replace\n  path: /age\n  value: 1\n"))
	if err != nil {
		t.Fatal(err)
	}
	v, err = readDoc(nil, doc, patch)
	if err != nil {
		t.Fatal(err)
	}
	if !runtype.Is(v, typ) {
		t.Errorf("%s should be a P", ir.ToJSON(v))
	}
	if _, err := lookupType(types, "Q"); err == nil {
		t.Error("expected missing type error")
	}
}
