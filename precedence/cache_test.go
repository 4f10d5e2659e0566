package precedence

import (
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFingerprint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weakprec.precedence")
	defer teardown()
	//
	f1, err := Fingerprint(anbn(t), "S", "$")
	if err != nil {
		t.Fatal(err)
	}
	f2, _ := Fingerprint(anbn(t), "S", "$")
	if f1 != f2 {
		t.Errorf("expected equal grammars to have equal fingerprints")
	}
	f3, _ := Fingerprint(anbn(t), "S", "#")
	f4, _ := Fingerprint(exprGrammar(t), "E", "$")
	if f1 == f3 || f1 == f4 {
		t.Errorf("expected different configurations to have different fingerprints")
	}
}

func TestTableCache(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weakprec.precedence")
	defer teardown()
	//
	cache := NewTableCache()
	t1, err := cache.Get(anbn(t), "S", "$")
	if err != nil {
		t.Fatal(err)
	}
	t2, err := cache.Get(anbn(t), "S", "$")
	if err != nil {
		t.Fatal(err)
	}
	if t1 != t2 || cache.Size() != 1 {
		t.Errorf("expected table to be built once, cache has %d tables", cache.Size())
	}
	if _, err := cache.Get(anbn(t), "a", "$"); err == nil {
		t.Errorf("expected configuration error for invalid start symbol")
	}
	g := exprGrammar(t)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := cache.Parser(g, "E", "$")
			if err != nil {
				t.Error(err)
				return
			}
			if _, err := p.ParseString("x*(x+x)"); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()
	if cache.Size() != 2 {
		t.Errorf("expected 2 cached tables, have %d", cache.Size())
	}
}
