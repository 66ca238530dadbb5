package g2p

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type confThing struct {
	N     int
	W     Real
	Count Real
}

func (c *confThing) defs() []FieldDef {
	return []FieldDef{
		{Key: "n", Label: "N", Kind: KindInt, Ptr: &c.N},
		{Key: "w", Label: "Weight", Kind: KindDouble, Ptr: &c.W},
		{Key: "count", Label: "Count", Kind: KindInt, Ptr: &c.Count},
	}
}

func TestParseConfStoreFlattens(t *testing.T) {
	st, err := ParseConfStore([]byte(`{
		"thing": {"n": 3, "w": 1.5, "name": "ignored", "deep": {"on": true}},
		"top": -2
	}`))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]Real{"thing.n": 3, "thing.w": 1.5, "thing.deep.on": 1, "top": -2}
	if st.Len() != len(want) {
		t.Fatalf("keys = %v", st.Keys())
	}
	for k, v := range want {
		if got, ok := st.Get(k); !ok || got != v {
			t.Fatalf("%s = %g (%v)", k, got, ok)
		}
	}
	if keys := st.Keys(); keys[0] != "thing.deep.on" || keys[3] != "top" {
		t.Fatalf("Keys not sorted: %v", keys)
	}
	if _, err := ParseConfStore([]byte("{")); err == nil {
		t.Fatal("broken JSON accepted")
	}
}

func TestConfigureFromListModes(t *testing.T) {
	st := NewConfStore()
	st.Set("thing.n", 4.8)
	st.Set("thing.count", -2.5)

	c := &confThing{N: 1, W: 0.25, Count: 7}
	if err := ConfigureFromList(st, "thing", c.defs(), ConfRead); err != nil {
		t.Fatal(err)
	}
	if c.N != 4 || c.Count != -2 || c.W != 0.25 {
		t.Fatalf("after read: %+v", c)
	}
	if _, ok := st.Get("thing.w"); ok {
		t.Fatal("read mode wrote a missing key")
	}

	if err := ConfigureFromList(st, "thing", c.defs(), ConfTwoWay); err != nil {
		t.Fatal(err)
	}
	if w, ok := st.Get("thing.w"); !ok || w != 0.25 {
		t.Fatalf("two-way did not write the missing key: %g %v", w, ok)
	}

	c.N, c.Count = 11, 3.9
	if err := ConfigureFromList(st, "thing", c.defs(), ConfWrite); err != nil {
		t.Fatal(err)
	}
	if n, _ := st.Get("thing.n"); n != 11 {
		t.Fatalf("thing.n = %g", n)
	}
	if n, _ := st.Get("thing.count"); n != 3 {
		t.Fatalf("thing.count = %g, want truncated 3", n)
	}

	plain := NewConfStore()
	if err := ConfigureFromList(plain, "", c.defs()[:1], ConfWrite); err != nil {
		t.Fatal(err)
	}
	if _, ok := plain.Get("n"); !ok {
		t.Fatal("empty prefix should use bare keys")
	}
}

func TestConfigureFromListErrors(t *testing.T) {
	if err := ConfigureFromList(nil, "x", nil, ConfRead); !errors.Is(err, ErrConfig) {
		t.Fatalf("nil store: %v", err)
	}
	var s string
	st := NewConfStore()
	st.Set("x.s", 1)
	bad := []FieldDef{{Key: "s", Label: "S", Kind: KindDouble, Ptr: &s}}
	if err := ConfigureFromList(st, "x", bad, ConfRead); !errors.Is(err, ErrConfig) {
		t.Fatalf("string field: %v", err)
	}
	var n int
	wrong := []FieldDef{{Key: "s", Label: "S", Kind: KindDouble, Ptr: &n}}
	if err := ConfigureFromList(st, "x", wrong, ConfRead); !errors.Is(err, ErrConfig) {
		t.Fatalf("double bound to int: %v", err)
	}
}

func TestConfStoreSaveLoad(t *testing.T) {
	st := NewConfStore()
	st.Set("material.kapton.density", 1.42)
	st.Set("material.kapton.z", 5)
	st.Set("seed", 9)
	path := filepath.Join(t.TempDir(), "conf.json")
	if err := st.Save(path); err != nil {
		t.Fatal(err)
	}
	back, err := LoadConfStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if back.Len() != 3 {
		t.Fatalf("keys = %v", back.Keys())
	}
	for _, k := range st.Keys() {
		a, _ := st.Get(k)
		if b, ok := back.Get(k); !ok || a != b {
			t.Fatalf("%s: %g vs %g", k, a, b)
		}
	}
	if _, err := LoadConfStore(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file: %v", err)
	}
}
