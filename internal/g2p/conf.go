package g2p

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
)

// FieldKind is the external type of a configuration field.
type FieldKind uint8

const (
	KindInt FieldKind = iota
	KindDouble
)

func (k FieldKind) String() string {
	if k == KindInt {
		return "INT"
	}
	return "DOUBLE"
}

// ConfMode selects the direction of ConfigureFromList.
type ConfMode uint8

const (
	ConfRead   ConfMode = iota // store -> fields
	ConfWrite                  // fields -> store
	ConfTwoWay                 // read what exists, write the rest
)

// FieldDef binds an external key to a Go field. Ptr must be *int or *Real.
type FieldDef struct {
	Key   string
	Label string
	Kind  FieldKind
	Ptr   any
}

// ConfStore is a flat numeric key/value store with dotted keys
// ("material.kapton.density"). Nested JSON objects are flattened on load.
type ConfStore struct {
	vals map[string]Real
}

func NewConfStore() *ConfStore {
	return &ConfStore{vals: make(map[string]Real)}
}

func LoadConfStore(path string) (*ConfStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("conf: read %s: %w", path, err)
	}
	st, err := ParseConfStore(data)
	if err != nil {
		return nil, fmt.Errorf("conf: parse %s: %w", path, err)
	}
	DebugLog("Loaded %d configuration keys from %s", st.Len(), path)
	return st, nil
}

func ParseConfStore(data []byte) (*ConfStore, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	st := NewConfStore()
	flatten("", raw, st.vals)
	return st, nil
}

// flatten keeps numbers and booleans (as 0/1); everything else is ignored.
func flatten(prefix string, in map[string]any, out map[string]Real) {
	for k, v := range in {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch x := v.(type) {
		case map[string]any:
			flatten(key, x, out)
		case float64:
			out[key] = x
		case bool:
			if x {
				out[key] = 1
			} else {
				out[key] = 0
			}
		}
	}
}

func (st *ConfStore) Get(key string) (Real, bool) {
	v, ok := st.vals[key]
	return v, ok
}

func (st *ConfStore) Set(key string, v Real) { st.vals[key] = v }
func (st *ConfStore) Len() int               { return len(st.vals) }

// Keys returns all keys in lexical order.
func (st *ConfStore) Keys() []string {
	keys := make([]string, 0, len(st.vals))
	for k := range st.vals {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Save writes the store back as nested JSON.
func (st *ConfStore) Save(path string) error {
	root := map[string]any{}
	for _, k := range st.Keys() {
		parts := strings.Split(k, ".")
		node := root
		for _, p := range parts[:len(parts)-1] {
			child, ok := node[p].(map[string]any)
			if !ok {
				child = map[string]any{}
				node[p] = child
			}
			node = child
		}
		node[parts[len(parts)-1]] = st.vals[k]
	}
	data, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return fmt.Errorf("conf: encode: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("conf: write %s: %w", path, err)
	}
	return nil
}

// ConfigureFromList moves values between st and the fields in defs. Keys are
// looked up as prefix + "." + def.Key.
func ConfigureFromList(st *ConfStore, prefix string, defs []FieldDef, mode ConfMode) error {
	if st == nil {
		return fmt.Errorf("%w: nil configuration store", ErrConfig)
	}
	for _, d := range defs {
		key := d.Key
		if prefix != "" {
			key = prefix + "." + d.Key
		}
		v, present := st.Get(key)
		switch {
		case mode == ConfRead && present, mode == ConfTwoWay && present:
			if err := setField(d, v); err != nil {
				return fmt.Errorf("%s (%s): %w", key, d.Label, err)
			}
			DebugLog("conf: %s (%s) <- %v", key, d.Label, v)
		case mode == ConfWrite, mode == ConfTwoWay:
			fv, err := getField(d)
			if err != nil {
				return fmt.Errorf("%s (%s): %w", key, d.Label, err)
			}
			st.Set(key, fv)
		}
	}
	return nil
}

func setField(d FieldDef, v Real) error {
	if d.Kind == KindInt {
		v = math.Trunc(v)
	}
	switch p := d.Ptr.(type) {
	case *int:
		if d.Kind != KindInt {
			return fmt.Errorf("%w: %s field bound to *int", ErrConfig, d.Kind)
		}
		*p = int(v)
	case *Real:
		*p = v
	default:
		return fmt.Errorf("%w: unsupported field type %T", ErrConfig, d.Ptr)
	}
	return nil
}

func getField(d FieldDef) (Real, error) {
	switch p := d.Ptr.(type) {
	case *int:
		return Real(*p), nil
	case *Real:
		if d.Kind == KindInt {
			return math.Trunc(*p), nil
		}
		return *p, nil
	}
	return 0, fmt.Errorf("%w: unsupported field type %T", ErrConfig, d.Ptr)
}
