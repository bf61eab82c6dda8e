package vaterite

// ---- persistent map natives --------------------------------------------
//
// Maps are immutable and keyed by interned Name; every update clones the
// backing map. Keys arrive as symbols or keywords (used by their Name
// directly) or as strings (interned on the fly); anything else is a
// DomainError naming the offending value.

func keyName(v Value, names *NamePool) (Name, error) {
	switch v.Tag {
	case VTSym, VTKeyword:
		return v.Data.(Name), nil
	case VTStr:
		return names.Intern(v.Data.(string)), nil
	default:
		return 0, errDomain("value %s can't be used as key", v)
	}
}

func asMap(v Value) (map[Name]Value, error) {
	if v.Tag != VTMap {
		return nil, errType("map", v)
	}
	return v.Data.(map[Name]Value), nil
}

func cloneMap(m map[Name]Value) map[Name]Value {
	out := make(map[Name]Value, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// insertKVs applies a flattened key/value run onto dst. Odd length is a
// KeyArgError tagged with the calling native's name; duplicate keys keep
// the last write.
func insertKVs(dst map[Name]Value, kvs []Value, opName string, names *NamePool) error {
	if len(kvs)%2 != 0 {
		return &KeyArgError{Name: opName}
	}
	for i := 0; i < len(kvs); i += 2 {
		k, err := keyName(kvs[i], names)
		if err != nil {
			return err
		}
		dst[k] = kvs[i+1]
	}
	return nil
}

func registerMapBuiltins(r *Registry) {
	r.register("hash-map", AtLeast(0), func(args []Value, names *NamePool) (Value, error) {
		m := make(map[Name]Value, len(args)/2)
		if err := insertKVs(m, args, "hash-map", names); err != nil {
			return Nil, err
		}
		return Map(m), nil
	})

	r.register("assoc", AtLeast(1), func(args []Value, names *NamePool) (Value, error) {
		m, err := asMap(args[0])
		if err != nil {
			return Nil, err
		}
		out := cloneMap(m)
		if err := insertKVs(out, args[1:], "assoc", names); err != nil {
			return Nil, err
		}
		return Map(out), nil
	})

	r.register("dissoc", AtLeast(1), func(args []Value, names *NamePool) (Value, error) {
		m, err := asMap(args[0])
		if err != nil {
			return Nil, err
		}
		out := cloneMap(m)
		for _, kv := range args[1:] {
			k, err := keyName(kv, names)
			if err != nil {
				return Nil, err
			}
			delete(out, k)
		}
		return Map(out), nil
	})

	// get-key errors on an absent key instead of returning Nil; optional
	// lookups pre-check with has-key?.
	r.register("get-key", Exactly(2), func(args []Value, names *NamePool) (Value, error) {
		m, err := asMap(args[0])
		if err != nil {
			return Nil, err
		}
		k, err := keyName(args[1], names)
		if err != nil {
			return Nil, err
		}
		v, ok := m[k]
		if !ok {
			return Nil, &KeyNotFoundError{Key: names.Resolve(k)}
		}
		return v, nil
	})

	r.register("has-key?", Exactly(2), func(args []Value, names *NamePool) (Value, error) {
		m, err := asMap(args[0])
		if err != nil {
			return Nil, err
		}
		k, err := keyName(args[1], names)
		if err != nil {
			return Nil, err
		}
		_, ok := m[k]
		return Bool(ok), nil
	})

	// update(map, key, fn, extra...) reads the current value (Nil if
	// absent), applies fn to [current, extra...], and stores the result in
	// a clone.
	r.register("update", AtLeast(3), func(args []Value, names *NamePool) (Value, error) {
		m, err := asMap(args[0])
		if err != nil {
			return Nil, err
		}
		k, err := keyName(args[1], names)
		if err != nil {
			return Nil, err
		}
		current, ok := m[k]
		if !ok {
			current = Nil
		}
		call := make([]Value, 0, len(args)-2)
		call = append(call, current)
		call = append(call, args[3:]...)
		next, err := args[2].Apply(call, names)
		if err != nil {
			return Nil, err
		}
		out := cloneMap(m)
		out[k] = next
		return Map(out), nil
	})

	r.register("map-keys", Exactly(1), func(args []Value, names *NamePool) (Value, error) {
		m, err := asMap(args[0])
		if err != nil {
			return Nil, err
		}
		keys := make([]Value, 0, len(m))
		for k := range m {
			keys = append(keys, Str(names.Resolve(k)))
		}
		return List(keys...), nil
	})
}
