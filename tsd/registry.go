package tsd

import (
	"fmt"
	"regexp"
	"sort"
	"sync"
)

var identRE = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)
var uintTokenRE = regexp.MustCompile(`^uint[0-9]+$`)

// reservedTokens are primitive spellings that struct type names must not
// shadow, or canonical signatures would become ambiguous.
var reservedTokens = map[string]bool{
	"bool":    true,
	"bytes":   true,
	"bytes32": true,
	"address": true,
	"string":  true,
}

// Registry is the process-wide, append-only set of struct type
// definitions. Registration is configuration: it happens before any
// hashing, and registered types are never mutated afterward. Concurrent
// readers are safe once registration has completed.
//
// The domain schema (TSDDomain) is pre-registered in every Registry.
type Registry struct {
	mu    sync.RWMutex
	types map[string]StructType
}

func NewRegistry() *Registry {
	r := &Registry{types: make(map[string]StructType)}
	if err := r.Register(domainStructType()); err != nil {
		// The domain schema is static; failing to register it is a
		// programming error, not a runtime condition.
		panic(err)
	}
	return r
}

// Register adds one or more struct types atomically. Types in the same
// call may reference each other; references must resolve within the
// union of already-registered types and the batch, and the reference
// graph must be acyclic. On any failure nothing is registered.
func (r *Registry) Register(types ...StructType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	batch := make(map[string]StructType, len(types))
	for _, st := range types {
		if err := validateStructType(st); err != nil {
			return err
		}
		if _, dup := r.types[st.Name]; dup {
			return newError(KindRegistration, "TSD-REG-002", fmt.Sprintf("struct type %q already registered", st.Name))
		}
		if _, dup := batch[st.Name]; dup {
			return newError(KindRegistration, "TSD-REG-002", fmt.Sprintf("struct type %q defined twice in one batch", st.Name))
		}
		batch[st.Name] = copyStructType(st)
	}

	// Every struct reference must resolve against (registered ∪ batch).
	for _, st := range batch {
		for _, m := range st.Members {
			for _, ref := range structRefsOf(m.Type) {
				if _, ok := r.types[ref]; ok {
					continue
				}
				if _, ok := batch[ref]; ok {
					continue
				}
				return newError(KindUnresolvedType, "TSD-REG-007",
					fmt.Sprintf("struct type %q member %q references unregistered type %q", st.Name, m.Name, ref))
			}
		}
	}

	// Already-registered types cannot reference batch members (they were
	// resolved when added), so any cycle must pass through the batch.
	if err := rejectCycles(batch); err != nil {
		return err
	}

	for name, st := range batch {
		r.types[name] = st
	}
	return nil
}

// Lookup returns a copy of the named struct type definition.
func (r *Registry) Lookup(name string) (StructType, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	st, ok := r.types[name]
	if !ok {
		return StructType{}, false
	}
	return copyStructType(st), true
}

// Names returns the registered type names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func validateStructType(st StructType) error {
	if !identRE.MatchString(st.Name) {
		return newError(KindRegistration, "TSD-REG-001", fmt.Sprintf("invalid struct type name %q", st.Name))
	}
	if reservedTokens[st.Name] || uintTokenRE.MatchString(st.Name) {
		return newError(KindRegistration, "TSD-REG-001", fmt.Sprintf("struct type name %q shadows a primitive token", st.Name))
	}
	seen := make(map[string]bool, len(st.Members))
	for _, m := range st.Members {
		if !identRE.MatchString(m.Name) {
			return newError(KindRegistration, "TSD-REG-003", fmt.Sprintf("struct type %q: invalid member name %q", st.Name, m.Name))
		}
		if seen[m.Name] {
			return newError(KindRegistration, "TSD-REG-004", fmt.Sprintf("struct type %q: duplicate member %q", st.Name, m.Name))
		}
		seen[m.Name] = true
		if err := validateTypeRef(st.Name, m.Name, m.Type); err != nil {
			return err
		}
	}
	return nil
}

func validateTypeRef(structName, member string, t TypeRef) error {
	switch t.Kind {
	case TypeUint:
		if t.Bits < 8 || t.Bits > 256 || t.Bits%8 != 0 {
			return newError(KindRegistration, "TSD-REG-005",
				fmt.Sprintf("struct type %q member %q: invalid scalar width %d", structName, member, t.Bits))
		}
		return nil
	case TypeBool, TypeBytes32, TypeAddress, TypeBytes, TypeString:
		return nil
	case TypeArray:
		if t.Elem == nil {
			return newError(KindRegistration, "TSD-REG-006",
				fmt.Sprintf("struct type %q member %q: array without element type", structName, member))
		}
		if t.Len < 0 && t.Len != DynamicLen {
			return newError(KindRegistration, "TSD-REG-006",
				fmt.Sprintf("struct type %q member %q: invalid array length %d", structName, member, t.Len))
		}
		return validateTypeRef(structName, member, *t.Elem)
	case TypeStructRef:
		if !identRE.MatchString(t.Name) {
			return newError(KindRegistration, "TSD-REG-001",
				fmt.Sprintf("struct type %q member %q: invalid struct reference %q", structName, member, t.Name))
		}
		return nil
	default:
		return newError(KindRegistration, "TSD-REG-001",
			fmt.Sprintf("struct type %q member %q: unknown type kind", structName, member))
	}
}

// structRefsOf collects struct reference names reachable from t without
// following into referenced definitions (arrays are traversed, registry
// lookups are not).
func structRefsOf(t TypeRef) []string {
	switch t.Kind {
	case TypeStructRef:
		return []string{t.Name}
	case TypeArray:
		if t.Elem != nil {
			return structRefsOf(*t.Elem)
		}
	}
	return nil
}

// rejectCycles runs a coloring DFS over the batch. Registration of a
// cyclic definition is refused eagerly so encoding recursion is always
// bounded by the type graph's nesting depth.
func rejectCycles(batch map[string]StructType) error {
	const (
		white = 0 // unvisited
		grey  = 1 // on the current path
		black = 2 // done
	)
	color := make(map[string]int, len(batch))

	var visit func(name string, path []string) error
	visit = func(name string, path []string) error {
		st, inBatch := batch[name]
		if !inBatch {
			// Already-registered types are known acyclic.
			return nil
		}
		switch color[name] {
		case grey:
			cycle := append(path, name)
			return newError(KindCyclicType, "TSD-REG-008",
				fmt.Sprintf("cyclic struct definition: %s", joinCycle(cycle, name)))
		case black:
			return nil
		}
		color[name] = grey
		for _, m := range st.Members {
			for _, ref := range structRefsOf(m.Type) {
				if err := visit(ref, append(path, name)); err != nil {
					return err
				}
			}
		}
		color[name] = black
		return nil
	}

	names := make([]string, 0, len(batch))
	for name := range batch {
		names = append(names, name)
	}
	sort.Strings(names) // deterministic error reporting
	for _, name := range names {
		if err := visit(name, nil); err != nil {
			return err
		}
	}
	return nil
}

func joinCycle(path []string, start string) string {
	// Trim the path to the cycle proper: everything from the first
	// occurrence of start.
	i := 0
	for ; i < len(path); i++ {
		if path[i] == start {
			break
		}
	}
	out := ""
	for _, name := range path[i:] {
		if out != "" {
			out += " -> "
		}
		out += name
	}
	return out
}
