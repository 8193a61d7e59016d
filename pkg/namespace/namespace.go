// Package namespace is the process-wide name directory. Traffic classes,
// modules, and ports share a single namespace: a name used by one kind is
// unavailable to every other.
package namespace

import (
	"errors"
	"fmt"
)

// Kind identifies the entity type behind a registered name. All kinds share
// one namespace: a TC may not reuse a module's name.
type Kind int

const (
	KindModule Kind = iota
	KindPort
	KindTC
)

func (k Kind) String() string {
	switch k {
	case KindModule:
		return "module"
	case KindPort:
		return "port"
	case KindTC:
		return "tc"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

var (
	ErrExists      = errors.New("name already exists")
	ErrInvalidName = errors.New("invalid name")
	ErrNotFound    = errors.New("name not found")
	ErrIterating   = errors.New("registry is being iterated")
)

type entry struct {
	kind Kind
	name string
	obj  interface{}
}

// Registry is the process-wide name directory. It is written only by the
// control thread; callers serialize access through the control service.
type Registry struct {
	entries map[string]*entry
	byKind  map[Kind][]*entry
	iters   int
}

func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*entry),
		byKind:  make(map[Kind][]*entry),
	}
}

// IsValidName reports whether name is a usable identifier: non-empty ASCII,
// starting with a letter or underscore, followed by letters, digits, or
// underscores. Names are case sensitive.
func IsValidName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c == '_':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// Insert registers obj under name. The name must be valid, unused across all
// kinds, and no iterator may be open.
func (r *Registry) Insert(kind Kind, name string, obj interface{}) error {
	if r.iters > 0 {
		return ErrIterating
	}
	if !IsValidName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if _, ok := r.entries[name]; ok {
		return fmt.Errorf("%w: %q", ErrExists, name)
	}
	e := &entry{kind: kind, name: name, obj: obj}
	r.entries[name] = e
	r.byKind[kind] = append(r.byKind[kind], e)
	return nil
}

// Remove drops name from the registry. The kind must match the insertion.
func (r *Registry) Remove(kind Kind, name string) error {
	if r.iters > 0 {
		return ErrIterating
	}
	e, ok := r.entries[name]
	if !ok || e.kind != kind {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	delete(r.entries, name)
	s := r.byKind[kind]
	for i, cand := range s {
		if cand == e {
			r.byKind[kind] = append(s[:i], s[i+1:]...)
			break
		}
	}
	return nil
}

// Lookup returns the object registered under name for kind, or nil.
func (r *Registry) Lookup(kind Kind, name string) interface{} {
	e, ok := r.entries[name]
	if !ok || e.kind != kind {
		return nil
	}
	return e.obj
}

// Exists reports whether name is taken by any kind in the shared namespace.
func (r *Registry) Exists(name string) bool {
	_, ok := r.entries[name]
	return ok
}

// Count returns the number of entries of the given kind.
func (r *Registry) Count(kind Kind) int {
	return len(r.byKind[kind])
}

// List copies up to max objects of kind starting at offset, in registration
// order. It is the paging primitive behind the List* RPCs.
func (r *Registry) List(kind Kind, offset, max int) []interface{} {
	s := r.byKind[kind]
	if offset >= len(s) || max <= 0 {
		return nil
	}
	end := offset + max
	if end > len(s) {
		end = len(s)
	}
	out := make([]interface{}, 0, end-offset)
	for _, e := range s[offset:end] {
		out = append(out, e.obj)
	}
	return out
}

// Iter is an open iterator over one kind. While any iterator is open the
// registry rejects insertions and removals, so the underlying order stays
// stable for the iterator's lifetime.
type Iter struct {
	r    *Registry
	kind Kind
	pos  int
	done bool
}

// NewIter acquires an iterator over kind. Release must be called when done.
func (r *Registry) NewIter(kind Kind) *Iter {
	r.iters++
	return &Iter{r: r, kind: kind}
}

// Next returns the next object, or nil when exhausted.
func (it *Iter) Next() interface{} {
	s := it.r.byKind[it.kind]
	if it.pos >= len(s) {
		return nil
	}
	obj := s[it.pos].obj
	it.pos++
	return obj
}

// Release closes the iterator. Releasing twice is a no-op.
func (it *Iter) Release() {
	if it.done {
		return
	}
	it.done = true
	it.r.iters--
}
