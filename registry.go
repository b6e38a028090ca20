package jasonify

import (
	"fmt"
	"slices"
	"sync"
)

// EncodeFunc writes v as one complete JSON value. Generated encoders accept
// both T and *T for their type.
type EncodeFunc func(r *Registry, w *Writer, v any) error

// DecodeFunc reads one value whose first token is the parser's current
// token. Generated decoders return *T, or nil when the value was null or not
// an object (the subtree is skipped in that case).
type DecodeFunc func(r *Registry, p *Parser) (any, error)

// Entry pairs the entry points registered for one type identity.
type Entry struct {
	Name   string
	Encode EncodeFunc
	Decode DecodeFunc
}

// Builder collects registrations. Build freezes them into a Registry.
type Builder struct {
	entries map[string]Entry
	err     error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder { return &Builder{entries: make(map[string]Entry)} }

// Register adds the codec for the type identity name. Registering the same
// name twice is recorded and reported by Build.
func (b *Builder) Register(name string, enc EncodeFunc, dec DecodeFunc) {
	if b.err != nil {
		return
	}
	if _, dup := b.entries[name]; dup {
		b.err = fmt.Errorf("%w: %s", ErrDuplicateType, name)
		return
	}
	b.entries[name] = Entry{Name: name, Encode: enc, Decode: dec}
}

// Build returns an immutable Registry holding every registration so far.
func (b *Builder) Build() (*Registry, error) {
	if b.err != nil {
		return nil, b.err
	}
	entries := make(map[string]Entry, len(b.entries))
	for k, v := range b.entries {
		entries[k] = v
	}
	return &Registry{entries: entries}, nil
}

// Registry maps type identities to their codecs. It is never mutated after
// Build, so lookups from many goroutines need no locking.
type Registry struct {
	entries map[string]Entry
}

// Lookup returns the entry registered for name.
func (r *Registry) Lookup(name string) (Entry, bool) {
	e, ok := r.entries[name]
	return e, ok
}

// Names returns the registered type identities in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for k := range r.entries {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}

func (r *Registry) entry(name string) (Entry, error) {
	e, ok := r.entries[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", ErrUnregisteredType, name)
	}
	return e, nil
}

// Encode serializes v with the codec registered for name and returns a copy
// of the output.
func (r *Registry) Encode(name string, v any) ([]byte, error) {
	e, err := r.entry(name)
	if err != nil {
		return nil, err
	}
	w := AcquireWriter()
	defer ReleaseWriter(w)
	if err := e.Encode(r, w, v); err != nil {
		return nil, err
	}
	return append([]byte(nil), w.Bytes()...), nil
}

// EncodeTo serializes v into its own buffer and splices the result into w as
// a raw value.
func (r *Registry) EncodeTo(w *Writer, name string, v any) error {
	e, err := r.entry(name)
	if err != nil {
		return err
	}
	sub := AcquireWriter()
	defer ReleaseWriter(sub)
	if err := e.Encode(r, sub, v); err != nil {
		return err
	}
	w.WriteRaw(sub.Bytes())
	return nil
}

// Decode reads the value at the parser's current token with the codec
// registered for name.
func (r *Registry) Decode(name string, p *Parser) (any, error) {
	e, err := r.entry(name)
	if err != nil {
		return nil, err
	}
	return e.Decode(r, p)
}

// Unmarshal decodes a whole document holding a single object of type name.
// A null document yields nil. Anything after the top-level value other than
// whitespace is a syntax error.
func (r *Registry) Unmarshal(name string, data []byte, opts ...ParserOption) (any, error) {
	e, err := r.entry(name)
	if err != nil {
		return nil, err
	}
	p := NewParser(data, opts...)
	tok, err := p.Next()
	if err != nil {
		return nil, err
	}
	var v any
	switch tok {
	case TokenNull:
	case TokenStartObject:
		if v, err = e.Decode(r, p); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: got %s", ErrNotObject, tok)
	}
	if err := p.expectEnd(); err != nil {
		return nil, err
	}
	return v, nil
}

// Unmarshal decodes data into a new *T using the codec registered for name.
func Unmarshal[T any](r *Registry, name string, data []byte, opts ...ParserOption) (*T, error) {
	v, err := r.Unmarshal(name, data, opts...)
	if err != nil || v == nil {
		return nil, err
	}
	t, ok := v.(*T)
	if !ok {
		return nil, fmt.Errorf("%w: %s decoded to %T", ErrWrongType, name, v)
	}
	return t, nil
}

// SortedKeys returns the keys of m in ascending order. Generated encoders
// use it so map output is deterministic.
func SortedKeys[K ~string, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

var (
	installMu  sync.Mutex
	installers []func(*Builder)
	installed  bool

	defaultOnce sync.Once
	defaultReg  *Registry
	defaultErr  error
)

// Install queues fn to populate the default registry. Generated files call it
// from init. Installing after Default has been built panics: the registry is
// fixed once traffic starts.
func Install(fn func(*Builder)) {
	installMu.Lock()
	defer installMu.Unlock()
	if installed {
		panic("jasonify: Install called after the default registry was built")
	}
	installers = append(installers, fn)
}

// Default returns the process-wide registry built from every Install call.
// It is built on first use; later calls return the same registry.
func Default() (*Registry, error) {
	defaultOnce.Do(func() {
		installMu.Lock()
		installed = true
		fns := installers
		installMu.Unlock()

		b := NewBuilder()
		for _, fn := range fns {
			fn(b)
		}
		defaultReg, defaultErr = b.Build()
	})
	return defaultReg, defaultErr
}
