package main

import "strconv"

// TypeKind classifies a TypeRef by its discriminant.
type TypeKind int

const (
	KindUnknown TypeKind = iota
	KindReference
	KindIntrinsic
)

const (
	discriminantReference = "reference"
	discriminantIntrinsic = "intrinsic"
)

func (t *TypeRef) Kind() TypeKind {
	if t == nil {
		return KindUnknown
	}
	switch t.Type {
	case discriminantReference:
		return KindReference
	case discriminantIntrinsic:
		return KindIntrinsic
	default:
		return KindUnknown
	}
}

// HasID reports whether the reference resolved to a declaration id. Presence
// is what counts, so id 0 is resolved.
func (t *TypeRef) HasID() bool {
	return t != nil && t.ID != nil
}

func (t *TypeRef) displayName() string {
	if t == nil {
		return ""
	}
	return t.Name
}

// identity is the dedup key of a referenced type: its id when resolved,
// otherwise its display name.
func (t *TypeRef) identity() string {
	if t.HasID() {
		return "#" + strconv.Itoa(*t.ID)
	}
	return "name:" + t.Name
}

// referencedTypes lists the reference-kind types a signature mentions:
// parameter types first, then the return type and its type arguments.
// Duplicates are kept; callers dedup per declaration.
func referencedTypes(sig *Signature) []*TypeRef {
	if sig == nil || len(sig.Parameters) == 0 {
		return nil
	}
	var refs []*TypeRef
	for _, p := range sig.Parameters {
		if p.Type.Kind() == KindReference {
			refs = append(refs, p.Type)
		}
	}
	if sig.Type.Kind() == KindReference {
		refs = append(refs, sig.Type)
	}
	if sig.Type != nil {
		for _, arg := range sig.Type.TypeArguments {
			if arg.Kind() == KindReference {
				refs = append(refs, arg)
			}
		}
	}
	return refs
}

// typeSet is an insertion-ordered set of referenced types.
type typeSet struct {
	seen  map[string]struct{}
	order []*TypeRef
}

func newTypeSet() *typeSet {
	return &typeSet{seen: make(map[string]struct{})}
}

// add records t unless a type with the same identity was added before.
func (s *typeSet) add(t *TypeRef) bool {
	key := t.identity()
	if _, ok := s.seen[key]; ok {
		return false
	}
	s.seen[key] = struct{}{}
	s.order = append(s.order, t)
	return true
}

func (s *typeSet) types() []*TypeRef {
	return s.order
}
