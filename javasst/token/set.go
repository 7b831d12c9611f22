package token

import "strings"

// Set is an immutable set of token kinds.
type Set uint64

func NewSet(kinds ...Kind) Set {
	var s Set
	for _, k := range kinds {
		s |= 1 << uint(k)
	}
	return s
}

func (s Set) Contains(k Kind) bool {
	return k >= 0 && k < kindCount && s&(1<<uint(k)) != 0
}

func (s Set) Union(other Set) Set {
	return s | other
}

func (s Set) IsEmpty() bool {
	return s == 0
}

// Kinds returns the members in declaration order.
func (s Set) Kinds() []Kind {
	var kinds []Kind
	for k := Kind(0); k < kindCount; k++ {
		if s.Contains(k) {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

func (s Set) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, k := range s.Kinds() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k.String())
	}
	b.WriteByte(']')
	return b.String()
}
