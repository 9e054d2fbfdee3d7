package doubleset

import (
	"strconv"
	"strings"

	"github.com/allxie/aspiration-takehome/orderedmap"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

const (
	MinCount = 1
	MaxCount = 2
)

// DoubleSet is a multiset of int64 members with counts of 1 or 2.
// The zero value is an empty set ready to use.
// A DoubleSet is not safe for concurrent mutation.
type DoubleSet struct {
	members *orderedmap.OrderedMap[int64, int]
}

func New() *DoubleSet {
	return &DoubleSet{
		members: orderedmap.NewOrderedMap[int64, int](),
	}
}

// Of builds a set holding every given member once per occurrence.
// A member given more than twice is held twice.
func Of[M constraints.Signed](members ...M) *DoubleSet {
	ds := New()
	for _, m := range members {
		key := int64(m)
		ds.members.Set(key, min(ds.Count(key)+1, MaxCount))
	}
	return ds
}

// entries is the storage for reads, a zero DoubleSet reads as empty.
func (ds *DoubleSet) entries() *orderedmap.OrderedMap[int64, int] {
	if ds.members == nil {
		return orderedmap.NewOrderedMap[int64, int]()
	}
	return ds.members
}

func (ds *DoubleSet) allocate() {
	if ds.members == nil {
		ds.members = orderedmap.NewOrderedMap[int64, int]()
	}
}

// Count returns how many times member is held, 0 if absent
func (ds *DoubleSet) Count(member int64) int {
	return ds.entries().Get(member)
}

func (ds *DoubleSet) Has(member int64) bool {
	return ds.entries().Has(member)
}

// Members returns distinct members in insertion order
func (ds *DoubleSet) Members() []int64 {
	return ds.entries().Keys()
}

// Len is the number of distinct members
func (ds *DoubleSet) Len() int {
	return ds.entries().Len()
}

// Size is the sum of all counts
func (ds *DoubleSet) Size() int {
	size := 0
	ds.ForEach(func(_ int64, count int) {
		size += count
	})
	return size
}

func (ds *DoubleSet) ForEach(f func(member int64, count int)) {
	ds.entries().ForEach(func(member int64, count int, _ int) {
		f(member, count)
	})
}

// SetMember inserts member with the given count or overwrites the count
// of an existing member without moving it.
func (ds *DoubleSet) SetMember(member int64, count int) error {
	if err := validateCount(count); err != nil {
		return err
	}

	ds.allocate()
	ds.members.Set(member, count)
	return nil
}

// SetMemberString is SetMember for decimal text input.
func (ds *DoubleSet) SetMemberString(member, count string) error {
	m, err := ParseMember(member)
	if err != nil {
		return err
	}

	c, err := strconv.Atoi(strings.TrimSpace(count))
	if err != nil {
		return errors.Wrapf(ErrValidation, "count %q is not an integer", count)
	}

	return ds.SetMember(m, c)
}

// ParseMember reads a decimal int64, surrounding whitespace is ignored.
func ParseMember(text string) (int64, error) {
	m, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrValidation, "member %q is not an integer", text)
	}
	return m, nil
}

// DeleteMember is a no-op for absent members
func (ds *DoubleSet) DeleteMember(member int64) {
	ds.entries().Remove(member)
}

func (ds *DoubleSet) Clear() {
	ds.entries().Clear()
}

func (ds *DoubleSet) Clone() *DoubleSet {
	return &DoubleSet{members: ds.entries().Clone()}
}

// Equal ignores member order
func (ds *DoubleSet) Equal(other *DoubleSet) bool {
	if other == nil || ds.Len() != other.Len() {
		return false
	}

	equal := true
	ds.entries().ForEachUntil(func(member int64, count int, _ int) bool {
		equal = other.Count(member) == count
		return equal
	})
	return equal
}

// String renders the set as {{m1: c1}, {m2: c2}}, or {} when empty.
func (ds *DoubleSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	ds.entries().ForEach(func(member int64, count int, order int) {
		if order > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('{')
		b.WriteString(strconv.FormatInt(member, 10))
		b.WriteString(": ")
		b.WriteString(strconv.Itoa(count))
		b.WriteByte('}')
	})
	b.WriteByte('}')
	return b.String()
}

func validateCount(count int) error {
	if count < MinCount || count > MaxCount {
		return errors.Wrapf(ErrValidation, "count must be %d or %d, got %d", MinCount, MaxCount, count)
	}
	return nil
}
