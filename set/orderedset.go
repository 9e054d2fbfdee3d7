package set

import (
	"github.com/allxie/aspiration-takehome/orderedmap"
)

// OrderedSet remembers the order in which items were first inserted
type OrderedSet[T comparable] struct {
	om *orderedmap.OrderedMap[T, nothing]
}

var _ Set[int] = (*OrderedSet[int])(nil)

func NewOrderedSet[T comparable]() *OrderedSet[T] {
	return &OrderedSet[T]{
		om: orderedmap.NewOrderedMap[T, nothing](),
	}
}

// Union returns a new set with the items of the first set followed by
// the items of the next sets that were not seen before
func Union[T comparable](first []T, rest ...[]T) *OrderedSet[T] {
	s := NewOrderedSet[T]()
	s.InsertSlice(first)
	for _, items := range rest {
		s.InsertSlice(items)
	}
	return s
}

func (s *OrderedSet[T]) Insert(item T) (modified bool) {
	return s.om.SetNX(item, nothing{})
}

func (s *OrderedSet[T]) Clear() {
	s.om.Clear()
}

func (s *OrderedSet[T]) Remove(item T) bool {
	_, found := s.om.HasRemove(item)
	return found
}

func (s *OrderedSet[T]) Items() []T {
	return s.om.Keys()
}

func (s *OrderedSet[T]) Has(item T) bool {
	return s.om.Has(item)
}

func (s *OrderedSet[T]) Len() int {
	return s.om.Len()
}

func (s *OrderedSet[T]) InsertSlice(sourceSlice []T) (modified bool) {
	for _, item := range sourceSlice {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}
