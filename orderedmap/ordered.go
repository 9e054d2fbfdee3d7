package orderedmap

import (
	"github.com/allxie/aspiration-takehome/utils"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

type (
	// OrderedMap keeps keys in the order they were first set.
	// A nil value is indistinguishable from a missing key.
	// Not safe for concurrent use.
	OrderedMap[K comparable, V any] struct {
		lhm *linkedhashmap.Map
	}

	FilterFn[K comparable, V any]       func(key K, value V, order int) bool
	ForEachFn[K comparable, V any]      func(key K, value V, order int)
	ForEachUntilFn[K comparable, V any] func(key K, value V, order int) bool
)

func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		lhm: linkedhashmap.New(),
	}
}

// Set is idempotent, an existing key keeps its position
func (om *OrderedMap[K, V]) Set(key K, value V) {
	om.lhm.Put(key, value)
}

func (om *OrderedMap[K, V]) SetNX(key K, value V) (added bool) {
	if om.Has(key) {
		return false
	}

	om.lhm.Put(key, value)
	return true
}

func (om *OrderedMap[K, V]) HasGet(key K) (V, bool) {
	v, found := om.lhm.Get(key)
	if !found {
		return utils.GetZero[V](), false
	}

	return v.(V), true
}

func (om *OrderedMap[K, V]) Get(key K) V {
	v, _ := om.HasGet(key)
	return v
}

func (om *OrderedMap[K, V]) Has(key K) bool {
	_, found := om.lhm.Get(key)
	return found
}

func (om *OrderedMap[K, V]) HasRemove(key K) (V, bool) {
	v, exists := om.HasGet(key)
	if !exists {
		return v, false
	}

	om.lhm.Remove(key)
	return v, true
}

func (om *OrderedMap[K, V]) Remove(key K) V {
	v, _ := om.HasRemove(key)
	return v
}

func (om *OrderedMap[K, V]) Clear() {
	om.lhm.Clear()
}

func (om *OrderedMap[K, V]) Len() int {
	return om.lhm.Size()
}

func (om *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, om.lhm.Size())
	it := om.lhm.Iterator()
	for it.Next() {
		keys = append(keys, it.Key().(K))
	}
	return keys
}

func (om *OrderedMap[K, V]) ForEach(f ForEachFn[K, V]) {
	it := om.lhm.Iterator()
	order := 0
	for it.Next() {
		f(it.Key().(K), it.Value().(V), order)
		order++
	}
}

func (om *OrderedMap[K, V]) ForEachUntil(ff ForEachUntilFn[K, V]) *OrderedMap[K, V] {
	it := om.lhm.Iterator()
	order := 0
	for it.Next() {
		if canGoOn := ff(it.Key().(K), it.Value().(V), order); !canGoOn {
			break
		}
		order++
	}

	return om
}

func (om *OrderedMap[K, V]) Filter(f FilterFn[K, V]) *OrderedMap[K, V] {
	result := NewOrderedMap[K, V]()
	om.ForEach(func(key K, value V, order int) {
		if preserve := f(key, value, order); preserve {
			result.Set(key, value)
		}
	})
	return result
}

func (om *OrderedMap[K, V]) Clone() *OrderedMap[K, V] {
	return om.Filter(func(K, V, int) bool { return true })
}
