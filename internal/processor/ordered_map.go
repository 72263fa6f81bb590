package processor

// OrderedMap is a map that iterates in first insertion order. Setting an existing key replaces
// its value but keeps its position, so a batch collapsed into it keeps the last value per key.
type OrderedMap[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{values: make(map[K]V)}
}

func (m *OrderedMap[K, V]) Set(key K, value V) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *OrderedMap[K, V]) Len() int {
	return len(m.keys)
}

func (m *OrderedMap[K, V]) Keys() []K {
	return append([]K(nil), m.keys...)
}

// Each calls fn for every entry in insertion order and stops at the first error.
func (m *OrderedMap[K, V]) Each(fn func(key K, value V) error) error {
	for _, k := range m.keys {
		if err := fn(k, m.values[k]); err != nil {
			return err
		}
	}
	return nil
}
