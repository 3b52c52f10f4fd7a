package termart

// OrderedMap is a map that remembers key insertion order. A key keeps the
// position of its first Set; later Sets only replace the value. It is not
// safe for concurrent use.
type OrderedMap[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// NewOrderedMap returns an empty map.
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		keys:   make([]K, 0),
		values: make(map[K]V),
	}
}

// Set stores value under key, appending key to the order if it is new.
func (om *OrderedMap[K, V]) Set(key K, value V) {
	if _, exists := om.values[key]; !exists {
		om.keys = append(om.keys, key)
	}
	om.values[key] = value
}

// Get returns the value stored under key and whether it was present.
func (om *OrderedMap[K, V]) Get(key K) (V, bool) {
	val, exists := om.values[key]
	return val, exists
}

// Delete drops key and its slot in the order. Missing keys are ignored.
func (om *OrderedMap[K, V]) Delete(key K) {
	if _, exists := om.values[key]; exists {
		delete(om.values, key)
		for i, k := range om.keys {
			if k == key {
				om.keys = append(om.keys[:i], om.keys[i+1:]...)
				break
			}
		}
	}
}

// Keys returns a copy of the keys in first-insertion order.
func (om *OrderedMap[K, V]) Keys() []K {
	return append([]K{}, om.keys...)
}

// Iterate calls f with each entry in first-insertion order.
func (om *OrderedMap[K, V]) Iterate(f func(key K, value V)) {
	for _, k := range om.keys {
		f(k, om.values[k])
	}
}

// Len returns the number of keys.
func (om *OrderedMap[K, V]) Len() int {
	return len(om.keys)
}

// NamedValuesFromMap lists the map's entries as bar chart input, in
// insertion order.
func NamedValuesFromMap(om *OrderedMap[string, float64]) []NamedValue {
	values := make([]NamedValue, 0, om.Len())
	om.Iterate(func(label string, value float64) {
		values = append(values, NamedValue{Label: label, Value: value})
	})
	return values
}
