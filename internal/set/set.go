package set

// Set provides a wrapper around a map[T]struct{}. The zero value is an
// empty set that is ready to use.
type Set[T comparable] struct {
	values map[T]struct{}
}

// Of builds a set holding the given values.
func Of[T comparable](values ...T) Set[T] {
	var s Set[T]
	for _, value := range values {
		s.Insert(value)
	}

	return s
}

func (s *Set[T]) Insert(value T) bool {
	if s.values == nil {
		s.values = make(map[T]struct{})
	}

	// check if the value exists
	if _, exists := s.values[value]; exists {
		return false
	}

	s.values[value] = struct{}{}
	return true
}

func (s Set[T]) Has(value T) bool {
	_, exists := s.values[value]
	return exists
}
