package storage

// MemoryStore is an in-memory Store used in tests.
type MemoryStore struct {
	values map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values: make(map[string]string),
	}
}

func (s *MemoryStore) Load(key string) (string, error) {
	value, exists := s.values[key]
	if !exists {
		return "", ErrNotFound
	}
	return value, nil
}

func (s *MemoryStore) Save(key, value string) error {
	s.values[key] = value
	return nil
}

func (s *MemoryStore) Clear(key string) error {
	delete(s.values, key)
	return nil
}

// Len returns the number of stored keys.
func (s *MemoryStore) Len() int {
	return len(s.values)
}
