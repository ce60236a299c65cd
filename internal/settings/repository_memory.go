package settings

import "context"

type InMemoryRepository struct {
	values map[string]string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{values: make(map[string]string)}
}

func (r *InMemoryRepository) Get(ctx context.Context, key string) (string, error) {
	v, ok := r.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (r *InMemoryRepository) Set(ctx context.Context, key, value string) error {
	r.values[key] = value
	return nil
}

func (r *InMemoryRepository) All(ctx context.Context) (map[string]string, error) {
	out := make(map[string]string, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out, nil
}
