package admin

import "context"

// InMemoryRegistry backs tests. FailWith simulates a registry that errors
// on every lookup (transport/DB failure).
type InMemoryRegistry struct {
	principals map[string]*Principal
	failErr    error
}

func NewInMemoryRegistry() *InMemoryRegistry {
	return &InMemoryRegistry{principals: make(map[string]*Principal)}
}

func (r *InMemoryRegistry) Add(p *Principal) {
	r.principals[p.ID] = p
}

func (r *InMemoryRegistry) FailWith(err error) {
	r.failErr = err
}

func (r *InMemoryRegistry) FindByID(ctx context.Context, id string) (*Principal, error) {
	if r.failErr != nil {
		return nil, r.failErr
	}
	p, ok := r.principals[id]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

func (r *InMemoryRegistry) FindByEmail(ctx context.Context, email string) (*Principal, error) {
	if r.failErr != nil {
		return nil, r.failErr
	}
	for _, p := range r.principals {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, ErrNotFound
}
