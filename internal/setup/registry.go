package setup

import (
	"context"
	"net/url"
	"slices"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

var ErrSchemeNotRegistered = errors.New("scheme not registered")

type Factory[T any] func(ctx context.Context, u *url.URL) (T, error)

// Registry maps URI schemes to the factories able to build a T from them.
type Registry[T any] struct {
	mutex     sync.RWMutex
	factories map[string]Factory[T]
}

func (r *Registry[T]) Register(scheme string, factory Factory[T]) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.factories[scheme] = factory
}

func (r *Registry[T]) Schemes() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	schemes := make([]string, 0, len(r.factories))
	for s := range r.factories {
		schemes = append(schemes, s)
	}

	slices.Sort(schemes)

	return schemes
}

func (r *Registry[T]) From(ctx context.Context, rawURL string) (T, error) {
	var zero T

	u, err := url.Parse(rawURL)
	if err != nil {
		return zero, errors.WithStack(err)
	}

	r.mutex.RLock()
	factory, exists := r.factories[u.Scheme]
	r.mutex.RUnlock()

	if !exists {
		return zero, errors.Wrapf(ErrSchemeNotRegistered, "no factory registered for scheme '%s' (available: %s)", u.Scheme, strings.Join(r.Schemes(), ", "))
	}

	value, err := factory(ctx, u)
	if err != nil {
		return zero, errors.WithStack(err)
	}

	return value, nil
}

func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		factories: make(map[string]Factory[T]),
	}
}
