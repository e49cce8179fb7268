package setup

import (
	"context"
	"sync"

	"github.com/bornholm/recordbox/internal/config"
	"github.com/pkg/errors"
)

func createFromConfigOnce[T any](factory func(ctx context.Context, conf *config.Config) (T, error)) func(ctx context.Context, conf *config.Config) (T, error) {
	var (
		once    sync.Once
		service T
		err     error
	)

	return func(ctx context.Context, conf *config.Config) (T, error) {
		once.Do(func() {
			service, err = factory(ctx, conf)
			if err != nil {
				err = errors.WithStack(err)
				return
			}
		})
		if err != nil {
			return *new(T), err
		}

		return service, nil
	}
}
