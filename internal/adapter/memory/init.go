package memory

import (
	"context"
	"net/url"

	"github.com/bornholm/recordbox/internal/core/port"
	"github.com/bornholm/recordbox/internal/setup"
)

func init() {
	setup.ContactStore.Register("memory", func(ctx context.Context, u *url.URL) (port.ContactStore, error) {
		return NewContactStore(), nil
	})

	setup.ColourStore.Register("memory", func(ctx context.Context, u *url.URL) (port.ColourStore, error) {
		return NewColourStore(), nil
	})
}
