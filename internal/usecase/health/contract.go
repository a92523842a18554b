package health

import "context"

// CatalogPinger checks that the material catalog can serve lookups.
type CatalogPinger interface {
	Ping(ctx context.Context) error
}
