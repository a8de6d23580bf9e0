package ports

import (
	"context"

	"github.com/Vinyaaggarwal/Perry/internal/domain"
)

// SiteReader reads the persistent blocklist
type SiteReader interface {
	Count(ctx context.Context) (int64, error)
	Exists(ctx context.Context, name string) (bool, error)
	List(ctx context.Context) ([]domain.BlockedSite, error)
}

// SiteWriter adds and removes blocklist entries
type SiteWriter interface {
	// Add inserts sites, skipping ones that already exist
	Add(ctx context.Context, sites []domain.BlockedSite) error

	// Delete removes the given domains and returns how many rows were deleted
	Delete(ctx context.Context, domains []string) (int64, error)

	// DeleteAll empties the blocklist
	DeleteAll(ctx context.Context) error
}

// SiteRepository is the composite interface
type SiteRepository interface {
	SiteReader
	SiteWriter
	Close() error
}
