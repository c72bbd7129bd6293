package geo

import (
	"context"

	"mobile-analytics-service/internal/activity/core/domain"
	"mobile-analytics-service/internal/activity/core/ports"
)

// NoopResolver satisfies the geo port when no geo database is wired.
// The engine treats a nil annotation as "no location known".
type NoopResolver struct{}

func NewNoopResolver() *NoopResolver {
	return &NoopResolver{}
}

var _ ports.GeoResolverPort = (*NoopResolver)(nil)

func (NoopResolver) Resolve(ctx context.Context, remoteIP string) (*domain.GeoInfo, error) {
	return nil, nil
}
