package ports

import (
	"context"

	"mobile-analytics-service/internal/activity/core/domain"
)

// GeoResolverPort supplies the optional location annotation for a request.
// Implementations may return (nil, nil) when no information is available;
// the engine treats the annotation as opaque.
type GeoResolverPort interface {
	Resolve(ctx context.Context, remoteIP string) (*domain.GeoInfo, error)
}
