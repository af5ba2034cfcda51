package mapview

import (
	"context"
	"errors"
)

// ErrUnavailable marks map-service failures. It is diagnostic only: callers
// log it and move on, it never reaches the user.
var ErrUnavailable = errors.New("map service unavailable")

// Notifier recenters an external map view on a coordinate pair.
// Implementations are best effort; the weather pipeline never blocks on them
// and treats a nil Notifier as "map not initialized".
type Notifier interface {
	Recenter(ctx context.Context, latitude, longitude float64, zoom int) error
}
