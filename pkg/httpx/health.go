package httpx

import (
	"context"
	"net/http"
	"time"
)

// HealthChecker is satisfied by any infrastructure dependency that exposes
// a Ping method (*database.Database qualifies).
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// ItemCounter reports how many records the service currently stores.
type ItemCounter interface {
	Count(ctx context.Context) (int64, error)
}

// HealthChecks holds the dependencies probed by the health endpoint.
// A nil Database is treated as always reachable, which is the case for the
// in-memory store.
type HealthChecks struct {
	Database HealthChecker
	Items    ItemCounter
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string `json:"status"              example:"healthy"`
	Database  string `json:"database"            example:"connected"`
	ItemCount *int64 `json:"itemCount,omitempty" example:"42"`
	Error     string `json:"error,omitempty"`
} // @name HealthResponse

// HealthHandler returns an http.HandlerFunc that pings the database and counts
// stored items. Any failure yields 503 with status "unhealthy".
func HealthHandler(checks HealthChecks) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		unhealthy := func() {
			JSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:   "unhealthy",
				Database: "disconnected",
				Error:    "Service unavailable",
			})
		}

		if checks.Database != nil {
			if err := checks.Database.Ping(ctx); err != nil {
				unhealthy()
				return
			}
		}

		n, err := checks.Items.Count(ctx)
		if err != nil {
			unhealthy()
			return
		}

		JSON(w, http.StatusOK, HealthResponse{
			Status:    "healthy",
			Database:  "connected",
			ItemCount: &n,
		})
	}
}
