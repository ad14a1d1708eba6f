package httpx

import (
	"context"
	"net/http"
	"sort"
	"time"
)

// HealthChecker is satisfied by any infrastructure dependency that exposes
// a Ping method (kvstore backends, RedisClient, EventBus all qualify).
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthChecks maps a component name to its check. Nil checks are skipped, so
// optional dependencies (Redis snapshot, SQL event transport) can be left unset.
type HealthChecks map[string]HealthChecker

type healthResponse struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

// HealthHandler returns an http.HandlerFunc that runs all registered
// HealthCheckers and reports degraded status if any of them fail.
func HealthHandler(checks HealthChecks) http.HandlerFunc {
	names := make([]string, 0, len(checks))
	for name, c := range checks {
		if c != nil {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := healthResponse{Status: "ok", Components: make(map[string]string, len(names))}
		for _, name := range names {
			if err := checks[name].Ping(ctx); err != nil {
				resp.Status = "degraded"
				resp.Components[name] = "unreachable"
				continue
			}
			resp.Components[name] = "ok"
		}

		status := http.StatusOK
		if resp.Status != "ok" {
			status = http.StatusServiceUnavailable
		}
		JSON(w, status, resp)
	}
}
