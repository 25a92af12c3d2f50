package utils

import (
	"context"
	"time"
)

type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Services  []Service `json:"services"`
}

type Service struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Pinger is a dependency that can report whether it is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthChecker struct {
	// Deps maps a display name to the dependency to probe.
	Deps map[string]Pinger
}

func (h *HealthChecker) Check(ctx context.Context) HealthStatus {
	services := make([]Service, 0, len(h.Deps))
	overallStatus := "healthy"

	for name, dep := range h.Deps {
		service := Service{Name: name}
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := dep.Ping(pingCtx); err != nil {
			service.Status = "down"
			service.Message = err.Error()
			overallStatus = "degraded"
		} else {
			service.Status = "up"
		}
		cancel()
		services = append(services, service)
	}

	return HealthStatus{
		Status:    overallStatus,
		Timestamp: time.Now().UTC(),
		Services:  services,
	}
}
