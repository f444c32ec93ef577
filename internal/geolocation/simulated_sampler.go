package geolocation

import (
	"context"
	"sync"

	"orderflow/internal/core/domain/model/kernel"
)

// SimulatedSampler pretends to be a device moving at a fixed pace along a route of
// waypoints. Each Sample advances by one step; the last waypoint is held forever.
type SimulatedSampler struct {
	mu         sync.Mutex
	current    kernel.GeoPoint
	route      []kernel.GeoPoint
	stepMeters float64
}

func NewSimulatedSampler(start kernel.GeoPoint, stepMeters float64, route ...kernel.GeoPoint) *SimulatedSampler {
	return &SimulatedSampler{
		current:    start,
		route:      route,
		stepMeters: stepMeters,
	}
}

func (s *SimulatedSampler) Sample(ctx context.Context) (kernel.GeoPoint, error) {
	if err := ctx.Err(); err != nil {
		return kernel.GeoPoint{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	point := s.current
	if len(s.route) > 0 {
		s.current = s.current.StepToward(s.route[0], s.stepMeters)
		if s.current.IsEqual(s.route[0]) {
			s.route = s.route[1:]
		}
	}
	return point, nil
}
