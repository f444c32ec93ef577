// Command agent runs the location pipeline of one delivery agent against the API. The
// device is simulated: it walks from AGENT_START_LAT/AGENT_START_LNG along AGENT_ROUTE,
// a list of "lat,lng" waypoints separated by semicolons.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"orderflow/cmd"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/geolocation"

	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
)

// stepMeters is how far the simulated device moves per sample.
const stepMeters = 150

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	if err := configs.ValidateAgent(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(configs, logger); err != nil {
		logger.Fatal("agent stopped", zap.Error(err))
	}
}

func run(configs cmd.Config, logger *zap.Logger) error {
	agentID, err := kernel.UUIDFromString(configs.AgentID)
	if err != nil {
		return fmt.Errorf("AGENT_ID: %w", err)
	}
	start, err := kernel.NewGeoPoint(configs.AgentStartLat, configs.AgentStartLng)
	if err != nil {
		return fmt.Errorf("start point: %w", err)
	}
	route, err := parseRoute(configs.AgentRoute)
	if err != nil {
		return fmt.Errorf("AGENT_ROUTE: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pipeline := geolocation.NewPipeline(
		agentID,
		geolocation.NewSimulatedSampler(start, stepMeters, route...),
		geolocation.NewHTTPSink(configs.APIURL, configs.AgentToken, nil),
		logger,
		geolocation.WithPollInterval(configs.PositionPollInterval),
	)

	logger.Info("agent started",
		zap.Stringer("agent_id", agentID),
		zap.String("api_url", configs.APIURL),
		zap.Duration("poll_interval", configs.PositionPollInterval))

	if err := pipeline.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func parseRoute(raw string) ([]kernel.GeoPoint, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	var route []kernel.GeoPoint
	for _, pair := range strings.Split(raw, ";") {
		lat, lng, ok := strings.Cut(strings.TrimSpace(pair), ",")
		if !ok {
			return nil, fmt.Errorf("waypoint %q: want lat,lng", pair)
		}
		latF, err := strconv.ParseFloat(strings.TrimSpace(lat), 64)
		if err != nil {
			return nil, fmt.Errorf("waypoint %q: %w", pair, err)
		}
		lngF, err := strconv.ParseFloat(strings.TrimSpace(lng), 64)
		if err != nil {
			return nil, fmt.Errorf("waypoint %q: %w", pair, err)
		}
		point, err := kernel.NewGeoPoint(latF, lngF)
		if err != nil {
			return nil, fmt.Errorf("waypoint %q: %w", pair, err)
		}
		route = append(route, point)
	}
	return route, nil
}
