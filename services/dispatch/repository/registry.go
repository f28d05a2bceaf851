package repository

import (
	"context"
	"fmt"

	"github.com/ridelink/dispatch/internal/pkg/constants"
	"github.com/ridelink/dispatch/internal/pkg/database"
	"github.com/ridelink/dispatch/internal/pkg/models"
)

// DriverRegistry answers broadcast-time candidate queries from the Redis
// geo set. Location and status writes come from the driver location service;
// this side only reads them, except for the busy/available flips the engine
// makes around a match.
type DriverRegistry struct {
	redis *database.RedisClient
}

// NewDriverRegistry creates a Redis-backed driver registry
func NewDriverRegistry(redis *database.RedisClient) *DriverRegistry {
	return &DriverRegistry{redis: redis}
}

// QueryAvailable returns available drivers within radiusKm of center,
// closest first, filtered by driver preferences where the trip needs them.
func (r *DriverRegistry) QueryAvailable(ctx context.Context, center models.Coordinate, radiusKm float64, filter models.CandidateFilter) ([]models.DriverCandidate, error) {
	locations, err := r.redis.GeoRadius(ctx, constants.KeyDriverGeo, center.Longitude, center.Latitude, radiusKm)
	if err != nil {
		return nil, fmt.Errorf("failed to query driver geo set: %w", err)
	}
	if len(locations) == 0 {
		return nil, nil
	}

	ids := make([]string, len(locations))
	for i, loc := range locations {
		ids[i] = loc.Name
	}
	statuses, err := r.redis.GetClient().HMGet(ctx, constants.KeyDriverStatus, ids...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read driver statuses: %w", err)
	}

	candidates := make([]models.DriverCandidate, 0, len(locations))
	for i, loc := range locations {
		status, _ := statuses[i].(string)
		if models.DriverStatus(status) != models.DriverStatusAvailable {
			continue
		}

		candidate := models.DriverCandidate{
			DriverID: loc.Name,
			Location: models.Coordinate{
				Latitude:  loc.Latitude,
				Longitude: loc.Longitude,
			},
			DistanceToPickupKm: loc.Dist,
		}

		if filter.RequiresExtended() || filter.RequiresParcel() {
			prefs, err := r.driverPrefs(ctx, loc.Name)
			if err != nil {
				return nil, err
			}
			candidate.AcceptsExtended = prefs.acceptsExtended
			candidate.AcceptsParcel = prefs.acceptsParcel
			if filter.RequiresExtended() && !candidate.AcceptsExtended {
				continue
			}
			if filter.RequiresParcel() && !candidate.AcceptsParcel {
				continue
			}
		}

		candidates = append(candidates, candidate)
	}
	return candidates, nil
}

// SetStatus updates a driver's availability in the status hash
func (r *DriverRegistry) SetStatus(ctx context.Context, driverID string, status models.DriverStatus) error {
	err := r.redis.GetClient().HSet(ctx, constants.KeyDriverStatus, driverID, string(status)).Err()
	if err != nil {
		return fmt.Errorf("failed to set driver status: %w", err)
	}
	return nil
}

// UpdateLocation records a driver's current position in the geo set.
// Exposed for the internal location-report endpoint.
func (r *DriverRegistry) UpdateLocation(ctx context.Context, driverID string, location models.Coordinate) error {
	err := r.redis.GeoAdd(ctx, constants.KeyDriverGeo, location.Longitude, location.Latitude, driverID)
	if err != nil {
		return fmt.Errorf("failed to update driver location: %w", err)
	}
	return nil
}

type driverPrefs struct {
	acceptsExtended bool
	acceptsParcel   bool
}

func (r *DriverRegistry) driverPrefs(ctx context.Context, driverID string) (driverPrefs, error) {
	key := fmt.Sprintf(constants.KeyDriverPrefs, driverID)
	values, err := r.redis.GetClient().HMGet(ctx, key, constants.FieldAcceptsExtended, constants.FieldAcceptsParcel).Result()
	if err != nil {
		return driverPrefs{}, fmt.Errorf("failed to read driver preferences: %w", err)
	}
	prefs := driverPrefs{}
	if v, ok := values[0].(string); ok {
		prefs.acceptsExtended = v == "true"
	}
	if v, ok := values[1].(string); ok {
		prefs.acceptsParcel = v == "true"
	}
	return prefs, nil
}
