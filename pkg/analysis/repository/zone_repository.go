package repository

import "petrolog/entities"

// ZoneRepository is append-only on purpose: calculations never update or
// merge zones, overlapping intervals accumulate.
type ZoneRepository interface {
	Append(z *entities.Zone) error
	// ListByWell returns the zone history ordered by depth_from;
	// zoneType "" means all.
	ListByWell(wellID uint, zoneType string) ([]entities.Zone, error)
}
