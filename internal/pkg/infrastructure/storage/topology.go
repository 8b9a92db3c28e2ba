package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/SafeSchoolOS/safeschool-os-sub002/pkg/types"
	"github.com/jackc/pgx/v5"
)

func (s *Storage) GetSite(ctx context.Context, siteID string) (types.Site, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT site_id, name, total_classrooms, total_students
		FROM sites
		WHERE site_id = @site_id;
	`, pgx.NamedArgs{"site_id": siteID})
	if err != nil {
		return types.Site{}, err
	}

	site, err := pgx.CollectExactlyOneRow(rows, func(row pgx.CollectableRow) (types.Site, error) {
		var site types.Site
		err := row.Scan(&site.ID, &site.Name, &site.TotalClassrooms, &site.TotalStudents)
		return site, err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Site{}, ErrNoRows
		}
		return types.Site{}, err
	}

	return site, nil
}

func (s *Storage) GetBuilding(ctx context.Context, buildingID string) (types.Building, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT building_id, site_id, name
		FROM buildings
		WHERE building_id = @building_id;
	`, pgx.NamedArgs{"building_id": buildingID})
	if err != nil {
		return types.Building{}, err
	}

	building, err := pgx.CollectExactlyOneRow(rows, func(row pgx.CollectableRow) (types.Building, error) {
		var b types.Building
		err := row.Scan(&b.ID, &b.SiteID, &b.Name)
		return b, err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Building{}, ErrNoRows
		}
		return types.Building{}, err
	}

	return building, nil
}

func (s *Storage) GetZone(ctx context.Context, zoneID string) (types.Zone, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT zone_id, site_id, building_id, name
		FROM zones
		WHERE zone_id = @zone_id;
	`, pgx.NamedArgs{"zone_id": zoneID})
	if err != nil {
		return types.Zone{}, err
	}

	zone, err := pgx.CollectExactlyOneRow(rows, func(row pgx.CollectableRow) (types.Zone, error) {
		var z types.Zone
		err := row.Scan(&z.ID, &z.SiteID, &z.BuildingID, &z.Name)
		return z, err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Zone{}, ErrNoRows
		}
		return types.Zone{}, err
	}

	return zone, nil
}

// GetDoors returns the doors matching the given scope conditions
// (site, building or zone).
func (s *Storage) GetDoors(ctx context.Context, conditions ...ConditionFunc) ([]types.Door, error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	query := fmt.Sprintf(`
		SELECT door_id, site_id, building_id, zone_id, name
		FROM doors
		WHERE %s
		ORDER BY door_id ASC;
	`, condition.Where())

	rows, err := s.pool.Query(ctx, query, condition.NamedArgs())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	doors := make([]types.Door, 0)

	for rows.Next() {
		var d types.Door
		var zoneID *string

		err = rows.Scan(&d.ID, &d.SiteID, &d.BuildingID, &zoneID, &d.Name)
		if err != nil {
			return nil, err
		}

		if zoneID != nil {
			d.ZoneID = *zoneID
		}

		doors = append(doors, d)
	}

	return doors, nil
}
