package repositoryImp

import (
	"gorm.io/gorm"

	"petrolog/entities"
	"petrolog/pkg/analysis/repository"
)

type zoneRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ZoneRepository { return &zoneRepo{db} }

func (r *zoneRepo) Append(z *entities.Zone) error { return r.db.Create(z).Error }

func (r *zoneRepo) ListByWell(wellID uint, zoneType string) ([]entities.Zone, error) {
	q := r.db.Where("well_id = ?", wellID)
	if zoneType != "" {
		q = q.Where("zone_type = ?", zoneType)
	}
	var out []entities.Zone
	err := q.Order("depth_from ASC, id ASC").Find(&out).Error
	return out, err
}
