package repositoryImp

import (
	"gorm.io/gorm"

	"petrolog/entities"
	"petrolog/pkg/petro"
	"petrolog/pkg/welllog/repository"
)

type logRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.LogRepository { return &logRepo{db} }

func (r *logRepo) ListByWell(wellID uint, logType string, depthFrom, depthTo *float64) ([]entities.WellLog, error) {
	q := r.db.Where("well_id = ?", wellID)
	if logType != "" {
		q = q.Where("log_type = ?", logType)
	}
	if depthFrom != nil {
		q = q.Where("depth >= ?", *depthFrom)
	}
	if depthTo != nil {
		q = q.Where("depth <= ?", *depthTo)
	}
	var out []entities.WellLog
	err := q.Order("depth ASC").Find(&out).Error
	return out, err
}

func (r *logRepo) DistinctTypes(wellID uint) ([]string, error) {
	var types []string
	err := r.db.Model(&entities.WellLog{}).
		Where("well_id = ?", wellID).
		Distinct("log_type").Order("log_type ASC").
		Pluck("log_type", &types).Error
	return types, err
}

func (r *logRepo) Curves(wellID uint, types []string) (map[string]petro.Curve, error) {
	q := r.db.Where("well_id = ?", wellID)
	if len(types) > 0 {
		q = q.Where("log_type IN ?", types)
	}
	var rows []entities.WellLog
	if err := q.Order("log_type ASC, depth ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := map[string]petro.Curve{}
	for _, row := range rows {
		c := out[row.LogType]
		c.Depths = append(c.Depths, row.Depth)
		c.Values = append(c.Values, row.Value)
		c.Unit = row.Unit
		out[row.LogType] = c
	}
	return out, nil
}

func (r *logRepo) ReplaceCurve(wellID uint, logType string, samples []entities.WellLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("well_id = ? AND log_type = ?", wellID, logType).
			Delete(&entities.WellLog{}).Error; err != nil {
			return err
		}
		if len(samples) == 0 {
			return nil
		}
		return tx.CreateInBatches(samples, 500).Error
	})
}

func (r *logRepo) AppendSamples(samples []entities.WellLog) error {
	if len(samples) == 0 {
		return nil
	}
	return r.db.CreateInBatches(samples, 500).Error
}

func (r *logRepo) DeleteType(wellID uint, logType string) error {
	return r.db.Where("well_id = ? AND log_type = ?", wellID, logType).
		Delete(&entities.WellLog{}).Error
}

func (r *logRepo) DepthRange(wellID uint) (min, max *float64, err error) {
	var row struct {
		Min *float64
		Max *float64
	}
	err = r.db.Model(&entities.WellLog{}).
		Select("MIN(depth) AS min, MAX(depth) AS max").
		Where("well_id = ?", wellID).
		Scan(&row).Error
	return row.Min, row.Max, err
}

func (r *logRepo) StatsByType(wellID uint) ([]repository.TypeStats, error) {
	var out []repository.TypeStats
	err := r.db.Model(&entities.WellLog{}).
		Select(`log_type,
			COUNT(id) AS count,
			MIN(depth) AS min_depth, MAX(depth) AS max_depth,
			MIN(value) AS min_value, MAX(value) AS max_value, AVG(value) AS avg_value`).
		Where("well_id = ?", wellID).
		Group("log_type").Order("log_type ASC").
		Scan(&out).Error
	return out, err
}
