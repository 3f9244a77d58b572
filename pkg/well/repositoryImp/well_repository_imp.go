package repositoryImp

import (
	"gorm.io/gorm"

	"petrolog/entities"
	"petrolog/pkg/well/repository"
)

type wellRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.WellRepository { return &wellRepo{db} }

func (r *wellRepo) Create(w *entities.Well) error { return r.db.Create(w).Error }

func (r *wellRepo) FindByID(id, userID uint) (*entities.Well, error) {
	var w entities.Well
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&w).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *wellRepo) List(userID uint, page, perPage int, status, search string) ([]entities.Well, int64, error) {
	q := r.db.Model(&entities.Well{}).Where("user_id = ?", userID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if search != "" {
		q = q.Where("name LIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []entities.Well
	err := q.Order("created_at DESC").
		Offset((page - 1) * perPage).Limit(perPage).
		Find(&out).Error
	return out, total, err
}

func (r *wellRepo) Update(w *entities.Well) error { return r.db.Save(w).Error }

func (r *wellRepo) DeleteCascade(w *entities.Well) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("well_id = ?", w.ID).Delete(&entities.WellLog{}).Error; err != nil {
			return err
		}
		if err := tx.Where("well_id = ?", w.ID).Delete(&entities.Zone{}).Error; err != nil {
			return err
		}
		return tx.Delete(w).Error
	})
}

func (r *wellRepo) Counts(wellID uint) (logs, zones int64, err error) {
	if err = r.db.Model(&entities.WellLog{}).Where("well_id = ?", wellID).Count(&logs).Error; err != nil {
		return
	}
	err = r.db.Model(&entities.Zone{}).Where("well_id = ?", wellID).Count(&zones).Error
	return
}
