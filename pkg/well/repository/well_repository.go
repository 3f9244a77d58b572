package repository

import "petrolog/entities"

type WellRepository interface {
	Create(w *entities.Well) error
	FindByID(id, userID uint) (*entities.Well, error)
	// List returns one page of the user's wells plus the unfiltered total.
	List(userID uint, page, perPage int, status, search string) ([]entities.Well, int64, error)
	Update(w *entities.Well) error
	// DeleteCascade removes the well with its curves and zones in one
	// transaction.
	DeleteCascade(w *entities.Well) error
	Counts(wellID uint) (logs, zones int64, err error)
}
