package repository

import "petrolog/entities"

type UserRepository interface {
	Create(u *entities.User) error
	FindByID(id uint) (*entities.User, error)
	FindByUsername(username string) (*entities.User, error)
	FindByEmail(email string) (*entities.User, error)
	// FindByLogin matches either username or email.
	FindByLogin(login string) (*entities.User, error)
	Update(u *entities.User) error
}
