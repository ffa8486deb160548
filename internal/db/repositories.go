package db

import "gorm.io/gorm"

type Repositories struct {
	Users    *UserRepository
	UserData *UserDataRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(database),
		UserData: NewUserDataRepository(database),
	}
}
