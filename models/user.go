package models

import (
	"errors"

	"gorm.io/gorm"
)

type User struct {
	Generic

	Username     string `gorm:"unique;not null" json:"username"`
	Email        string `gorm:"unique;not null" json:"-"`
	PasswordHash string `gorm:"not null" json:"-"`
}

func GetUserByID(db *gorm.DB, id uint) (*User, error) {
	var user User
	err := db.First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &user, nil
}

func GetUserByUsername(db *gorm.DB, username string) (*User, error) {
	var user User
	err := db.Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &user, nil
}
