package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Username string `gorm:"type:varchar(64);unique;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
}
