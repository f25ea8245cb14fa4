package models

import "gorm.io/gorm"

// Tag 新闻标签。name 不做唯一约束，和参考实现保持一致
type Tag struct {
	gorm.Model
	Name string `gorm:"type:varchar(50);not null" json:"name"`
}
