package models

import "gorm.io/gorm"

// NewsViewCount 每篇新闻一行的浏览计数，首次浏览时懒创建
type NewsViewCount struct {
	gorm.Model
	NewsID uint `gorm:"uniqueIndex" json:"news_id"`
	Views  int  `gorm:"default:0" json:"views"`
}
