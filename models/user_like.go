package models

import "gorm.io/gorm"

// UserLike 用户对新闻的点赞/点踩记录。
// (user_id, news_id) 唯一约束保证每个用户对每篇新闻只记录一次，
// 冲突插入在存储层被忽略（见 services.reactNews）
type UserLike struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex:idx_user_news;not null" json:"user_id"`
	NewsID uint `gorm:"uniqueIndex:idx_user_news;not null" json:"news_id"`
	Like   bool `gorm:"not null" json:"like"`
}
