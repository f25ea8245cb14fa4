package services

import (
	"errors"

	"newsblog/global"
	"newsblog/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecordView 获取新闻详情并按"每会话只计一次"的规则累加浏览数。
// 同一会话重复访问是幂等空操作，直接返回新闻本身
func RecordView(sessionID string, newsID uint) (*models.News, error) {
	var news models.News
	if err := global.Db.Preload("Tags").First(&news, newsID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNewsNotFound
		}
		return nil, err
	}

	firstView, err := MarkViewed(sessionID, newsID)
	if err != nil {
		return nil, err
	}
	if !firstView {
		return &news, nil
	}

	// 懒创建计数行；冲突时在存储层原子自增，避免读改写丢更新
	err = global.Db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "news_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"views": gorm.Expr("views + 1")}),
	}).Create(&models.NewsViewCount{NewsID: newsID, Views: 1}).Error
	if err != nil {
		return nil, err
	}

	return &news, nil
}
