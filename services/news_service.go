package services

import (
	"errors"

	"newsblog/config"
	"newsblog/global"
	"newsblog/models"

	"gorm.io/gorm"
)

func pageSize() int {
	if config.AppConfig != nil && config.AppConfig.App.PageSize > 0 {
		return config.AppConfig.App.PageSize
	}
	return 3
}

// GetPublishedNews 返回未归档新闻的一页，按创建时间倒序。
// 页码越界返回空页而不是错误
func GetPublishedNews(page int) ([]models.News, bool, error) {
	if page < 1 {
		page = 1
	}
	size := pageSize()

	// 多取一条用来判断有没有下一页
	var news []models.News
	err := global.Db.Preload("Tags").
		Where("archived = ?", false).
		Order("created_at DESC").
		Offset((page - 1) * size).
		Limit(size + 1).
		Find(&news).Error
	if err != nil {
		return nil, false, err
	}

	hasNext := len(news) > size
	if hasNext {
		news = news[:size]
	}
	return news, hasNext, nil
}

// GetNewsByTag 返回挂在指定标签下的全部新闻（含归档）。
// 标签名精确匹配，不存在时返回 ErrTagNotFound
func GetNewsByTag(tagName string) ([]models.News, error) {
	var tag models.Tag
	if err := global.Db.Where("name = ?", tagName).First(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, err
	}

	var news []models.News
	err := global.Db.Preload("Tags").
		Joins("JOIN news_tags ON news_tags.news_id = news.id").
		Where("news_tags.tag_id = ?", tag.ID).
		Find(&news).Error
	if err != nil {
		return nil, err
	}
	return news, nil
}

type NewsStatistic struct {
	Title string `json:"title"`
	Views int    `json:"views"`
}

// GetNewsStatistics 汇总所有浏览量计数行。从未被浏览过的新闻没有计数行，
// 因此不会出现在结果里
func GetNewsStatistics() ([]NewsStatistic, error) {
	var stats []NewsStatistic
	err := global.Db.Model(&models.NewsViewCount{}).
		Select("news.title AS title, news_view_counts.views AS views").
		Joins("JOIN news ON news.id = news_view_counts.news_id").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// ListAllNews 返回全部新闻（含归档），供后台 API 使用
func ListAllNews() ([]models.News, error) {
	var news []models.News
	if err := global.Db.Preload("Tags").Find(&news).Error; err != nil {
		return nil, err
	}
	return news, nil
}

// CreateNews 创建新闻并挂接已有标签
func CreateNews(news *models.News, tagIDs []uint) error {
	if len(tagIDs) > 0 {
		var tags []models.Tag
		if err := global.Db.Find(&tags, tagIDs).Error; err != nil {
			return err
		}
		news.Tags = tags
	}
	return global.Db.Create(news).Error
}

// DeleteNews 删除新闻并级联清理浏览计数、点赞记录和标签关联
func DeleteNews(newsID uint) error {
	var news models.News
	if err := global.Db.First(&news, newsID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNewsNotFound
		}
		return err
	}

	return global.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("news_id = ?", newsID).Delete(&models.NewsViewCount{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("news_id = ?", newsID).Delete(&models.UserLike{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&news).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Unscoped().Delete(&news).Error
	})
}
