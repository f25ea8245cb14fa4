package services

import (
	"errors"
	"testing"
	"time"

	"newsblog/global"
	"newsblog/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/go-redis/redis"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTest(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// 内存库必须单连接，否则每个连接各自一份空库
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.News{},
		&models.NewsViewCount{},
		&models.UserLike{},
	))
	global.Db = db

	mr := miniredis.RunT(t)
	global.RedisDB = redis.NewClient(&redis.Options{Addr: mr.Addr()})

	t.Cleanup(func() {
		global.Db = nil
		global.RedisDB = nil
	})
}

func createNews(t *testing.T, title string, createdAt time.Time, archived bool, tags ...models.Tag) models.News {
	t.Helper()

	news := models.News{Title: title, Text: "body of " + title, Archived: archived, Tags: tags}
	news.CreatedAt = createdAt
	require.NoError(t, global.Db.Create(&news).Error)
	return news
}

func newsViews(t *testing.T, newsID uint) int {
	t.Helper()

	var vc models.NewsViewCount
	err := global.Db.Where("news_id = ?", newsID).First(&vc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0
	}
	require.NoError(t, err)
	return vc.Views
}
