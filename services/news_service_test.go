package services

import (
	"testing"
	"time"

	"newsblog/global"
	"newsblog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPublishedNewsPagination(t *testing.T) {
	setupTest(t)

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	createNews(t, "n1", base.Add(1*time.Hour), false)
	createNews(t, "n2", base.Add(2*time.Hour), false)
	createNews(t, "n3", base.Add(3*time.Hour), false)
	createNews(t, "n4", base.Add(4*time.Hour), false)
	createNews(t, "archived", base.Add(5*time.Hour), true)

	page1, hasNext, err := GetPublishedNews(1)
	require.NoError(t, err)
	assert.True(t, hasNext)
	require.Len(t, page1, 3)
	assert.Equal(t, "n4", page1[0].Title)
	assert.Equal(t, "n3", page1[1].Title)
	assert.Equal(t, "n2", page1[2].Title)

	page2, hasNext, err := GetPublishedNews(2)
	require.NoError(t, err)
	assert.False(t, hasNext)
	require.Len(t, page2, 1)
	assert.Equal(t, "n1", page2[0].Title)
}

func TestGetPublishedNewsPageFallback(t *testing.T) {
	setupTest(t)
	createNews(t, "only", time.Now(), false)

	// 非法页码回退到第一页
	news, _, err := GetPublishedNews(-5)
	require.NoError(t, err)
	require.Len(t, news, 1)
	assert.Equal(t, "only", news[0].Title)

	// 越界页码返回空页而非错误
	news, hasNext, err := GetPublishedNews(99)
	require.NoError(t, err)
	assert.Empty(t, news)
	assert.False(t, hasNext)
}

func TestGetNewsByTag(t *testing.T) {
	setupTest(t)

	tag := models.Tag{Name: "golang"}
	require.NoError(t, global.Db.Create(&tag).Error)

	createNews(t, "tagged", time.Now(), false, tag)
	createNews(t, "tagged archived", time.Now(), true, tag)
	createNews(t, "untagged", time.Now(), false)

	news, err := GetNewsByTag("golang")
	require.NoError(t, err)
	require.Len(t, news, 2)

	titles := []string{news[0].Title, news[1].Title}
	assert.Contains(t, titles, "tagged")
	// 归档新闻仍然出现在标签列表里
	assert.Contains(t, titles, "tagged archived")
}

func TestGetNewsByTagNotFound(t *testing.T) {
	setupTest(t)

	_, err := GetNewsByTag("nonexistent")
	assert.ErrorIs(t, err, ErrTagNotFound)
}

func TestGetNewsStatistics(t *testing.T) {
	setupTest(t)

	viewed := createNews(t, "viewed", time.Now(), false)
	createNews(t, "never viewed", time.Now(), false)

	_, err := RecordView("s1", viewed.ID)
	require.NoError(t, err)
	_, err = RecordView("s2", viewed.ID)
	require.NoError(t, err)

	stats, err := GetNewsStatistics()
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, "viewed", stats[0].Title)
	assert.Equal(t, 2, stats[0].Views)
}

func TestDeleteNewsCascades(t *testing.T) {
	setupTest(t)

	tag := models.Tag{Name: "golang"}
	require.NoError(t, global.Db.Create(&tag).Error)
	news := createNews(t, "doomed", time.Now(), false, tag)

	_, err := RecordView("s1", news.ID)
	require.NoError(t, err)
	_, err = LikeNews(1, news.ID)
	require.NoError(t, err)

	require.NoError(t, DeleteNews(news.ID))

	var count int64
	require.NoError(t, global.Db.Model(&models.NewsViewCount{}).Where("news_id = ?", news.ID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, global.Db.Model(&models.UserLike{}).Where("news_id = ?", news.ID).Count(&count).Error)
	assert.Zero(t, count)

	// 标签本身保留
	var tagCount int64
	require.NoError(t, global.Db.Model(&models.Tag{}).Count(&tagCount).Error)
	assert.EqualValues(t, 1, tagCount)

	assert.ErrorIs(t, DeleteNews(news.ID), ErrNewsNotFound)
}

func TestCreateNewsWithTags(t *testing.T) {
	setupTest(t)

	tag := models.Tag{Name: "golang"}
	require.NoError(t, global.Db.Create(&tag).Error)

	news := models.News{Title: "fresh", Text: "body"}
	require.NoError(t, CreateNews(&news, []uint{tag.ID}))
	assert.NotZero(t, news.ID)

	got, err := GetNewsByTag("golang")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "fresh", got[0].Title)
}
