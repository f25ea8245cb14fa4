package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"newsblog/services"

	"github.com/gin-gonic/gin"
)

// GetNews: 首页列表，未归档新闻按时间倒序分页。
// 带 X-Requested-With: XMLHttpRequest 头时走增量加载模式，
// 只返回当页条目和 has_next（参考前端无限滚动）
func GetNews(ctx *gin.Context) {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil {
		// 非法页码回退到第一页
		page = 1
	}

	news, hasNext, err := services.GetPublishedNews(page)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if ctx.GetHeader("X-Requested-With") == "XMLHttpRequest" {
		ctx.JSON(http.StatusOK, gin.H{
			"news":     news,
			"has_next": hasNext,
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"news":     news,
		"page":     page,
		"has_next": hasNext,
	})
}

// GetNewsDetail: 新闻详情。同一会话首次访问时浏览数 +1
func GetNewsDetail(ctx *gin.Context) {
	newsID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "news not found"})
		return
	}

	sessionID := ctx.GetString("sessionID")

	news, err := services.RecordView(sessionID, uint(newsID))
	if err != nil {
		if errors.Is(err, services.ErrNewsNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "news not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, news)
}

// GetNewsByTag: 按标签名精确筛选，标签不存在返回 404
func GetNewsByTag(ctx *gin.Context) {
	tagName := ctx.Param("name")

	news, err := services.GetNewsByTag(tagName)
	if err != nil {
		if errors.Is(err, services.ErrTagNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "tag not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"tag": tagName, "news": news})
}

// GetNewsStatistics: 全部新闻的浏览量快照，没被浏览过的新闻不在其中
func GetNewsStatistics(ctx *gin.Context) {
	stats, err := services.GetNewsStatistics()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"news_statistics": stats})
}
