package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"newsblog/services"

	"github.com/gin-gonic/gin"
)

// LikeNews: 当前登录用户给新闻点赞。重复点赞（或已点踩）是空操作
func LikeNews(ctx *gin.Context) {
	reactNews(ctx, true)
}

// DislikeNews: 当前登录用户给新闻点踩
func DislikeNews(ctx *gin.Context) {
	reactNews(ctx, false)
}

func reactNews(ctx *gin.Context, isLike bool) {
	newsID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "news not found"})
		return
	}

	userID := ctx.GetUint("userID")

	var likes int
	if isLike {
		likes, err = services.LikeNews(userID, uint(newsID))
	} else {
		likes, err = services.DislikeNews(userID, uint(newsID))
	}
	if err != nil {
		if errors.Is(err, services.ErrNewsNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "news not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"likes": likes})
}

// GetTopNews: 返回点赞排行 Top N
func GetTopNews(ctx *gin.Context) {
	topStr := ctx.DefaultQuery("top", "10")
	top, err := strconv.Atoi(topStr)
	if err != nil || top <= 0 {
		top = 10
	}

	list, err := services.GetTopNews(top)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"list": list})
}
