package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"newsblog/models"
	"newsblog/services"

	"github.com/gin-gonic/gin"
)

type CreateNewsRequest struct {
	Title    string `json:"title" binding:"required"`
	Text     string `json:"text" binding:"required"`
	Image    string `json:"image"`
	Archived bool   `json:"archived"`
	TagIDs   []uint `json:"tag_ids"`
}

// ListNewsAPI: 后台 API，返回全部新闻（含归档）
func ListNewsAPI(ctx *gin.Context) {
	news, err := services.ListAllNews()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, news)
}

// CreateNewsAPI: 创建新闻，字段校验失败返回 400
func CreateNewsAPI(ctx *gin.Context) {
	var req CreateNewsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	news := models.News{
		Title:    req.Title,
		Text:     req.Text,
		Image:    req.Image,
		Archived: req.Archived,
	}
	if err := services.CreateNews(&news, req.TagIDs); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, news)
}

// DeleteNewsAPI: 删除新闻，级联清理计数和点赞记录
func DeleteNewsAPI(ctx *gin.Context) {
	newsID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "news not found"})
		return
	}

	if err := services.DeleteNews(uint(newsID)); err != nil {
		if errors.Is(err, services.ErrNewsNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "news not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.Status(http.StatusNoContent)
}
