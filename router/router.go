package router

import (
	"time"

	"newsblog/controllers"
	"newsblog/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:8080"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middlewares.SessionMiddleware())

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	news := r.Group("/news")
	{
		news.GET("", controllers.GetNews)
		news.GET("/tag/:name", controllers.GetNewsByTag)
		news.GET("/statistics", controllers.GetNewsStatistics)
		news.GET("/rank", controllers.GetTopNews)
		news.GET("/:id", controllers.GetNewsDetail)

		reactions := news.Group("")
		reactions.Use(middlewares.AuthMiddleware())
		{
			reactions.POST("/:id/like", controllers.LikeNews)
			reactions.POST("/:id/dislike", controllers.DislikeNews)
		}
	}

	api := r.Group("/api/news")
	{
		api.GET("", controllers.ListNewsAPI)
		api.POST("/create", controllers.CreateNewsAPI)
		api.DELETE("/:id/delete", controllers.DeleteNewsAPI)
	}

	return r
}
