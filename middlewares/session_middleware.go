package middlewares

import (
	"newsblog/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionMiddleware 为每个访客分配 session_id cookie，
// 用作 Redis 中"本会话已浏览"集合的键
func SessionMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		cookieName := "session_id"
		ttlHours := 24
		if config.AppConfig != nil {
			cookieName = config.AppConfig.Session.CookieName
			ttlHours = config.AppConfig.Session.TTLHours
		}

		sessionID, err := ctx.Cookie(cookieName)
		if err != nil || sessionID == "" {
			sessionID = uuid.NewString()
			ctx.SetCookie(cookieName, sessionID, ttlHours*3600, "/", "", false, true)
		}

		ctx.Set("sessionID", sessionID)
		ctx.Next()
	}
}
