package middlewares

import (
	"net/http"
	"strings"

	"newsblog/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 解析 Authorization 头中的 JWT，把用户身份放进上下文
func AuthMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := ctx.GetHeader("Authorization")
		if token == "" {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			ctx.Abort()
			return
		}
		token = strings.TrimPrefix(token, "Bearer ")

		userID, username, err := utils.ParseJWT(token)
		if err != nil {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			ctx.Abort()
			return
		}

		ctx.Set("userID", userID)
		ctx.Set("username", username)
		ctx.Next()
	}
}
