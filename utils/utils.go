package utils

import (
	"errors"
	"time"

	"newsblog/config"

	"github.com/golang-jwt/jwt"
	"golang.org/x/crypto/bcrypt"
)

func HashPassword(pwd string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), 12)
	return string(hash), err
}

func CheckPassword(password string, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func jwtSecret() []byte {
	if config.AppConfig != nil && config.AppConfig.App.JwtSecret != "" {
		return []byte(config.AppConfig.App.JwtSecret)
	}
	return []byte("change-me")
}

func GenerateJWT(userID uint, username string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  float64(userID),
		"username": username,
		"exp":      time.Now().Add(72 * time.Hour).Unix(),
	})
	signedToken, err := token.SignedString(jwtSecret())
	if err != nil {
		return "", err
	}
	return "Bearer " + signedToken, nil
}

// ParseJWT 校验 token 并返回 userID 与用户名
func ParseJWT(tokenString string) (uint, string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret(), nil
	})
	if err != nil {
		return 0, "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, "", errors.New("invalid token")
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return 0, "", errors.New("user_id claim missing")
	}
	username, _ := claims["username"].(string)

	return uint(userID), username, nil
}
