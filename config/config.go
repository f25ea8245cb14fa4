package config

import (
	"log"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Name      string
		Port      string
		JwtSecret string
		PageSize  int
	}
	Database struct {
		Dsn          string
		MaxIdleConns int
		MaxOpenConns int
	}
	Redis struct {
		Addr     string
		DB       int
		Password string
	}
	Session struct {
		CookieName string
		TTLHours   int
	}
	RabbitMQ struct {
		Url   string
		Queue string
	}
}

var AppConfig *Config

func InitConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")

	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Error reading config file: %v", err)
	}

	AppConfig = &Config{}

	if err := viper.Unmarshal(AppConfig); err != nil {
		log.Fatalf("Unable to decode into struct: %v", err)
	}

	// 敏感配置优先取环境变量
	AppConfig.Database.Dsn = getEnvOrDefault("DATABASE_DSN", AppConfig.Database.Dsn)
	AppConfig.App.JwtSecret = getEnvOrDefault("JWT_SECRET", AppConfig.App.JwtSecret)
	if AppConfig.App.PageSize <= 0 {
		AppConfig.App.PageSize = 3
	}
	if AppConfig.Session.CookieName == "" {
		AppConfig.Session.CookieName = "session_id"
	}
	if AppConfig.Session.TTLHours <= 0 {
		AppConfig.Session.TTLHours = 24
	}

	initDB()
	initRedis()
	initRabbit()
}

// getEnvOrDefault 获取环境变量，如果不存在则返回默认值
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
