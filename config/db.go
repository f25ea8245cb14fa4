package config

import (
	"log"

	"newsblog/global"
	"newsblog/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func initDB() {
	dsn := AppConfig.Database.Dsn
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to initialize database, got error: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get generic database object: %v", err)
	}
	sqlDB.SetMaxIdleConns(AppConfig.Database.MaxIdleConns)
	sqlDB.SetMaxOpenConns(AppConfig.Database.MaxOpenConns)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.News{},
		&models.NewsViewCount{},
		&models.UserLike{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	global.Db = db
}
