package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"event-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "UTC")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "event_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		user, pass, host, port, dbName,
	), nil
}

// SeedDatabase ensures a default admin and the package catalogue exist.
// Rows are only created when their table is empty.
func SeedDatabase(db *gorm.DB) {
	var adminCount int64
	db.Model(&models.Admin{}).Count(&adminCount)
	if adminCount == 0 {
		username := envOrDefault("ADMIN_USERNAME", "admin")
		password := envOrDefault("ADMIN_PASSWORD", "admin123")
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
		} else {
			admin := models.Admin{
				Username: username,
				Password: string(hash),
				Role:     "admin",
			}
			if err := db.Create(&admin).Error; err != nil {
				log.Printf("warning: failed to create default admin: %v", err)
			} else {
				log.Println("Default admin seeded")
			}
		}
	}

	var pkgCount int64
	db.Model(&models.EventPackage{}).Count(&pkgCount)
	if pkgCount == 0 {
		packages := []models.EventPackage{
			{
				PackageName:  "Essential",
				Description:  "Half-day event with standard decoration and sound",
				Price:        1200,
				WhatIncluded: datatypes.JSON(`["Venue decoration","Sound system","Event coordinator"]`),
			},
			{
				PackageName:  "Premium",
				Description:  "Full-day event with catering and photography",
				Price:        2800,
				WhatIncluded: datatypes.JSON(`["Venue decoration","Sound system","Event coordinator","Catering for 50 guests","Photography"]`),
			},
			{
				PackageName:  "Deluxe",
				Description:  "Full-day event with live music, catering and video coverage",
				Price:        4500,
				WhatIncluded: datatypes.JSON(`["Venue decoration","Sound and lighting","Event coordinator","Catering for 100 guests","Photography and video","Live band"]`),
			},
		}
		if err := db.Create(&packages).Error; err != nil {
			log.Printf("warning: failed to seed event packages: %v", err)
		} else {
			log.Println("Event packages seeded")
		}
	}
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	// Parent tables first so the booking FK has something to reference.
	if err := DB.AutoMigrate(
		&models.Admin{},
		&models.EventPackage{},
		&models.Booking{},
		&models.BusyDate{},
	); err != nil {
		return err
	}

	SeedDatabase(DB)
	return nil
}
