package dbcore

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/D4vidDf/HyperBridge/cmd/flags"
	"github.com/D4vidDf/HyperBridge/database/models"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var (
	instance *gorm.DB
	once     sync.Once
)

// InitDatabase prepares the backing store.
// For SQLite it returns true if the database file already existed, false if it
// was created. For MySQL it always returns true.
func InitDatabase() bool {
	if flags.DatabaseType == "" || flags.DatabaseType == "sqlite" {
		if _, err := os.Stat(flags.DatabaseFile); os.IsNotExist(err) {
			log.Printf("SQLite database file %q does not exist, creating...", flags.DatabaseFile)
			dbDir := filepath.Dir(flags.DatabaseFile)
			if dbDir != "" {
				if err := os.MkdirAll(dbDir, 0755); err != nil {
					log.Fatalf("Failed to create database file directory %q: %v", dbDir, err)
				}
			}
			file, err := os.Create(flags.DatabaseFile)
			if err != nil {
				log.Fatalf("Failed to create SQLite database file %q: %v", flags.DatabaseFile, err)
			}
			if err := file.Close(); err != nil {
				log.Fatalf("Failed to close database file %q: %v", flags.DatabaseFile, err)
			}
			return false
		} else if err != nil {
			log.Fatalf("Failed to check database file %q: %v", flags.DatabaseFile, err)
		}
		return true
	} else if flags.DatabaseType == "mysql" {
		log.Printf("Using MySQL database: %s@%s:%s/%s",
			flags.DatabaseUser, flags.DatabaseHost, flags.DatabasePort, flags.DatabaseName)
		return true
	} else {
		log.Fatalf("Unsupported database type: %s", flags.DatabaseType)
		return false
	}
}

func GetDBInstance() *gorm.DB {
	once.Do(func() {
		var err error

		logConfig := &gorm.Config{}

		switch flags.DatabaseType {
		case "sqlite", "":
			instance, err = gorm.Open(sqlite.Open(flags.DatabaseFile), logConfig)
			if err != nil {
				log.Fatalf("Failed to connect to SQLite3 database: %v", err)
			}
			log.Printf("Using SQLite database file: %s", flags.DatabaseFile)

		case "mysql":
			dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&collation=utf8mb4_unicode_ci&parseTime=True&loc=Local",
				flags.DatabaseUser,
				flags.DatabasePass,
				flags.DatabaseHost,
				flags.DatabasePort,
				flags.DatabaseName)
			instance, err = gorm.Open(mysql.Open(dsn), logConfig)
			if err != nil {
				log.Fatalf("Failed to connect to MySQL database: %v", err)
			}
			log.Printf("Using MySQL database: %s@%s:%s/%s", flags.DatabaseUser, flags.DatabaseHost, flags.DatabasePort, flags.DatabaseName)

		default:
			log.Fatalf("Unsupported database type: %s", flags.DatabaseType)
		}

		err = instance.AutoMigrate(
			&models.Settings{},
			&models.AppSetting{},
		)
		if err != nil {
			log.Fatalf("Failed to create tables: %v", err)
		}
	})
	return instance
}
