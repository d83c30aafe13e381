package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"frontdesk-backend/models"
	"frontdesk-backend/utils"

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

func mysqlDSNFromURL(raw string) (string, string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", err
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
		return "", "", fmt.Errorf("mysql url missing database name")
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

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode())
	return dsn, dbName, nil
}

func resolveMySQLDSN() (string, string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, strings.TrimSpace(os.Getenv("DB_NAME")), nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "frontdesk_db")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		user, pass, host, port, dbName,
	)
	return dsn, dbName, nil
}

func ConnectDatabase() error {
	dsn, _, err := resolveMySQLDSN()
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

	// AutoMigrate in parent->child order so FK constraints resolve.
	if err := DB.AutoMigrate(
		&models.StaffUser{},
		&models.RoomType{},
		&models.Room{},
		&models.Guest{},
		&models.Reservation{},
		&models.ReservationEvent{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}

// SeedDatabase creates the default staff accounts and the room-type catalog
// on an empty database. Passwords for the seeded accounts can be overridden
// through SEED_MANAGER_PASSWORD and SEED_RECEPTIONIST_PASSWORD.
func SeedDatabase() {
	var staffCount int64
	DB.Model(&models.StaffUser{}).Count(&staffCount)
	if staffCount == 0 {
		defaults := []struct {
			fullName string
			username string
			role     string
			passEnv  string
			passDef  string
		}{
			{"Front Desk Manager", "manager@frontdesk.local", models.RoleManager, "SEED_MANAGER_PASSWORD", "manager123"},
			{"Front Desk Receptionist", "reception@frontdesk.local", models.RoleReceptionist, "SEED_RECEPTIONIST_PASSWORD", "reception123"},
		}
		for _, d := range defaults {
			hash, err := utils.HashPassword(envOrDefault(d.passEnv, d.passDef))
			if err != nil {
				log.Printf("warning: failed to hash default %s password: %v", d.role, err)
				continue
			}
			user := models.StaffUser{
				FullName: d.fullName,
				Username: d.username,
				Password: hash,
				Role:     d.role,
			}
			if err := DB.Create(&user).Error; err != nil {
				log.Printf("warning: failed to create default %s: %v", d.role, err)
			} else {
				log.Printf("Default %s account seeded (%s)", d.role, d.username)
			}
		}
	}

	var rtCount int64
	DB.Model(&models.RoomType{}).Count(&rtCount)
	if rtCount == 0 {
		roomTypes := []models.RoomType{
			{RoomTypeCode: "SGL", RoomTypeName: "Single", Price: 60.00, SeparateShower: true, MaximumGuests: 1},
			{RoomTypeCode: "STD", RoomTypeName: "Standard", Price: 85.00, Bath: true, MaximumGuests: 2},
			{RoomTypeCode: "DLX", RoomTypeName: "Deluxe", Price: 140.00, Deluxe: true, Bath: true, SeparateShower: true, MaximumGuests: 3},
			{RoomTypeCode: "FAM", RoomTypeName: "Family", Price: 120.00, Bath: true, SeparateShower: true, MaximumGuests: 4},
		}
		if err := DB.Create(&roomTypes).Error; err != nil {
			log.Printf("warning: failed to seed room types: %v", err)
		} else {
			log.Println("Room types seeded")
		}
	}

	var roomCount int64
	DB.Model(&models.Room{}).Count(&roomCount)
	if roomCount == 0 {
		// Small demo floor plan; deployments manage rooms through the API.
		plan := []struct {
			numbers  []int
			typeCode string
		}{
			{[]int{101, 102, 103, 104}, "SGL"},
			{[]int{105, 106, 201, 202, 203, 204}, "STD"},
			{[]int{205, 206, 301, 302}, "DLX"},
			{[]int{303, 304}, "FAM"},
		}
		rooms := make([]models.Room, 0, 16)
		for _, block := range plan {
			code := block.typeCode
			for _, n := range block.numbers {
				rooms = append(rooms, models.Room{RoomNumber: n, RoomTypeCode: &code})
			}
		}
		if err := DB.Create(&rooms).Error; err != nil {
			log.Printf("warning: failed to seed rooms: %v", err)
		} else {
			log.Printf("Seeded %d rooms", len(rooms))
		}
	}
}
