package config

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"shivashray-backend/models"

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
		q.Set("loc", "Local")
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
	dbName := envOrDefault("DB_NAME", "shivashray_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

func jsonList(values ...string) datatypes.JSON {
	b, _ := json.Marshal(values)
	return datatypes.JSON(b)
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

// SeedDatabase fills an empty database with the hotel's reference data:
// the default admin, the three room types with their rate cards, the rooms
// and the services catalog. Safe to call on every startup.
func SeedDatabase() {
	// ---------------- Admin ----------------
	var adminCount int64
	DB.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&adminCount)
	if adminCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(envOrDefault("ADMIN_PASSWORD", "admin123")), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
		} else {
			admin := models.User{
				FullName:       "Hotel Admin",
				Email:          envOrDefault("ADMIN_EMAIL", "admin@shivashray.com"),
				HashedPassword: string(hash),
				IsActive:       true,
				Role:           models.RoleAdmin,
			}
			if err := DB.Create(&admin).Error; err != nil {
				log.Printf("warning: failed to create default admin: %v", err)
			} else {
				log.Println("Default admin seeded")
			}
		}
	}

	// ---------------- RoomTypes ----------------
	var rtCount int64
	DB.Model(&models.RoomType{}).Count(&rtCount)
	if rtCount == 0 {
		roomTypes := []models.RoomType{
			{
				Name:            "Deluxe Room",
				Description:     "Spacious deluxe room with premium amenities, perfect for couples or small families",
				MaxOccupancy:    3,
				BaseOccupancy:   2,
				BasePrice:       4000,
				ExtraAdultPrice: floatPtr(1500),
				ChildPrice:      floatPtr(1200),
			},
			{
				Name:            "Super Deluxe Room",
				Description:     "Luxurious super deluxe room with separate living area and premium amenities",
				MaxOccupancy:    3,
				BaseOccupancy:   2,
				BasePrice:       6000,
				ExtraAdultPrice: floatPtr(2100),
				ChildPrice:      floatPtr(1500),
			},
			{
				Name:            "Family Room",
				Description:     "Spacious family room ideal for families, with quad occupancy and family-friendly amenities",
				MaxOccupancy:    6,
				BaseOccupancy:   4,
				BasePrice:       6500,
				ExtraAdultPrice: floatPtr(2275),
				ChildPrice:      floatPtr(1625),
			},
		}
		if err := DB.Create(&roomTypes).Error; err != nil {
			log.Fatalf("Failed to seed room types: %v", err)
		}
		log.Println("RoomTypes seeded")

		rooms := []models.Room{
			{RoomNumber: "101", RoomTypeID: roomTypes[0].ID, Floor: intPtr(1), IsActive: true,
				Description: "Beautiful deluxe room with premium amenities",
				Amenities:   jsonList("WiFi", "AC", "TV")},
			{RoomNumber: "102", RoomTypeID: roomTypes[0].ID, Floor: intPtr(1), IsActive: true,
				Description: "Spacious deluxe room with modern comforts",
				Amenities:   jsonList("WiFi", "AC", "TV")},
			{RoomNumber: "201", RoomTypeID: roomTypes[1].ID, Floor: intPtr(2), IsActive: true,
				Description: "Luxurious super deluxe room with separate living area",
				Amenities:   jsonList("WiFi", "AC", "TV", "Mini Bar", "Balcony")},
			{RoomNumber: "202", RoomTypeID: roomTypes[1].ID, Floor: intPtr(2), IsActive: true,
				Description: "Elegant super deluxe room with premium amenities",
				Amenities:   jsonList("WiFi", "AC", "TV", "Mini Bar", "Balcony")},
			{RoomNumber: "301", RoomTypeID: roomTypes[2].ID, Floor: intPtr(3), IsActive: true,
				Description: "Spacious family room ideal for families",
				Amenities:   jsonList("WiFi", "AC", "TV", "Mini Bar", "Balcony", "River View")},
			{RoomNumber: "302", RoomTypeID: roomTypes[2].ID, Floor: intPtr(3), IsActive: true,
				Description: "Comfortable family room with quad occupancy",
				Amenities:   jsonList("WiFi", "AC", "TV", "Mini Bar", "Balcony", "River View")},
		}
		if err := DB.Create(&rooms).Error; err != nil {
			log.Printf("warning: failed to seed rooms: %v", err)
		} else {
			log.Println("Rooms seeded")
		}
	}

	// ---------------- Services ----------------
	var svcCount int64
	DB.Model(&models.HotelService{}).Count(&svcCount)
	if svcCount == 0 {
		hotelServices := []models.HotelService{
			{Name: "Restaurant", Description: "Multi-cuisine restaurant serving delicious meals", Icon: "restaurant", IsActive: true},
			{Name: "Spa & Wellness", Description: "Relaxing spa treatments and wellness services", Icon: "spa", IsActive: true},
			{Name: "Concierge", Description: "24/7 concierge service for your convenience", Icon: "concierge", IsActive: true},
			{Name: "Laundry", Description: "Professional laundry and dry cleaning services", Icon: "laundry", IsActive: true},
			{Name: "Airport Transfer", Description: "Complimentary airport pickup and drop", Icon: "transfer", IsActive: true},
			{Name: "Tour Booking", Description: "Assistance with local tour and travel bookings", Icon: "tour", IsActive: true},
		}
		if err := DB.Create(&hotelServices).Error; err != nil {
			log.Printf("warning: failed to seed services: %v", err)
		} else {
			log.Println("Services seeded")
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

	if err := DB.AutoMigrate(
		&models.User{},
		&models.RoomType{},
		&models.Room{},
		&models.Booking{},
		&models.HotelService{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
