package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"hotelier/internal/database"
	"hotelier/internal/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "hotelier.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	// AutoMigrate to ensure schema is up to date
	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Property{},
		&domain.RoomType{},
		&domain.RoomProperty{},
		&domain.Room{},
		&domain.HotelService{},
		&domain.Booking{},
		&domain.BookingDetail{},
		&domain.InvoiceDetail{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM invoice_details")
	db.Exec("DELETE FROM booking_details")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM services")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM room_properties")
	db.Exec("DELETE FROM room_types")
	db.Exec("DELETE FROM properties")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@hotelier.local",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Name:         "Front Desk Admin",
	}
	db.Create(&admin)
	log.Println("Admin created: admin@hotelier.local / admin123")

	guests := []domain.User{}
	guestEmails := []string{"alice@example.com", "bob@example.com", "carol@example.com"}
	guestNames := []string{"Alice Kim", "Bob Torres", "Carol Nguyen"}
	for i, email := range guestEmails {
		hash, _ := bcrypt.GenerateFromPassword([]byte("guest123"), bcrypt.DefaultCost)
		guest := domain.User{
			Email:        email,
			PasswordHash: string(hash),
			Role:         domain.RoleGuest,
			Name:         guestNames[i],
			Phone:        fmt.Sprintf("+1-555-010%d", i+1),
		}
		db.Create(&guest)
		guests = append(guests, guest)
	}

	// ================== PROPERTIES ==================
	log.Println("Creating properties...")

	propNames := []string{"Beds", "View", "Smoking", "Max Guests"}
	props := map[string]domain.Property{}
	for _, name := range propNames {
		p := domain.Property{Name: name}
		db.Create(&p)
		props[name] = p
	}

	// ================== ROOM TYPES ==================
	log.Println("Creating room types...")

	standard := domain.RoomType{
		Name:  "Standard",
		Price: 80_00,
		Properties: []domain.RoomProperty{
			{PropertyID: props["Beds"].ID, Value: "1 queen"},
			{PropertyID: props["Max Guests"].ID, Value: "2"},
		},
	}
	db.Create(&standard)

	deluxe := domain.RoomType{
		Name:  "Deluxe",
		Price: 140_00,
		Properties: []domain.RoomProperty{
			{PropertyID: props["Beds"].ID, Value: "1 king"},
			{PropertyID: props["View"].ID, Value: "sea"},
			{PropertyID: props["Max Guests"].ID, Value: "3"},
		},
	}
	db.Create(&deluxe)

	suite := domain.RoomType{
		Name:  "Suite",
		Price: 260_00,
		Properties: []domain.RoomProperty{
			{PropertyID: props["Beds"].ID, Value: "2 king"},
			{PropertyID: props["View"].ID, Value: "sea"},
			{PropertyID: props["Max Guests"].ID, Value: "5"},
		},
	}
	db.Create(&suite)

	// ================== ROOMS ==================
	log.Println("Creating rooms...")

	rooms := []domain.Room{}
	layout := []struct {
		name string
		rt   uint
	}{
		{"101", standard.ID}, {"102", standard.ID}, {"103", standard.ID},
		{"201", deluxe.ID}, {"202", deluxe.ID},
		{"301", suite.ID},
	}
	for _, entry := range layout {
		room := domain.Room{
			Name:       entry.name,
			RoomTypeID: entry.rt,
			Status:     domain.RoomActive,
		}
		db.Create(&room)
		rooms = append(rooms, room)
	}

	// ================== SERVICES ==================
	log.Println("Creating services...")

	services := []domain.HotelService{
		{Name: "Breakfast", Price: 15_00},
		{Name: "Laundry", Price: 25_00},
		{Name: "Airport Shuttle", Price: 40_00},
		{Name: "Minibar Restock", Price: 30_00},
	}
	for i := range services {
		db.Create(&services[i])
	}

	// ================== SAMPLE BOOKING ==================
	log.Println("Creating a sample booking...")

	checkin := time.Now().Add(48 * time.Hour).Truncate(time.Hour)
	checkout := checkin.Add(24 * time.Hour)
	booking := domain.Booking{
		Reference:    uuid.NewString(),
		UserID:       &guests[0].ID,
		GuestName:    guests[0].Name,
		GuestEmail:   guests[0].Email,
		GuestPhone:   guests[0].Phone,
		Deposit:      50_00,
		TotalPayment: 160_00,
		Status:       domain.BookingPending,
		Details: []domain.BookingDetail{
			{
				RoomID:       rooms[0].ID,
				CheckinAt:    checkin,
				CheckoutAt:   checkout.Add(30 * time.Minute),
				PricePerUnit: 80_00,
				Status:       domain.DetailPending,
			},
		},
	}
	db.Create(&booking)

	log.Println("Seed complete.")
}
