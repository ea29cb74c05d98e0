package main

import (
	"context"
	"log"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"staybook/internal/database"
	"staybook/internal/domain"
	"staybook/internal/repository"
)

// Seeds a local database with a demo owner, hotel and rooms.
func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "staybook.db"
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	db, err := database.Connect(dsn, logger)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	hotels := repository.NewHotelRepository(db)
	rooms := repository.NewRoomRepository(db)

	hash, err := bcrypt.GenerateFromPassword([]byte("owner-password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	owner := &domain.User{
		Email:        "owner@example.com",
		PasswordHash: string(hash),
		Name:         "Demo Owner",
		Role:         domain.RoleHotelOwner,
	}
	if err := users.Create(ctx, owner); err != nil {
		log.Fatal(err)
	}

	hotel := &domain.Hotel{
		OwnerID: owner.ID,
		Name:    "Grand Plaza",
		Address: "12 Seaside Avenue",
		City:    "Dubai",
		Contact: "+971 50 000 0000",
	}
	if err := hotels.Create(ctx, hotel); err != nil {
		log.Fatal(err)
	}

	seedRooms := []domain.Room{
		{HotelID: hotel.ID, RoomType: domain.RoomSingleBed, PricePerNight: 120, Amenities: []string{"Free WiFi", "Room Service"}, IsAvailable: true},
		{HotelID: hotel.ID, RoomType: domain.RoomDoubleBed, PricePerNight: 190, Amenities: []string{"Free WiFi", "Mountain View"}, IsAvailable: true},
		{HotelID: hotel.ID, RoomType: domain.RoomLuxury, PricePerNight: 350, Amenities: []string{"Free WiFi", "Pool Access", "Free Breakfast"}, IsAvailable: true},
		{HotelID: hotel.ID, RoomType: domain.RoomFamilySuite, PricePerNight: 420, Amenities: []string{"Free WiFi", "Free Breakfast", "Room Service"}, IsAvailable: true},
	}
	for i := range seedRooms {
		if err := rooms.Create(ctx, &seedRooms[i]); err != nil {
			log.Fatal(err)
		}
	}

	log.Printf("seeded hotel %d with %d rooms (owner %s)", hotel.ID, len(seedRooms), owner.Email)
}
