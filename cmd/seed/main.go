package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"app/internal/domain/model"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	repo "app/internal/repository"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// 開発用の初期データ投入。2回流しても増殖しない。
func main() {
	_ = godotenv.Load()

	gormDB, err := db.Connect()
	if err != nil {
		panic(err)
	}
	if err := gormDB.AutoMigrate(
		&model.Tour{},
		&model.Order{},
		&model.AdminUser{},
		&model.CartSnapshot{},
	); err != nil {
		panic(err)
	}

	ctx := context.Background()

	if err := seedAdmin(ctx, gormDB); err != nil {
		panic(err)
	}
	if err := seedTours(ctx, gormDB); err != nil {
		panic(err)
	}

	fmt.Println("seed done")
}

func seedAdmin(ctx context.Context, gormDB *gorm.DB) error {
	adminRepo := infraRepo.NewAdminUserGormRepository(gormDB)

	username := getenv("SEED_ADMIN_USERNAME", "admin")

	_, err := adminRepo.FindByUsername(ctx, username)
	if err == nil {
		fmt.Println("admin already exists:", username)
		return nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return err
	}

	password := getenv("SEED_ADMIN_PASSWORD", "changeme123")
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return err
	}

	_, err = adminRepo.Create(ctx, model.AdminUser{
		Username:     username,
		PasswordHash: string(hash),
		Email:        getenv("SEED_ADMIN_EMAIL", "admin@example.com"),
	})
	if err != nil {
		return err
	}

	fmt.Println("admin created:", username)
	return nil
}

func seedTours(ctx context.Context, gormDB *gorm.DB) error {
	tourRepo := infraRepo.NewTourGormRepository(gormDB)

	count, err := tourRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		fmt.Println("tours already seeded")
		return nil
	}

	for _, t := range sampleTours {
		if _, err := tourRepo.Create(ctx, t); err != nil {
			return err
		}
	}

	fmt.Printf("seeded %d tours\n", len(sampleTours))
	return nil
}

var sampleTours = []model.Tour{
	{
		Title: "Highland Adventure: Glencoe & Ben Nevis",
		Description: "Embark on a breathtaking journey through Scotland's most iconic landscapes. " +
			"This tour takes you through the dramatic Glencoe valley, known for its towering peaks and rich history, " +
			"before ascending Ben Nevis, Britain's highest mountain. Along the way, you'll learn about sustainable " +
			"highland practices and local conservation efforts.",
		Price:    "185.00",
		Duration: "3 days",
		Location: "Scottish Highlands",
		Itinerary: []string{
			"Day 1: Depart Edinburgh, arrive Glencoe, guided valley walk",
			"Day 2: Ben Nevis ascent (guided), summit at 1,345m",
			"Day 3: Fort William town visit, return to Edinburgh",
		},
		Images: []string{
			"https://images.unsplash.com/photo-1552913902-b2cdb7c04e2b?w=800&h=600&fit=crop",
			"https://images.unsplash.com/photo-1590507788470-e5c85a1b0c5d?w=800&h=600&fit=crop",
		},
		SDGGoals:    []int{11, 15},
		MaxCapacity: 12,
	},
	{
		Title: "Isle of Skye: Coastal Wonders",
		Description: "Discover the magical Isle of Skye, where rugged coastlines meet ancient castles. " +
			"This eco-friendly tour prioritizes local communities, staying in family-run B&Bs and dining at " +
			"farm-to-table restaurants. Experience the Old Man of Storr, Fairy Pools, and Dunvegan Castle while " +
			"supporting sustainable tourism practices.",
		Price:    "220.00",
		Duration: "4 days",
		Location: "Isle of Skye",
		Itinerary: []string{
			"Day 1: Ferry to Skye, Portree town orientation",
			"Day 2: Old Man of Storr hike, Fairy Pools swim",
			"Day 3: Dunvegan Castle, local craft workshop",
			"Day 4: Quiraing circular walk, return ferry",
		},
		Images: []string{
			"https://images.unsplash.com/photo-1539085043514-831e58b1e50e?w=800&h=600&fit=crop",
			"https://images.unsplash.com/photo-1591522811280-a8759970b03f?w=800&h=600&fit=crop",
		},
		SDGGoals:    []int{11, 12, 15},
		MaxCapacity: 10,
	},
	{
		Title: "Edinburgh Heritage Walk",
		Description: "Explore Edinburgh's UNESCO World Heritage sites on foot, learning about the city's " +
			"sustainable urban development initiatives. This walking tour covers the Royal Mile, Edinburgh Castle, " +
			"Holyrood Palace, and Arthur's Seat, with expert guides discussing the city's commitment to sustainable " +
			"tourism and community engagement.",
		Price:    "75.00",
		Duration: "1 day",
		Location: "Edinburgh",
		Itinerary: []string{
			"Morning: Royal Mile & Edinburgh Castle tour",
			"Lunch: Local sustainable restaurant",
			"Afternoon: Holyrood Palace & Arthur's Seat walk",
		},
		Images: []string{
			"https://images.unsplash.com/photo-1506377585622-bedcbb027afc?w=800&h=600&fit=crop",
		},
		SDGGoals:    []int{11, 12},
		MaxCapacity: 20,
	},
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
