package app

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nduthigear/gearhq/internal/adapters/feed/twitter"
	"github.com/nduthigear/gearhq/internal/adapters/httpserver"
	"github.com/nduthigear/gearhq/internal/adapters/repo/postgres"
	"github.com/nduthigear/gearhq/internal/domain"
	"github.com/nduthigear/gearhq/internal/usecase"
)

type App struct {
	DB            *gorm.DB
	Catalog       *usecase.CatalogUC
	Orders        *usecase.OrderUC
	Consultations *usecase.ConsultationUC
	Feed          *usecase.FeedUC
}

func NewApp(db *gorm.DB) (*App, error) {
	catRepo := postgres.NewCategoryRepo(db)
	prodRepo := postgres.NewProductRepo(db)
	orderRepo := postgres.NewOrderRepo(db)
	consRepo := postgres.NewConsultationRepo(db)
	gearRepo := postgres.NewGearRepo(db)
	twitterRepo := postgres.NewTwitterRepo(db)

	app := &App{DB: db}
	app.Catalog = &usecase.CatalogUC{Categories: catRepo, Products: prodRepo}
	app.Orders = &usecase.OrderUC{Orders: orderRepo}
	app.Consultations = &usecase.ConsultationUC{Consultations: consRepo}
	app.Feed = &usecase.FeedUC{Gear: gearRepo, Twitter: twitterRepo, Credentials: twitter.NewFromEnv()}
	return app, nil
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(a.Catalog, a.Orders, a.Consultations, a.Feed)
}

func (a *App) MigrateAndSeed() error {
	if err := a.DB.AutoMigrate(
		&domain.Category{}, &domain.Product{}, &domain.Order{}, &domain.OrderItem{},
		&domain.Consultation{}, &domain.GearProduct{}, &domain.TwitterPost{},
	); err != nil {
		return err
	}

	_ = a.DB.Exec("CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items(order_id)").Error
	_ = a.DB.Exec("CREATE INDEX IF NOT EXISTS idx_products_featured ON products(featured)").Error

	seedCategories(a.DB)
	seedGearProducts(a.DB)
	seedTwitterPosts(a.DB)
	return nil
}

func seedCategories(db *gorm.DB) {
	var count int64
	if db.Model(&domain.Category{}).Count(&count); count > 0 {
		return
	}
	cats := []domain.Category{
		{ID: uuid.New(), Name: "Sport", Description: "High-performance bikes for speed enthusiasts and track riders", ImageURL: "https://images.unsplash.com/photo-1558981403-c5f9899a28bc?w=800"},
		{ID: uuid.New(), Name: "Cruiser", Description: "Comfortable, laid-back riding style for long-distance touring", ImageURL: "https://images.unsplash.com/photo-1568772585407-9361f9bf3a87?w=800"},
		{ID: uuid.New(), Name: "Adventure", Description: "Versatile bikes for on-road and off-road exploration", ImageURL: "https://images.unsplash.com/photo-1609630875171-b1321377ee65?w=800"},
		{ID: uuid.New(), Name: "Touring", Description: "Long-distance comfort with storage and weather protection", ImageURL: "https://images.unsplash.com/photo-1558980664-769d59546b3d?w=800"},
	}
	for _, c := range cats {
		db.Create(&c)
	}
}

func seedGearProducts(db *gorm.DB) {
	var count int64
	if db.Model(&domain.GearProduct{}).Count(&count); count > 0 {
		return
	}
	gear := []domain.GearProduct{
		{ID: uuid.New(), Name: "Adventure Helmets", Description: "Premium dual sport helmets for adventure touring", Category: "helmets", PriceMin: 8500, PriceMax: 65000, InStock: true},
		{ID: uuid.New(), Name: "Riding Jackets & Pants", Description: "Waterproof adventure riding gear with armor protection", Category: "protection", PriceMin: 12000, PriceMax: 45000, InStock: true},
		{ID: uuid.New(), Name: "Adventure Boots & Gloves", Description: "Durable off-road boots and all-weather riding gloves", Category: "accessories", PriceMin: 6500, PriceMax: 28000, InStock: true},
		{ID: uuid.New(), Name: "Navigation & Communication", Description: "GPS units, intercoms, and motorcycle tech accessories", Category: "tech", PriceMin: 3500, PriceMax: 55000, InStock: true},
		{ID: uuid.New(), Name: "Maintenance & Tools", Description: "Essential motorcycle maintenance tools and spare parts", Category: "tools", PriceMin: 2500, PriceMax: 18000, InStock: true},
		{ID: uuid.New(), Name: "Adventure Luggage", Description: "Panniers, top boxes, and touring luggage systems", Category: "touring", PriceMin: 8000, PriceMax: 35000, InStock: true},
	}
	for _, g := range gear {
		db.Create(&g)
	}
}

func seedTwitterPosts(db *gorm.DB) {
	var count int64
	if db.Model(&domain.TwitterPost{}).Count(&count); count > 0 {
		return
	}
	now := time.Now()
	posts := []domain.TwitterPost{
		{ID: uuid.New(), TweetID: "tweet_001", Author: "NduthiGear", Handle: "nduthigear", CreatedAt: now.Add(-2 * time.Hour), Likes: 24, Retweets: 8, Replies: 5,
			Content: "Hello, aspiring biker! Choosing the right motorcycle isn't just about picking a model, it's about finding the perfect fit for your needs & budget."},
		{ID: uuid.New(), TweetID: "tweet_002", Author: "NduthiGear", Handle: "nduthigear", CreatedAt: now.Add(-5 * time.Hour), Likes: 42, Retweets: 15, Replies: 12,
			Content: "Adventure bike spotlight: BMW GS series vs Honda Africa Twin. Both are excellent choices for Kenya's diverse terrain. Which would you choose?"},
		{ID: uuid.New(), TweetID: "tweet_003", Author: "NduthiGear", Handle: "nduthigear", CreatedAt: now.Add(-8 * time.Hour), Likes: 67, Retweets: 28, Replies: 9,
			Content: "Safety tip for new riders: your gear is just as important as your skills. DOT/ECE approved helmet, armored jacket, quality boots & gloves. #RideSafe"},
		{ID: uuid.New(), TweetID: "tweet_004", Author: "NduthiGear", Handle: "nduthigear", CreatedAt: now.Add(-12 * time.Hour), Likes: 38, Retweets: 19, Replies: 7,
			Content: "Confidence riding tip: master the basics before attempting advanced maneuvers. Book a confidence session if you need guidance!"},
		{ID: uuid.New(), TweetID: "tweet_005", Author: "NduthiGear", Handle: "nduthigear", CreatedAt: now.Add(-24 * time.Hour), Likes: 29, Retweets: 11, Replies: 4,
			Content: "Maintenance Monday! Check tire pressure weekly, clean & lube chain every 500km, oil changes every 3,000km. Your bike will thank you."},
	}
	for _, p := range posts {
		db.Create(&p)
	}
}
