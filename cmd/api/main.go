package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/reklaminn/pin25-foods-sub001/internal/admin"
	"github.com/reklaminn/pin25-foods-sub001/internal/cache"
	"github.com/reklaminn/pin25-foods-sub001/internal/catalog"
	"github.com/reklaminn/pin25-foods-sub001/internal/checkout"
	"github.com/reklaminn/pin25-foods-sub001/internal/db"
	"github.com/reklaminn/pin25-foods-sub001/internal/middleware"
	"github.com/reklaminn/pin25-foods-sub001/internal/recommend"
	"github.com/reklaminn/pin25-foods-sub001/internal/session"
	"github.com/reklaminn/pin25-foods-sub001/internal/settings"
	"github.com/reklaminn/pin25-foods-sub001/internal/storage"
	"github.com/reklaminn/pin25-foods-sub001/internal/wizard"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	ctx := context.Background()

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(ctx)
	if err != nil {
		log.Fatal("❌ R2 init failed:", err)
	}

	// ───────────────────────── CACHE ─────────────────────────
	store := cache.NewMemoryStore()

	// ───────────────────────── CATALOG ─────────────────────────
	catalogRepo := catalog.NewPostgresRepository(pgDB)
	if err := catalogRepo.SeedIfEmpty(ctx); err != nil {
		log.Fatal("❌ Catalog seed failed:", err)
	}

	catalogService, err := catalog.NewService(ctx, catalogRepo)
	if err != nil {
		log.Fatal("❌ Catalog load failed:", err)
	}
	catalogHandler := catalog.NewHandler(catalogService)

	// ───────────────────────── WIZARD ─────────────────────────
	wizardSessions := wizard.NewSessions(store, wizard.DefaultSteps())
	wizardHandler := wizard.NewHandler(wizardSessions)

	engine := recommend.NewEngine(catalogService)
	recommendHandler := recommend.NewHandler(wizardSessions, engine)

	handoffStore := checkout.NewStore(store)
	checkoutHandler := checkout.NewHandler(wizardSessions, catalogService, handoffStore)

	// ───────────────────────── ADMIN ─────────────────────────
	registry := admin.NewPostgresRegistry(pgDB)

	if email, password := os.Getenv("ADMIN_EMAIL"), os.Getenv("ADMIN_PASSWORD"); email != "" && password != "" {
		hashed, err := admin.HashPassword(password)
		if err != nil {
			log.Fatal("❌ Admin bootstrap failed:", err)
		}
		if err := registry.EnsureOwner(ctx, email, hashed); err != nil {
			log.Fatal("❌ Admin bootstrap failed:", err)
		}
	}

	sessions := session.NewJWTProvider()
	adminService := admin.NewService(registry)
	adminHandler := admin.NewHandler(adminService, sessions)

	// ───────────────────────── SETTINGS ─────────────────────────
	settingsRepo := settings.NewPostgresRepository(pgDB)
	settingsService := settings.NewService(settingsRepo, r2Client, store)
	settingsHandler := settings.NewHandler(settingsService)

	// ───────────────────────── PUBLIC ROUTES ─────────────────────────
	r.GET("/packages", catalogHandler.List)
	r.GET("/site/logo", settingsHandler.Logo)

	wizardRoutes := r.Group("/wizard")
	{
		wizardRoutes.POST("/start", wizardHandler.Start)
		wizardRoutes.GET("/step", wizardHandler.CurrentStep)
		wizardRoutes.POST("/toggle", wizardHandler.Toggle)
		wizardRoutes.POST("/next", wizardHandler.Next)
		wizardRoutes.POST("/back", wizardHandler.Back)
		wizardRoutes.GET("/recommendations", recommendHandler.List)
		wizardRoutes.POST("/choose", checkoutHandler.Choose)
	}

	r.GET("/checkout/handoff", checkoutHandler.Handoff)

	// ───────────────────────── ADMIN ROUTES ─────────────────────────
	// Login and unauthorized pages live OUTSIDE the gated group: the gate
	// never evaluates session state for them.
	r.GET(middleware.LoginPath, adminHandler.LoginPage)
	r.POST(middleware.LoginPath, adminHandler.Login)
	r.GET(middleware.UnauthorizedPath, adminHandler.UnauthorizedPage)

	adminRoutes := r.Group("/admin")
	adminRoutes.Use(middleware.AdminGate(sessions, registry))
	{
		adminRoutes.GET("/me", adminHandler.Me)
		adminRoutes.POST("/logout", adminHandler.Logout)

		adminRoutes.GET("/settings", settingsHandler.List)
		adminRoutes.PUT("/settings", settingsHandler.Update)
		adminRoutes.POST("/settings/logo",
			middleware.RequireRole(admin.RoleOwner, admin.RoleEditor),
			settingsHandler.UploadLogo,
		)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	r.Run(":8000")
}
