package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"museumbackend/internal/assets"
	"museumbackend/internal/config"
	"museumbackend/internal/database"
	"museumbackend/internal/middleware"
	"museumbackend/internal/modules/admin"
	"museumbackend/internal/modules/artist"
	"museumbackend/internal/modules/artwork"
	"museumbackend/internal/modules/auth"
	"museumbackend/internal/modules/events"
	"museumbackend/internal/modules/hotspot"
	"museumbackend/internal/modules/panorama"
	jwtsvc "museumbackend/internal/pkg/jwt"
	"museumbackend/internal/pkg/qr"
	"museumbackend/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	store := assets.NewDiskStore(cfg.AssetsBaseDir, cfg.AssetsBaseURL)
	uploads := assets.NewCoordinator(store)
	qrGen := qr.NewGenerator(uploads, cfg.AppBaseURL, "")

	userRepo := repository.NewUserRepository(db)
	artistRepo := repository.NewArtistRepository(db)
	artworkRepo := repository.NewArtworkRepository(db)
	translationRepo := repository.NewTranslationRepository(db)
	mediaRepo := repository.NewMediaRepository(db)
	panoramaRepo := repository.NewPanoramaRepository(db)
	hotspotRepo := repository.NewHotspotRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	hub := events.NewHub()
	defer hub.Close()

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	adminService := admin.NewService(userRepo, uploads, cfg.AdminTxTimeout)
	adminHandler := admin.NewHandler(adminService)

	artistService := artist.NewService(artistRepo, uploads, hub)
	artistHandler := artist.NewHandler(artistService)

	artworkService := artwork.NewService(artworkRepo, artistRepo, qrGen, uploads, hub)
	translationService := artwork.NewTranslationService(translationRepo, artworkRepo, hub)
	mediaService := artwork.NewMediaService(mediaRepo, artworkRepo, uploads, hub)
	artworkHandler := artwork.NewHandler(artworkService, translationService, mediaService)

	panoramaService := panorama.NewService(panoramaRepo, hotspotRepo, uploads, hub)
	panoramaHandler := panorama.NewHandler(panoramaService)

	hotspotService := hotspot.NewService(hotspotRepo, panoramaRepo, artworkRepo, hub)
	hotspotHandler := hotspot.NewHandler(hotspotService)

	eventsHandler := events.NewHandler(hub)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	r.Static(cfg.AssetsBaseURL, cfg.AssetsBaseDir)

	v1 := r.Group("/api/v1")

	protected := v1.Group("/")
	protected.Use(middleware.RequireAuth(j), middleware.RequireAdmin())

	authHandler.RegisterRoutes(v1, protected)
	adminHandler.RegisterRoutes(v1, protected)
	artistHandler.RegisterRoutes(v1, protected)
	artworkHandler.RegisterRoutes(v1, protected)
	panoramaHandler.RegisterRoutes(v1, protected)
	hotspotHandler.RegisterRoutes(v1, protected)
	eventsHandler.RegisterRoutes(v1, protected)

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
