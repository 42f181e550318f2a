package main

import (
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"museumbackend/internal/database"
	"museumbackend/internal/domain"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "museum.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM hotspots")
	db.Exec("DELETE FROM artwork_media")
	db.Exec("DELETE FROM artwork_translations")
	db.Exec("DELETE FROM artworks")
	db.Exec("DELETE FROM panoramas")
	db.Exec("DELETE FROM artists")
	db.Exec("DELETE FROM users")

	// ================== ADMIN ==================
	log.Println("Creating admin...")
	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		ID:           uuid.NewString(),
		Email:        "admin@musee.sn",
		PasswordHash: string(adminHash),
		Nom:          "Diop",
		Prenom:       "Aminata",
		Role:         domain.RoleAdmin,
	}
	db.Create(&admin)
	log.Println("Admin created: admin@musee.sn / admin123")

	// ================== ARTISTS ==================
	log.Println("Creating artists...")
	artists := []domain.Artist{
		{ID: uuid.NewString(), Nom: "Ndiaye", Prenom: "Iba", Bio: "Peintre figuratif, pionnier de l'école de Dakar.", Statut: domain.ArtistActive},
		{ID: uuid.NewString(), Nom: "Lods", Prenom: "Pierre", Bio: "Fondateur de l'atelier d'art libre.", Statut: domain.ArtistActive},
		{ID: uuid.NewString(), Nom: "Sow", Prenom: "Ousmane", Bio: "Sculpteur, séries des lutteurs Nouba.", Statut: domain.ArtistInactive},
	}
	for i := range artists {
		db.Create(&artists[i])
	}

	// ================== PANORAMAS ==================
	log.Println("Creating panoramas...")
	panoramas := []domain.Panorama{
		{ID: uuid.NewString(), Title: "Salle d'art moderne", Description: "Collection permanente d'art moderne.", RoomType: domain.RoomModernArt},
		{ID: uuid.NewString(), Title: "Salle d'histoire", Description: "Parcours historique du musée.", RoomType: domain.RoomHistory},
	}
	for i := range panoramas {
		db.Create(&panoramas[i])
	}

	// ================== ARTWORKS ==================
	log.Println("Creating artworks...")
	artworks := []domain.Artwork{
		{ID: uuid.NewString(), Title: "Tabaski", ArtistID: artists[0].ID, IsActive: true},
		{ID: uuid.NewString(), Title: "Juan de Pareja", ArtistID: artists[0].ID, IsActive: true},
		{ID: uuid.NewString(), Title: "Toussaint Louverture", ArtistID: artists[2].ID, IsActive: false},
	}
	for i := range artworks {
		artworks[i].QRCode = "artwork_" + artworks[i].ID
		db.Create(&artworks[i])
	}

	// ================== TRANSLATIONS ==================
	log.Println("Creating translations...")
	translations := []domain.ArtworkTranslation{
		{ID: uuid.NewString(), ArtworkID: artworks[0].ID, Lang: domain.LangFR, Title: "Tabaski", Description: "Huile sur toile, 1970.", Status: domain.TranslationPublished},
		{ID: uuid.NewString(), ArtworkID: artworks[0].ID, Lang: domain.LangEN, Title: "Tabaski", Description: "Oil on canvas, 1970.", Status: domain.TranslationDraft},
		{ID: uuid.NewString(), ArtworkID: artworks[1].ID, Lang: domain.LangWO, Title: "Juan de Pareja", Description: "Nataal bu mag.", Status: domain.TranslationDraft},
	}
	for i := range translations {
		db.Create(&translations[i])
	}

	// ================== HOTSPOTS ==================
	log.Println("Creating hotspots...")
	artworkLink := artworks[0].ID
	hotspots := []domain.Hotspot{
		{
			ID:          uuid.NewString(),
			PanoramaID:  panoramas[0].ID,
			X:           45.0,
			Y:           -10.0,
			TargetType:  domain.TargetArtwork,
			TargetID:    artworks[0].ID,
			HotspotType: domain.HotspotArtwork,
			Label:       "🖼️ Tabaski",
			ArtworkID:   &artworkLink,
		},
		{
			ID:          uuid.NewString(),
			PanoramaID:  panoramas[0].ID,
			X:           120.0,
			Y:           0.0,
			TargetType:  domain.TargetPanorama,
			TargetID:    panoramas[1].ID,
			HotspotType: domain.HotspotNavigation,
			Label:       "🚪 Salle d'histoire",
		},
		{
			ID:          uuid.NewString(),
			PanoramaID:  panoramas[1].ID,
			X:           -60.0,
			Y:           15.0,
			TargetType:  domain.TargetPanorama,
			TargetID:    panoramas[0].ID,
			HotspotType: domain.HotspotInfo,
			Label:       "📍 Point d'intérêt",
		},
	}
	for i := range hotspots {
		db.Create(&hotspots[i])
	}

	log.Println("Seed complete.")
}
