package fatwas

import (
	"log"
	"os"

	centerModel "annur_backend/internals/features/centers/model"
	"annur_backend/internals/features/fatwas/model"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"
)

type FatwaSeed struct {
	CenterSlug string   `json:"center_slug"`
	Title      string   `json:"title"`
	Question   string   `json:"question"`
	Answer     string   `json:"answer"`
	Scholar    string   `json:"scholar"`
	Category   string   `json:"category"`
	Language   string   `json:"language"`
	Status     string   `json:"status"`
	Tags       []string `json:"tags"`
	References []string `json:"references"`
	IsPublic   bool     `json:"is_public"`
}

func SeedFatwasFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file fatwa:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []FatwaSeed
	if err := sonic.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		var center centerModel.CenterModel
		if err := db.Where("center_slug = ?", data.CenterSlug).First(&center).Error; err != nil {
			log.Printf("❌ Center '%s' untuk fatwa '%s' tidak ditemukan, dilewati.", data.CenterSlug, data.Title)
			continue
		}

		var existing model.FatwaModel
		if err := db.Where("fatwa_center_id = ? AND fatwa_title = ?", center.CenterID, data.Title).
			First(&existing).Error; err == nil {
			log.Printf("ℹ️ Fatwa '%s' sudah ada, dilewati.", data.Title)
			continue
		}

		fatwa := model.FatwaModel{
			FatwaCenterID:   center.CenterID,
			FatwaTitle:      data.Title,
			FatwaQuestion:   data.Question,
			FatwaAnswer:     data.Answer,
			FatwaScholar:    data.Scholar,
			FatwaCategory:   data.Category,
			FatwaLanguage:   data.Language,
			FatwaStatus:     data.Status,
			FatwaTags:       data.Tags,
			FatwaReferences: data.References,
			FatwaIsPublic:   data.IsPublic,
		}
		if err := db.Create(&fatwa).Error; err != nil {
			log.Printf("❌ Gagal seed fatwa '%s': %v", data.Title, err)
			continue
		}
		log.Printf("✅ Fatwa '%s' berhasil dibuat.", data.Title)
	}
}
