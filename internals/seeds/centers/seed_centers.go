package centers

import (
	"log"
	"os"

	helper "annur_backend/internals/helpers"

	"annur_backend/internals/features/centers/model"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"
)

type CenterSeed struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
}

func SeedCentersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file center:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []CenterSeed
	if err := sonic.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		slug := helper.Slugify(data.Name, 100)

		var existing model.CenterModel
		if err := db.Where("center_slug = ?", slug).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Center '%s' sudah ada, dilewati.", data.Name)
			continue
		}

		center := model.CenterModel{
			CenterName:        data.Name,
			CenterSlug:        slug,
			CenterDescription: data.Description,
			CenterAddress:     data.Address,
			CenterCity:        data.City,
			CenterPhone:       data.Phone,
			CenterEmail:       data.Email,
		}
		if err := db.Create(&center).Error; err != nil {
			log.Printf("❌ Gagal seed center '%s': %v", data.Name, err)
			continue
		}
		log.Printf("✅ Center '%s' berhasil dibuat.", data.Name)
	}
}
