package users

import (
	"log"
	"os"

	centerModel "annur_backend/internals/features/centers/model"
	"annur_backend/internals/features/users/user/model"

	"github.com/bytedance/sonic"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserSeed struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	CenterSlug string `json:"center_slug"`
}

func SeedUsersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file user:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []UserSeed
	if err := sonic.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.UserModel
		if err := db.Where("user_email = ?", data.Email).First(&existing).Error; err == nil {
			log.Printf("ℹ️ User dengan email '%s' sudah ada, dilewati.", data.Email)
			continue
		}

		// 🔐 Hash password sebelum disimpan
		hashed, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("❌ Gagal hash password untuk '%s': %v", data.Email, err)
			continue
		}

		user := model.UserModel{
			UserName:     data.Name,
			UserEmail:    data.Email,
			UserPassword: string(hashed),
			UserRole:     data.Role,
			UserIsActive: true,
		}

		// admin/staff harus menempel ke center via slug
		if data.CenterSlug != "" {
			var center centerModel.CenterModel
			if err := db.Where("center_slug = ?", data.CenterSlug).First(&center).Error; err != nil {
				log.Printf("❌ Center '%s' untuk user '%s' tidak ditemukan, dilewati.", data.CenterSlug, data.Email)
				continue
			}
			user.UserCenterID = &center.CenterID
		}

		if err := db.Create(&user).Error; err != nil {
			log.Printf("❌ Gagal seed user '%s': %v", data.Email, err)
			continue
		}
		log.Printf("✅ User '%s' (%s) berhasil dibuat.", data.Email, data.Role)
	}
}
