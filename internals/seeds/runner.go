package seeds

import (
	centers "annur_backend/internals/seeds/centers"
	fatwas "annur_backend/internals/seeds/fatwas"
	users "annur_backend/internals/seeds/users"

	"gorm.io/gorm"
)

// RunAllSeeds mengisi data awal dari file JSON. Urutan penting:
// center dulu, baru user dan konten yang menempel ke center.
func RunAllSeeds(db *gorm.DB) {
	centers.SeedCentersFromJSON(db, "internals/seeds/centers/data_centers.json")
	users.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")
	fatwas.SeedFatwasFromJSON(db, "internals/seeds/fatwas/data_fatwas.json")
}
