package route

import (
	gradeCtl "annur_backend/internals/features/grades/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

//   - /api/a/grades/... (tidak ada permukaan publik untuk nilai santri)
func GradeAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := gradeCtl.NewGradeController(db)

	grp := r.Group("/grades")
	grp.Get("/", ctrl.GetAllGrades)
	grp.Get("/stats", ctrl.GetGradeStats)
	grp.Get("/:id", ctrl.GetGradeByID)
	grp.Post("/", ctrl.CreateGrade)
	grp.Put("/:id", ctrl.UpdateGrade)
	grp.Delete("/:id", ctrl.DeleteGrade)
}
