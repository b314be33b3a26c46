package controller

import (
	"errors"
	"log"
	"strings"

	"annur_backend/internals/collection"
	"annur_backend/internals/features/grades/dto"
	"annur_backend/internals/features/grades/model"
	helper "annur_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GradeController struct {
	DB *gorm.DB
}

func NewGradeController(db *gorm.DB) *GradeController {
	return &GradeController{DB: db}
}

func (ctrl *GradeController) remote(centerID uuid.UUID) collection.GormRemote[model.GradeModel] {
	return collection.GormRemote[model.GradeModel]{
		DB:       ctrl.DB,
		Schema:   dto.GradeSchema,
		IDColumn: "grade_id",
		Scope: func(db *gorm.DB) *gorm.DB {
			return db.Where("grade_center_id = ?", centerID)
		},
	}
}

func (ctrl *GradeController) loadStore(c *fiber.Ctx, centerID uuid.UUID) (*collection.Store[model.GradeModel], error) {
	var rows []model.GradeModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("grade_center_id = ?", centerID).
		Order("grade_student_name ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	store := collection.NewStore(dto.GradeSchema)
	store.Load(rows)
	return store, nil
}

// gradeStats: counter schema + rata-rata skor (koleksi kosong → rata-rata 0,
// penjaga pembagian nol ada di AverageBy).
func gradeStats(store *collection.Store[model.GradeModel]) fiber.Map {
	all := store.All()
	out := fiber.Map{}
	for k, v := range store.Stats() {
		out[k] = v
	}
	out["average_score"] = collection.AverageBy(all, func(m model.GradeModel) int { return m.GradeScore })
	out["by_subject"] = collection.CountBy(all, func(m model.GradeModel) string { return m.GradeSubject })
	return out
}

// 🟢 GET /api/a/grades?search=&subject=&term=&page=&limit=
func (ctrl *GradeController) GetAllGrades(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	store, err := ctrl.loadStore(c, centerID)
	if err != nil {
		log.Printf("[ERROR] Gagal mengambil data nilai: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil nilai")
	}

	fs := collection.FilterStateFromQuery(dto.GradeSchema, c.Query)
	visible := store.Apply(fs)

	paging := helper.ResolvePaging(c, 20, 100)
	page := collection.Paginate(visible, paging.Offset, paging.Limit)

	return helper.JsonListEx(c, "Daftar nilai berhasil diambil",
		dto.ToGradeResponseList(page),
		helper.BuildPagination(int64(len(visible)), paging.Page, paging.PerPage),
		fiber.Map{"stats": gradeStats(store)},
	)
}

// 🟢 GET /api/a/grades/stats
func (ctrl *GradeController) GetGradeStats(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}
	store, err := ctrl.loadStore(c, centerID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung statistik nilai")
	}
	return helper.JsonOK(c, "Statistik nilai", gradeStats(store))
}

// 🟢 GET /api/a/grades/:id
func (ctrl *GradeController) GetGradeByID(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	var grade model.GradeModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("grade_id = ? AND grade_center_id = ?", c.Params("id"), centerID).
		First(&grade).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Nilai tidak ditemukan")
	}
	return helper.JsonOK(c, "Nilai berhasil ditemukan", dto.ToGradeResponse(&grade))
}

// 🟢 POST /api/a/grades
func (ctrl *GradeController) CreateGrade(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.GradeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}

	sess := collection.NewFormSession(dto.GradeSchema)
	sess.Open(nil)
	sess.Set(func(m *model.GradeModel) {
		req.ApplyScalar(m)
		m.GradeCenterID = centerID
	})

	store := collection.NewStore(dto.GradeSchema)
	disp := collection.NewDispatcher(store, dto.GradeSchema, ctrl.remote(centerID), false, nil)

	saved, verrs, err := sess.Submit(c.UserContext(), disp)
	if len(verrs) > 0 {
		return helper.JsonValidationError(c, verrs)
	}
	if err != nil {
		log.Printf("[ERROR] Gagal menyimpan nilai: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan nilai")
	}

	return helper.JsonCreated(c, "Nilai berhasil ditambahkan", dto.ToGradeResponse(&saved))
}

// 🟡 PUT /api/a/grades/:id
func (ctrl *GradeController) UpdateGrade(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	var existing model.GradeModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("grade_id = ? AND grade_center_id = ?", c.Params("id"), centerID).
		First(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Nilai tidak ditemukan")
	}

	var req dto.GradeUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}

	sess := collection.NewFormSession(dto.GradeSchema)
	sess.Open(&existing)
	sess.Set(func(m *model.GradeModel) { req.ApplyScalar(m) })

	store := collection.NewStore(dto.GradeSchema)
	store.Load([]model.GradeModel{existing})
	disp := collection.NewDispatcher(store, dto.GradeSchema, ctrl.remote(centerID), false, nil)

	saved, verrs, err := sess.Submit(c.UserContext(), disp)
	if len(verrs) > 0 {
		return helper.JsonValidationError(c, verrs)
	}
	if err != nil {
		if errors.Is(err, collection.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Nilai tidak ditemukan")
		}
		log.Printf("[ERROR] Gagal memperbarui nilai: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui nilai")
	}

	return helper.JsonUpdated(c, "Nilai berhasil diperbarui", dto.ToGradeResponse(&saved))
}

// 🔴 DELETE /api/a/grades/:id?confirm=true
func (ctrl *GradeController) DeleteGrade(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	var existing model.GradeModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("grade_id = ? AND grade_center_id = ?", c.Params("id"), centerID).
		First(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Nilai tidak ditemukan")
	}

	confirmed := strings.EqualFold(c.Query("confirm"), "true")

	store := collection.NewStore(dto.GradeSchema)
	store.Load([]model.GradeModel{existing})
	disp := collection.NewDispatcher(store, dto.GradeSchema, ctrl.remote(centerID), false, nil)

	if err := disp.Delete(c.UserContext(), existing.GradeID.String(), confirmed); err != nil {
		log.Printf("[ERROR] Gagal menghapus nilai: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus nilai")
	}
	if !confirmed {
		return helper.JsonOK(c, "Penghapusan dibatalkan", nil)
	}
	return helper.JsonDeleted(c, "Nilai berhasil dihapus", nil)
}
