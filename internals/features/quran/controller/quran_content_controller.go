package controller

import (
	"errors"
	"log"
	"strings"

	"annur_backend/internals/collection"
	"annur_backend/internals/features/quran/dto"
	"annur_backend/internals/features/quran/model"
	helper "annur_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuranContentController struct {
	DB *gorm.DB
}

func NewQuranContentController(db *gorm.DB) *QuranContentController {
	return &QuranContentController{DB: db}
}

func (ctrl *QuranContentController) remote(centerID uuid.UUID) collection.GormRemote[model.QuranContentModel] {
	return collection.GormRemote[model.QuranContentModel]{
		DB:       ctrl.DB,
		Schema:   dto.QuranContentSchema,
		IDColumn: "quran_content_id",
		Scope: func(db *gorm.DB) *gorm.DB {
			return db.Where("quran_content_center_id = ?", centerID)
		},
	}
}

func (ctrl *QuranContentController) loadStore(c *fiber.Ctx, centerID uuid.UUID) (*collection.Store[model.QuranContentModel], error) {
	var rows []model.QuranContentModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("quran_content_center_id = ?", centerID).
		Order("quran_content_surah_number ASC, quran_content_ayah_number ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	store := collection.NewStore(dto.QuranContentSchema)
	store.Load(rows)
	return store, nil
}

// 🟢 GET /api/a/quran-contents?search=&status=&surah=&page=&limit=
func (ctrl *QuranContentController) GetAllQuranContents(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	store, err := ctrl.loadStore(c, centerID)
	if err != nil {
		log.Printf("[ERROR] Gagal mengambil konten quran: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil konten quran")
	}

	fs := collection.FilterStateFromQuery(dto.QuranContentSchema, c.Query)
	visible := store.Apply(fs)
	stats := store.Stats()

	paging := helper.ResolvePaging(c, 20, 100)
	page := collection.Paginate(visible, paging.Offset, paging.Limit)

	return helper.JsonListEx(c, "Daftar konten quran berhasil diambil",
		dto.ToQuranContentResponseList(page),
		helper.BuildPagination(int64(len(visible)), paging.Page, paging.PerPage),
		fiber.Map{"stats": stats},
	)
}

// 🟢 GET /api/a/quran-contents/stats
func (ctrl *QuranContentController) GetQuranContentStats(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}
	store, err := ctrl.loadStore(c, centerID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung statistik konten quran")
	}
	return helper.JsonOK(c, "Statistik konten quran", store.Stats())
}

// 🟢 GET /api/a/quran-contents/:id
func (ctrl *QuranContentController) GetQuranContentByID(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	var content model.QuranContentModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("quran_content_id = ? AND quran_content_center_id = ?", c.Params("id"), centerID).
		First(&content).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Konten quran tidak ditemukan")
	}
	return helper.JsonOK(c, "Konten quran berhasil ditemukan", dto.ToQuranContentResponse(&content))
}

// 🟢 POST /api/a/quran-contents
func (ctrl *QuranContentController) CreateQuranContent(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.QuranContentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}

	sess := collection.NewFormSession(dto.QuranContentSchema)
	sess.Open(nil)
	sess.Set(func(m *model.QuranContentModel) {
		req.ApplyScalar(m)
		m.QuranContentCenterID = centerID
	})
	for _, t := range req.QuranContentThemes {
		sess.AddToList("themes", t)
	}

	store := collection.NewStore(dto.QuranContentSchema)
	disp := collection.NewDispatcher(store, dto.QuranContentSchema, ctrl.remote(centerID), false, nil)

	saved, verrs, err := sess.Submit(c.UserContext(), disp)
	if len(verrs) > 0 {
		return helper.JsonValidationError(c, verrs)
	}
	if err != nil {
		log.Printf("[ERROR] Gagal menyimpan konten quran: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan konten quran")
	}

	return helper.JsonCreated(c, "Konten quran berhasil ditambahkan", dto.ToQuranContentResponse(&saved))
}

// 🟡 PUT /api/a/quran-contents/:id
func (ctrl *QuranContentController) UpdateQuranContent(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	var existing model.QuranContentModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("quran_content_id = ? AND quran_content_center_id = ?", c.Params("id"), centerID).
		First(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Konten quran tidak ditemukan")
	}

	var req dto.QuranContentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}

	sess := collection.NewFormSession(dto.QuranContentSchema)
	sess.Open(&existing)
	sess.Set(func(m *model.QuranContentModel) { req.ApplyScalar(m) })
	if req.QuranContentThemes != nil {
		for _, v := range sess.List("themes") {
			sess.RemoveFromList("themes", v)
		}
		for _, v := range *req.QuranContentThemes {
			sess.AddToList("themes", v)
		}
	}

	store := collection.NewStore(dto.QuranContentSchema)
	store.Load([]model.QuranContentModel{existing})
	disp := collection.NewDispatcher(store, dto.QuranContentSchema, ctrl.remote(centerID), false, nil)

	saved, verrs, err := sess.Submit(c.UserContext(), disp)
	if len(verrs) > 0 {
		return helper.JsonValidationError(c, verrs)
	}
	if err != nil {
		if errors.Is(err, collection.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Konten quran tidak ditemukan")
		}
		log.Printf("[ERROR] Gagal memperbarui konten quran: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui konten quran")
	}

	return helper.JsonUpdated(c, "Konten quran berhasil diperbarui", dto.ToQuranContentResponse(&saved))
}

// 🔴 DELETE /api/a/quran-contents/:id?confirm=true
func (ctrl *QuranContentController) DeleteQuranContent(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	var existing model.QuranContentModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("quran_content_id = ? AND quran_content_center_id = ?", c.Params("id"), centerID).
		First(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Konten quran tidak ditemukan")
	}

	confirmed := strings.EqualFold(c.Query("confirm"), "true")

	store := collection.NewStore(dto.QuranContentSchema)
	store.Load([]model.QuranContentModel{existing})
	disp := collection.NewDispatcher(store, dto.QuranContentSchema, ctrl.remote(centerID), false, nil)

	if err := disp.Delete(c.UserContext(), existing.QuranContentID.String(), confirmed); err != nil {
		log.Printf("[ERROR] Gagal menghapus konten quran: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus konten quran")
	}
	if !confirmed {
		return helper.JsonOK(c, "Penghapusan dibatalkan", nil)
	}
	return helper.JsonDeleted(c, "Konten quran berhasil dihapus", nil)
}

// 🟢 GET /api/public/quran-contents?surah=&search= — hanya yang Published.
func (ctrl *QuranContentController) GetPublicQuranContents(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.QuranContentModel{}).
		Where("quran_content_status = ?", model.QuranStatusPublished)

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		q = q.Where("quran_content_surah_name ILIKE ? OR quran_content_translation ILIKE ?", like, like)
	}
	if surah := c.Query("surah"); surah != "" && surah != collection.All {
		q = q.Where("quran_content_surah_name = ?", surah)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung konten quran")
	}

	var rows []model.QuranContentModel
	if err := q.Order("quran_content_surah_number ASC, quran_content_ayah_number ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil konten quran")
	}

	return helper.JsonList(c, "Daftar konten quran", dto.ToQuranContentResponseList(rows),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}
