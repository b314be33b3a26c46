package controller

import (
	"errors"
	"log"
	"strings"

	"annur_backend/internals/collection"
	"annur_backend/internals/features/fatwas/dto"
	"annur_backend/internals/features/fatwas/model"
	helper "annur_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FatwaController struct {
	DB *gorm.DB
}

func NewFatwaController(db *gorm.DB) *FatwaController {
	return &FatwaController{DB: db}
}

// remote: persist mutasi dispatcher ke DB, di-scope center (tenant).
func (ctrl *FatwaController) remote(centerID uuid.UUID) collection.GormRemote[model.FatwaModel] {
	return collection.GormRemote[model.FatwaModel]{
		DB:       ctrl.DB,
		Schema:   dto.FatwaSchema,
		IDColumn: "fatwa_id",
		Scope: func(db *gorm.DB) *gorm.DB {
			return db.Where("fatwa_center_id = ?", centerID)
		},
	}
}

// loadStore mengambil seluruh record tenant ke store in-memory
// (halaman fatwa milik pola client-side filter: fetch penuh, saring di memori).
func (ctrl *FatwaController) loadStore(c *fiber.Ctx, centerID uuid.UUID) (*collection.Store[model.FatwaModel], error) {
	var rows []model.FatwaModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("fatwa_center_id = ?", centerID).
		Order("fatwa_created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	store := collection.NewStore(dto.FatwaSchema)
	store.Load(rows)
	return store, nil
}

// 🟢 GET /api/a/fatwas?search=&status=&category=&language=&page=&limit=
// List terfilter + stats dari koleksi penuh (stats tidak ikut filter).
func (ctrl *FatwaController) GetAllFatwas(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	store, err := ctrl.loadStore(c, centerID)
	if err != nil {
		log.Printf("[ERROR] Gagal mengambil data fatwa: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil fatwa")
	}

	fs := collection.FilterStateFromQuery(dto.FatwaSchema, c.Query)
	visible := store.Apply(fs)
	stats := store.Stats()

	paging := helper.ResolvePaging(c, 20, 100)
	page := collection.Paginate(visible, paging.Offset, paging.Limit)

	return helper.JsonListEx(c, "Daftar fatwa berhasil diambil",
		dto.ToFatwaResponseList(page),
		helper.BuildPagination(int64(len(visible)), paging.Page, paging.PerPage),
		fiber.Map{"stats": stats},
	)
}

// 🟢 GET /api/a/fatwas/stats
func (ctrl *FatwaController) GetFatwaStats(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}
	store, err := ctrl.loadStore(c, centerID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung statistik fatwa")
	}
	return helper.JsonOK(c, "Statistik fatwa", store.Stats())
}

// 🟢 GET /api/a/fatwas/:id
func (ctrl *FatwaController) GetFatwaByID(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	var fatwa model.FatwaModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("fatwa_id = ? AND fatwa_center_id = ?", c.Params("id"), centerID).
		First(&fatwa).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Fatwa tidak ditemukan")
	}
	return helper.JsonOK(c, "Fatwa berhasil ditemukan", dto.ToFatwaResponse(&fatwa))
}

// 🟢 POST /api/a/fatwas
func (ctrl *FatwaController) CreateFatwa(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.FatwaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}

	sess := collection.NewFormSession(dto.FatwaSchema)
	sess.Open(nil)
	sess.Set(func(m *model.FatwaModel) {
		req.ApplyScalar(m)
		m.FatwaCenterID = centerID
	})
	for _, t := range req.FatwaTags {
		sess.AddToList("tags", t)
	}
	for _, r := range req.FatwaReferences {
		sess.AddToList("references", r)
	}

	store := collection.NewStore(dto.FatwaSchema)
	disp := collection.NewDispatcher(store, dto.FatwaSchema, ctrl.remote(centerID), false, nil)

	saved, verrs, err := sess.Submit(c.UserContext(), disp)
	if len(verrs) > 0 {
		return helper.JsonValidationError(c, verrs)
	}
	if err != nil {
		log.Printf("[ERROR] Gagal menyimpan fatwa: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan fatwa")
	}

	return helper.JsonCreated(c, "Fatwa berhasil ditambahkan", dto.ToFatwaResponse(&saved))
}

// 🟡 PUT /api/a/fatwas/:id
func (ctrl *FatwaController) UpdateFatwa(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	var existing model.FatwaModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("fatwa_id = ? AND fatwa_center_id = ?", c.Params("id"), centerID).
		First(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Fatwa tidak ditemukan")
	}

	var req dto.FatwaUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}

	sess := collection.NewFormSession(dto.FatwaSchema)
	sess.Open(&existing)
	sess.Set(func(m *model.FatwaModel) { req.ApplyScalar(m) })
	if req.FatwaTags != nil {
		replaceList(sess, "tags", *req.FatwaTags)
	}
	if req.FatwaReferences != nil {
		replaceList(sess, "references", *req.FatwaReferences)
	}

	store := collection.NewStore(dto.FatwaSchema)
	store.Load([]model.FatwaModel{existing})
	disp := collection.NewDispatcher(store, dto.FatwaSchema, ctrl.remote(centerID), false, nil)

	saved, verrs, err := sess.Submit(c.UserContext(), disp)
	if len(verrs) > 0 {
		return helper.JsonValidationError(c, verrs)
	}
	if err != nil {
		if errors.Is(err, collection.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Fatwa tidak ditemukan")
		}
		log.Printf("[ERROR] Gagal memperbarui fatwa: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui fatwa")
	}

	return helper.JsonUpdated(c, "Fatwa berhasil diperbarui", dto.ToFatwaResponse(&saved))
}

// 🔴 DELETE /api/a/fatwas/:id?confirm=true
// Hapus selalu di-gate konfirmasi; tanpa confirm=true → no-op (bukan error).
func (ctrl *FatwaController) DeleteFatwa(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	var existing model.FatwaModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("fatwa_id = ? AND fatwa_center_id = ?", c.Params("id"), centerID).
		First(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Fatwa tidak ditemukan")
	}

	confirmed := strings.EqualFold(c.Query("confirm"), "true")

	store := collection.NewStore(dto.FatwaSchema)
	store.Load([]model.FatwaModel{existing})
	disp := collection.NewDispatcher(store, dto.FatwaSchema, ctrl.remote(centerID), false, nil)

	if err := disp.Delete(c.UserContext(), existing.FatwaID.String(), confirmed); err != nil {
		log.Printf("[ERROR] Gagal menghapus fatwa: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus fatwa")
	}
	if !confirmed {
		return helper.JsonOK(c, "Penghapusan dibatalkan", nil)
	}
	return helper.JsonDeleted(c, "Fatwa berhasil dihapus", nil)
}

// 🟢 GET /api/public/fatwas?search=&category=&language= — hanya Approved & publik.
func (ctrl *FatwaController) GetPublicFatwas(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.FatwaModel{}).
		Where("fatwa_status = ? AND fatwa_is_public = TRUE", model.FatwaStatusApproved)

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		q = q.Where("fatwa_title ILIKE ? OR fatwa_question ILIKE ? OR fatwa_answer ILIKE ?", like, like, like)
	}
	if cat := c.Query("category"); cat != "" && cat != collection.All {
		q = q.Where("fatwa_category = ?", cat)
	}
	if lang := c.Query("language"); lang != "" && lang != collection.All {
		q = q.Where("fatwa_language = ?", lang)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung fatwa")
	}

	var rows []model.FatwaModel
	if err := q.Order("fatwa_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil fatwa")
	}

	return helper.JsonList(c, "Daftar fatwa", dto.ToFatwaResponseList(rows),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

/* =======================
   Helpers kecil
======================= */

func replaceList(sess *collection.FormSession[model.FatwaModel], name string, values []string) {
	for _, v := range sess.List(name) {
		sess.RemoveFromList(name, v)
	}
	for _, v := range values {
		sess.AddToList(name, v)
	}
}
