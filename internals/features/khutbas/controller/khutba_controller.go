package controller

import (
	"errors"
	"log"
	"strings"

	"annur_backend/internals/collection"
	"annur_backend/internals/features/khutbas/dto"
	"annur_backend/internals/features/khutbas/model"
	helper "annur_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type KhutbaController struct {
	DB *gorm.DB
}

func NewKhutbaController(db *gorm.DB) *KhutbaController {
	return &KhutbaController{DB: db}
}

func (ctrl *KhutbaController) remote(centerID uuid.UUID) collection.GormRemote[model.KhutbaModel] {
	return collection.GormRemote[model.KhutbaModel]{
		DB:       ctrl.DB,
		Schema:   dto.KhutbaSchema,
		IDColumn: "khutba_id",
		Scope: func(db *gorm.DB) *gorm.DB {
			return db.Where("khutba_center_id = ?", centerID)
		},
	}
}

func (ctrl *KhutbaController) loadStore(c *fiber.Ctx, centerID uuid.UUID) (*collection.Store[model.KhutbaModel], error) {
	var rows []model.KhutbaModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("khutba_center_id = ?", centerID).
		Order("khutba_date DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	store := collection.NewStore(dto.KhutbaSchema)
	store.Load(rows)
	return store, nil
}

// 🟢 GET /api/a/khutbas?search=&status=&language=&page=&limit=
func (ctrl *KhutbaController) GetAllKhutbas(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	store, err := ctrl.loadStore(c, centerID)
	if err != nil {
		log.Printf("[ERROR] Gagal mengambil data khutbah: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil khutbah")
	}

	fs := collection.FilterStateFromQuery(dto.KhutbaSchema, c.Query)
	visible := store.Apply(fs)
	stats := store.Stats()

	paging := helper.ResolvePaging(c, 20, 100)
	page := collection.Paginate(visible, paging.Offset, paging.Limit)

	return helper.JsonListEx(c, "Daftar khutbah berhasil diambil",
		dto.ToKhutbaResponseList(page),
		helper.BuildPagination(int64(len(visible)), paging.Page, paging.PerPage),
		fiber.Map{"stats": stats},
	)
}

// 🟢 GET /api/a/khutbas/stats
func (ctrl *KhutbaController) GetKhutbaStats(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}
	store, err := ctrl.loadStore(c, centerID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung statistik khutbah")
	}
	return helper.JsonOK(c, "Statistik khutbah", store.Stats())
}

// 🟢 GET /api/a/khutbas/:id
func (ctrl *KhutbaController) GetKhutbaByID(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	var khutba model.KhutbaModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("khutba_id = ? AND khutba_center_id = ?", c.Params("id"), centerID).
		First(&khutba).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Khutbah tidak ditemukan")
	}
	return helper.JsonOK(c, "Khutbah berhasil ditemukan", dto.ToKhutbaResponse(&khutba))
}

// 🟢 POST /api/a/khutbas
func (ctrl *KhutbaController) CreateKhutba(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.KhutbaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}

	sess := collection.NewFormSession(dto.KhutbaSchema)
	sess.Open(nil)
	sess.Set(func(m *model.KhutbaModel) {
		req.ApplyScalar(m)
		m.KhutbaCenterID = centerID
	})
	for _, t := range req.KhutbaTags {
		sess.AddToList("tags", t)
	}

	store := collection.NewStore(dto.KhutbaSchema)
	disp := collection.NewDispatcher(store, dto.KhutbaSchema, ctrl.remote(centerID), false, nil)

	saved, verrs, err := sess.Submit(c.UserContext(), disp)
	if len(verrs) > 0 {
		return helper.JsonValidationError(c, verrs)
	}
	if err != nil {
		log.Printf("[ERROR] Gagal menyimpan khutbah: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan khutbah")
	}

	return helper.JsonCreated(c, "Khutbah berhasil ditambahkan", dto.ToKhutbaResponse(&saved))
}

// 🟡 PUT /api/a/khutbas/:id
func (ctrl *KhutbaController) UpdateKhutba(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	var existing model.KhutbaModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("khutba_id = ? AND khutba_center_id = ?", c.Params("id"), centerID).
		First(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Khutbah tidak ditemukan")
	}

	var req dto.KhutbaUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}

	sess := collection.NewFormSession(dto.KhutbaSchema)
	sess.Open(&existing)
	sess.Set(func(m *model.KhutbaModel) { req.ApplyScalar(m) })
	if req.KhutbaTags != nil {
		for _, v := range sess.List("tags") {
			sess.RemoveFromList("tags", v)
		}
		for _, v := range *req.KhutbaTags {
			sess.AddToList("tags", v)
		}
	}

	store := collection.NewStore(dto.KhutbaSchema)
	store.Load([]model.KhutbaModel{existing})
	disp := collection.NewDispatcher(store, dto.KhutbaSchema, ctrl.remote(centerID), false, nil)

	saved, verrs, err := sess.Submit(c.UserContext(), disp)
	if len(verrs) > 0 {
		return helper.JsonValidationError(c, verrs)
	}
	if err != nil {
		if errors.Is(err, collection.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Khutbah tidak ditemukan")
		}
		log.Printf("[ERROR] Gagal memperbarui khutbah: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui khutbah")
	}

	return helper.JsonUpdated(c, "Khutbah berhasil diperbarui", dto.ToKhutbaResponse(&saved))
}

// 🔴 DELETE /api/a/khutbas/:id?confirm=true
func (ctrl *KhutbaController) DeleteKhutba(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	var existing model.KhutbaModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("khutba_id = ? AND khutba_center_id = ?", c.Params("id"), centerID).
		First(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Khutbah tidak ditemukan")
	}

	confirmed := strings.EqualFold(c.Query("confirm"), "true")

	store := collection.NewStore(dto.KhutbaSchema)
	store.Load([]model.KhutbaModel{existing})
	disp := collection.NewDispatcher(store, dto.KhutbaSchema, ctrl.remote(centerID), false, nil)

	if err := disp.Delete(c.UserContext(), existing.KhutbaID.String(), confirmed); err != nil {
		log.Printf("[ERROR] Gagal menghapus khutbah: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus khutbah")
	}
	if !confirmed {
		return helper.JsonOK(c, "Penghapusan dibatalkan", nil)
	}
	return helper.JsonDeleted(c, "Khutbah berhasil dihapus", nil)
}

// 🟢 GET /api/public/khutbas — hanya yang Published.
func (ctrl *KhutbaController) GetPublicKhutbas(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.KhutbaModel{}).
		Where("khutba_status = ?", model.KhutbaStatusPublished)

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		q = q.Where("khutba_title ILIKE ? OR khutba_speaker ILIKE ?", like, like)
	}
	if lang := c.Query("language"); lang != "" && lang != collection.All {
		q = q.Where("khutba_language = ?", lang)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung khutbah")
	}

	var rows []model.KhutbaModel
	if err := q.Order("khutba_date DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil khutbah")
	}

	return helper.JsonList(c, "Daftar khutbah", dto.ToKhutbaResponseList(rows),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}
