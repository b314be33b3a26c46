package controller

import (
	"errors"
	"log"
	"strings"

	"annur_backend/internals/collection"
	"annur_backend/internals/features/donations/campaigns/dto"
	"annur_backend/internals/features/donations/campaigns/model"
	helper "annur_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CampaignController struct {
	DB *gorm.DB
}

func NewCampaignController(db *gorm.DB) *CampaignController {
	return &CampaignController{DB: db}
}

func (ctrl *CampaignController) remote(centerID uuid.UUID) collection.GormRemote[model.CampaignModel] {
	return collection.GormRemote[model.CampaignModel]{
		DB:       ctrl.DB,
		Schema:   dto.CampaignSchema,
		IDColumn: "campaign_id",
		Scope: func(db *gorm.DB) *gorm.DB {
			return db.Where("campaign_center_id = ?", centerID)
		},
	}
}

// 🟢 GET /api/a/campaigns?search=&status=&featured=&page=&limit=
// List difilter di SQL; tabel kampanye ikut pola server-side seperti events.
func (ctrl *CampaignController) GetAllCampaigns(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	q := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.CampaignModel{}).
		Where("campaign_center_id = ?", centerID)

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		q = q.Where("campaign_title ILIKE ? OR campaign_description ILIKE ?", like, like)
	}
	if status := c.Query("status"); status != "" && status != collection.All {
		q = q.Where("campaign_status = ?", status)
	}
	if feat := c.Query("featured"); feat != "" {
		q = q.Where("campaign_is_featured = ?", strings.EqualFold(feat, "true"))
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung kampanye")
	}

	var rows []model.CampaignModel
	if err := q.Order("campaign_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] Gagal mengambil kampanye: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kampanye")
	}

	return helper.JsonList(c, "Daftar kampanye berhasil diambil", dto.ToCampaignResponseList(rows),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// 🟢 GET /api/a/campaigns/stats
func (ctrl *CampaignController) GetCampaignStats(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	var stats struct {
		Total       int64 `json:"total"`
		Active      int64 `json:"active"`
		Closed      int64 `json:"closed"`
		TotalRaised int64 `json:"total_raised"`
	}
	base := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.CampaignModel{}).
		Where("campaign_center_id = ?", centerID)

	if err := base.Session(&gorm.Session{}).Count(&stats.Total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung statistik kampanye")
	}
	if err := base.Session(&gorm.Session{}).Where("campaign_status = ?", model.CampaignStatusActive).Count(&stats.Active).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung statistik kampanye")
	}
	if err := base.Session(&gorm.Session{}).Where("campaign_status = ?", model.CampaignStatusClosed).Count(&stats.Closed).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung statistik kampanye")
	}
	if err := base.Session(&gorm.Session{}).
		Select("COALESCE(SUM(campaign_raised_amount), 0)").
		Scan(&stats.TotalRaised).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung statistik kampanye")
	}

	return helper.JsonOK(c, "Statistik kampanye", stats)
}

// 🟢 GET /api/a/campaigns/:id
func (ctrl *CampaignController) GetCampaignByID(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	var campaign model.CampaignModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("campaign_id = ? AND campaign_center_id = ?", c.Params("id"), centerID).
		First(&campaign).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Kampanye tidak ditemukan")
	}
	return helper.JsonOK(c, "Kampanye berhasil ditemukan", dto.ToCampaignResponse(&campaign))
}

// 🟢 POST /api/a/campaigns — validasi lewat form session (goal amount > 0 dll).
func (ctrl *CampaignController) CreateCampaign(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}

	sess := collection.NewFormSession(dto.CampaignSchema)
	sess.Open(nil)
	sess.Set(func(m *model.CampaignModel) {
		req.ApplyScalar(m)
		m.CampaignCenterID = centerID
	})

	store := collection.NewStore(dto.CampaignSchema)
	disp := collection.NewDispatcher(store, dto.CampaignSchema, ctrl.remote(centerID), false, nil)

	saved, verrs, err := sess.Submit(c.UserContext(), disp)
	if len(verrs) > 0 {
		return helper.JsonValidationError(c, verrs)
	}
	if err != nil {
		log.Printf("[ERROR] Gagal menyimpan kampanye: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan kampanye")
	}

	return helper.JsonCreated(c, "Kampanye berhasil ditambahkan", dto.ToCampaignResponse(&saved))
}

// 🟡 PUT /api/a/campaigns/:id
func (ctrl *CampaignController) UpdateCampaign(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	var existing model.CampaignModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("campaign_id = ? AND campaign_center_id = ?", c.Params("id"), centerID).
		First(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Kampanye tidak ditemukan")
	}

	var req dto.CampaignUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}

	sess := collection.NewFormSession(dto.CampaignSchema)
	sess.Open(&existing)
	sess.Set(func(m *model.CampaignModel) { req.ApplyScalar(m) })

	store := collection.NewStore(dto.CampaignSchema)
	store.Load([]model.CampaignModel{existing})
	disp := collection.NewDispatcher(store, dto.CampaignSchema, ctrl.remote(centerID), false, nil)

	saved, verrs, err := sess.Submit(c.UserContext(), disp)
	if len(verrs) > 0 {
		return helper.JsonValidationError(c, verrs)
	}
	if err != nil {
		if errors.Is(err, collection.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kampanye tidak ditemukan")
		}
		log.Printf("[ERROR] Gagal memperbarui kampanye: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui kampanye")
	}

	return helper.JsonUpdated(c, "Kampanye berhasil diperbarui", dto.ToCampaignResponse(&saved))
}

// 🟠 POST /api/a/campaigns/:id/image
func (ctrl *CampaignController) UploadCampaignImage(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	var campaign model.CampaignModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("campaign_id = ? AND campaign_center_id = ?", c.Params("id"), centerID).
		First(&campaign).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Kampanye tidak ditemukan")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File gambar wajib diunggah")
	}

	url, err := helper.SaveUploadedImage("campaigns", fileHeader, 1280)
	if err != nil {
		log.Printf("[ERROR] Gagal menyimpan gambar kampanye: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan gambar kampanye")
	}

	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&campaign).
		Update("campaign_image_url", url).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui gambar kampanye")
	}

	return helper.JsonUpdated(c, "Gambar kampanye berhasil diunggah", fiber.Map{
		"campaign_id":        campaign.CampaignID,
		"campaign_image_url": url,
	})
}

// 🔴 DELETE /api/a/campaigns/:id?confirm=true
func (ctrl *CampaignController) DeleteCampaign(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	var existing model.CampaignModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("campaign_id = ? AND campaign_center_id = ?", c.Params("id"), centerID).
		First(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Kampanye tidak ditemukan")
	}

	confirmed := strings.EqualFold(c.Query("confirm"), "true")

	store := collection.NewStore(dto.CampaignSchema)
	store.Load([]model.CampaignModel{existing})
	disp := collection.NewDispatcher(store, dto.CampaignSchema, ctrl.remote(centerID), false, nil)

	if err := disp.Delete(c.UserContext(), existing.CampaignID.String(), confirmed); err != nil {
		log.Printf("[ERROR] Gagal menghapus kampanye: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kampanye")
	}
	if !confirmed {
		return helper.JsonOK(c, "Penghapusan dibatalkan", nil)
	}
	return helper.JsonDeleted(c, "Kampanye berhasil dihapus", nil)
}

// 🟢 GET /api/public/campaigns — kampanye aktif untuk halaman donasi.
func (ctrl *CampaignController) GetPublicCampaigns(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.CampaignModel{}).
		Where("campaign_status = ?", model.CampaignStatusActive)

	if strings.EqualFold(c.Query("featured"), "true") {
		q = q.Where("campaign_is_featured = TRUE")
	}

	paging := helper.ResolvePaging(c, 12, 50)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung kampanye")
	}

	var rows []model.CampaignModel
	if err := q.Order("campaign_is_featured DESC, campaign_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kampanye")
	}

	return helper.JsonList(c, "Daftar kampanye", dto.ToCampaignResponseList(rows),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// 🟢 GET /api/public/campaigns/:id
func (ctrl *CampaignController) GetPublicCampaignByID(c *fiber.Ctx) error {
	var campaign model.CampaignModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("campaign_id = ?", c.Params("id")).
		First(&campaign).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Kampanye tidak ditemukan")
	}
	return helper.JsonOK(c, "Kampanye berhasil ditemukan", dto.ToCampaignResponse(&campaign))
}
