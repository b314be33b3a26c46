package controller

import (
	"log"

	"annur_backend/internals/features/centers/dto"
	"annur_backend/internals/features/centers/model"
	helper "annur_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CenterController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCenterController(db *gorm.DB) *CenterController {
	return &CenterController{DB: db, Validate: validator.New()}
}

// 🟢 GET /api/public/centers/:slug — profil publik center.
func (ctrl *CenterController) GetCenterBySlug(c *fiber.Ctx) error {
	var center model.CenterModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("center_slug = ?", c.Params("slug")).
		First(&center).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Center tidak ditemukan")
	}
	return helper.JsonOK(c, "Center berhasil ditemukan", dto.ToCenterResponse(&center))
}

// 🟢 GET /api/a/centers/me — profil center milik admin.
func (ctrl *CenterController) GetMyCenter(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	var center model.CenterModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("center_id = ?", centerID).
		First(&center).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Center tidak ditemukan")
	}
	return helper.JsonOK(c, "Profil center", dto.ToCenterResponse(&center))
}

// 🟡 PUT /api/a/centers/me
func (ctrl *CenterController) UpdateMyCenter(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	var center model.CenterModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("center_id = ?", centerID).
		First(&center).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Center tidak ditemukan")
	}

	var req dto.CenterUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrors(err))
	}

	oldName := center.CenterName
	req.Apply(&center)

	if center.CenterName != oldName {
		base := helper.Slugify(center.CenterName, 100)
		slug, err := helper.EnsureUniqueSlug(ctrl.DB, base, "centers", "center_slug", func(db *gorm.DB) *gorm.DB {
			return db.Where("center_id <> ?", center.CenterID)
		})
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug center")
		}
		center.CenterSlug = slug
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Save(&center).Error; err != nil {
		log.Printf("[ERROR] Gagal memperbarui center: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui center")
	}

	return helper.JsonUpdated(c, "Center berhasil diperbarui", dto.ToCenterResponse(&center))
}

// 🟠 POST /api/a/centers/me/logo
func (ctrl *CenterController) UploadCenterLogo(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	var center model.CenterModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("center_id = ?", centerID).
		First(&center).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Center tidak ditemukan")
	}

	fileHeader, err := c.FormFile("logo")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File logo wajib diunggah")
	}

	url, err := helper.SaveUploadedImage("centers", fileHeader, 512)
	if err != nil {
		log.Printf("[ERROR] Gagal menyimpan logo center: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan logo center")
	}

	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&center).
		Update("center_logo_url", url).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui logo center")
	}

	return helper.JsonUpdated(c, "Logo center berhasil diunggah", fiber.Map{
		"center_id":       center.CenterID,
		"center_logo_url": url,
	})
}

// 🟢 POST /api/owner/centers — owner mendaftarkan center baru.
func (ctrl *CenterController) CreateCenter(c *fiber.Ctx) error {
	var req dto.CenterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrors(err))
	}

	base := helper.Slugify(req.CenterName, 100)
	slug, err := helper.EnsureUniqueSlug(ctrl.DB, base, "centers", "center_slug", nil)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug center")
	}

	center := model.CenterModel{
		CenterName:        req.CenterName,
		CenterSlug:        slug,
		CenterDescription: req.CenterDescription,
		CenterAddress:     req.CenterAddress,
		CenterCity:        req.CenterCity,
		CenterPhone:       req.CenterPhone,
		CenterEmail:       req.CenterEmail,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&center).Error; err != nil {
		log.Printf("[ERROR] Gagal membuat center: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat center")
	}

	return helper.JsonCreated(c, "Center berhasil dibuat", dto.ToCenterResponse(&center))
}

// 🟢 GET /api/owner/centers
func (ctrl *CenterController) GetAllCenters(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.CenterModel{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung center")
	}

	var rows []model.CenterModel
	if err := q.Order("center_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil center")
	}

	return helper.JsonList(c, "Daftar center", dto.ToCenterResponseList(rows),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}
