package controller

import (
	"errors"
	"log"
	"strings"

	"annur_backend/internals/collection"
	"annur_backend/internals/features/contacts/dto"
	"annur_backend/internals/features/contacts/model"
	helper "annur_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactController struct {
	DB *gorm.DB
}

func NewContactController(db *gorm.DB) *ContactController {
	return &ContactController{DB: db}
}

func (ctrl *ContactController) remote(centerID uuid.UUID) collection.GormRemote[model.ContactModel] {
	return collection.GormRemote[model.ContactModel]{
		DB:       ctrl.DB,
		Schema:   dto.ContactSchema,
		IDColumn: "contact_id",
		Scope: func(db *gorm.DB) *gorm.DB {
			return db.Where("contact_center_id = ?", centerID)
		},
	}
}

func (ctrl *ContactController) loadStore(c *fiber.Ctx, centerID uuid.UUID) (*collection.Store[model.ContactModel], error) {
	var rows []model.ContactModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("contact_center_id = ?", centerID).
		Order("contact_name ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	store := collection.NewStore(dto.ContactSchema)
	store.Load(rows)
	return store, nil
}

// 🟢 GET /api/a/contacts?search=&role=&page=&limit=
func (ctrl *ContactController) GetAllContacts(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	store, err := ctrl.loadStore(c, centerID)
	if err != nil {
		log.Printf("[ERROR] Gagal mengambil data kontak: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kontak")
	}

	fs := collection.FilterStateFromQuery(dto.ContactSchema, c.Query)
	visible := store.Apply(fs)
	stats := store.Stats()

	paging := helper.ResolvePaging(c, 20, 100)
	page := collection.Paginate(visible, paging.Offset, paging.Limit)

	return helper.JsonListEx(c, "Daftar kontak berhasil diambil",
		dto.ToContactResponseList(page),
		helper.BuildPagination(int64(len(visible)), paging.Page, paging.PerPage),
		fiber.Map{"stats": stats},
	)
}

// 🟢 GET /api/a/contacts/:id
// 🟢 GET /api/a/contacts/stats
func (ctrl *ContactController) GetContactStats(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}
	store, err := ctrl.loadStore(c, centerID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung statistik kontak")
	}

	stats := fiber.Map{}
	for k, v := range store.Stats() {
		stats[k] = v
	}
	stats["by_role"] = collection.CountBy(store.All(), func(m model.ContactModel) string { return m.ContactRole })

	return helper.JsonOK(c, "Statistik kontak", stats)
}

func (ctrl *ContactController) GetContactByID(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	var contact model.ContactModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("contact_id = ? AND contact_center_id = ?", c.Params("id"), centerID).
		First(&contact).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Kontak tidak ditemukan")
	}
	return helper.JsonOK(c, "Kontak berhasil ditemukan", dto.ToContactResponse(&contact))
}

// 🟢 POST /api/a/contacts
func (ctrl *ContactController) CreateContact(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}

	sess := collection.NewFormSession(dto.ContactSchema)
	sess.Open(nil)
	sess.Set(func(m *model.ContactModel) {
		req.ApplyScalar(m)
		m.ContactCenterID = centerID
	})

	store := collection.NewStore(dto.ContactSchema)
	disp := collection.NewDispatcher(store, dto.ContactSchema, ctrl.remote(centerID), false, nil)

	saved, verrs, err := sess.Submit(c.UserContext(), disp)
	if len(verrs) > 0 {
		return helper.JsonValidationError(c, verrs)
	}
	if err != nil {
		log.Printf("[ERROR] Gagal menyimpan kontak: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan kontak")
	}

	return helper.JsonCreated(c, "Kontak berhasil ditambahkan", dto.ToContactResponse(&saved))
}

// 🟡 PUT /api/a/contacts/:id
func (ctrl *ContactController) UpdateContact(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	var existing model.ContactModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("contact_id = ? AND contact_center_id = ?", c.Params("id"), centerID).
		First(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Kontak tidak ditemukan")
	}

	var req dto.ContactUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}

	sess := collection.NewFormSession(dto.ContactSchema)
	sess.Open(&existing)
	sess.Set(func(m *model.ContactModel) { req.ApplyScalar(m) })

	store := collection.NewStore(dto.ContactSchema)
	store.Load([]model.ContactModel{existing})
	disp := collection.NewDispatcher(store, dto.ContactSchema, ctrl.remote(centerID), false, nil)

	saved, verrs, err := sess.Submit(c.UserContext(), disp)
	if len(verrs) > 0 {
		return helper.JsonValidationError(c, verrs)
	}
	if err != nil {
		if errors.Is(err, collection.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kontak tidak ditemukan")
		}
		log.Printf("[ERROR] Gagal memperbarui kontak: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui kontak")
	}

	return helper.JsonUpdated(c, "Kontak berhasil diperbarui", dto.ToContactResponse(&saved))
}

// 🔴 DELETE /api/a/contacts/:id?confirm=true
func (ctrl *ContactController) DeleteContact(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	var existing model.ContactModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("contact_id = ? AND contact_center_id = ?", c.Params("id"), centerID).
		First(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Kontak tidak ditemukan")
	}

	confirmed := strings.EqualFold(c.Query("confirm"), "true")

	store := collection.NewStore(dto.ContactSchema)
	store.Load([]model.ContactModel{existing})
	disp := collection.NewDispatcher(store, dto.ContactSchema, ctrl.remote(centerID), false, nil)

	if err := disp.Delete(c.UserContext(), existing.ContactID.String(), confirmed); err != nil {
		log.Printf("[ERROR] Gagal menghapus kontak: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kontak")
	}
	if !confirmed {
		return helper.JsonOK(c, "Penghapusan dibatalkan", nil)
	}
	return helper.JsonDeleted(c, "Kontak berhasil dihapus", nil)
}

// 🟢 GET /api/public/contacts — entri publik saja, untuk halaman kontak situs.
func (ctrl *ContactController) GetPublicContacts(c *fiber.Ctx) error {
	var rows []model.ContactModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("contact_is_public = TRUE").
		Order("contact_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kontak")
	}
	return helper.JsonOK(c, "Daftar kontak", dto.ToContactResponseList(rows))
}
