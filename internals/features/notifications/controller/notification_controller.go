package controller

import (
	"errors"
	"log"
	"strings"

	"annur_backend/internals/collection"
	"annur_backend/internals/features/notifications/dto"
	"annur_backend/internals/features/notifications/model"
	helper "annur_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

func (ctrl *NotificationController) remote(centerID uuid.UUID) collection.GormRemote[model.NotificationModel] {
	return collection.GormRemote[model.NotificationModel]{
		DB:       ctrl.DB,
		Schema:   dto.NotificationSchema,
		IDColumn: "notification_id",
		Scope: func(db *gorm.DB) *gorm.DB {
			return db.Where("notification_center_id = ?", centerID)
		},
	}
}

func (ctrl *NotificationController) loadStore(c *fiber.Ctx, centerID uuid.UUID) (*collection.Store[model.NotificationModel], error) {
	var rows []model.NotificationModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("notification_center_id = ?", centerID).
		Order("notification_created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	store := collection.NewStore(dto.NotificationSchema)
	store.Load(rows)
	return store, nil
}

// 🟢 GET /api/a/notifications?search=&type=&priority=&page=&limit=
func (ctrl *NotificationController) GetAllNotifications(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	store, err := ctrl.loadStore(c, centerID)
	if err != nil {
		log.Printf("[ERROR] Gagal mengambil notifikasi: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil notifikasi")
	}

	fs := collection.FilterStateFromQuery(dto.NotificationSchema, c.Query)
	visible := store.Apply(fs)
	stats := store.Stats()

	paging := helper.ResolvePaging(c, 20, 100)
	page := collection.Paginate(visible, paging.Offset, paging.Limit)

	return helper.JsonListEx(c, "Daftar notifikasi berhasil diambil",
		dto.ToNotificationResponseList(page),
		helper.BuildPagination(int64(len(visible)), paging.Page, paging.PerPage),
		fiber.Map{"stats": stats},
	)
}

// 🟢 GET /api/a/notifications/stats
func (ctrl *NotificationController) GetNotificationStats(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}
	store, err := ctrl.loadStore(c, centerID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung statistik notifikasi")
	}
	return helper.JsonOK(c, "Statistik notifikasi", store.Stats())
}

// 🟢 GET /api/a/notifications/:id
func (ctrl *NotificationController) GetNotificationByID(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	var notif model.NotificationModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("notification_id = ? AND notification_center_id = ?", c.Params("id"), centerID).
		First(&notif).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Notifikasi tidak ditemukan")
	}
	return helper.JsonOK(c, "Notifikasi berhasil ditemukan", dto.ToNotificationResponse(&notif))
}

// 🟢 POST /api/a/notifications
func (ctrl *NotificationController) CreateNotification(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.NotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}

	sess := collection.NewFormSession(dto.NotificationSchema)
	sess.Open(nil)
	sess.Set(func(m *model.NotificationModel) {
		req.ApplyScalar(m)
		m.NotificationCenterID = centerID
	})
	for _, t := range req.NotificationTags {
		sess.AddToList("tags", t)
	}

	store := collection.NewStore(dto.NotificationSchema)
	disp := collection.NewDispatcher(store, dto.NotificationSchema, ctrl.remote(centerID), false, nil)

	saved, verrs, err := sess.Submit(c.UserContext(), disp)
	if len(verrs) > 0 {
		return helper.JsonValidationError(c, verrs)
	}
	if err != nil {
		log.Printf("[ERROR] Gagal menyimpan notifikasi: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan notifikasi")
	}

	return helper.JsonCreated(c, "Notifikasi berhasil ditambahkan", dto.ToNotificationResponse(&saved))
}

// 🟡 PUT /api/a/notifications/:id
func (ctrl *NotificationController) UpdateNotification(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	var existing model.NotificationModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("notification_id = ? AND notification_center_id = ?", c.Params("id"), centerID).
		First(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Notifikasi tidak ditemukan")
	}

	var req dto.NotificationUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}

	sess := collection.NewFormSession(dto.NotificationSchema)
	sess.Open(&existing)
	sess.Set(func(m *model.NotificationModel) { req.ApplyScalar(m) })
	if req.NotificationTags != nil {
		for _, v := range sess.List("tags") {
			sess.RemoveFromList("tags", v)
		}
		for _, v := range *req.NotificationTags {
			sess.AddToList("tags", v)
		}
	}

	store := collection.NewStore(dto.NotificationSchema)
	store.Load([]model.NotificationModel{existing})
	disp := collection.NewDispatcher(store, dto.NotificationSchema, ctrl.remote(centerID), false, nil)

	saved, verrs, err := sess.Submit(c.UserContext(), disp)
	if len(verrs) > 0 {
		return helper.JsonValidationError(c, verrs)
	}
	if err != nil {
		if errors.Is(err, collection.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Notifikasi tidak ditemukan")
		}
		log.Printf("[ERROR] Gagal memperbarui notifikasi: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui notifikasi")
	}

	return helper.JsonUpdated(c, "Notifikasi berhasil diperbarui", dto.ToNotificationResponse(&saved))
}

// 🔴 DELETE /api/a/notifications/:id?confirm=true
func (ctrl *NotificationController) DeleteNotification(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	var existing model.NotificationModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("notification_id = ? AND notification_center_id = ?", c.Params("id"), centerID).
		First(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Notifikasi tidak ditemukan")
	}

	confirmed := strings.EqualFold(c.Query("confirm"), "true")

	store := collection.NewStore(dto.NotificationSchema)
	store.Load([]model.NotificationModel{existing})
	disp := collection.NewDispatcher(store, dto.NotificationSchema, ctrl.remote(centerID), false, nil)

	if err := disp.Delete(c.UserContext(), existing.NotificationID.String(), confirmed); err != nil {
		log.Printf("[ERROR] Gagal menghapus notifikasi: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus notifikasi")
	}
	if !confirmed {
		return helper.JsonOK(c, "Penghapusan dibatalkan", nil)
	}
	return helper.JsonDeleted(c, "Notifikasi berhasil dihapus", nil)
}

// 🟢 GET /api/public/notifications — pengumuman publik situs.
func (ctrl *NotificationController) GetPublicNotifications(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.NotificationModel{}).
		Where("notification_is_public = TRUE")

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung notifikasi")
	}

	var rows []model.NotificationModel
	if err := q.Order("notification_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil notifikasi")
	}

	return helper.JsonList(c, "Daftar notifikasi", dto.ToNotificationResponseList(rows),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}
