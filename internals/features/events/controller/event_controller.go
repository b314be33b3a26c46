package controller

import (
	"errors"
	"log"
	"strings"

	"annur_backend/internals/features/events/dto"
	"annur_backend/internals/features/events/model"
	helper "annur_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Halaman event difilter di sisi server (tabel bisa besar: arsip kajian
// bertahun-tahun), beda dengan halaman konten yang load penuh ke memori.
type EventController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db, Validate: validator.New()}
}

var eventSortColumns = map[string]string{
	"date":       "event_date",
	"title":      "event_title",
	"created_at": "event_created_at",
}

func (ctrl *EventController) scoped(c *fiber.Ctx, centerID uuid.UUID) *gorm.DB {
	return ctrl.DB.WithContext(c.UserContext()).
		Model(&model.EventModel{}).
		Where("event_center_id = ?", centerID)
}

// 🟢 GET /api/a/events?search=&category=&is_published=&sort_by=&order=&page=&limit=
func (ctrl *EventController) GetAllEvents(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	q := ctrl.scoped(c, centerID)

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		q = q.Where("event_title ILIKE ? OR event_description ILIKE ? OR event_location ILIKE ?", like, like, like)
	}
	if cat := c.Query("category"); cat != "" && cat != "ALL" {
		q = q.Where("event_category = ?", cat)
	}
	if pub := c.Query("is_published"); pub != "" {
		q = q.Where("event_is_published = ?", strings.EqualFold(pub, "true"))
	}

	sortCol, ok := eventSortColumns[c.Query("sort_by", "date")]
	if !ok {
		sortCol = "event_date"
	}
	order := "DESC"
	if strings.EqualFold(c.Query("order"), "asc") {
		order = "ASC"
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] Gagal menghitung event: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung event")
	}

	var rows []model.EventModel
	if err := q.Order(sortCol + " " + order).
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] Gagal mengambil event: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil event")
	}

	return helper.JsonList(c, "Daftar event berhasil diambil", dto.ToEventResponseList(rows),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// 🟢 GET /api/a/events/stats — agregasi SQL, bukan in-memory.
func (ctrl *EventController) GetEventStats(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	var stats struct {
		Total     int64 `json:"total"`
		Published int64 `json:"published"`
		Upcoming  int64 `json:"upcoming"`
	}
	base := ctrl.scoped(c, centerID)
	if err := base.Session(&gorm.Session{}).Count(&stats.Total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung statistik event")
	}
	if err := base.Session(&gorm.Session{}).Where("event_is_published = TRUE").Count(&stats.Published).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung statistik event")
	}
	if err := base.Session(&gorm.Session{}).Where("event_date >= NOW()").Count(&stats.Upcoming).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung statistik event")
	}
	return helper.JsonOK(c, "Statistik event", stats)
}

// 🟢 GET /api/a/events/:id
func (ctrl *EventController) GetEventByID(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	var event model.EventModel
	if err := ctrl.scoped(c, centerID).
		Where("event_id = ?", c.Params("id")).
		First(&event).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Event tidak ditemukan")
	}
	return helper.JsonOK(c, "Event berhasil ditemukan", dto.ToEventResponse(&event))
}

// 🟢 POST /api/a/events
func (ctrl *EventController) CreateEvent(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrors(err))
	}
	if _, ok := dto.ParseDate(req.EventDate); !ok {
		return helper.JsonValidationError(c, map[string][]string{
			"event_date": {"Invalid date format"},
		})
	}

	event := req.ToModel(centerID)

	base := helper.Slugify(req.EventTitle, 100)
	slug, err := helper.EnsureUniqueSlug(ctrl.DB, base, "events", "event_slug", func(db *gorm.DB) *gorm.DB {
		return db.Where("event_center_id = ?", centerID)
	})
	if err != nil {
		log.Printf("[ERROR] Gagal membuat slug event: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug event")
	}
	event.EventSlug = slug

	if err := ctrl.DB.WithContext(c.UserContext()).Create(event).Error; err != nil {
		log.Printf("[ERROR] Gagal menyimpan event: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan event")
	}

	return helper.JsonCreated(c, "Event berhasil ditambahkan", dto.ToEventResponse(event))
}

// 🟡 PUT /api/a/events/:id
func (ctrl *EventController) UpdateEvent(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	var event model.EventModel
	if err := ctrl.scoped(c, centerID).
		Where("event_id = ?", c.Params("id")).
		First(&event).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Event tidak ditemukan")
	}

	var req dto.EventUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrors(err))
	}

	oldTitle := event.EventTitle
	req.Apply(&event)

	// judul berubah → regenerate slug
	if event.EventTitle != oldTitle {
		base := helper.Slugify(event.EventTitle, 100)
		slug, err := helper.EnsureUniqueSlug(ctrl.DB, base, "events", "event_slug", func(db *gorm.DB) *gorm.DB {
			return db.Where("event_center_id = ? AND event_id <> ?", centerID, event.EventID)
		})
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug event")
		}
		event.EventSlug = slug
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Save(&event).Error; err != nil {
		log.Printf("[ERROR] Gagal memperbarui event: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui event")
	}

	return helper.JsonUpdated(c, "Event berhasil diperbarui", dto.ToEventResponse(&event))
}

// 🟠 POST /api/a/events/:id/image — multipart "image", dikonversi webp.
func (ctrl *EventController) UploadEventImage(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	var event model.EventModel
	if err := ctrl.scoped(c, centerID).
		Where("event_id = ?", c.Params("id")).
		First(&event).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Event tidak ditemukan")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File gambar wajib diunggah")
	}

	url, err := helper.SaveUploadedImage("events", fileHeader, 1280)
	if err != nil {
		log.Printf("[ERROR] Gagal menyimpan gambar event: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan gambar event")
	}

	event.EventImageURL = url
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&event).
		Update("event_image_url", url).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui gambar event")
	}

	return helper.JsonUpdated(c, "Gambar event berhasil diunggah", fiber.Map{
		"event_id":        event.EventID,
		"event_image_url": url,
	})
}

// 🔴 DELETE /api/a/events/:id?confirm=true&hard=true — default soft delete.
func (ctrl *EventController) DeleteEvent(c *fiber.Ctx) error {
	if !strings.EqualFold(c.Query("confirm"), "true") {
		return helper.JsonOK(c, "Penghapusan dibatalkan", nil)
	}

	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	var event model.EventModel
	if err := ctrl.scoped(c, centerID).
		Where("event_id = ?", c.Params("id")).
		First(&event).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Event tidak ditemukan")
	}

	db := ctrl.DB.WithContext(c.UserContext())
	if strings.EqualFold(c.Query("hard"), "true") {
		db = db.Unscoped()
	}
	if err := db.Delete(&event).Error; err != nil {
		log.Printf("[ERROR] Gagal menghapus event: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus event")
	}

	return helper.JsonDeleted(c, "Event berhasil dihapus", nil)
}

// 🟢 GET /api/public/events — hanya yang published, terdekat dulu.
func (ctrl *EventController) GetPublicEvents(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.EventModel{}).
		Where("event_is_published = TRUE")

	if cat := c.Query("category"); cat != "" && cat != "ALL" {
		q = q.Where("event_category = ?", cat)
	}
	if strings.EqualFold(c.Query("upcoming"), "true") {
		q = q.Where("event_date >= NOW()")
	}

	paging := helper.ResolvePaging(c, 12, 50)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung event")
	}

	var rows []model.EventModel
	if err := q.Order("event_date ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil event")
	}

	return helper.JsonList(c, "Daftar event", dto.ToEventResponseList(rows),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// 🟢 GET /api/public/events/:slug
func (ctrl *EventController) GetPublicEventBySlug(c *fiber.Ctx) error {
	var event model.EventModel
	err := ctrl.DB.WithContext(c.UserContext()).
		Where("event_slug = ? AND event_is_published = TRUE", c.Params("slug")).
		First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil event")
	}
	return helper.JsonOK(c, "Event berhasil ditemukan", dto.ToEventResponse(&event))
}
