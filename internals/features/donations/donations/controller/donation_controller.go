package controller

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"annur_backend/internals/configs"
	campaignModel "annur_backend/internals/features/donations/campaigns/model"
	"annur_backend/internals/features/donations/donations/dto"
	"annur_backend/internals/features/donations/donations/model"
	"annur_backend/internals/features/donations/donations/service"
	helper "annur_backend/internals/helpers"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DonationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewDonationController(db *gorm.DB) *DonationController {
	return &DonationController{DB: db, Validate: validator.New()}
}

func newOrderID() string {
	return fmt.Sprintf("DN-%d-%s", time.Now().Unix(), uuid.New().String()[:8])
}

// 🟢 POST /api/public/payments/create-order
// Simpan donasi pending lalu minta Snap token; tanpa server key → demo mode,
// frontend menampilkan instruksi transfer manual.
func (ctrl *DonationController) CreateOrder(c *fiber.Ctx) error {
	var req dto.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrors(err))
	}

	donation := model.DonationModel{
		DonationCenterID:   req.CenterID,
		DonationCampaignID: req.CampaignID,
		DonationOrderID:    newOrderID(),
		DonationDonorName:  req.DonorName,
		DonationDonorEmail: req.DonorEmail,
		DonationMessage:    req.Message,
		DonationAmountIDR:  req.Amount,
		DonationType:       req.Type,
		DonationStatus:     model.DonationStatusPending,
	}
	if donation.DonationType == "" {
		donation.DonationType = "infaq"
	}
	if req.CampaignID != nil {
		var campaign campaignModel.CampaignModel
		if err := ctrl.DB.WithContext(c.UserContext()).
			Where("campaign_id = ? AND campaign_status = ?", req.CampaignID, campaignModel.CampaignStatusActive).
			First(&campaign).Error; err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "Kampanye tidak ditemukan atau sudah ditutup")
		}
		donation.DonationType = "campaign"
	}

	// Demo mode: tidak ada gateway key, order tetap dicatat
	if configs.MidtransServerKey == "" {
		if err := ctrl.DB.WithContext(c.UserContext()).Create(&donation).Error; err != nil {
			log.Printf("[ERROR] Gagal menyimpan donasi: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan donasi")
		}
		return helper.JsonCreated(c, "Order donasi dibuat (demo mode)", dto.OrderResponse{
			Demo:     true,
			OrderID:  donation.DonationOrderID,
			Amount:   donation.DonationAmountIDR,
			Currency: "IDR",
		})
	}

	token, redirectURL, err := service.GenerateSnapToken(donation)
	if err != nil {
		log.Printf("[ERROR] Gagal membuat transaksi Midtrans: %v", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal membuat transaksi pembayaran")
	}
	donation.DonationPaymentToken = token

	if err := ctrl.DB.WithContext(c.UserContext()).Create(&donation).Error; err != nil {
		log.Printf("[ERROR] Gagal menyimpan donasi: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan donasi")
	}

	return helper.JsonCreated(c, "Order donasi dibuat", dto.OrderResponse{
		Demo:        false,
		Key:         configs.MidtransClientKey,
		OrderID:     donation.DonationOrderID,
		Amount:      donation.DonationAmountIDR,
		Currency:    "IDR",
		Token:       token,
		RedirectURL: redirectURL,
	})
}

// 🟢 POST /api/public/payments/verify
// Callback dari frontend setelah Snap selesai; payload sama dengan webhook.
func (ctrl *DonationController) VerifyPayment(c *fiber.Ctx) error {
	var notif dto.MidtransNotification
	if err := c.BodyParser(&notif); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	if !service.VerifySignature(notif.OrderID, notif.StatusCode, notif.GrossAmount,
		configs.MidtransServerKey, notif.SignatureKey) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Signature tidak valid")
	}

	donation, err := ctrl.applyNotification(c, notif)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Donasi tidak ditemukan")
	}

	return helper.JsonOK(c, "Status pembayaran diperbarui", dto.ToDonationResponse(donation))
}

// 🟢 POST /api/public/payments/webhook — notifikasi server-to-server Midtrans.
// Selalu balas 200 untuk order yang tak dikenal supaya Midtrans berhenti retry.
func (ctrl *DonationController) MidtransWebhook(c *fiber.Ctx) error {
	var notif dto.MidtransNotification
	if err := c.BodyParser(&notif); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	if !service.VerifySignature(notif.OrderID, notif.StatusCode, notif.GrossAmount,
		configs.MidtransServerKey, notif.SignatureKey) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Signature tidak valid")
	}

	ctrl.logGatewayEvent(c, notif, "received", "")

	donation, err := ctrl.applyNotification(c, notif)
	if err != nil {
		ctrl.logGatewayEvent(c, notif, "failed", fmt.Sprintf("donation not found for order_id=%s", notif.OrderID))
		return c.JSON(fiber.Map{"status": "ignored", "reason": "donation not found"})
	}

	ctrl.logGatewayEvent(c, notif, "processed", "")

	return c.JSON(fiber.Map{
		"status":             "ok",
		"donation_id":        donation.DonationID,
		"donation_status":    donation.DonationStatus,
		"transaction_status": notif.TransactionStatus,
	})
}

// applyNotification memetakan status transaksi gateway → status donasi dan
// menaikkan raised amount kampanye saat transisi pending → paid.
func (ctrl *DonationController) applyNotification(c *fiber.Ctx, notif dto.MidtransNotification) (*model.DonationModel, error) {
	var donation model.DonationModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("donation_order_id = ?", notif.OrderID).
		First(&donation).Error; err != nil {
		return nil, err
	}

	wasPaid := donation.DonationStatus == model.DonationStatusPaid
	now := time.Now()

	switch notif.TransactionStatus {
	case "settlement", "capture":
		if notif.FraudStatus == "challenge" || notif.FraudStatus == "deny" {
			break // biarkan pending sampai fraud review selesai
		}
		donation.DonationStatus = model.DonationStatusPaid
		if donation.DonationPaidAt == nil {
			donation.DonationPaidAt = &now
		}
	case "expire":
		donation.DonationStatus = model.DonationStatusExpired
	case "cancel", "deny":
		donation.DonationStatus = model.DonationStatusCanceled
	}

	if notif.TransactionID != "" {
		donation.DonationGatewayRef = notif.TransactionID
	}
	if amt, err := strconv.ParseFloat(notif.GrossAmount, 64); err == nil && amt > 0 {
		donation.DonationAmountIDR = int64(amt + 0.5)
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Save(&donation).Error; err != nil {
		return nil, err
	}

	// transisi ke paid pertama kali → akumulasi ke kampanye
	if !wasPaid && donation.DonationStatus == model.DonationStatusPaid && donation.DonationCampaignID != nil {
		if err := ctrl.DB.WithContext(c.UserContext()).
			Model(&campaignModel.CampaignModel{}).
			Where("campaign_id = ?", donation.DonationCampaignID).
			UpdateColumn("campaign_raised_amount",
				gorm.Expr("campaign_raised_amount + ?", donation.DonationAmountIDR)).Error; err != nil {
			log.Printf("[WARN] Gagal menaikkan raised amount kampanye: %v", err)
		}
	}

	return &donation, nil
}

func (ctrl *DonationController) logGatewayEvent(c *fiber.Ctx, notif dto.MidtransNotification, status, note string) {
	headers := map[string]string{}
	for k, v := range c.GetReqHeaders() {
		headers[k] = strings.Join(v, ",")
	}
	headersJSON, _ := sonic.Marshal(headers)
	payloadJSON, _ := sonic.Marshal(notif)

	event := model.GatewayEventModel{
		GatewayEventOrderID:   notif.OrderID,
		GatewayEventTxStatus:  notif.TransactionStatus,
		GatewayEventSignature: notif.SignatureKey,
		GatewayEventHeaders:   headersJSON,
		GatewayEventPayload:   payloadJSON,
		GatewayEventStatus:    status,
		GatewayEventNote:      note,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&event).Error; err != nil {
		log.Printf("[WARN] Gagal mencatat gateway event: %v", err)
	}
}

// 🟢 GET /api/a/donations?status=&type=&page=&limit=
func (ctrl *DonationController) GetAllDonations(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	q := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.DonationModel{}).
		Where("donation_center_id = ?", centerID)

	if status := c.Query("status"); status != "" && status != "ALL" {
		q = q.Where("donation_status = ?", status)
	}
	if typ := c.Query("type"); typ != "" && typ != "ALL" {
		q = q.Where("donation_type = ?", typ)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung donasi")
	}

	var rows []model.DonationModel
	if err := q.Order("donation_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil donasi")
	}

	return helper.JsonList(c, "Daftar donasi berhasil diambil", dto.ToDonationResponseList(rows),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// 🟢 GET /api/a/donations/stats
func (ctrl *DonationController) GetDonationStats(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	var stats struct {
		Total     int64 `json:"total"`
		Paid      int64 `json:"paid"`
		Pending   int64 `json:"pending"`
		TotalPaid int64 `json:"total_paid_idr"`
	}
	base := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.DonationModel{}).
		Where("donation_center_id = ?", centerID)

	if err := base.Session(&gorm.Session{}).Count(&stats.Total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung statistik donasi")
	}
	if err := base.Session(&gorm.Session{}).Where("donation_status = ?", model.DonationStatusPaid).Count(&stats.Paid).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung statistik donasi")
	}
	if err := base.Session(&gorm.Session{}).Where("donation_status = ?", model.DonationStatusPending).Count(&stats.Pending).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung statistik donasi")
	}
	if err := base.Session(&gorm.Session{}).
		Where("donation_status = ?", model.DonationStatusPaid).
		Select("COALESCE(SUM(donation_amount_idr), 0)").
		Scan(&stats.TotalPaid).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung statistik donasi")
	}

	return helper.JsonOK(c, "Statistik donasi", stats)
}

// 🟢 GET /api/a/donations/:id
func (ctrl *DonationController) GetDonationByID(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	var donation model.DonationModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("donation_id = ? AND donation_center_id = ?", c.Params("id"), centerID).
		First(&donation).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Donasi tidak ditemukan")
	}
	return helper.JsonOK(c, "Donasi berhasil ditemukan", dto.ToDonationResponse(&donation))
}
