package controller

import (
	"errors"
	"log"
	"time"

	"annur_backend/internals/configs"
	"annur_backend/internals/constants"
	"annur_backend/internals/features/users/auth/dto"
	"annur_backend/internals/features/users/auth/service"
	"annur_backend/internals/features/users/user/model"
	helper "annur_backend/internals/helpers"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validate: validator.New()}
}

func setAccessCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  time.Now().Add(72 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
}

// 🟢 POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrors(err))
	}

	var user model.UserModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("user_email = ?", req.Email).
		First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}
	if user.UserPassword == "" ||
		bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.Password)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	token, err := service.BuildAccessToken(&user)
	if err != nil {
		log.Printf("[ERROR] Gagal menerbitkan token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menerbitkan token")
	}
	setAccessCookie(c, token)

	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		AccessToken: token,
		User:        dto.ToUserResponse(&user),
	})
}

// 🟢 POST /api/auth/login-google — tukar Google ID token dengan access token.
func (ctrl *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var req dto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrors(err))
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google ID Token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to decode ID Token")
	}
	email, name, googleID := claimSet.Email, claimSet.Name, claimSet.Sub

	var user model.UserModel
	err = ctrl.DB.WithContext(c.UserContext()).
		Where("user_email = ?", email).
		First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = model.UserModel{
			UserName:      name,
			UserEmail:     email,
			UserRole:      constants.RoleUser,
			UserGoogleSub: &googleID,
			UserIsActive:  true,
		}
		if err := ctrl.DB.WithContext(c.UserContext()).Create(&user).Error; err != nil {
			log.Printf("[ERROR] Gagal membuat user Google: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat akun")
		}
	case err != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil akun")
	default:
		if user.UserGoogleSub == nil {
			if err := ctrl.DB.WithContext(c.UserContext()).
				Model(&user).
				Update("user_google_sub", googleID).Error; err != nil {
				log.Printf("[WARN] Gagal menautkan akun Google: %v", err)
			}
		}
		if !user.UserIsActive {
			return helper.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan")
		}
	}

	token, err := service.BuildAccessToken(&user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menerbitkan token")
	}
	setAccessCookie(c, token)

	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		AccessToken: token,
		User:        dto.ToUserResponse(&user),
	})
}

// 🟢 POST /api/auth/logout
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Path:     "/",
	})
	return helper.JsonOK(c, "Logout berhasil", nil)
}

// 🟢 GET /api/auth/me
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user model.UserModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("user_id = ?", userID).
		First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	return helper.JsonOK(c, "Profil user", dto.ToUserResponse(&user))
}

// 🟢 POST /api/a/users — admin center membuat akun staff/admin untuk centernya.
func (ctrl *AuthController) RegisterUser(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.RegisterUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrors(err))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	role := req.UserRole
	if role == "" {
		role = constants.RoleStaff
	}

	user := model.UserModel{
		UserCenterID: &centerID,
		UserName:     req.UserName,
		UserEmail:    req.UserEmail,
		UserPassword: string(hash),
		UserRole:     role,
		UserIsActive: true,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&user).Error; err != nil {
		log.Printf("[ERROR] Gagal membuat user: %v", err)
		return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
	}

	return helper.JsonCreated(c, "User berhasil dibuat", dto.ToUserResponse(&user))
}
