package service

import (
	"time"

	"annur_backend/internals/configs"
	"annur_backend/internals/features/users/user/model"

	"github.com/golang-jwt/jwt/v4"
)

const accessTokenTTL = 72 * time.Hour

// BuildAccessToken menerbitkan JWT HMAC dengan klaim yang dibaca middleware:
// id, active_center_id, roles.
func BuildAccessToken(u *model.UserModel) (string, error) {
	claims := jwt.MapClaims{
		"id":    u.UserID.String(),
		"email": u.UserEmail,
		"roles": []string{u.UserRole},
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(accessTokenTTL).Unix(),
	}
	if u.UserCenterID != nil {
		claims["active_center_id"] = u.UserCenterID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
