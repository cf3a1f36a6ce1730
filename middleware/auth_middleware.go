package middleware

import (
	authutils "hr-access-backend/lib/utils/auth-utils"
	"hr-access-backend/models"
	apimodels "hr-access-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		if userID, ok := sub.(string); ok {
			return userID
		}
	}
	return ""
}

func GetUserName(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if name, exist := claims["name"]; exist {
		if userName, ok := name.(string); ok {
			return userName
		}
	}
	return ""
}

// GetUserRoles reads the role set from the token claims.
func GetUserRoles(ctx *fiber.Ctx) models.RoleSet {
	set := models.RoleSet{}
	claims := authutils.GetClaims(ctx)
	rawRoles, exist := claims["roles"]
	if !exist {
		return set
	}
	list, ok := rawRoles.([]interface{})
	if !ok {
		return set
	}
	for _, raw := range list {
		if roleName, ok := raw.(string); ok && roleName != "" {
			set[models.UserRole(roleName)] = true
		}
	}
	return set
}

func AdminRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if !GetUserRoles(ctx).IsAdmin() {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operació no permesa"))
		}
		return ctx.Next()
	}
}
