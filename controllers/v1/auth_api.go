package apiv1

import (
	"hr-access-backend/controllers"
	identity "hr-access-backend/lib/identity"
	authutils "hr-access-backend/lib/utils/auth-utils"
	"hr-access-backend/middleware"
	apimodels "hr-access-backend/models/api"
	authapimodels "hr-access-backend/models/api/auth"
	dbmodels "hr-access-backend/models/db"

	"github.com/gofiber/fiber/v2"
)

type authApiController struct {
	controllers.BaseAPIController
}

func InitAuthApiRouters(app *fiber.App) {
	controller := authApiController{}
	app.Route("auth", func(router fiber.Router) {
		router.Post("login", controller.login)
		router.Post("refresh-token", controller.refreshToken)
		router.Use(middleware.AuthorizationRequired()).Get("me", controller.me)
	})
}

// @Summary Autenticació d'usuari
// @Tags Autenticació
// @Description Autenticació d'usuari
// @Param	body				body		authapimodels.LoginData	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.TokenView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/login [post]
func (c *authApiController) login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := identity.Instance.Authenticate(payload.Email, payload.Password)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	view, err := c.issueTokens(rec)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error generant el token d'accés")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Renovar el token d'accés
// @Tags Autenticació
// @Description Renovar el token d'accés
// @Param	body				body		authapimodels.RefreshData	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.TokenView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/refresh-token [post]
func (c *authApiController) refreshToken(ctx *fiber.Ctx) error {
	var payload authapimodels.RefreshData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID, err := authutils.ParseRefreshToken(payload.RefreshToken)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	rec, err := identity.Instance.GetByID(userID)
	if err != nil || rec == nil || !rec.IsActive {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	view, err := c.issueTokens(rec)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error generant el token d'accés")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Usuari autenticat
// @Tags Autenticació
// @Description Dades de l'usuari autenticat
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=authapimodels.UsuariView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/me [get]
func (c *authApiController) me(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	view, err := identity.Instance.GetUsuari(userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error obtenint l'usuari autenticat")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

func (c *authApiController) issueTokens(rec *dbmodels.Usuari) (authapimodels.TokenView, error) {
	roles := rec.RoleSet()
	accessToken, err := authutils.GetToken(rec.ID, rec.GetFullName(), roles)
	if err != nil {
		return authapimodels.TokenView{}, err
	}
	refreshToken, err := authutils.GetRefreshToken(rec.ID, rec.GetFullName())
	if err != nil {
		return authapimodels.TokenView{}, err
	}
	roleNames := make([]string, 0, len(roles))
	for _, role := range roles.List() {
		roleNames = append(roleNames, string(role))
	}
	return authapimodels.TokenView{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		UserID:       rec.ID,
		UserName:     rec.GetFullName(),
		Roles:        roleNames,
	}, nil
}
