package apiv1

import (
	"hr-access-backend/controllers"
	identity "hr-access-backend/lib/identity"
	notifyhandler "hr-access-backend/lib/notify"
	"hr-access-backend/lib/rbac"
	"hr-access-backend/middleware"
	"hr-access-backend/models"
	apimodels "hr-access-backend/models/api"
	authapimodels "hr-access-backend/models/api/auth"

	"github.com/gofiber/fiber/v2"
)

type usersApiController struct {
	controllers.BaseAPIController
}

func InitUsersApiRouters(app *fiber.App) {
	controller := usersApiController{}
	app.Route("users", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.RbacMiddleware())
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", controller.get)
			idRouter.Put("", controller.update)
			idRouter.Put("roles", controller.setRoles)
		})
	})
	app.Route("profile", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.RbacMiddleware())
		router.Get("permissions", controller.permissions)
		router.Get("notifications", controller.notifications)
	})
}

// @Summary Llistar usuaris
// @Tags Usuaris
// @Description Llistar usuaris
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]authapimodels.UsuariView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users [get]
func (c *usersApiController) list(ctx *fiber.Ctx) error {
	list, err := identity.Instance.ListUsuaris()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error obtenint la llista d'usuaris")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Crear un usuari
// @Tags Usuaris
// @Description Crear un usuari
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		authapimodels.UsuariData	true	"request body"
// @Success 201 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users [post]
func (c *usersApiController) create(ctx *fiber.Ctx) error {
	var payload authapimodels.UsuariData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := identity.Instance.CreateUsuari(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error creant l'usuari")
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(id))
}

// @Summary Obtenir un usuari
// @Tags Usuaris
// @Description Obtenir un usuari per ID
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"usuari ID"
// @Success 200 {object} apimodels.Response{data=authapimodels.UsuariView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/{id} [get]
func (c *usersApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := identity.Instance.GetUsuari(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error obtenint l'usuari")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Actualitzar un usuari
// @Tags Usuaris
// @Description Actualitzar un usuari
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"usuari ID"
// @Param	body				body		authapimodels.UsuariData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/{id} [put]
func (c *usersApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload authapimodels.UsuariData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := identity.Instance.UpdateUsuari(id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error actualitzant l'usuari")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Assignar rols a un usuari
// @Tags Usuaris
// @Description Assignar rols a un usuari
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"usuari ID"
// @Param	body				body		authapimodels.RolesData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/{id}/roles [put]
func (c *usersApiController) setRoles(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload authapimodels.RolesData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := identity.Instance.SetRoles(id, payload.Roles); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error assignant els rols")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Permisos de l'usuari autenticat
// @Tags Perfil
// @Description Matriu de permisos per mòdul segons els rols de l'usuari
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/profile/permissions [get]
func (c *usersApiController) permissions(ctx *fiber.Ctx) error {
	merged := map[models.Module][]models.Permission{}
	for _, role := range middleware.GetUserRoles(ctx).List() {
		for module, permissions := range rbac.Instance.GetPermissions(role) {
			for _, permission := range permissions {
				if !containsPermission(merged[module], permission) {
					merged[module] = append(merged[module], permission)
				}
			}
		}
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(merged))
}

// @Summary Notificacions de l'usuari autenticat
// @Tags Perfil
// @Description Notificacions enviades a l'usuari autenticat
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/profile/notifications [get]
func (c *usersApiController) notifications(ctx *fiber.Ctx) error {
	list, err := notifyhandler.Instance.ListByUsuari(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error obtenint les notificacions")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

func containsPermission(list []models.Permission, p models.Permission) bool {
	for _, item := range list {
		if item == p {
			return true
		}
	}
	return false
}
