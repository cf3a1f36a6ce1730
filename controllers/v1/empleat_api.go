package apiv1

import (
	"hr-access-backend/controllers"
	empleathandler "hr-access-backend/lib/empleat"
	empleatstore "hr-access-backend/lib/empleat/store"
	"hr-access-backend/middleware"
	"hr-access-backend/models"
	apimodels "hr-access-backend/models/api"
	empleatapimodels "hr-access-backend/models/api/empleat"

	"github.com/gofiber/fiber/v2"
)

type empleatApiController struct {
	controllers.BaseAPIController
}

func InitEmpleatApiRouters(app *fiber.App) {
	controller := empleatApiController{}
	app.Route("empleat", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.RbacMiddleware())
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", controller.get)
			idRouter.Put("", controller.update)
			idRouter.Put("estat", controller.changeEstat)
			idRouter.Post("acces", controller.grantAcces)
			idRouter.Delete("acces/:accesId", controller.revokeAcces)
		})
	})
}

// @Summary Llistar empleats
// @Tags Empleats
// @Description Llistar empleats amb filtres opcionals
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	departament_id	query		string	false	"filtre per departament"
// @Param 	estat			query		string	false	"filtre per estat"
// @Param 	search			query		string	false	"cerca per nom o codi"
// @Success 200 {object} apimodels.Response{data=[]empleatapimodels.EmpleatView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/empleat [get]
func (c *empleatApiController) list(ctx *fiber.Ctx) error {
	filter := empleatstore.ListFilter{}
	if departamentID := ctx.Query("departament_id"); departamentID != "" {
		filter.DepartamentID = &departamentID
	}
	if estatParam := ctx.Query("estat"); estatParam != "" {
		estat := models.EmpleatEstat(estatParam)
		if !estat.IsValid() {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("estat d'empleat desconegut"))
		}
		filter.Estat = &estat
	}
	if search := ctx.Query("search"); search != "" {
		filter.Search = &search
	}
	list, err := empleathandler.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error obtenint la llista d'empleats")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Donar d'alta un empleat
// @Tags Empleats
// @Description Donar d'alta un empleat i obrir la checklist d'incorporació
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		empleatapimodels.EmpleatData	true	"request body"
// @Success 201 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/empleat [post]
func (c *empleatApiController) create(ctx *fiber.Ctx) error {
	var payload empleatapimodels.EmpleatData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := empleathandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error creant l'empleat")
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(id))
}

// @Summary Obtenir un empleat
// @Tags Empleats
// @Description Obtenir un empleat amb els seus accessos actius
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"empleat ID"
// @Success 200 {object} apimodels.Response{data=empleatapimodels.EmpleatView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/empleat/{id} [get]
func (c *empleatApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := empleathandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error obtenint l'empleat")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Actualitzar un empleat
// @Tags Empleats
// @Description Actualitzar les dades d'un empleat
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"empleat ID"
// @Param	body				body		empleatapimodels.EmpleatData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/empleat/{id} [put]
func (c *empleatApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload empleatapimodels.EmpleatData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := empleathandler.Instance.Update(id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error actualitzant l'empleat")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Canviar l'estat d'un empleat
// @Tags Empleats
// @Description Canviar l'estat d'un empleat; la baixa obre la checklist de sortida
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"empleat ID"
// @Param	body				body		empleatapimodels.EmpleatEstatData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/empleat/{id}/estat [put]
func (c *empleatApiController) changeEstat(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload empleatapimodels.EmpleatEstatData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := empleathandler.Instance.ChangeEstat(id, payload.Estat); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error canviant l'estat de l'empleat")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Concedir un accés
// @Tags Empleats
// @Description Concedir manualment un accés a un sistema
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"empleat ID"
// @Param	body				body		empleatapimodels.AccesData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/empleat/{id}/acces [post]
func (c *empleatApiController) grantAcces(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload empleatapimodels.AccesData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := empleathandler.Instance.GrantAcces(id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error concedint l'accés")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Revocar un accés
// @Tags Empleats
// @Description Revocar un accés actiu d'un empleat
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"empleat ID"
// @Param 	accesId 		path 		string  true 	"accés ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/empleat/{id}/acces/{accesId} [delete]
func (c *empleatApiController) revokeAcces(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	accesID := ctx.Params("accesId")
	if accesID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("falta l'identificador de l'accés"))
	}
	if err := empleathandler.Instance.RevokeAcces(id, accesID); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error revocant l'accés")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
