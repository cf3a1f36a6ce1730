package apiv1

import (
	"hr-access-backend/controllers"
	mobilitathandler "hr-access-backend/lib/mobilitat"
	mobilitatstore "hr-access-backend/lib/mobilitat/store"
	"hr-access-backend/middleware"
	"hr-access-backend/models"
	apimodels "hr-access-backend/models/api"
	mobilitatapimodels "hr-access-backend/models/api/mobilitat"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type mobilitatApiController struct {
	controllers.BaseAPIController
}

func InitMobilitatApiRouters(app *fiber.App) {
	controller := mobilitatApiController{}
	app.Route("mobilitat", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.RbacMiddleware())

		router.Get("", controller.list)
		router.Post("", controller.create)

		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", controller.get)
			idRouter.Put("sistema/:rowId/dept_actual", controller.setAccioDeptActual)
			idRouter.Put("sistema/:rowId/dept_nou", controller.setAccioDeptNou)
			idRouter.Put("processar_dept_actual", controller.processarDeptActual)
			idRouter.Put("processar_dept_nou", controller.processarDeptNou)
		})
	})
}

// @Summary Llistar processos de mobilitat
// @Tags Mobilitat
// @Description Llistar processos de mobilitat amb filtres opcionals
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	empleat_id		query		string	false	"filtre per empleat"
// @Param 	estat			query		string	false	"filtre per estat"
// @Success 200 {object} apimodels.Response{data=[]mobilitatapimodels.MobilitatView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/mobilitat [get]
func (c *mobilitatApiController) list(ctx *fiber.Ctx) error {
	filter := mobilitatstore.ListFilter{}
	if empleatID := ctx.Query("empleat_id"); empleatID != "" {
		filter.EmpleatID = &empleatID
	}
	if estatParam := ctx.Query("estat"); estatParam != "" {
		estat := models.MobilitatEstat(estatParam)
		filter.Estat = &estat
	}
	list, err := mobilitathandler.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error obtenint els processos de mobilitat")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Iniciar un procés de mobilitat
// @Tags Mobilitat
// @Description Obrir un procés de trasllat de departament per a un empleat
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		mobilitatapimodels.MobilitatCreateData	true	"request body"
// @Success 201 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/mobilitat [post]
func (c *mobilitatApiController) create(ctx *fiber.Ctx) error {
	var payload mobilitatapimodels.MobilitatCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := mobilitathandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error iniciant el procés de mobilitat")
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(id))
}

// @Summary Obtenir un procés de mobilitat
// @Tags Mobilitat
// @Description Obtenir un procés de mobilitat amb la disposició de cada sistema
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"procés ID"
// @Success 200 {object} apimodels.Response{data=mobilitatapimodels.MobilitatView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/mobilitat/{id} [get]
func (c *mobilitatApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := mobilitathandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error obtenint el procés de mobilitat")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Disposició del departament actual
// @Tags Mobilitat
// @Description Registrar l'acció del departament actual sobre un sistema
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"procés ID"
// @Param 	rowId 			path 		string  true 	"fila de sistema ID"
// @Param	body				body		mobilitatapimodels.AccioDeptActualData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/mobilitat/{id}/sistema/{rowId}/dept_actual [put]
func (c *mobilitatApiController) setAccioDeptActual(ctx *fiber.Ctx) error {
	id, rowID, err := c.getProcessRow(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload mobilitatapimodels.AccioDeptActualData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = mobilitathandler.Instance.SetAccioDeptActual(id, rowID, middleware.GetUserID(ctx), middleware.GetUserRoles(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error registrant l'acció del departament actual")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Disposició del departament nou
// @Tags Mobilitat
// @Description Registrar l'acció del departament nou sobre un sistema
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"procés ID"
// @Param 	rowId 			path 		string  true 	"fila de sistema ID"
// @Param	body				body		mobilitatapimodels.AccioDeptNouData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/mobilitat/{id}/sistema/{rowId}/dept_nou [put]
func (c *mobilitatApiController) setAccioDeptNou(ctx *fiber.Ctx) error {
	id, rowID, err := c.getProcessRow(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload mobilitatapimodels.AccioDeptNouData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = mobilitathandler.Instance.SetAccioDeptNou(id, rowID, middleware.GetUserID(ctx), middleware.GetUserRoles(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error registrant l'acció del departament nou")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Tancar la fase del departament actual
// @Tags Mobilitat
// @Description Tancar la revisió del departament actual i passar el procés al departament nou
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"procés ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/mobilitat/{id}/processar_dept_actual [put]
func (c *mobilitatApiController) processarDeptActual(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = mobilitathandler.Instance.ProcessarDeptActual(id, middleware.GetUserID(ctx), middleware.GetUserRoles(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error tancant la fase del departament actual")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Tancar la fase del departament nou
// @Tags Mobilitat
// @Description Computar la disposició final de cada sistema i finalitzar o obrir validació
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"procés ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/mobilitat/{id}/processar_dept_nou [put]
func (c *mobilitatApiController) processarDeptNou(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = mobilitathandler.Instance.ProcessarDeptNou(id, middleware.GetUserID(ctx), middleware.GetUserRoles(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error tancant la fase del departament nou")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

func (c *mobilitatApiController) getProcessRow(ctx *fiber.Ctx) (id, rowID string, err error) {
	id, err = c.GetID(ctx)
	if err != nil {
		return "", "", err
	}
	rowID = ctx.Params("rowId")
	if rowID == "" {
		return "", "", errors.New("falta l'identificador de la fila de sistema")
	}
	return id, rowID, nil
}
