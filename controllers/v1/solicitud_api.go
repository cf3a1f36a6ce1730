package apiv1

import (
	"hr-access-backend/controllers"
	solicitudhandler "hr-access-backend/lib/solicitud"
	solicitudstore "hr-access-backend/lib/solicitud/store"
	validaciohandler "hr-access-backend/lib/validacio"
	"hr-access-backend/middleware"
	"hr-access-backend/models"
	apimodels "hr-access-backend/models/api"
	solicitudapimodels "hr-access-backend/models/api/solicitud"

	"github.com/gofiber/fiber/v2"
)

type solicitudApiController struct {
	controllers.BaseAPIController
}

func InitSolicitudApiRouters(app *fiber.App) {
	controller := solicitudApiController{}
	app.Route("solicitud", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.RbacMiddleware())

		router.Get("", controller.list)
		router.Post("", controller.create)

		router.Get("validacio/my", controller.myValidacions)
		router.Put("validacio/:id/resolve", controller.resolveValidacio)

		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", controller.get)
			idRouter.Delete("", controller.delete)
			idRouter.Put("submit", controller.submit)
			idRouter.Put("force_approve", controller.forceApprove)
			idRouter.Put("force_reject", controller.forceReject)
		})
	})
}

// @Summary Llistar sol·licituds d'accés
// @Tags Sol·licituds
// @Description Llistar sol·licituds; un usuari sense rol de gestió només veu les seves
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	empleat_id		query		string	false	"filtre per empleat destinatari"
// @Param 	estat			query		string	false	"filtre per estat"
// @Param 	tipus			query		string	false	"filtre per tipus"
// @Success 200 {object} apimodels.Response{data=[]solicitudapimodels.SolicitudView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/solicitud [get]
func (c *solicitudApiController) list(ctx *fiber.Ctx) error {
	filter := solicitudstore.ListFilter{}
	if empleatID := ctx.Query("empleat_id"); empleatID != "" {
		filter.EmpleatDestinatariID = &empleatID
	}
	if estatParam := ctx.Query("estat"); estatParam != "" {
		estat := models.SolicitudEstat(estatParam)
		filter.Estat = &estat
	}
	if tipusParam := ctx.Query("tipus"); tipusParam != "" {
		tipus := models.SolicitudTipus(tipusParam)
		filter.Tipus = &tipus
	}
	roles := middleware.GetUserRoles(ctx)
	if !roles.IsAdmin() && !roles.Has(models.RrhhRole) && !roles.Has(models.ItRole) {
		actorID := middleware.GetUserID(ctx)
		filter.SolicitantID = &actorID
	}
	list, err := solicitudhandler.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error obtenint les sol·licituds")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Crear una sol·licitud d'accés
// @Tags Sol·licituds
// @Description Crear una sol·licitud en estat esborrany
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		solicitudapimodels.SolicitudCreateData	true	"request body"
// @Success 201 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/solicitud [post]
func (c *solicitudApiController) create(ctx *fiber.Ctx) error {
	var payload solicitudapimodels.SolicitudCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := solicitudhandler.Instance.Create(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error creant la sol·licitud")
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(id))
}

// @Summary Obtenir una sol·licitud
// @Tags Sol·licituds
// @Description Obtenir una sol·licitud amb sistemes i validacions
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"sol·licitud ID"
// @Success 200 {object} apimodels.Response{data=solicitudapimodels.SolicitudView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/solicitud/{id} [get]
func (c *solicitudApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := solicitudhandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error obtenint la sol·licitud")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Esborrar una sol·licitud
// @Tags Sol·licituds
// @Description Esborrar una sol·licitud encara no enviada
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"sol·licitud ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/solicitud/{id} [delete]
func (c *solicitudApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = solicitudhandler.Instance.Delete(id, middleware.GetUserID(ctx), middleware.GetUserRoles(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error esborrant la sol·licitud")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Enviar una sol·licitud a validació
// @Tags Sol·licituds
// @Description Enviar la sol·licitud i generar les validacions per sistema
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"sol·licitud ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/solicitud/{id}/submit [put]
func (c *solicitudApiController) submit(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := solicitudhandler.Instance.Submit(id, middleware.GetUserID(ctx), middleware.GetUserRoles(ctx)); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error enviant la sol·licitud")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Aprovar una sol·licitud manualment
// @Tags Sol·licituds
// @Description Resol totes les validacions pendents com a aprovades
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"sol·licitud ID"
// @Param	body				body		solicitudapimodels.ResolveData	false	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/solicitud/{id}/force_approve [put]
func (c *solicitudApiController) forceApprove(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload solicitudapimodels.ResolveData
	if len(ctx.Body()) > 0 {
		if err := c.BodyParser(ctx, &payload); err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
	}
	err = solicitudhandler.Instance.ForceApprove(id, middleware.GetUserID(ctx), payload.Observacions)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error aprovant la sol·licitud")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Rebutjar una sol·licitud manualment
// @Tags Sol·licituds
// @Description Resol totes les validacions pendents com a rebutjades amb un motiu
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"sol·licitud ID"
// @Param	body				body		solicitudapimodels.RejectData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/solicitud/{id}/force_reject [put]
func (c *solicitudApiController) forceReject(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload solicitudapimodels.RejectData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = solicitudhandler.Instance.ForceReject(id, middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error rebutjant la sol·licitud")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Les meves validacions pendents
// @Tags Sol·licituds
// @Description Validacions pendents assignades a l'usuari o al seu grup
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]solicitudapimodels.ValidacioView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/solicitud/validacio/my [get]
func (c *solicitudApiController) myValidacions(ctx *fiber.Ctx) error {
	list, err := validaciohandler.Instance.MyPending(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error obtenint les validacions")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Resoldre una validació
// @Tags Sol·licituds
// @Description Registrar la decisió d'un validador i reavaluar la sol·licitud
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"validació ID"
// @Param	body				body		solicitudapimodels.ResolveData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/solicitud/validacio/{id}/resolve [put]
func (c *solicitudApiController) resolveValidacio(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload solicitudapimodels.ResolveData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = solicitudhandler.Instance.ResolveValidacio(id, middleware.GetUserID(ctx), middleware.GetUserRoles(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error resolent la validació")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
