package dict

import (
	"hr-access-backend/controllers"
	sistemahandler "hr-access-backend/lib/dicts/sistema"
	"hr-access-backend/middleware"
	apimodels "hr-access-backend/models/api"
	dictapimodels "hr-access-backend/models/api/dict"

	"github.com/gofiber/fiber/v2"
)

type sistemaDictApiController struct {
	controllers.BaseAPIController
}

func InitSistemaDictApiRouters(app *fiber.App) {
	controller := sistemaDictApiController{}
	app.Route("sistema", func(router fiber.Router) {
		router.Use(middleware.RbacMiddleware())
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", controller.get)
			idRouter.Put("", controller.update)
			idRouter.Delete("", controller.delete)
			idRouter.Post("nivell", controller.createNivell)
			idRouter.Put("nivell/:nivellId", controller.updateNivell)
			idRouter.Delete("nivell/:nivellId", controller.deleteNivell)
			idRouter.Post("validador", controller.createValidador)
			idRouter.Put("validador/:validadorId", controller.updateValidador)
			idRouter.Delete("validador/:validadorId", controller.deleteValidador)
		})
	})
}

// @Summary Llistar sistemes
// @Tags Diccionari. Sistemes
// @Description Llistar sistemes d'accés
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.SistemaView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/sistema [get]
func (c *sistemaDictApiController) list(ctx *fiber.Ctx) error {
	list, err := sistemahandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error obtenint els sistemes")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Crear un sistema
// @Tags Diccionari. Sistemes
// @Description Crear un sistema d'accés
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.SistemaData	true	"request body"
// @Success 201 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/sistema [post]
func (c *sistemaDictApiController) create(ctx *fiber.Ctx) error {
	var payload dictapimodels.SistemaData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := sistemahandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error creant el sistema")
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(id))
}

// @Summary Obtenir un sistema
// @Tags Diccionari. Sistemes
// @Description Obtenir un sistema amb nivells i validadors
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"sistema ID"
// @Success 200 {object} apimodels.Response{data=dictapimodels.SistemaView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/sistema/{id} [get]
func (c *sistemaDictApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := sistemahandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error obtenint el sistema")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Actualitzar un sistema
// @Tags Diccionari. Sistemes
// @Description Actualitzar un sistema d'accés
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"sistema ID"
// @Param	body body	 dictapimodels.SistemaData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/sistema/{id} [put]
func (c *sistemaDictApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload dictapimodels.SistemaData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := sistemahandler.Instance.Update(id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error actualitzant el sistema")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Eliminar un sistema
// @Tags Diccionari. Sistemes
// @Description Eliminar un sistema sense accessos actius
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"sistema ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/sistema/{id} [delete]
func (c *sistemaDictApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := sistemahandler.Instance.Delete(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error eliminant el sistema")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Crear un nivell d'accés
// @Tags Diccionari. Sistemes
// @Description Afegir un nivell d'accés al sistema
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"sistema ID"
// @Param	body body	 dictapimodels.NivellData	true	"request body"
// @Success 201 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/sistema/{id}/nivell [post]
func (c *sistemaDictApiController) createNivell(ctx *fiber.Ctx) error {
	return c.saveNivell(ctx, "")
}

// @Summary Actualitzar un nivell d'accés
// @Tags Diccionari. Sistemes
// @Description Actualitzar un nivell d'accés del sistema
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"sistema ID"
// @Param 	nivellId 		path 		string  true 	"nivell ID"
// @Param	body body	 dictapimodels.NivellData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/sistema/{id}/nivell/{nivellId} [put]
func (c *sistemaDictApiController) updateNivell(ctx *fiber.Ctx) error {
	nivellID := ctx.Params("nivellId")
	if nivellID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("falta l'identificador del nivell"))
	}
	return c.saveNivell(ctx, nivellID)
}

func (c *sistemaDictApiController) saveNivell(ctx *fiber.Ctx, nivellID string) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload dictapimodels.NivellData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	savedID, err := sistemahandler.Instance.SaveNivell(id, nivellID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error desant el nivell d'accés")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(savedID))
}

// @Summary Eliminar un nivell d'accés
// @Tags Diccionari. Sistemes
// @Description Eliminar un nivell d'accés del sistema
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"sistema ID"
// @Param 	nivellId 		path 		string  true 	"nivell ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/sistema/{id}/nivell/{nivellId} [delete]
func (c *sistemaDictApiController) deleteNivell(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	nivellID := ctx.Params("nivellId")
	if nivellID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("falta l'identificador del nivell"))
	}
	if err := sistemahandler.Instance.DeleteNivell(id, nivellID); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error eliminant el nivell d'accés")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Crear un validador
// @Tags Diccionari. Sistemes
// @Description Afegir una configuració de validador al sistema
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"sistema ID"
// @Param	body body	 dictapimodels.ValidadorData	true	"request body"
// @Success 201 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/sistema/{id}/validador [post]
func (c *sistemaDictApiController) createValidador(ctx *fiber.Ctx) error {
	return c.saveValidador(ctx, "")
}

// @Summary Actualitzar un validador
// @Tags Diccionari. Sistemes
// @Description Actualitzar una configuració de validador del sistema
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"sistema ID"
// @Param 	validadorId 	path 		string  true 	"validador ID"
// @Param	body body	 dictapimodels.ValidadorData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/sistema/{id}/validador/{validadorId} [put]
func (c *sistemaDictApiController) updateValidador(ctx *fiber.Ctx) error {
	validadorID := ctx.Params("validadorId")
	if validadorID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("falta l'identificador del validador"))
	}
	return c.saveValidador(ctx, validadorID)
}

func (c *sistemaDictApiController) saveValidador(ctx *fiber.Ctx, validadorID string) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload dictapimodels.ValidadorData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	savedID, err := sistemahandler.Instance.SaveValidador(id, validadorID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error desant el validador")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(savedID))
}

// @Summary Eliminar un validador
// @Tags Diccionari. Sistemes
// @Description Eliminar una configuració de validador del sistema
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"sistema ID"
// @Param 	validadorId 	path 		string  true 	"validador ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/sistema/{id}/validador/{validadorId} [delete]
func (c *sistemaDictApiController) deleteValidador(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	validadorID := ctx.Params("validadorId")
	if validadorID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("falta l'identificador del validador"))
	}
	if err := sistemahandler.Instance.DeleteValidador(id, validadorID); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error eliminant el validador")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
