package dict

import (
	"hr-access-backend/controllers"
	departamenthandler "hr-access-backend/lib/dicts/departament"
	"hr-access-backend/middleware"
	apimodels "hr-access-backend/models/api"
	dictapimodels "hr-access-backend/models/api/dict"

	"github.com/gofiber/fiber/v2"
)

type departamentDictApiController struct {
	controllers.BaseAPIController
}

func InitDepartamentDictApiRouters(app *fiber.App) {
	controller := departamentDictApiController{}
	app.Route("departament", func(router fiber.Router) {
		router.Use(middleware.RbacMiddleware())
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", controller.get)
			idRouter.Put("", controller.update)
			idRouter.Delete("", controller.delete)
			idRouter.Put("gestors", controller.setGestors)
		})
	})
}

// @Summary Llistar departaments
// @Tags Diccionari. Departaments
// @Description Llistar departaments
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.DepartamentView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/departament [get]
func (c *departamentDictApiController) list(ctx *fiber.Ctx) error {
	list, err := departamenthandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error obtenint els departaments")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Crear un departament
// @Tags Diccionari. Departaments
// @Description Crear un departament
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.DepartamentData	true	"request body"
// @Success 201 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/departament [post]
func (c *departamentDictApiController) create(ctx *fiber.Ctx) error {
	var payload dictapimodels.DepartamentData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := departamenthandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error creant el departament")
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(id))
}

// @Summary Obtenir un departament
// @Tags Diccionari. Departaments
// @Description Obtenir un departament amb els seus gestors
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"departament ID"
// @Success 200 {object} apimodels.Response{data=dictapimodels.DepartamentView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/departament/{id} [get]
func (c *departamentDictApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := departamenthandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error obtenint el departament")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Actualitzar un departament
// @Tags Diccionari. Departaments
// @Description Actualitzar un departament
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"departament ID"
// @Param	body body	 dictapimodels.DepartamentData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/departament/{id} [put]
func (c *departamentDictApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload dictapimodels.DepartamentData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := departamenthandler.Instance.Update(id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error actualitzant el departament")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Eliminar un departament
// @Tags Diccionari. Departaments
// @Description Eliminar un departament sense empleats actius
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"departament ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/departament/{id} [delete]
func (c *departamentDictApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := departamenthandler.Instance.Delete(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error eliminant el departament")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Assignar gestors
// @Tags Diccionari. Departaments
// @Description Substituir la llista de gestors del departament
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"departament ID"
// @Param	body body	 []dictapimodels.GestorData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/departament/{id}/gestors [put]
func (c *departamentDictApiController) setGestors(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload []dictapimodels.GestorData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	for _, gestor := range payload {
		if err := gestor.Validate(); err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
	}
	if err := departamenthandler.Instance.SetGestors(id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error assignant els gestors")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
