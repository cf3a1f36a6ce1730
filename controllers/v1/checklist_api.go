package apiv1

import (
	"hr-access-backend/controllers"
	checklisthandler "hr-access-backend/lib/checklist"
	checkliststore "hr-access-backend/lib/checklist/store"
	"hr-access-backend/middleware"
	"hr-access-backend/models"
	apimodels "hr-access-backend/models/api"
	checklistapimodels "hr-access-backend/models/api/checklist"

	"github.com/gofiber/fiber/v2"
)

type checklistApiController struct {
	controllers.BaseAPIController
}

func InitChecklistApiRouters(app *fiber.App) {
	controller := checklistApiController{}
	app.Route("checklist", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.RbacMiddleware())

		router.Route("template", func(templateRouter fiber.Router) {
			templateRouter.Get("", controller.listTemplates)
			templateRouter.Post("", controller.createTemplate)
			templateRouter.Route(":id", func(idRouter fiber.Router) {
				idRouter.Get("", controller.getTemplate)
				idRouter.Put("", controller.updateTemplate)
				idRouter.Delete("", controller.deleteTemplate)
			})
		})

		router.Route("instance", func(instanceRouter fiber.Router) {
			instanceRouter.Get("", controller.listInstances)
			instanceRouter.Post("", controller.instantiate)
			instanceRouter.Route(":id", func(idRouter fiber.Router) {
				idRouter.Get("", controller.getInstance)
				idRouter.Put("force_complete", controller.forceComplete)
			})
		})

		router.Get("tasks/my", controller.myTasks)

		router.Route("task/:id", func(taskRouter fiber.Router) {
			taskRouter.Put("complete", controller.completeTask)
			taskRouter.Put("assign", controller.assignTask)
			taskRouter.Post("document", controller.uploadDocument)
		})

		router.Route("document/:id", func(documentRouter fiber.Router) {
			documentRouter.Get("", controller.getDocument)
			documentRouter.Delete("", controller.deleteDocument)
		})
	})
}

// @Summary Llistar plantilles de checklist
// @Tags Checklists
// @Description Llistar plantilles de checklist
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	tipus			query		string	false	"filtre per tipus"
// @Success 200 {object} apimodels.Response{data=[]checklistapimodels.TemplateView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/checklist/template [get]
func (c *checklistApiController) listTemplates(ctx *fiber.Ctx) error {
	var tipus *models.ChecklistTipus
	if tipusParam := ctx.Query("tipus"); tipusParam != "" {
		value := models.ChecklistTipus(tipusParam)
		if !value.IsValid() {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("tipus de checklist desconegut"))
		}
		tipus = &value
	}
	list, err := checklisthandler.Instance.ListTemplates(tipus)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error obtenint les plantilles")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Crear una plantilla de checklist
// @Tags Checklists
// @Description Crear una plantilla de checklist amb les seves tasques
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		checklistapimodels.TemplateData	true	"request body"
// @Success 201 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/checklist/template [post]
func (c *checklistApiController) createTemplate(ctx *fiber.Ctx) error {
	var payload checklistapimodels.TemplateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := checklisthandler.Instance.CreateTemplate(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error creant la plantilla")
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(id))
}

// @Summary Obtenir una plantilla
// @Tags Checklists
// @Description Obtenir una plantilla de checklist
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"plantilla ID"
// @Success 200 {object} apimodels.Response{data=checklistapimodels.TemplateView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/checklist/template/{id} [get]
func (c *checklistApiController) getTemplate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := checklisthandler.Instance.GetTemplate(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error obtenint la plantilla")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Actualitzar una plantilla
// @Tags Checklists
// @Description Actualitzar una plantilla de checklist
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"plantilla ID"
// @Param	body				body		checklistapimodels.TemplateData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/checklist/template/{id} [put]
func (c *checklistApiController) updateTemplate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload checklistapimodels.TemplateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := checklisthandler.Instance.UpdateTemplate(id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error actualitzant la plantilla")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Eliminar una plantilla
// @Tags Checklists
// @Description Eliminar una plantilla de checklist
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"plantilla ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/checklist/template/{id} [delete]
func (c *checklistApiController) deleteTemplate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := checklisthandler.Instance.DeleteTemplate(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error eliminant la plantilla")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Llistar instàncies de checklist
// @Tags Checklists
// @Description Llistar instàncies de checklist amb filtres opcionals
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	empleat_id		query		string	false	"filtre per empleat"
// @Param 	tipus			query		string	false	"filtre per tipus"
// @Param 	estat			query		string	false	"filtre per estat"
// @Success 200 {object} apimodels.Response{data=[]checklistapimodels.InstanceView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/checklist/instance [get]
func (c *checklistApiController) listInstances(ctx *fiber.Ctx) error {
	filter, err := checklistListFilter(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := checklisthandler.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error obtenint les checklists")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Obrir una checklist
// @Tags Checklists
// @Description Obrir una checklist per a un empleat a partir d'una plantilla
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		checklistapimodels.InstantiateData	true	"request body"
// @Success 201 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/checklist/instance [post]
func (c *checklistApiController) instantiate(ctx *fiber.Ctx) error {
	var payload checklistapimodels.InstantiateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := checklisthandler.Instance.Instantiate(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error obrint la checklist")
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(id))
}

// @Summary Obtenir una checklist
// @Tags Checklists
// @Description Obtenir una checklist amb les seves tasques
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"checklist ID"
// @Success 200 {object} apimodels.Response{data=checklistapimodels.InstanceView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/checklist/instance/{id} [get]
func (c *checklistApiController) getInstance(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := checklisthandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error obtenint la checklist")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Tancar una checklist manualment
// @Tags Checklists
// @Description Completar totes les tasques obertes d'una checklist en nom de l'administrador
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"checklist ID"
// @Param	body				body		checklistapimodels.CompleteTaskData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/checklist/instance/{id}/force_complete [put]
func (c *checklistApiController) forceComplete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload checklistapimodels.CompleteTaskData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := checklisthandler.Instance.ForceComplete(id, middleware.GetUserID(ctx), payload.Observacions); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error tancant la checklist")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Les meves tasques
// @Tags Checklists
// @Description Tasques pendents assignades a l'usuari o al seu rol
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]checklistapimodels.TaskView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/checklist/tasks/my [get]
func (c *checklistApiController) myTasks(ctx *fiber.Ctx) error {
	list, err := checklisthandler.Instance.MyTasks(middleware.GetUserID(ctx), middleware.GetUserRoles(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error obtenint les tasques")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Completar una tasca
// @Tags Checklists
// @Description Completar una tasca de checklist
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"tasca ID"
// @Param	body				body		checklistapimodels.CompleteTaskData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/checklist/task/{id}/complete [put]
func (c *checklistApiController) completeTask(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload checklistapimodels.CompleteTaskData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = checklisthandler.Instance.CompleteTask(id, middleware.GetUserID(ctx), middleware.GetUserRoles(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error completant la tasca")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Assignar una tasca
// @Tags Checklists
// @Description Assignar una tasca de checklist a un usuari concret
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"tasca ID"
// @Param	body				body		checklistapimodels.AssignTaskData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/checklist/task/{id}/assign [put]
func (c *checklistApiController) assignTask(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload checklistapimodels.AssignTaskData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := checklisthandler.Instance.AssignTask(id, payload.UsuariID); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error assignant la tasca")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Adjuntar un document a una tasca
// @Tags Checklists
// @Description Pujar un document justificatiu d'una tasca
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"tasca ID"
// @Param	file				formData	file	true	"document"
// @Success 201 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/checklist/task/{id}/document [post]
func (c *checklistApiController) uploadDocument(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("falta el fitxer a la petició"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("no s'ha pogut llegir el fitxer"))
	}
	defer file.Close()
	docID, err := checklisthandler.Instance.UploadTaskDocument(ctx.Context(), id, middleware.GetUserID(ctx),
		fileHeader.Filename, fileHeader.Header.Get(fiber.HeaderContentType), fileHeader.Size, file)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error pujant el document")
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(docID))
}

// @Summary Descarregar un document
// @Tags Checklists
// @Description Descarregar un document d'una tasca
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"document ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/checklist/document/{id} [get]
func (c *checklistApiController) getDocument(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	doc, content, err := checklisthandler.Instance.GetTaskDocument(ctx.Context(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error descarregant el document")
	}
	ctx.Set(fiber.HeaderContentType, doc.ContentType)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+doc.NomFitxer+`"`)
	return ctx.Status(fiber.StatusOK).Send(content)
}

// @Summary Eliminar un document
// @Tags Checklists
// @Description Eliminar un document d'una tasca
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"document ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/checklist/document/{id} [delete]
func (c *checklistApiController) deleteDocument(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := checklisthandler.Instance.DeleteTaskDocument(ctx.Context(), id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error eliminant el document")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

func checklistListFilter(ctx *fiber.Ctx) (checkliststore.ListFilter, error) {
	filter := checkliststore.ListFilter{}
	if empleatID := ctx.Query("empleat_id"); empleatID != "" {
		filter.EmpleatID = &empleatID
	}
	if tipusParam := ctx.Query("tipus"); tipusParam != "" {
		tipus := models.ChecklistTipus(tipusParam)
		if !tipus.IsValid() {
			return filter, fiber.NewError(fiber.StatusBadRequest, "tipus de checklist desconegut")
		}
		filter.Tipus = &tipus
	}
	if estatParam := ctx.Query("estat"); estatParam != "" {
		estat := models.ChecklistEstat(estatParam)
		filter.Estat = &estat
	}
	return filter, nil
}
