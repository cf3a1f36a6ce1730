package apiv1

import (
	"fmt"
	"time"

	"hr-access-backend/controllers"
	checklisthandler "hr-access-backend/lib/checklist"
	checkliststore "hr-access-backend/lib/checklist/store"
	solicitudhandler "hr-access-backend/lib/solicitud"
	solicitudstore "hr-access-backend/lib/solicitud/store"
	"hr-access-backend/middleware"
	"hr-access-backend/models"
	apimodels "hr-access-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

type exportApiController struct {
	controllers.BaseAPIController
}

func InitExportApiRouters(app *fiber.App) {
	controller := exportApiController{}
	app.Route("export", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.RbacMiddleware())
		router.Get("solicituds", controller.solicituds)
		router.Get("checklists", controller.checklists)
	})
}

// @Summary Exportar sol·licituds a Excel
// @Tags Exportacions
// @Description Exportar la llista de sol·licituds a Excel
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	estat			query		string	false	"filtre per estat"
// @Param 	tipus			query		string	false	"filtre per tipus"
// @Success 200
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/export/solicituds [get]
func (c *exportApiController) solicituds(ctx *fiber.Ctx) error {
	filter := solicitudstore.ListFilter{}
	if estatParam := ctx.Query("estat"); estatParam != "" {
		estat := models.SolicitudEstat(estatParam)
		filter.Estat = &estat
	}
	if tipusParam := ctx.Query("tipus"); tipusParam != "" {
		tipus := models.SolicitudTipus(tipusParam)
		filter.Tipus = &tipus
	}
	data, err := solicitudhandler.Instance.ExportToXls(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error exportant les sol·licituds")
	}
	return sendXls(ctx, "solicituds", data.Bytes())
}

// @Summary Exportar checklists a Excel
// @Tags Exportacions
// @Description Exportar la llista de checklists a Excel
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	tipus			query		string	false	"filtre per tipus"
// @Param 	estat			query		string	false	"filtre per estat"
// @Success 200
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/export/checklists [get]
func (c *exportApiController) checklists(ctx *fiber.Ctx) error {
	filter := checkliststore.ListFilter{}
	if tipusParam := ctx.Query("tipus"); tipusParam != "" {
		tipus := models.ChecklistTipus(tipusParam)
		if !tipus.IsValid() {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("tipus de checklist desconegut"))
		}
		filter.Tipus = &tipus
	}
	if estatParam := ctx.Query("estat"); estatParam != "" {
		estat := models.ChecklistEstat(estatParam)
		filter.Estat = &estat
	}
	data, err := checklisthandler.Instance.ExportToXls(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error exportant les checklists")
	}
	return sendXls(ctx, "checklists", data.Bytes())
}

func sendXls(ctx *fiber.Ctx, prefix string, content []byte) error {
	fileName := fmt.Sprintf("%s-%v.xlsx", prefix, time.Now().Format("20060102-150405"))
	ctx.Set(fiber.HeaderContentType, "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Status(fiber.StatusOK).Send(content)
}
