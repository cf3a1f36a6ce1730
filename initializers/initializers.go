package initializers

import (
	"context"
	"hr-access-backend/config"
	"hr-access-backend/fiberlog"
	checklisthandler "hr-access-backend/lib/checklist"
	departamenthandler "hr-access-backend/lib/dicts/departament"
	sistemahandler "hr-access-backend/lib/dicts/sistema"
	empleathandler "hr-access-backend/lib/empleat"
	xlsexport "hr-access-backend/lib/export/xls"
	identity "hr-access-backend/lib/identity"
	mobilitathandler "hr-access-backend/lib/mobilitat"
	notifyhandler "hr-access-backend/lib/notify"
	notifysendworker "hr-access-backend/lib/notify/send-worker"
	"hr-access-backend/lib/rbac"
	solicitudhandler "hr-access-backend/lib/solicitud"
	validaciohandler "hr-access-backend/lib/validacio"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	rbac.NewHandler()
	identity.NewHandler()
	departamenthandler.NewHandler()
	sistemahandler.NewHandler()
	notifyhandler.NewHandler()
	xlsexport.NewHandler()
	checklisthandler.NewHandler()
	empleathandler.NewHandler()
	validaciohandler.NewHandler()
	solicitudhandler.NewHandler()
	// mobilitat registers its finalizer with the solicitud engine, so it
	// must come after it.
	mobilitathandler.NewHandler()
	notifysendworker.StartWorker(ctx)
}
