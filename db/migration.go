package db

import (
	dbmodels "hr-access-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	entities := []struct {
		name  string
		model interface{}
	}{
		{"Usuari", &dbmodels.Usuari{}},
		{"UsuariRol", &dbmodels.UsuariRol{}},
		{"Departament", &dbmodels.Departament{}},
		{"DepartamentGestor", &dbmodels.DepartamentGestor{}},
		{"Empleat", &dbmodels.Empleat{}},
		{"Sistema", &dbmodels.Sistema{}},
		{"NivellAccesSistema", &dbmodels.NivellAccesSistema{}},
		{"SistemaValidador", &dbmodels.SistemaValidador{}},
		{"AccesEmpleat", &dbmodels.AccesEmpleat{}},
		{"ChecklistTemplate", &dbmodels.ChecklistTemplate{}},
		{"ChecklistTemplateTasca", &dbmodels.ChecklistTemplateTasca{}},
		{"ChecklistInstance", &dbmodels.ChecklistInstance{}},
		{"ChecklistTask", &dbmodels.ChecklistTask{}},
		{"ChecklistTaskDocument", &dbmodels.ChecklistTaskDocument{}},
		{"SolicitudAcces", &dbmodels.SolicitudAcces{}},
		{"SolicitudSistema", &dbmodels.SolicitudSistema{}},
		{"Validacio", &dbmodels.Validacio{}},
		{"ProcessMobilitat", &dbmodels.ProcessMobilitat{}},
		{"ProcessMobilitatSistema", &dbmodels.ProcessMobilitatSistema{}},
		{"Notificacio", &dbmodels.Notificacio{}},
	}
	for _, entity := range entities {
		if err := DB.AutoMigrate(entity.model); err != nil {
			return errors.Wrapf(err, "error migrating %s", entity.name)
		}
	}
	log.Info("migrations finished")
	return nil
}
