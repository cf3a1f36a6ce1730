package dbmodels

import (
	"hr-access-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Sistema struct {
	BaseModel
	Nom         string `gorm:"type:varchar(255)"`
	Codi        string `gorm:"type:varchar(50);uniqueIndex"`
	Descripcio  string
	Actiu       bool
	Nivells     []NivellAccesSistema `gorm:"foreignKey:SistemaID"`
	Validadors  []SistemaValidador   `gorm:"foreignKey:SistemaID"`
	Responsable string               `gorm:"type:varchar(255)"`
}

// NivellAccesSistema is an ordered access tier within a system
// (e.g. Consulta / Gestió / Supervisor).
type NivellAccesSistema struct {
	BaseModel
	SistemaID string `gorm:"type:varchar(36);index"`
	Nom       string `gorm:"type:varchar(150)"`
	Ordre     int
	Actiu     bool
}

// SistemaValidador configures who approves access to a system: either a
// specific user or any manager of a department.
type SistemaValidador struct {
	BaseModel
	SistemaID     string                `gorm:"type:varchar(36);index"`
	Tipus         models.TipusValidador `gorm:"type:varchar(50)"`
	UsuariID      *string               `gorm:"type:varchar(36)"`
	Usuari        *Usuari
	DepartamentID *string `gorm:"type:varchar(36)"`
	Departament   *Departament
	Ordre         int
	Requerit      bool
	Actiu         bool
}

func (s *Sistema) AfterDelete(tx *gorm.DB) (err error) {
	if s.ID == "" {
		return nil
	}
	tx.Clauses(clause.Returning{}).Where("sistema_id = ?", s.ID).Delete(&NivellAccesSistema{})
	tx.Clauses(clause.Returning{}).Where("sistema_id = ?", s.ID).Delete(&SistemaValidador{})
	return
}
