package dbmodels

import (
	"hr-access-backend/models"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProcessMobilitat struct {
	BaseModel
	Codi                string `gorm:"type:varchar(50);uniqueIndex"` // MOB-<ts>-<hex>
	EmpleatID           string `gorm:"type:varchar(36);index"`
	Empleat             *Empleat
	DepartamentActualID string                `gorm:"type:varchar(36)"`
	DepartamentActual   *Departament          `gorm:"foreignKey:DepartamentActualID"`
	DepartamentNouID    string                `gorm:"type:varchar(36)"`
	DepartamentNou      *Departament          `gorm:"foreignKey:DepartamentNouID"`
	Estat               models.MobilitatEstat `gorm:"type:varchar(50);index"`
	Justificacio        string
	// set once the terminal transition synthesizes an access request
	SolicitudAccesID *string `gorm:"type:varchar(36)"`
	DataFinalitzacio *time.Time
	Sistemes         []ProcessMobilitatSistema `gorm:"foreignKey:ProcessID"`
}

// ProcessMobilitatSistema carries a system's disposition across the two
// review phases. The processed flags gate the phase transitions.
type ProcessMobilitatSistema struct {
	BaseModel
	ProcessID           string `gorm:"type:varchar(36);index:idx_mobilitat_sistema,unique"`
	SistemaID           string `gorm:"type:varchar(36);index:idx_mobilitat_sistema,unique"`
	Sistema             *Sistema
	NivellAccesActualID *string                `gorm:"type:varchar(36)"`
	NivellAccesFinalID  *string                `gorm:"type:varchar(36)"`
	AccioDeptActual     models.AccioDeptActual `gorm:"type:varchar(50)"`
	AccioDeptNou        models.AccioDeptNou    `gorm:"type:varchar(50)"`
	EstatFinal          models.EstatFinal      `gorm:"type:varchar(50)"`
	ProcessatDeptActual bool
	ProcessatDeptNou    bool
}

func (p *ProcessMobilitat) AfterDelete(tx *gorm.DB) (err error) {
	if p.ID == "" {
		return nil
	}
	tx.Clauses(clause.Returning{}).Where("process_id = ?", p.ID).Delete(&ProcessMobilitatSistema{})
	return
}
