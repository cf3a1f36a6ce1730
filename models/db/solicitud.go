package dbmodels

import (
	"hr-access-backend/models"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SolicitudAcces struct {
	BaseModel
	Codi                 string   `gorm:"type:varchar(50);uniqueIndex"` // SOL-<ts>-<hex>
	SolicitantID         string   `gorm:"type:varchar(36);index"`
	Solicitant           *Usuari  `gorm:"foreignKey:SolicitantID"`
	EmpleatDestinatariID string   `gorm:"type:varchar(36);index"`
	EmpleatDestinatari   *Empleat `gorm:"foreignKey:EmpleatDestinatariID"`
	Justificacio         string
	Tipus                models.SolicitudTipus `gorm:"type:varchar(50)"`
	Estat                models.SolicitudEstat `gorm:"type:varchar(50);index"`
	ProcessMobilitatID   *string               `gorm:"type:varchar(36)"`
	DataResolucio        *time.Time
	Sistemes             []SolicitudSistema `gorm:"foreignKey:SolicitudID"`
	Validacions          []Validacio        `gorm:"foreignKey:SolicitudID"`
}

// SolicitudSistema is one requested (system, access level) pair. The list is
// immutable after creation.
type SolicitudSistema struct {
	BaseModel
	SolicitudID   string `gorm:"type:varchar(36);index:idx_solicitud_sistema,unique"`
	SistemaID     string `gorm:"type:varchar(36);index:idx_solicitud_sistema,unique"`
	Sistema       *Sistema
	NivellAccesID string              `gorm:"type:varchar(36)"`
	NivellAcces   *NivellAccesSistema `gorm:"foreignKey:NivellAccesID"`
	Aprovat       bool
}

func (s *SolicitudAcces) AfterDelete(tx *gorm.DB) (err error) {
	if s.ID == "" {
		return nil
	}
	tx.Clauses(clause.Returning{}).Where("solicitud_id = ?", s.ID).Delete(&SolicitudSistema{})
	tx.Clauses(clause.Returning{}).Where("solicitud_id = ?", s.ID).Delete(&Validacio{})
	return
}
