package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"hr-access-backend/models"
	"time"
)

// IDList is a JSON-encoded list of user ids persisted as jsonb.
type IDList []string

func (l IDList) Value() (driver.Value, error) {
	valueString, err := json.Marshal(l)
	return string(valueString), err
}

func (l *IDList) Scan(value any) error {
	if value == nil {
		*l = nil
		return nil
	}
	if err := json.Unmarshal(value.([]byte), &l); err != nil {
		return err
	}
	return nil
}

func (l IDList) Contains(id string) bool {
	for _, item := range l {
		if item == id {
			return true
		}
	}
	return false
}

// Validacio is one approval step of an access request, scoped to a single
// system. For grup validations GrupValidadorsIDs is the snapshot of eligible
// managers taken at spawn time; it is never re-resolved.
type Validacio struct {
	BaseModel
	SolicitudID string          `gorm:"type:varchar(36);index:idx_validacio_sistema,unique"`
	Solicitud   *SolicitudAcces `gorm:"foreignKey:SolicitudID"`
	SistemaID   string          `gorm:"type:varchar(36);index:idx_validacio_sistema,unique"`
	Sistema     *Sistema
	Tipus       models.ValidacioTipus `gorm:"type:varchar(50)"`
	Estat       models.ValidacioEstat `gorm:"type:varchar(50);index"`
	// individual: the configured approver
	ValidadorID *string `gorm:"type:varchar(36)"`
	Validador   *Usuari `gorm:"foreignKey:ValidadorID"`
	// grup: eligible approver ids snapshotted at spawn, first decision wins
	GrupValidadorsIDs IDList  `gorm:"type:jsonb"`
	ValidatPerID      *string `gorm:"type:varchar(36)"`
	ValidatPer        *Usuari `gorm:"foreignKey:ValidatPerID"`
	Observacions      string
	DataValidacio     *time.Time
}

// CanBeResolvedBy reports eligibility of the actor for this validation.
// Admins are always eligible.
func (v Validacio) CanBeResolvedBy(actorID string, roles models.RoleSet) bool {
	if roles.IsAdmin() {
		return true
	}
	switch v.Tipus {
	case models.ValidacioIndividual:
		return v.ValidadorID != nil && *v.ValidadorID == actorID
	case models.ValidacioGrup:
		return v.GrupValidadorsIDs.Contains(actorID)
	}
	return false
}
