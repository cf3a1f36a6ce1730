package dbmodels

import (
	"hr-access-backend/models"
	"time"
)

// Notificacio is one outbox row: recipient resolved at enqueue time, sent by
// the delivery worker, at-least-once.
type Notificacio struct {
	BaseModel
	UsuariID      string                 `gorm:"type:varchar(36);index"`
	Email         string                 `gorm:"type:varchar(255)"`
	Code          models.NotificacioCode `gorm:"type:varchar(100)"`
	Assumpte      string                 `gorm:"type:varchar(255)"`
	Cos           string
	Estat         models.NotificacioEstat `gorm:"type:varchar(50);index"`
	Intents       int
	DataEnviament *time.Time
	UltimError    string
}
