package dbmodels

import "time"

// AccesEmpleat records a system access an employee currently holds. The
// mobility engine seeds its per-system review rows from this table.
type AccesEmpleat struct {
	BaseModel
	EmpleatID     string `gorm:"type:varchar(36);index:idx_acces_empleat,unique"`
	SistemaID     string `gorm:"type:varchar(36);index:idx_acces_empleat,unique"`
	Sistema       *Sistema
	NivellAccesID string              `gorm:"type:varchar(36)"`
	NivellAcces   *NivellAccesSistema `gorm:"foreignKey:NivellAccesID"`
	Actiu         bool
	DataConcessio time.Time
}
