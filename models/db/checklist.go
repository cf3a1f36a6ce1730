package dbmodels

import (
	"hr-access-backend/models"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ChecklistTemplate is the blueprint instantiated when an employee is
// onboarded or offboarded. DepartamentID nil means the template is global.
type ChecklistTemplate struct {
	BaseModel
	Nom           string                `gorm:"type:varchar(255)"`
	Tipus         models.ChecklistTipus `gorm:"type:varchar(50);index"`
	DepartamentID *string               `gorm:"type:varchar(36);index"`
	Departament   *Departament
	Actiu         bool
	Tasques       []ChecklistTemplateTasca `gorm:"foreignKey:TemplateID"`
}

type ChecklistTemplateTasca struct {
	BaseModel
	TemplateID  string `gorm:"type:varchar(36);index"`
	Nom         string `gorm:"type:varchar(255)"`
	Descripcio  string
	RolAssignat models.UserRole `gorm:"type:varchar(50)"`
	Obligatoria bool
	DiesLimit   *int
	Ordre       int
	Actiu       bool
}

type ChecklistInstance struct {
	BaseModel
	EmpleatID        string `gorm:"type:varchar(36);index"`
	Empleat          *Empleat
	TemplateID       string                `gorm:"type:varchar(36)"`
	Template         *ChecklistTemplate    `gorm:"foreignKey:TemplateID"`
	Tipus            models.ChecklistTipus `gorm:"type:varchar(50)"`
	Estat            models.ChecklistEstat `gorm:"type:varchar(50)"`
	DataFinalitzacio *time.Time
	Tasques          []ChecklistTask `gorm:"foreignKey:InstanceID"`
}

type ChecklistTask struct {
	BaseModel
	InstanceID       string             `gorm:"type:varchar(36);index"`
	Instance         *ChecklistInstance `gorm:"foreignKey:InstanceID"`
	SolicitudAccesID *string            `gorm:"type:varchar(36)"`
	Nom              string             `gorm:"type:varchar(255)"`
	Descripcio       string
	Ordre            int
	Obligatoria      bool
	// Exactly one assignment mode is authoritative: a specific user when
	// UsuariAssignatID is set, the role pool otherwise.
	UsuariAssignatID  *string          `gorm:"type:varchar(36)"`
	UsuariAssignat    *Usuari          `gorm:"foreignKey:UsuariAssignatID"`
	RolAssignat       *models.UserRole `gorm:"type:varchar(50)"`
	Completada        bool
	UsuariCompletatID *string `gorm:"type:varchar(36)"`
	UsuariCompletat   *Usuari `gorm:"foreignKey:UsuariCompletatID"`
	Observacions      string
	DataAssignacio    time.Time
	DataLimit         *time.Time
	DataCompletada    *time.Time
	Documents         []ChecklistTaskDocument `gorm:"foreignKey:TaskID"`
}

// ChecklistTaskDocument points at an evidence file stored in S3.
type ChecklistTaskDocument struct {
	BaseModel
	TaskID      string `gorm:"type:varchar(36);index"`
	NomFitxer   string `gorm:"type:varchar(255)"`
	ObjectKey   string `gorm:"type:varchar(512)"`
	ContentType string `gorm:"type:varchar(150)"`
	Mida        int64
	PujatPerID  string `gorm:"type:varchar(36)"`
}

func (c *ChecklistInstance) AfterDelete(tx *gorm.DB) (err error) {
	if c.ID == "" {
		return nil
	}
	tx.Clauses(clause.Returning{}).Where("instance_id = ?", c.ID).Delete(&ChecklistTask{})
	return
}

// EstatVisual derives the display status of a task at the given moment.
// Precedence: completada > vencuda > propera a vencer > pendent.
func (t ChecklistTask) EstatVisual(now time.Time) models.TascaEstatVisual {
	if t.Completada {
		return models.TascaCompletada
	}
	if t.DataLimit == nil {
		return models.TascaPendent
	}
	if t.DataLimit.Before(now) {
		return models.TascaVencuda
	}
	if !t.DataLimit.After(now.Add(72 * time.Hour)) {
		return models.TascaProperaAVencer
	}
	return models.TascaPendent
}
