package dbmodels

import (
	"hr-access-backend/models"
	"time"
)

type Empleat struct {
	BaseModel
	Codi          string `gorm:"type:varchar(50);uniqueIndex"` // EMP-<ts>-<hex>
	Nom           string `gorm:"type:varchar(150)"`
	Cognoms       string `gorm:"type:varchar(150)"`
	Email         string `gorm:"type:varchar(255)"`
	DepartamentID string `gorm:"type:varchar(36);index"`
	Departament   *Departament
	CarrecNom     string              `gorm:"type:varchar(255)"`
	Estat         models.EmpleatEstat `gorm:"type:varchar(50)"`
	DataAlta      time.Time
	DataBaixa     *time.Time
	Checklists    []ChecklistInstance `gorm:"foreignKey:EmpleatID"`
	Accessos      []AccesEmpleat      `gorm:"foreignKey:EmpleatID"`
}

func (e Empleat) GetFullName() string {
	return e.Nom + " " + e.Cognoms
}
