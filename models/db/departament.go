package dbmodels

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Departament struct {
	BaseModel
	Nom      string `gorm:"type:varchar(255)"`
	Codi     string `gorm:"type:varchar(50);uniqueIndex"`
	Actiu    bool
	Gestors  []DepartamentGestor `gorm:"foreignKey:DepartamentID"`
	Empleats []Empleat           `gorm:"foreignKey:DepartamentID"`
}

// DepartamentGestor links a manager user to a department. Several managers
// may coexist; one is flagged principal.
type DepartamentGestor struct {
	BaseModel
	DepartamentID string `gorm:"type:varchar(36);index:idx_dept_gestor,unique"`
	UsuariID      string `gorm:"type:varchar(36);index:idx_dept_gestor,unique"`
	Usuari        *Usuari
	Principal     bool
}

func (d *Departament) Validate() error {
	if d.Nom == "" {
		return errors.New("falta el nom del departament")
	}
	return nil
}

func (d *Departament) AfterDelete(tx *gorm.DB) (err error) {
	if d.ID == "" {
		return nil
	}
	tx.Clauses(clause.Returning{}).Where("departament_id = ?", d.ID).Delete(&DepartamentGestor{})
	return
}
