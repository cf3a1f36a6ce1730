package dbmodels

import (
	"fmt"
	"hr-access-backend/models"
)

type Usuari struct {
	BaseModel
	Nom         string `gorm:"type:varchar(150)"`
	Cognoms     string `gorm:"type:varchar(150)"`
	Email       string `gorm:"type:varchar(255);uniqueIndex"`
	Password    string `gorm:"type:varchar(128)"`
	IsActive    bool
	EmpleatID   *string `gorm:"type:varchar(36)"`
	Empleat     *Empleat
	Rols        []UsuariRol `gorm:"foreignKey:UsuariID"`
	PhoneNumber string      `gorm:"type:varchar(15)"`
}

type UsuariRol struct {
	BaseModel
	UsuariID string          `gorm:"type:varchar(36);index:idx_usuari_rol,unique"`
	Rol      models.UserRole `gorm:"type:varchar(50);index:idx_usuari_rol,unique"`
}

func (u Usuari) GetFullName() string {
	return fmt.Sprintf("%s %s", u.Nom, u.Cognoms)
}

func (u Usuari) RoleSet() models.RoleSet {
	set := models.RoleSet{}
	for _, rol := range u.Rols {
		set[rol.Rol] = true
	}
	return set
}
