package usuaristore

import (
	"hr-access-backend/models"
	dbmodels "hr-access-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Usuari) (id string, err error)
	GetByID(id string) (rec *dbmodels.Usuari, err error)
	FindByEmail(email string) (rec *dbmodels.Usuari, err error)
	Update(id string, updMap map[string]interface{}) error
	List() (list []dbmodels.Usuari, err error)
	SetRoles(usuariID string, roles []models.UserRole) error
	ListActiveByRole(role models.UserRole) (list []dbmodels.Usuari, err error)
	ListGestors(departamentID string) (list []dbmodels.DepartamentGestor, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Usuari) (id string, err error) {
	err = i.db.
		Omit("Empleat", "Rols").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Usuari, error) {
	rec := dbmodels.Usuari{}
	err := i.db.
		Where("id = ?", id).
		Preload("Rols").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) FindByEmail(email string) (*dbmodels.Usuari, error) {
	rec := dbmodels.Usuari{}
	err := i.db.
		Where("email = ?", email).
		Preload("Rols").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.Usuari{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) List() (list []dbmodels.Usuari, err error) {
	list = []dbmodels.Usuari{}
	err = i.db.
		Order("cognoms ASC, nom ASC").
		Preload("Rols").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) SetRoles(usuariID string, roles []models.UserRole) error {
	err := i.db.
		Where("usuari_id = ?", usuariID).
		Delete(&dbmodels.UsuariRol{}).
		Error
	if err != nil {
		return err
	}
	for _, role := range roles {
		rec := dbmodels.UsuariRol{
			UsuariID: usuariID,
			Rol:      role,
		}
		if err = i.db.Save(&rec).Error; err != nil {
			return err
		}
	}
	return nil
}

func (i impl) ListActiveByRole(role models.UserRole) (list []dbmodels.Usuari, err error) {
	list = []dbmodels.Usuari{}
	err = i.db.
		Joins("JOIN usuari_rols ON usuari_rols.usuari_id = usuaris.id").
		Where("usuari_rols.rol = ?", role).
		Where("usuaris.is_active = ?", true).
		Preload("Rols").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListGestors(departamentID string) (list []dbmodels.DepartamentGestor, err error) {
	list = []dbmodels.DepartamentGestor{}
	err = i.db.
		Where("departament_id = ?", departamentID).
		Order("principal DESC, created_at ASC").
		Preload("Usuari").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
