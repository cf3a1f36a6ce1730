package departamentstore

import (
	dbmodels "hr-access-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Departament) (id string, err error)
	GetByID(id string) (rec *dbmodels.Departament, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	List() (list []dbmodels.Departament, err error)
	SaveGestors(departamentID string, gestors []dbmodels.DepartamentGestor) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Departament) (id string, err error) {
	err = i.db.
		Omit("Gestors", "Empleats").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Departament, error) {
	rec := dbmodels.Departament{}
	err := i.db.
		Where("id = ?", id).
		Preload("Gestors").
		Preload("Gestors.Usuari").
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
		Model(&dbmodels.Departament{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(id string) error {
	rec := dbmodels.Departament{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	return i.db.
		Delete(&rec).
		Error
}

func (i impl) List() (list []dbmodels.Departament, err error) {
	list = []dbmodels.Departament{}
	err = i.db.
		Order("nom ASC").
		Preload("Gestors").
		Preload("Gestors.Usuari").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) SaveGestors(departamentID string, gestors []dbmodels.DepartamentGestor) error {
	err := i.db.
		Where("departament_id = ?", departamentID).
		Delete(&dbmodels.DepartamentGestor{}).
		Error
	if err != nil {
		return err
	}
	for _, gestor := range gestors {
		gestor.DepartamentID = departamentID
		if err = i.db.Omit("Usuari").Save(&gestor).Error; err != nil {
			return err
		}
	}
	return nil
}
