package sistemastore

import (
	dbmodels "hr-access-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Sistema) (id string, err error)
	GetByID(id string) (rec *dbmodels.Sistema, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	List() (list []dbmodels.Sistema, err error)
	GetNivell(id string) (rec *dbmodels.NivellAccesSistema, err error)
	SaveNivell(rec dbmodels.NivellAccesSistema) (id string, err error)
	DeleteNivell(id string) error
	SaveValidador(rec dbmodels.SistemaValidador) (id string, err error)
	DeleteValidador(id string) error
	// ListValidadors returns the active validator configuration in order.
	ListValidadors(sistemaID string) (list []dbmodels.SistemaValidador, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Sistema) (id string, err error) {
	err = i.db.
		Omit("Nivells", "Validadors").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Sistema, error) {
	rec := dbmodels.Sistema{}
	err := i.db.
		Where("id = ?", id).
		Preload("Nivells", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("nivell_acces_sistemas.ordre ASC")
		}).
		Preload("Validadors", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("sistema_validadors.ordre ASC")
		}).
		Preload("Validadors.Usuari").
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
		Model(&dbmodels.Sistema{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(id string) error {
	rec := dbmodels.Sistema{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	return i.db.
		Delete(&rec).
		Error
}

func (i impl) List() (list []dbmodels.Sistema, err error) {
	list = []dbmodels.Sistema{}
	err = i.db.
		Order("nom ASC").
		Preload("Nivells").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) GetNivell(id string) (*dbmodels.NivellAccesSistema, error) {
	rec := dbmodels.NivellAccesSistema{}
	err := i.db.
		Where("id = ?", id).
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

func (i impl) SaveNivell(rec dbmodels.NivellAccesSistema) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) DeleteNivell(id string) error {
	rec := dbmodels.NivellAccesSistema{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	return i.db.Delete(&rec).Error
}

func (i impl) SaveValidador(rec dbmodels.SistemaValidador) (id string, err error) {
	err = i.db.
		Omit("Usuari", "Departament").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) DeleteValidador(id string) error {
	rec := dbmodels.SistemaValidador{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	return i.db.Delete(&rec).Error
}

func (i impl) ListValidadors(sistemaID string) (list []dbmodels.SistemaValidador, err error) {
	list = []dbmodels.SistemaValidador{}
	err = i.db.
		Where("sistema_id = ?", sistemaID).
		Where("actiu = ?", true).
		Order("ordre ASC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
