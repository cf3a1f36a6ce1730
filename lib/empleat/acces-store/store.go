package accesstore

import (
	dbmodels "hr-access-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Provider maintains the per-employee system access register. Approved
// access requests and finalized mobility processes write through here.
type Provider interface {
	Get(empleatID, sistemaID string) (rec *dbmodels.AccesEmpleat, err error)
	ListActiveByEmpleat(empleatID string) (list []dbmodels.AccesEmpleat, err error)
	Save(rec dbmodels.AccesEmpleat) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	Deactivate(id string) error
	DeactivateAllByEmpleat(empleatID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Get(empleatID, sistemaID string) (*dbmodels.AccesEmpleat, error) {
	rec := dbmodels.AccesEmpleat{}
	err := i.db.
		Where("empleat_id = ?", empleatID).
		Where("sistema_id = ?", sistemaID).
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

func (i impl) ListActiveByEmpleat(empleatID string) (list []dbmodels.AccesEmpleat, err error) {
	list = []dbmodels.AccesEmpleat{}
	err = i.db.
		Where("empleat_id = ?", empleatID).
		Where("actiu = ?", true).
		Preload("Sistema").
		Preload("NivellAcces").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Save(rec dbmodels.AccesEmpleat) (id string, err error) {
	err = i.db.
		Omit("Sistema", "NivellAcces").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.AccesEmpleat{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Deactivate(id string) error {
	return i.Update(id, map[string]interface{}{"actiu": false})
}

func (i impl) DeactivateAllByEmpleat(empleatID string) error {
	return i.db.
		Model(&dbmodels.AccesEmpleat{}).
		Where("empleat_id = ?", empleatID).
		Where("actiu = ?", true).
		Update("actiu", false).
		Error
}
