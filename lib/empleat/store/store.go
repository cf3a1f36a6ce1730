package empleatstore

import (
	"hr-access-backend/models"
	dbmodels "hr-access-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Empleat) (id string, err error)
	GetByID(id string) (rec *dbmodels.Empleat, err error)
	GetByCodi(codi string) (rec *dbmodels.Empleat, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	List(filter ListFilter) (list []dbmodels.Empleat, err error)
}

type ListFilter struct {
	DepartamentID *string
	Estat         *models.EmpleatEstat
	Search        *string
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Empleat) (id string, err error) {
	err = i.db.
		Omit("Checklists", "Accessos", "Departament").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Empleat, error) {
	rec := dbmodels.Empleat{}
	err := i.db.
		Where("id = ?", id).
		Preload("Departament").
		Preload("Accessos", func(tx *gorm.DB) *gorm.DB {
			return tx.Where("acces_empleats.actiu = ?", true)
		}).
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

func (i impl) GetByCodi(codi string) (*dbmodels.Empleat, error) {
	rec := dbmodels.Empleat{}
	err := i.db.
		Where("codi = ?", codi).
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
		Model(&dbmodels.Empleat{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(id string) error {
	rec := dbmodels.Empleat{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	return i.db.
		Delete(&rec).
		Error
}

func (i impl) List(filter ListFilter) (list []dbmodels.Empleat, err error) {
	list = []dbmodels.Empleat{}
	q := i.db.
		Preload("Departament").
		Order("cognoms ASC, nom ASC")
	if filter.DepartamentID != nil {
		q = q.Where("departament_id = ?", *filter.DepartamentID)
	}
	if filter.Estat != nil {
		q = q.Where("estat = ?", *filter.Estat)
	}
	if filter.Search != nil && *filter.Search != "" {
		pattern := "%" + *filter.Search + "%"
		q = q.Where("nom ILIKE ? OR cognoms ILIKE ? OR codi ILIKE ?", pattern, pattern, pattern)
	}
	err = q.Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
