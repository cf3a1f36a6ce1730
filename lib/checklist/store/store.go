package checkliststore

import (
	"hr-access-backend/models"
	dbmodels "hr-access-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.ChecklistInstance) (id string, err error)
	GetByID(id string) (rec *dbmodels.ChecklistInstance, err error)
	Update(id string, updMap map[string]interface{}) error
	// UpdateWhereEstat applies updMap only when the instance still has the
	// expected state. Returns false when another writer got there first.
	UpdateWhereEstat(id string, expected models.ChecklistEstat, updMap map[string]interface{}) (bool, error)
	Delete(id string) error
	List(filter ListFilter) (list []dbmodels.ChecklistInstance, err error)
	GetOpenByEmpleat(empleatID string, tipus models.ChecklistTipus) (rec *dbmodels.ChecklistInstance, err error)
}

type ListFilter struct {
	EmpleatID *string
	Tipus     *models.ChecklistTipus
	Estat     *models.ChecklistEstat
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ChecklistInstance) (id string, err error) {
	err = i.db.
		Omit("Empleat", "Template", "Tasques").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.ChecklistInstance, error) {
	rec := dbmodels.ChecklistInstance{}
	err := i.db.
		Where("id = ?", id).
		Preload("Empleat").
		Preload("Template").
		Preload("Tasques", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("checklist_tasks.ordre ASC")
		}).
		Preload("Tasques.UsuariAssignat").
		Preload("Tasques.UsuariCompletat").
		Preload("Tasques.Documents").
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
		Model(&dbmodels.ChecklistInstance{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) UpdateWhereEstat(id string, expected models.ChecklistEstat, updMap map[string]interface{}) (bool, error) {
	res := i.db.
		Model(&dbmodels.ChecklistInstance{}).
		Where("id = ?", id).
		Where("estat = ?", expected).
		Updates(updMap)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.ChecklistInstance{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	return i.db.Delete(&rec).Error
}

func (i impl) List(filter ListFilter) (list []dbmodels.ChecklistInstance, err error) {
	list = []dbmodels.ChecklistInstance{}
	q := i.db.
		Preload("Empleat").
		Preload("Tasques", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("checklist_tasks.ordre ASC")
		}).
		Order("created_at DESC")
	if filter.EmpleatID != nil {
		q = q.Where("empleat_id = ?", *filter.EmpleatID)
	}
	if filter.Tipus != nil {
		q = q.Where("tipus = ?", *filter.Tipus)
	}
	if filter.Estat != nil {
		q = q.Where("estat = ?", *filter.Estat)
	}
	err = q.Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) GetOpenByEmpleat(empleatID string, tipus models.ChecklistTipus) (*dbmodels.ChecklistInstance, error) {
	rec := dbmodels.ChecklistInstance{}
	err := i.db.
		Where("empleat_id = ?", empleatID).
		Where("tipus = ?", tipus).
		Where("estat <> ?", models.ChecklistCompletada).
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
