package templatestore

import (
	"hr-access-backend/models"
	dbmodels "hr-access-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.ChecklistTemplate) (id string, err error)
	GetByID(id string) (rec *dbmodels.ChecklistTemplate, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	List(tipus *models.ChecklistTipus) (list []dbmodels.ChecklistTemplate, err error)
	SaveTasques(templateID string, tasques []dbmodels.ChecklistTemplateTasca) error
	// Resolve picks the template to instantiate for a department: the
	// department-specific active template wins, the global one is the fallback.
	Resolve(tipus models.ChecklistTipus, departamentID string) (rec *dbmodels.ChecklistTemplate, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ChecklistTemplate) (id string, err error) {
	err = i.db.
		Omit("Departament").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.ChecklistTemplate, error) {
	rec := dbmodels.ChecklistTemplate{}
	err := i.db.
		Where("id = ?", id).
		Preload("Departament").
		Preload("Tasques", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("checklist_template_tascas.ordre ASC")
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

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.ChecklistTemplate{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(id string) error {
	rec := dbmodels.ChecklistTemplate{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	return i.db.Delete(&rec).Error
}

func (i impl) List(tipus *models.ChecklistTipus) (list []dbmodels.ChecklistTemplate, err error) {
	list = []dbmodels.ChecklistTemplate{}
	q := i.db.
		Preload("Departament").
		Order("nom ASC")
	if tipus != nil {
		q = q.Where("tipus = ?", *tipus)
	}
	err = q.Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) SaveTasques(templateID string, tasques []dbmodels.ChecklistTemplateTasca) error {
	err := i.db.
		Where("template_id = ?", templateID).
		Delete(&dbmodels.ChecklistTemplateTasca{}).
		Error
	if err != nil {
		return err
	}
	for idx := range tasques {
		tasques[idx].TemplateID = templateID
		if err = i.db.Save(&tasques[idx]).Error; err != nil {
			return err
		}
	}
	return nil
}

func (i impl) Resolve(tipus models.ChecklistTipus, departamentID string) (*dbmodels.ChecklistTemplate, error) {
	rec := dbmodels.ChecklistTemplate{}
	err := i.db.
		Where("tipus = ?", tipus).
		Where("actiu = ?", true).
		Where("departament_id = ? OR departament_id IS NULL", departamentID).
		Order("departament_id ASC NULLS LAST").
		Preload("Tasques", func(tx *gorm.DB) *gorm.DB {
			return tx.Where("checklist_template_tascas.actiu = ?", true).
				Order("checklist_template_tascas.ordre ASC")
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
