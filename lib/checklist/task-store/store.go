package taskstore

import (
	"hr-access-backend/models"
	dbmodels "hr-access-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.ChecklistTask) (id string, err error)
	GetByID(id string) (rec *dbmodels.ChecklistTask, err error)
	Update(id string, updMap map[string]interface{}) error
	// Complete marks the task done only if it is still open. Returns false
	// when it was already completed.
	Complete(id string, updMap map[string]interface{}) (bool, error)
	ListByInstance(instanceID string) (list []dbmodels.ChecklistTask, err error)
	ListAssigned(usuariID string, roles models.RoleSet) (list []dbmodels.ChecklistTask, err error)
	SaveDocument(rec dbmodels.ChecklistTaskDocument) (id string, err error)
	GetDocument(id string) (rec *dbmodels.ChecklistTaskDocument, err error)
	DeleteDocument(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ChecklistTask) (id string, err error) {
	err = i.db.
		Omit("Instance", "UsuariAssignat", "UsuariCompletat", "Documents").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.ChecklistTask, error) {
	rec := dbmodels.ChecklistTask{}
	err := i.db.
		Where("id = ?", id).
		Preload("Instance").
		Preload("UsuariAssignat").
		Preload("Documents").
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
		Model(&dbmodels.ChecklistTask{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Complete(id string, updMap map[string]interface{}) (bool, error) {
	res := i.db.
		Model(&dbmodels.ChecklistTask{}).
		Where("id = ?", id).
		Where("completada = ?", false).
		Updates(updMap)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (i impl) ListByInstance(instanceID string) (list []dbmodels.ChecklistTask, err error) {
	list = []dbmodels.ChecklistTask{}
	err = i.db.
		Where("instance_id = ?", instanceID).
		Order("ordre ASC").
		Preload("UsuariAssignat").
		Preload("Documents").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListAssigned(usuariID string, roles models.RoleSet) (list []dbmodels.ChecklistTask, err error) {
	list = []dbmodels.ChecklistTask{}
	q := i.db.
		Where("completada = ?", false).
		Order("data_limit ASC NULLS LAST").
		Preload("Instance").
		Preload("Instance.Empleat")
	roleList := roles.List()
	if len(roleList) > 0 {
		q = q.Where("usuari_assignat_id = ? OR (usuari_assignat_id IS NULL AND rol_assignat IN ?)", usuariID, roleList)
	} else {
		q = q.Where("usuari_assignat_id = ?", usuariID)
	}
	err = q.Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) SaveDocument(rec dbmodels.ChecklistTaskDocument) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetDocument(id string) (*dbmodels.ChecklistTaskDocument, error) {
	rec := dbmodels.ChecklistTaskDocument{}
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

func (i impl) DeleteDocument(id string) error {
	rec := dbmodels.ChecklistTaskDocument{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	return i.db.Delete(&rec).Error
}
