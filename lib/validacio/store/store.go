package validaciostore

import (
	"encoding/json"

	"hr-access-backend/models"
	dbmodels "hr-access-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Validacio) (id string, err error)
	GetByID(id string) (rec *dbmodels.Validacio, err error)
	// Resolve records a decision only while the validation is still pending.
	// A false return means it was already resolved.
	Resolve(id string, updMap map[string]interface{}) (bool, error)
	ListBySolicitud(solicitudID string) (list []dbmodels.Validacio, err error)
	ListPendingFor(usuariID string) (list []dbmodels.Validacio, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Validacio) (id string, err error) {
	err = i.db.
		Omit("Sistema", "Validador", "ValidatPer").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Validacio, error) {
	rec := dbmodels.Validacio{}
	err := i.db.
		Where("id = ?", id).
		Preload("Solicitud").
		Preload("Sistema").
		Preload("Validador").
		Preload("ValidatPer").
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

func (i impl) Resolve(id string, updMap map[string]interface{}) (bool, error) {
	res := i.db.
		Model(&dbmodels.Validacio{}).
		Where("id = ?", id).
		Where("estat = ?", models.ValidacioPendent).
		Updates(updMap)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (i impl) ListBySolicitud(solicitudID string) (list []dbmodels.Validacio, err error) {
	list = []dbmodels.Validacio{}
	err = i.db.
		Where("solicitud_id = ?", solicitudID).
		Preload("Sistema").
		Preload("Validador").
		Preload("ValidatPer").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListPendingFor(usuariID string) (list []dbmodels.Validacio, err error) {
	list = []dbmodels.Validacio{}
	member, err := json.Marshal([]string{usuariID})
	if err != nil {
		return nil, err
	}
	err = i.db.
		Where("estat = ?", models.ValidacioPendent).
		Where("validador_id = ? OR grup_validadors_ids @> ?", usuariID, string(member)).
		Preload("Sistema").
		Preload("Solicitud").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
