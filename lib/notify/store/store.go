package notifystore

import (
	"hr-access-backend/models"
	dbmodels "hr-access-backend/models/db"

	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Notificacio) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	// ListPendents returns outbox rows the delivery worker should attempt,
	// oldest first, capped by limit.
	ListPendents(limit int, maxIntents int) (list []dbmodels.Notificacio, err error)
	ListByUsuari(usuariID string) (list []dbmodels.Notificacio, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Notificacio) (id string, err error) {
	err = i.db.Save(&rec).Error
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
		Model(&dbmodels.Notificacio{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) ListPendents(limit int, maxIntents int) (list []dbmodels.Notificacio, err error) {
	list = []dbmodels.Notificacio{}
	err = i.db.
		Where("estat = ?", models.NotificacioPendent).
		Where("intents < ?", maxIntents).
		Order("created_at ASC").
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByUsuari(usuariID string) (list []dbmodels.Notificacio, err error) {
	list = []dbmodels.Notificacio{}
	err = i.db.
		Where("usuari_id = ?", usuariID).
		Order("created_at DESC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
