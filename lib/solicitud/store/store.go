package solicitudstore

import (
	"hr-access-backend/models"
	dbmodels "hr-access-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.SolicitudAcces) (id string, err error)
	GetByID(id string) (rec *dbmodels.SolicitudAcces, err error)
	Update(id string, updMap map[string]interface{}) error
	// UpdateWhereEstat is the concurrency guard for state transitions: the
	// row moves only from the expected state, everything else is a lost race.
	UpdateWhereEstat(id string, expected models.SolicitudEstat, updMap map[string]interface{}) (bool, error)
	Delete(id string) error
	List(filter ListFilter) (list []dbmodels.SolicitudAcces, err error)
	SaveSistema(rec dbmodels.SolicitudSistema) (id string, err error)
	UpdateSistema(id string, updMap map[string]interface{}) error
	ListSistemes(solicitudID string) (list []dbmodels.SolicitudSistema, err error)
}

type ListFilter struct {
	SolicitantID         *string
	EmpleatDestinatariID *string
	Estat                *models.SolicitudEstat
	Tipus                *models.SolicitudTipus
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.SolicitudAcces) (id string, err error) {
	err = i.db.
		Omit("Solicitant", "EmpleatDestinatari", "Sistemes", "Validacions").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.SolicitudAcces, error) {
	rec := dbmodels.SolicitudAcces{}
	err := i.db.
		Where("id = ?", id).
		Preload("Solicitant").
		Preload("EmpleatDestinatari").
		Preload("EmpleatDestinatari.Departament").
		Preload("Sistemes").
		Preload("Sistemes.Sistema").
		Preload("Sistemes.NivellAcces").
		Preload("Validacions").
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
		Model(&dbmodels.SolicitudAcces{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) UpdateWhereEstat(id string, expected models.SolicitudEstat, updMap map[string]interface{}) (bool, error) {
	res := i.db.
		Model(&dbmodels.SolicitudAcces{}).
		Where("id = ?", id).
		Where("estat = ?", expected).
		Updates(updMap)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.SolicitudAcces{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	return i.db.Delete(&rec).Error
}

func (i impl) List(filter ListFilter) (list []dbmodels.SolicitudAcces, err error) {
	list = []dbmodels.SolicitudAcces{}
	q := i.db.
		Preload("Solicitant").
		Preload("EmpleatDestinatari").
		Preload("Sistemes").
		Order("created_at DESC")
	if filter.SolicitantID != nil {
		q = q.Where("solicitant_id = ?", *filter.SolicitantID)
	}
	if filter.EmpleatDestinatariID != nil {
		q = q.Where("empleat_destinatari_id = ?", *filter.EmpleatDestinatariID)
	}
	if filter.Estat != nil {
		q = q.Where("estat = ?", *filter.Estat)
	}
	if filter.Tipus != nil {
		q = q.Where("tipus = ?", *filter.Tipus)
	}
	err = q.Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) SaveSistema(rec dbmodels.SolicitudSistema) (id string, err error) {
	err = i.db.
		Omit("Sistema", "NivellAcces").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) UpdateSistema(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.SolicitudSistema{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) ListSistemes(solicitudID string) (list []dbmodels.SolicitudSistema, err error) {
	list = []dbmodels.SolicitudSistema{}
	err = i.db.
		Where("solicitud_id = ?", solicitudID).
		Preload("Sistema").
		Preload("NivellAcces").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
