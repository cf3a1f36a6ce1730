package mobilitatstore

import (
	"hr-access-backend/models"
	dbmodels "hr-access-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.ProcessMobilitat) (id string, err error)
	GetByID(id string) (rec *dbmodels.ProcessMobilitat, err error)
	Update(id string, updMap map[string]interface{}) error
	// UpdateWhereEstat moves the process only from the expected phase.
	// False means a concurrent transition won.
	UpdateWhereEstat(id string, expected models.MobilitatEstat, updMap map[string]interface{}) (bool, error)
	List(filter ListFilter) (list []dbmodels.ProcessMobilitat, err error)
	GetOpenByEmpleat(empleatID string) (rec *dbmodels.ProcessMobilitat, err error)
	SaveSistema(rec dbmodels.ProcessMobilitatSistema) (id string, err error)
	UpdateSistema(id string, updMap map[string]interface{}) error
	GetSistema(id string) (rec *dbmodels.ProcessMobilitatSistema, err error)
	ListSistemes(processID string) (list []dbmodels.ProcessMobilitatSistema, err error)
}

type ListFilter struct {
	EmpleatID *string
	Estat     *models.MobilitatEstat
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ProcessMobilitat) (id string, err error) {
	err = i.db.
		Omit("Empleat", "DepartamentActual", "DepartamentNou", "Sistemes").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.ProcessMobilitat, error) {
	rec := dbmodels.ProcessMobilitat{}
	err := i.db.
		Where("id = ?", id).
		Preload("Empleat").
		Preload("DepartamentActual").
		Preload("DepartamentNou").
		Preload("Sistemes").
		Preload("Sistemes.Sistema").
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
		Model(&dbmodels.ProcessMobilitat{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) UpdateWhereEstat(id string, expected models.MobilitatEstat, updMap map[string]interface{}) (bool, error) {
	res := i.db.
		Model(&dbmodels.ProcessMobilitat{}).
		Where("id = ?", id).
		Where("estat = ?", expected).
		Updates(updMap)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (i impl) List(filter ListFilter) (list []dbmodels.ProcessMobilitat, err error) {
	list = []dbmodels.ProcessMobilitat{}
	q := i.db.
		Preload("Empleat").
		Preload("DepartamentActual").
		Preload("DepartamentNou").
		Order("created_at DESC")
	if filter.EmpleatID != nil {
		q = q.Where("empleat_id = ?", *filter.EmpleatID)
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

func (i impl) GetOpenByEmpleat(empleatID string) (*dbmodels.ProcessMobilitat, error) {
	rec := dbmodels.ProcessMobilitat{}
	err := i.db.
		Where("empleat_id = ?", empleatID).
		Where("estat NOT IN ?", []models.MobilitatEstat{models.MobilitatAprovada, models.MobilitatFinalitzada}).
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

func (i impl) SaveSistema(rec dbmodels.ProcessMobilitatSistema) (id string, err error) {
	err = i.db.
		Omit("Sistema").
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
		Model(&dbmodels.ProcessMobilitatSistema{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) GetSistema(id string) (*dbmodels.ProcessMobilitatSistema, error) {
	rec := dbmodels.ProcessMobilitatSistema{}
	err := i.db.
		Where("id = ?", id).
		Preload("Sistema").
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

func (i impl) ListSistemes(processID string) (list []dbmodels.ProcessMobilitatSistema, err error) {
	list = []dbmodels.ProcessMobilitatSistema{}
	err = i.db.
		Where("process_id = ?", processID).
		Preload("Sistema").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
