package sistemahandler

import (
	"hr-access-backend/db"
	departamentstore "hr-access-backend/lib/dicts/departament/store"
	sistemastore "hr-access-backend/lib/dicts/sistema/store"
	usuaristore "hr-access-backend/lib/identity/store"
	"hr-access-backend/lib/utils/apperrors"
	initchecker "hr-access-backend/lib/utils/init-checker"
	"hr-access-backend/models"
	dictapimodels "hr-access-backend/models/api/dict"
	dbmodels "hr-access-backend/models/db"

	"github.com/pkg/errors"
)

type Provider interface {
	Create(data dictapimodels.SistemaData) (id string, err error)
	Get(id string) (view dictapimodels.SistemaView, err error)
	Update(id string, data dictapimodels.SistemaData) error
	Delete(id string) error
	List() (list []dictapimodels.SistemaView, err error)
	SaveNivell(sistemaID string, nivellID string, data dictapimodels.NivellData) (id string, err error)
	DeleteNivell(sistemaID, nivellID string) error
	SaveValidador(sistemaID string, validadorID string, data dictapimodels.ValidadorData) (id string, err error)
	DeleteValidador(sistemaID, validadorID string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:            sistemastore.NewInstance(db.DB),
		usuariStore:      usuaristore.NewInstance(db.DB),
		departamentStore: departamentstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"usuariStore", instance.usuariStore,
		"departamentStore", instance.departamentStore,
	)
	Instance = instance
}

type impl struct {
	store            sistemastore.Provider
	usuariStore      usuaristore.Provider
	departamentStore departamentstore.Provider
}

func (i impl) Create(data dictapimodels.SistemaData) (id string, err error) {
	rec := dbmodels.Sistema{
		Nom:         data.Nom,
		Codi:        data.Codi,
		Descripcio:  data.Descripcio,
		Responsable: data.Responsable,
		Actiu:       data.Actiu,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", errors.Wrap(err, "failed to create sistema")
	}
	return id, nil
}

func (i impl) Get(id string) (view dictapimodels.SistemaView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return view, err
	}
	if rec == nil {
		return view, apperrors.NotFound("sistema no trobat")
	}
	return dictapimodels.SistemaConvert(*rec), nil
}

func (i impl) Update(id string, data dictapimodels.SistemaData) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.NotFound("sistema no trobat")
	}
	updMap := map[string]interface{}{
		"nom":         data.Nom,
		"codi":        data.Codi,
		"descripcio":  data.Descripcio,
		"responsable": data.Responsable,
		"actiu":       data.Actiu,
	}
	return i.store.Update(id, updMap)
}

func (i impl) Delete(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return nil
	}
	return i.store.Delete(id)
}

func (i impl) List() (list []dictapimodels.SistemaView, err error) {
	recs, err := i.store.List()
	if err != nil {
		return nil, err
	}
	list = make([]dictapimodels.SistemaView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, dictapimodels.SistemaConvert(rec))
	}
	return list, nil
}

func (i impl) SaveNivell(sistemaID string, nivellID string, data dictapimodels.NivellData) (id string, err error) {
	sistema, err := i.store.GetByID(sistemaID)
	if err != nil {
		return "", err
	}
	if sistema == nil {
		return "", apperrors.NotFound("sistema no trobat")
	}
	rec := dbmodels.NivellAccesSistema{
		SistemaID: sistemaID,
		Nom:       data.Nom,
		Ordre:     data.Ordre,
		Actiu:     data.Actiu,
	}
	if nivellID != "" {
		existing, err := i.store.GetNivell(nivellID)
		if err != nil {
			return "", err
		}
		if existing == nil || existing.SistemaID != sistemaID {
			return "", apperrors.NotFound("nivell d'accés no trobat")
		}
		rec.BaseModel = existing.BaseModel
	}
	return i.store.SaveNivell(rec)
}

func (i impl) DeleteNivell(sistemaID, nivellID string) error {
	existing, err := i.store.GetNivell(nivellID)
	if err != nil {
		return err
	}
	if existing == nil || existing.SistemaID != sistemaID {
		return nil
	}
	return i.store.DeleteNivell(nivellID)
}

func (i impl) SaveValidador(sistemaID string, validadorID string, data dictapimodels.ValidadorData) (id string, err error) {
	sistema, err := i.store.GetByID(sistemaID)
	if err != nil {
		return "", err
	}
	if sistema == nil {
		return "", apperrors.NotFound("sistema no trobat")
	}
	rec := dbmodels.SistemaValidador{
		SistemaID: sistemaID,
		Tipus:     data.Tipus,
		Ordre:     data.Ordre,
		Requerit:  data.Requerit,
		Actiu:     data.Actiu,
	}
	switch data.Tipus {
	case models.ValidadorUsuariEspecific:
		usuari, err := i.usuariStore.GetByID(data.UsuariID)
		if err != nil {
			return "", err
		}
		if usuari == nil || !usuari.IsActive {
			return "", apperrors.Validation("l'usuari validador no existeix o no està actiu")
		}
		rec.UsuariID = &data.UsuariID
	case models.ValidadorGestorDepartament:
		departament, err := i.departamentStore.GetByID(data.DepartamentID)
		if err != nil {
			return "", err
		}
		if departament == nil {
			return "", apperrors.Validation("el departament validador no existeix")
		}
		rec.DepartamentID = &data.DepartamentID
	}
	if validadorID != "" {
		rec.BaseModel = dbmodels.BaseModel{ID: validadorID}
	}
	return i.store.SaveValidador(rec)
}

func (i impl) DeleteValidador(sistemaID, validadorID string) error {
	return i.store.DeleteValidador(validadorID)
}
