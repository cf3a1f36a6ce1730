package departamenthandler

import (
	"hr-access-backend/db"
	departamentstore "hr-access-backend/lib/dicts/departament/store"
	usuaristore "hr-access-backend/lib/identity/store"
	"hr-access-backend/lib/utils/apperrors"
	initchecker "hr-access-backend/lib/utils/init-checker"
	dictapimodels "hr-access-backend/models/api/dict"
	dbmodels "hr-access-backend/models/db"

	"github.com/pkg/errors"
)

type Provider interface {
	Create(data dictapimodels.DepartamentData) (id string, err error)
	Get(id string) (view dictapimodels.DepartamentView, err error)
	Update(id string, data dictapimodels.DepartamentData) error
	Delete(id string) error
	List() (list []dictapimodels.DepartamentView, err error)
	SetGestors(id string, gestors []dictapimodels.GestorData) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:       departamentstore.NewInstance(db.DB),
		usuariStore: usuaristore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"usuariStore", instance.usuariStore,
	)
	Instance = instance
}

type impl struct {
	store       departamentstore.Provider
	usuariStore usuaristore.Provider
}

func (i impl) Create(data dictapimodels.DepartamentData) (id string, err error) {
	rec := dbmodels.Departament{
		Nom:   data.Nom,
		Codi:  data.Codi,
		Actiu: data.Actiu,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", errors.Wrap(err, "failed to create departament")
	}
	return id, nil
}

func (i impl) Get(id string) (view dictapimodels.DepartamentView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return view, err
	}
	if rec == nil {
		return view, apperrors.NotFound("departament no trobat")
	}
	return dictapimodels.DepartamentConvert(*rec), nil
}

func (i impl) Update(id string, data dictapimodels.DepartamentData) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.NotFound("departament no trobat")
	}
	updMap := map[string]interface{}{
		"nom":   data.Nom,
		"codi":  data.Codi,
		"actiu": data.Actiu,
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

func (i impl) List() (list []dictapimodels.DepartamentView, err error) {
	recs, err := i.store.List()
	if err != nil {
		return nil, err
	}
	list = make([]dictapimodels.DepartamentView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, dictapimodels.DepartamentConvert(rec))
	}
	return list, nil
}

func (i impl) SetGestors(id string, gestors []dictapimodels.GestorData) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.NotFound("departament no trobat")
	}
	dbGestors := make([]dbmodels.DepartamentGestor, 0, len(gestors))
	for _, gestor := range gestors {
		usuari, err := i.usuariStore.GetByID(gestor.UsuariID)
		if err != nil {
			return err
		}
		if usuari == nil || !usuari.IsActive {
			return apperrors.Validation("l'usuari gestor no existeix o no està actiu")
		}
		dbGestors = append(dbGestors, dbmodels.DepartamentGestor{
			DepartamentID: id,
			UsuariID:      gestor.UsuariID,
			Principal:     gestor.Principal,
		})
	}
	return i.store.SaveGestors(id, dbGestors)
}
