package empleathandler

import (
	"time"

	"hr-access-backend/db"
	checklisthandler "hr-access-backend/lib/checklist"
	departamentstore "hr-access-backend/lib/dicts/departament/store"
	sistemastore "hr-access-backend/lib/dicts/sistema/store"
	accesstore "hr-access-backend/lib/empleat/acces-store"
	empleatstore "hr-access-backend/lib/empleat/store"
	"hr-access-backend/lib/utils/apperrors"
	"hr-access-backend/lib/utils/helpers"
	initchecker "hr-access-backend/lib/utils/init-checker"
	"hr-access-backend/models"
	checklistapimodels "hr-access-backend/models/api/checklist"
	empleatapimodels "hr-access-backend/models/api/empleat"
	dbmodels "hr-access-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(data empleatapimodels.EmpleatData) (id string, err error)
	Get(id string) (view empleatapimodels.EmpleatView, err error)
	Update(id string, data empleatapimodels.EmpleatData) error
	List(filter empleatstore.ListFilter) (list []empleatapimodels.EmpleatView, err error)
	// ChangeEstat moves the employee through its lifecycle. Transition into a
	// leaving state opens the offboarding checklist.
	ChangeEstat(id string, estat models.EmpleatEstat) error
	GrantAcces(id string, data empleatapimodels.AccesData) error
	RevokeAcces(id, accesID string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:            empleatstore.NewInstance(db.DB),
		accesStore:       accesstore.NewInstance(db.DB),
		departamentStore: departamentstore.NewInstance(db.DB),
		sistemaStore:     sistemastore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"accesStore", instance.accesStore,
		"departamentStore", instance.departamentStore,
		"sistemaStore", instance.sistemaStore,
	)
	Instance = instance
}

type impl struct {
	store            empleatstore.Provider
	accesStore       accesstore.Provider
	departamentStore departamentstore.Provider
	sistemaStore     sistemastore.Provider
}

func (i impl) getLogger(empleatID string) *log.Entry {
	return log.WithField("empleat_id", empleatID)
}

func (i impl) Create(data empleatapimodels.EmpleatData) (id string, err error) {
	departament, err := i.departamentStore.GetByID(data.DepartamentID)
	if err != nil {
		return "", err
	}
	if departament == nil || !departament.Actiu {
		return "", apperrors.Validation("el departament no existeix o no està actiu")
	}
	rec := dbmodels.Empleat{
		Codi:          helpers.NewPublicCode(helpers.EmpleatCodePrefix),
		Nom:           data.Nom,
		Cognoms:       data.Cognoms,
		Email:         data.Email,
		DepartamentID: data.DepartamentID,
		CarrecNom:     data.CarrecNom,
		Estat:         models.EmpleatActiu,
		DataAlta:      time.Now(),
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", errors.Wrap(err, "failed to create empleat")
	}
	logger := i.getLogger(id)
	logger.WithField("codi", rec.Codi).Info("empleat created")

	_, err = checklisthandler.Instance.Instantiate(checklistapimodels.InstantiateData{
		EmpleatID: id,
		Tipus:     models.ChecklistOnboarding,
	})
	if err != nil {
		// the employee record stands, but the misconfiguration goes back to
		// the actor so the checklist can be opened once it is fixed
		logger.WithError(err).Error("failed to open onboarding checklist")
		return "", err
	}
	return id, nil
}

func (i impl) Get(id string) (view empleatapimodels.EmpleatView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return view, err
	}
	if rec == nil {
		return view, apperrors.NotFound("empleat no trobat")
	}
	return empleatapimodels.EmpleatConvert(*rec), nil
}

func (i impl) Update(id string, data empleatapimodels.EmpleatData) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.NotFound("empleat no trobat")
	}
	updMap := map[string]interface{}{
		"nom":        data.Nom,
		"cognoms":    data.Cognoms,
		"email":      data.Email,
		"carrec_nom": data.CarrecNom,
	}
	// department moves go through the mobility process, not a plain edit
	if data.DepartamentID != "" && data.DepartamentID != rec.DepartamentID {
		return apperrors.Validation("el canvi de departament es gestiona amb un procés de mobilitat")
	}
	return i.store.Update(id, updMap)
}

func (i impl) List(filter empleatstore.ListFilter) (list []empleatapimodels.EmpleatView, err error) {
	recs, err := i.store.List(filter)
	if err != nil {
		return nil, err
	}
	list = make([]empleatapimodels.EmpleatView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, empleatapimodels.EmpleatConvert(rec))
	}
	return list, nil
}

func (i impl) ChangeEstat(id string, estat models.EmpleatEstat) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.NotFound("empleat no trobat")
	}
	if rec.Estat == estat {
		return nil
	}
	updMap := map[string]interface{}{"estat": estat}
	leaving := estat.IsBaixa() && !rec.Estat.IsBaixa()
	if leaving {
		updMap["data_baixa"] = time.Now()
	}
	if err = i.store.Update(id, updMap); err != nil {
		return err
	}
	logger := i.getLogger(id).
		WithField("estat_anterior", rec.Estat).
		WithField("estat_nou", estat)
	logger.Info("empleat estat changed")

	if leaving {
		// revoke first: the accesses must die even if the checklist cannot open
		if err = i.accesStore.DeactivateAllByEmpleat(id); err != nil {
			return errors.Wrap(err, "failed to deactivate empleat accesses")
		}
		_, err = checklisthandler.Instance.Instantiate(checklistapimodels.InstantiateData{
			EmpleatID: id,
			Tipus:     models.ChecklistOffboarding,
		})
		if err != nil {
			logger.WithError(err).Error("failed to open offboarding checklist")
			return err
		}
	}
	return nil
}

func (i impl) GrantAcces(id string, data empleatapimodels.AccesData) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.NotFound("empleat no trobat")
	}
	sistema, err := i.sistemaStore.GetByID(data.SistemaID)
	if err != nil {
		return err
	}
	if sistema == nil || !sistema.Actiu {
		return apperrors.Validation("el sistema no existeix o no està actiu")
	}
	nivell, err := i.sistemaStore.GetNivell(data.NivellAccesID)
	if err != nil {
		return err
	}
	if nivell == nil || nivell.SistemaID != data.SistemaID {
		return apperrors.Validation("el nivell d'accés no pertany al sistema")
	}
	existing, err := i.accesStore.Get(id, data.SistemaID)
	if err != nil {
		return err
	}
	acces := dbmodels.AccesEmpleat{
		EmpleatID:     id,
		SistemaID:     data.SistemaID,
		NivellAccesID: data.NivellAccesID,
		Actiu:         true,
		DataConcessio: time.Now(),
	}
	if existing != nil {
		acces.BaseModel = existing.BaseModel
	}
	if _, err = i.accesStore.Save(acces); err != nil {
		return errors.Wrap(err, "failed to grant acces")
	}
	i.getLogger(id).
		WithField("sistema_id", data.SistemaID).
		WithField("nivell_acces_id", data.NivellAccesID).
		Info("acces granted")
	return nil
}

func (i impl) RevokeAcces(id, accesID string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.NotFound("empleat no trobat")
	}
	for _, acces := range rec.Accessos {
		if acces.ID == accesID {
			if err = i.accesStore.Deactivate(accesID); err != nil {
				return err
			}
			i.getLogger(id).
				WithField("acces_id", accesID).
				Info("acces revoked")
			return nil
		}
	}
	return apperrors.NotFound("accés no trobat")
}
