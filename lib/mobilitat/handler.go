package mobilitathandler

import (
	"context"
	"time"

	"hr-access-backend/db"
	departamentstore "hr-access-backend/lib/dicts/departament/store"
	sistemastore "hr-access-backend/lib/dicts/sistema/store"
	accesstore "hr-access-backend/lib/empleat/acces-store"
	empleatstore "hr-access-backend/lib/empleat/store"
	"hr-access-backend/lib/identity"
	mobilitatstore "hr-access-backend/lib/mobilitat/store"
	notifyhandler "hr-access-backend/lib/notify"
	solicitudhandler "hr-access-backend/lib/solicitud"
	solicitudstore "hr-access-backend/lib/solicitud/store"
	"hr-access-backend/lib/utils/apperrors"
	"hr-access-backend/lib/utils/helpers"
	initchecker "hr-access-backend/lib/utils/init-checker"
	"hr-access-backend/lib/utils/lock"
	validaciohandler "hr-access-backend/lib/validacio"
	"hr-access-backend/models"
	mobilitatapimodels "hr-access-backend/models/api/mobilitat"
	dbmodels "hr-access-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const lockWait = 5 * time.Second

type Provider interface {
	Create(data mobilitatapimodels.MobilitatCreateData) (id string, err error)
	Get(id string) (view mobilitatapimodels.MobilitatView, err error)
	List(filter mobilitatstore.ListFilter) (list []mobilitatapimodels.MobilitatView, err error)
	SetAccioDeptActual(processID, sistemaRowID, actorID string, roles models.RoleSet, data mobilitatapimodels.AccioDeptActualData) error
	SetAccioDeptNou(processID, sistemaRowID, actorID string, roles models.RoleSet, data mobilitatapimodels.AccioDeptNouData) error
	// ProcessarDeptActual closes the current department's review phase and
	// hands the process to the new department.
	ProcessarDeptActual(processID, actorID string, roles models.RoleSet) error
	// ProcessarDeptNou computes the final disposition of every system and
	// either finalizes the process or opens a validation round.
	ProcessarDeptNou(processID, actorID string, roles models.RoleSet) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:            mobilitatstore.NewInstance(db.DB),
		empleatStore:     empleatstore.NewInstance(db.DB),
		accesStore:       accesstore.NewInstance(db.DB),
		departamentStore: departamentstore.NewInstance(db.DB),
		sistemaStore:     sistemastore.NewInstance(db.DB),
		solicitudStore:   solicitudstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"empleatStore", instance.empleatStore,
		"accesStore", instance.accesStore,
		"departamentStore", instance.departamentStore,
		"sistemaStore", instance.sistemaStore,
		"solicitudStore", instance.solicitudStore,
	)
	Instance = instance
	solicitudhandler.MobilitatFinalizer = finalizeFromSolicitud
}

func newWithTx(tx *gorm.DB) impl {
	return impl{
		store:            mobilitatstore.NewInstance(tx),
		empleatStore:     empleatstore.NewInstance(tx),
		accesStore:       accesstore.NewInstance(tx),
		departamentStore: departamentstore.NewInstance(tx),
		sistemaStore:     sistemastore.NewInstance(tx),
		solicitudStore:   solicitudstore.NewInstance(tx),
	}
}

type impl struct {
	store            mobilitatstore.Provider
	empleatStore     empleatstore.Provider
	accesStore       accesstore.Provider
	departamentStore departamentstore.Provider
	sistemaStore     sistemastore.Provider
	solicitudStore   solicitudstore.Provider
}

func (i impl) getLogger(processID string) *log.Entry {
	return log.WithField("process_mobilitat_id", processID)
}

// ComputeEstatFinal resolves a system's disposition from the two department
// decisions. The new department can resurrect or change what the current one
// marked for removal.
func ComputeEstatFinal(actual models.AccioDeptActual, nou models.AccioDeptNou) models.EstatFinal {
	switch nou {
	case models.DeptNouAfegir:
		return models.FinalAfegir
	case models.DeptNouModificar:
		return models.FinalModificar
	}
	if actual == models.DeptActualEliminar || nou == models.DeptNouEliminar {
		return models.FinalEliminar
	}
	return models.FinalMantenir
}

func (i impl) Create(data mobilitatapimodels.MobilitatCreateData) (id string, err error) {
	empleat, err := i.empleatStore.GetByID(data.EmpleatID)
	if err != nil {
		return "", err
	}
	if empleat == nil {
		return "", apperrors.NotFound("empleat no trobat")
	}
	if empleat.Estat.IsBaixa() {
		return "", apperrors.Validation("no es pot iniciar una mobilitat per a un empleat de baixa")
	}
	if empleat.DepartamentID == data.DepartamentNouID {
		return "", apperrors.Validation("el departament de destinació és el mateix que l'actual")
	}
	departamentNou, err := i.departamentStore.GetByID(data.DepartamentNouID)
	if err != nil {
		return "", err
	}
	if departamentNou == nil || !departamentNou.Actiu {
		return "", apperrors.Validation("el departament de destinació no existeix o no està actiu")
	}
	open, err := i.store.GetOpenByEmpleat(data.EmpleatID)
	if err != nil {
		return "", err
	}
	if open != nil {
		return "", apperrors.StateConflict("l'empleat ja té un procés de mobilitat obert")
	}

	accessos, err := i.accesStore.ListActiveByEmpleat(data.EmpleatID)
	if err != nil {
		return "", err
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		h := newWithTx(tx)
		rec := dbmodels.ProcessMobilitat{
			Codi:                helpers.NewPublicCode(helpers.MobilitatCodePrefix),
			EmpleatID:           data.EmpleatID,
			DepartamentActualID: empleat.DepartamentID,
			DepartamentNouID:    data.DepartamentNouID,
			Estat:               models.MobilitatPendentDeptActual,
			Justificacio:        data.Justificacio,
		}
		id, err = h.store.Create(rec)
		if err != nil {
			return errors.Wrap(err, "failed to create process mobilitat")
		}
		for _, acces := range accessos {
			nivellActual := acces.NivellAccesID
			row := dbmodels.ProcessMobilitatSistema{
				ProcessID:           id,
				SistemaID:           acces.SistemaID,
				NivellAccesActualID: &nivellActual,
				AccioDeptActual:     models.DeptActualMantenir,
				AccioDeptNou:        models.DeptNouMantenir,
			}
			if _, err := h.store.SaveSistema(row); err != nil {
				return errors.Wrap(err, "failed to seed mobilitat sistema row")
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	i.getLogger(id).
		WithField("empleat_id", data.EmpleatID).
		WithField("sistemes", len(accessos)).
		Info("process mobilitat created")
	return id, nil
}

func (i impl) Get(id string) (view mobilitatapimodels.MobilitatView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return view, err
	}
	if rec == nil {
		return view, apperrors.NotFound("procés de mobilitat no trobat")
	}
	return mobilitatapimodels.MobilitatConvert(*rec), nil
}

func (i impl) List(filter mobilitatstore.ListFilter) (list []mobilitatapimodels.MobilitatView, err error) {
	recs, err := i.store.List(filter)
	if err != nil {
		return nil, err
	}
	list = make([]mobilitatapimodels.MobilitatView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, mobilitatapimodels.MobilitatConvert(rec))
	}
	return list, nil
}

func (i impl) authorizePhase(rec dbmodels.ProcessMobilitat, actorID string, roles models.RoleSet, departamentID string) error {
	if roles.IsAdmin() {
		return nil
	}
	isManager, err := identity.Instance.IsManagerOf(actorID, departamentID)
	if err != nil {
		return err
	}
	if !isManager {
		return apperrors.Unauthorized("només un gestor del departament pot actuar en aquesta fase")
	}
	return nil
}

func (i impl) SetAccioDeptActual(processID, sistemaRowID, actorID string, roles models.RoleSet, data mobilitatapimodels.AccioDeptActualData) error {
	rec, err := i.store.GetByID(processID)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.NotFound("procés de mobilitat no trobat")
	}
	if rec.Estat != models.MobilitatPendentDeptActual {
		return apperrors.StateConflict("la fase del departament actual ja està tancada")
	}
	if err = i.authorizePhase(*rec, actorID, roles, rec.DepartamentActualID); err != nil {
		return err
	}
	row, err := i.store.GetSistema(sistemaRowID)
	if err != nil {
		return err
	}
	if row == nil || row.ProcessID != processID {
		return apperrors.NotFound("sistema del procés no trobat")
	}
	return i.store.UpdateSistema(sistemaRowID, map[string]interface{}{
		"accio_dept_actual": data.Accio,
	})
}

func (i impl) SetAccioDeptNou(processID, sistemaRowID, actorID string, roles models.RoleSet, data mobilitatapimodels.AccioDeptNouData) error {
	rec, err := i.store.GetByID(processID)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.NotFound("procés de mobilitat no trobat")
	}
	if rec.Estat != models.MobilitatPendentDeptNou {
		return apperrors.StateConflict("la fase del departament nou no està oberta")
	}
	if err = i.authorizePhase(*rec, actorID, roles, rec.DepartamentNouID); err != nil {
		return err
	}
	row, err := i.store.GetSistema(sistemaRowID)
	if err != nil {
		return err
	}
	if row == nil || row.ProcessID != processID {
		return apperrors.NotFound("sistema del procés no trobat")
	}
	updMap := map[string]interface{}{
		"accio_dept_nou": data.Accio,
	}
	if data.NivellAccesFinalID != "" {
		nivell, err := i.sistemaStore.GetNivell(data.NivellAccesFinalID)
		if err != nil {
			return err
		}
		if nivell == nil || nivell.SistemaID != row.SistemaID {
			return apperrors.Validation("el nivell d'accés final no pertany al sistema")
		}
		updMap["nivell_acces_final_id"] = data.NivellAccesFinalID
	}
	return i.store.UpdateSistema(sistemaRowID, updMap)
}

func (i impl) ProcessarDeptActual(processID, actorID string, roles models.RoleSet) error {
	var departamentNouID, empleatNom, departamentNom, codi string
	locked, err := lock.WithDelay(context.Background(), "mobilitat:"+processID, lockWait, func() error {
		rec, err := i.store.GetByID(processID)
		if err != nil {
			return err
		}
		if rec == nil {
			return apperrors.NotFound("procés de mobilitat no trobat")
		}
		if !rec.Estat.IsAllowChange(models.MobilitatPendentDeptNou) {
			return apperrors.StateConflict("el procés ja ha superat la fase del departament actual")
		}
		if err = i.authorizePhase(*rec, actorID, roles, rec.DepartamentActualID); err != nil {
			return err
		}
		err = db.DB.Transaction(func(tx *gorm.DB) error {
			h := newWithTx(tx)
			for _, row := range rec.Sistemes {
				if err := h.store.UpdateSistema(row.ID, map[string]interface{}{
					"processat_dept_actual": true,
				}); err != nil {
					return err
				}
			}
			ok, err := h.store.UpdateWhereEstat(processID, models.MobilitatPendentDeptActual, map[string]interface{}{
				"estat": models.MobilitatPendentDeptNou,
			})
			if err != nil {
				return err
			}
			if !ok {
				return apperrors.StateConflict("el procés ja ha superat la fase del departament actual")
			}
			return nil
		})
		if err != nil {
			return err
		}
		departamentNouID = rec.DepartamentNouID
		codi = rec.Codi
		if rec.Empleat != nil {
			empleatNom = rec.Empleat.GetFullName()
		}
		if rec.DepartamentNou != nil {
			departamentNom = rec.DepartamentNou.Nom
		}
		return nil
	})
	if err != nil {
		return err
	}
	if !locked {
		return apperrors.StateConflict("el procés s'està processant, torna-ho a provar")
	}
	managerIDs, err := identity.Instance.ManagerIDsOf(departamentNouID)
	if err != nil {
		i.getLogger(processID).WithError(err).Error("failed to resolve new department managers for notification")
		return nil
	}
	notifyhandler.Instance.EnqueueForUsuaris(managerIDs, models.NotifyMobilitatDeptNou, notifyhandler.TemplateParams{
		MobilitatCodi:  codi,
		EmpleatNom:     empleatNom,
		DepartamentNom: departamentNom,
	})
	i.getLogger(processID).Info("current department phase processed")
	return nil
}

func (i impl) ProcessarDeptNou(processID, actorID string, roles models.RoleSet) error {
	locked, err := lock.WithDelay(context.Background(), "mobilitat:"+processID, lockWait, func() error {
		rec, err := i.store.GetByID(processID)
		if err != nil {
			return err
		}
		if rec == nil {
			return apperrors.NotFound("procés de mobilitat no trobat")
		}
		if rec.Estat != models.MobilitatPendentDeptNou {
			return apperrors.StateConflict("el procés no està a la fase del departament nou")
		}
		if err = i.authorizePhase(*rec, actorID, roles, rec.DepartamentNouID); err != nil {
			return err
		}
		if len(rec.Sistemes) == 0 {
			return apperrors.Configuration("l'empleat no té cap sistema associat")
		}

		needsValidation := []dbmodels.ProcessMobilitatSistema{}
		for idx := range rec.Sistemes {
			row := &rec.Sistemes[idx]
			row.EstatFinal = ComputeEstatFinal(row.AccioDeptActual, row.AccioDeptNou)
			if row.EstatFinal.RequiresValidation() {
				if row.NivellAccesFinalID == nil {
					return apperrors.Validation("falta el nivell d'accés final d'un sistema a validar")
				}
				needsValidation = append(needsValidation, *row)
			}
		}

		var validadorIDs []string
		err = db.DB.Transaction(func(tx *gorm.DB) error {
			h := newWithTx(tx)
			for _, row := range rec.Sistemes {
				if err := h.store.UpdateSistema(row.ID, map[string]interface{}{
					"estat_final":        row.EstatFinal,
					"processat_dept_nou": true,
				}); err != nil {
					return err
				}
			}

			solicitud := dbmodels.SolicitudAcces{
				Codi:                 helpers.NewPublicCode(helpers.SolicitudCodePrefix),
				SolicitantID:         actorID,
				EmpleatDestinatariID: rec.EmpleatID,
				Justificacio:         "Procés de mobilitat " + rec.Codi,
				Tipus:                models.SolicitudMobilitat,
				ProcessMobilitatID:   &processID,
			}

			if len(needsValidation) == 0 {
				// nothing to validate: the request exists only as the
				// finalization artifact
				now := time.Now()
				solicitud.Estat = models.SolicitudFinalitzada
				solicitud.DataResolucio = &now
				solicitudID, err := h.solicitudStore.Create(solicitud)
				if err != nil {
					return errors.Wrap(err, "failed to create mobilitat solicitud")
				}
				return h.finalize(tx, rec, solicitudID, true)
			}

			solicitud.Estat = models.SolicitudPendent
			solicitudID, err := h.solicitudStore.Create(solicitud)
			if err != nil {
				return errors.Wrap(err, "failed to create mobilitat solicitud")
			}
			for _, row := range needsValidation {
				_, err = h.solicitudStore.SaveSistema(dbmodels.SolicitudSistema{
					SolicitudID:   solicitudID,
					SistemaID:     row.SistemaID,
					NivellAccesID: *row.NivellAccesFinalID,
				})
				if err != nil {
					return err
				}
			}
			created, err := h.solicitudStore.GetByID(solicitudID)
			if err != nil {
				return err
			}
			validadorIDs, err = validaciohandler.NewHandlerWithTx(tx).SpawnForSolicitud(*created)
			if err != nil {
				return err
			}
			if _, err = h.solicitudStore.UpdateWhereEstat(solicitudID, models.SolicitudPendent, map[string]interface{}{
				"estat": models.SolicitudValidant,
			}); err != nil {
				return err
			}
			ok, err := h.store.UpdateWhereEstat(processID, models.MobilitatPendentDeptNou, map[string]interface{}{
				"estat":              models.MobilitatValidant,
				"solicitud_acces_id": solicitudID,
			})
			if err != nil {
				return err
			}
			if !ok {
				return apperrors.StateConflict("el procés ja ha superat la fase del departament nou")
			}
			return nil
		})
		if err != nil {
			return err
		}
		if len(validadorIDs) > 0 {
			empleatNom := ""
			if rec.Empleat != nil {
				empleatNom = rec.Empleat.GetFullName()
			}
			notifyhandler.Instance.EnqueueForUsuaris(validadorIDs, models.NotifyValidacioPendent, notifyhandler.TemplateParams{
				MobilitatCodi: rec.Codi,
				EmpleatNom:    empleatNom,
			})
		}
		i.getLogger(processID).
			WithField("a_validar", len(needsValidation)).
			Info("new department phase processed")
		return nil
	})
	if err != nil {
		return err
	}
	if !locked {
		return apperrors.StateConflict("el procés s'està processant, torna-ho a provar")
	}
	return nil
}

// finalize applies the per-system dispositions, moves the employee to the new
// department and closes the process. With aprovat false the validated
// dispositions (afegir/modificar) are skipped and only removals apply.
func (i impl) finalize(tx *gorm.DB, rec *dbmodels.ProcessMobilitat, solicitudID string, aprovat bool) error {
	if !rec.Estat.IsAllowChange(models.MobilitatFinalitzada) {
		return apperrors.StateConflict("el procés de mobilitat no es pot finalitzar des de l'estat actual")
	}
	now := time.Now()
	for _, row := range rec.Sistemes {
		switch row.EstatFinal {
		case models.FinalEliminar:
			acces, err := i.accesStore.Get(rec.EmpleatID, row.SistemaID)
			if err != nil {
				return err
			}
			if acces != nil && acces.Actiu {
				if err = i.accesStore.Deactivate(acces.ID); err != nil {
					return err
				}
			}
		case models.FinalAfegir, models.FinalModificar:
			if !aprovat || row.NivellAccesFinalID == nil {
				continue
			}
			acces := dbmodels.AccesEmpleat{
				EmpleatID:     rec.EmpleatID,
				SistemaID:     row.SistemaID,
				NivellAccesID: *row.NivellAccesFinalID,
				Actiu:         true,
				DataConcessio: now,
			}
			existing, err := i.accesStore.Get(rec.EmpleatID, row.SistemaID)
			if err != nil {
				return err
			}
			if existing != nil {
				acces.BaseModel = existing.BaseModel
			}
			if _, err = i.accesStore.Save(acces); err != nil {
				return err
			}
		}
	}
	if err := i.empleatStore.Update(rec.EmpleatID, map[string]interface{}{
		"departament_id": rec.DepartamentNouID,
	}); err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"estat":              models.MobilitatFinalitzada,
		"solicitud_acces_id": solicitudID,
		"data_finalitzacio":  now,
	}
	if !aprovat {
		updMap["justificacio"] = rec.Justificacio + "\nSol·licitud d'accés rebutjada: només s'apliquen les eliminacions."
	}
	ok, err := i.store.UpdateWhereEstat(rec.ID, rec.Estat, updMap)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.StateConflict("el procés de mobilitat ha canviat d'estat")
	}
	notifyhandler.Instance.EnqueueForRole(models.RrhhRole, models.NotifyMobilitatFinalitzada, notifyhandler.TemplateParams{
		MobilitatCodi: rec.Codi,
		EmpleatNom:    empleatName(rec),
	})
	i.getLogger(rec.ID).
		WithField("aprovat", aprovat).
		Info("process mobilitat finalized")
	return nil
}

func empleatName(rec *dbmodels.ProcessMobilitat) string {
	if rec.Empleat != nil {
		return rec.Empleat.GetFullName()
	}
	return ""
}

// finalizeFromSolicitud closes the process once its synthesized access
// request reaches a terminal state. Runs inside the resolver's transaction.
func finalizeFromSolicitud(tx *gorm.DB, processID string, aprovat bool) error {
	h := newWithTx(tx)
	rec, err := h.store.GetByID(processID)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.NotFound("procés de mobilitat no trobat")
	}
	if rec.Estat != models.MobilitatValidant {
		return apperrors.StateConflict("el procés de mobilitat no està en validació")
	}
	if aprovat {
		if !rec.Estat.IsAllowChange(models.MobilitatAprovada) {
			return apperrors.StateConflict("el procés de mobilitat ha canviat d'estat")
		}
		ok, err := h.store.UpdateWhereEstat(processID, models.MobilitatValidant, map[string]interface{}{
			"estat": models.MobilitatAprovada,
		})
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.StateConflict("el procés de mobilitat ha canviat d'estat")
		}
		rec.Estat = models.MobilitatAprovada
	}
	solicitudID := ""
	if rec.SolicitudAccesID != nil {
		solicitudID = *rec.SolicitudAccesID
	}
	return h.finalize(tx, rec, solicitudID, aprovat)
}
