package solicitudhandler

import (
	"bytes"
	"time"

	"hr-access-backend/db"
	checkliststore "hr-access-backend/lib/checklist/store"
	taskstore "hr-access-backend/lib/checklist/task-store"
	sistemastore "hr-access-backend/lib/dicts/sistema/store"
	accesstore "hr-access-backend/lib/empleat/acces-store"
	empleatstore "hr-access-backend/lib/empleat/store"
	xlsexport "hr-access-backend/lib/export/xls"
	notifyhandler "hr-access-backend/lib/notify"
	solicitudstore "hr-access-backend/lib/solicitud/store"
	"hr-access-backend/lib/utils/apperrors"
	"hr-access-backend/lib/utils/helpers"
	initchecker "hr-access-backend/lib/utils/init-checker"
	validaciohandler "hr-access-backend/lib/validacio"
	"hr-access-backend/models"
	solicitudapimodels "hr-access-backend/models/api/solicitud"
	dbmodels "hr-access-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// MobilitatFinalizer closes the mobility process a resolved mobility request
// belongs to. Wired by the mobility handler at init to avoid a package cycle.
var MobilitatFinalizer func(tx *gorm.DB, processID string, aprovat bool) error

type Provider interface {
	Create(actorID string, data solicitudapimodels.SolicitudCreateData) (id string, err error)
	// Submit spawns the per-system validations and moves the request into
	// the validating state. Only the requester or an administrator may
	// submit a draft.
	Submit(id, actorID string, roles models.RoleSet) error
	Get(id string) (view solicitudapimodels.SolicitudView, err error)
	List(filter solicitudstore.ListFilter) (list []solicitudapimodels.SolicitudView, err error)
	Delete(id, actorID string, roles models.RoleSet) error
	// ResolveValidacio records one validator decision and re-aggregates the
	// request state.
	ResolveValidacio(validacioID, actorID string, roles models.RoleSet, data solicitudapimodels.ResolveData) error
	// ForceApprove and ForceReject are administrator overrides that resolve
	// every pending validation at once.
	ForceApprove(id, actorID string, observacions string) error
	ForceReject(id, actorID string, data solicitudapimodels.RejectData) error
	ExportToXls(filter solicitudstore.ListFilter) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:          solicitudstore.NewInstance(db.DB),
		sistemaStore:   sistemastore.NewInstance(db.DB),
		empleatStore:   empleatstore.NewInstance(db.DB),
		accesStore:     accesstore.NewInstance(db.DB),
		checklistStore: checkliststore.NewInstance(db.DB),
		taskStore:      taskstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"sistemaStore", instance.sistemaStore,
		"empleatStore", instance.empleatStore,
		"accesStore", instance.accesStore,
		"checklistStore", instance.checklistStore,
		"taskStore", instance.taskStore,
	)
	Instance = instance
}

func NewHandlerWithTx(tx *gorm.DB) Provider {
	return impl{
		store:          solicitudstore.NewInstance(tx),
		sistemaStore:   sistemastore.NewInstance(tx),
		empleatStore:   empleatstore.NewInstance(tx),
		accesStore:     accesstore.NewInstance(tx),
		checklistStore: checkliststore.NewInstance(tx),
		taskStore:      taskstore.NewInstance(tx),
		tx:             tx,
	}
}

type impl struct {
	store          solicitudstore.Provider
	sistemaStore   sistemastore.Provider
	empleatStore   empleatstore.Provider
	accesStore     accesstore.Provider
	checklistStore checkliststore.Provider
	taskStore      taskstore.Provider
	tx             *gorm.DB
}

func (i impl) getLogger(solicitudID string) *log.Entry {
	return log.WithField("solicitud_id", solicitudID)
}

// ComputeEstat aggregates the validation decisions: one rejection sinks the
// request, unanimity approves it, anything else is still validating.
func ComputeEstat(validacions []dbmodels.Validacio) models.SolicitudEstat {
	if len(validacions) == 0 {
		return models.SolicitudValidant
	}
	allApproved := true
	for _, validacio := range validacions {
		switch validacio.Estat {
		case models.ValidacioRebutjada:
			return models.SolicitudRebutjada
		case models.ValidacioAprovada:
		default:
			allApproved = false
		}
	}
	if allApproved {
		return models.SolicitudAprovada
	}
	return models.SolicitudValidant
}

func (i impl) Create(actorID string, data solicitudapimodels.SolicitudCreateData) (id string, err error) {
	empleat, err := i.empleatStore.GetByID(data.EmpleatDestinatariID)
	if err != nil {
		return "", err
	}
	if empleat == nil {
		return "", apperrors.NotFound("empleat destinatari no trobat")
	}
	if empleat.Estat.IsBaixa() {
		return "", apperrors.Validation("no es pot sol·licitar accés per a un empleat de baixa")
	}

	seen := map[string]bool{}
	for _, item := range data.Sistemes {
		if seen[item.SistemaID] {
			return "", apperrors.Validation("el mateix sistema apareix més d'una vegada a la sol·licitud")
		}
		seen[item.SistemaID] = true
		sistema, err := i.sistemaStore.GetByID(item.SistemaID)
		if err != nil {
			return "", err
		}
		if sistema == nil || !sistema.Actiu {
			return "", apperrors.Validation("el sistema sol·licitat no existeix o no està actiu")
		}
		nivell, err := i.sistemaStore.GetNivell(item.NivellAccesID)
		if err != nil {
			return "", err
		}
		if nivell == nil || nivell.SistemaID != item.SistemaID {
			return "", apperrors.Validation("el nivell d'accés no pertany al sistema sol·licitat")
		}
		acces, err := i.accesStore.Get(data.EmpleatDestinatariID, item.SistemaID)
		if err != nil {
			return "", err
		}
		if acces != nil && acces.Actiu && acces.NivellAccesID == item.NivellAccesID {
			return "", apperrors.Validation("l'empleat ja té aquest accés concedit")
		}
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		h := NewHandlerWithTx(tx).(impl)
		rec := dbmodels.SolicitudAcces{
			Codi:                 helpers.NewPublicCode(helpers.SolicitudCodePrefix),
			SolicitantID:         actorID,
			EmpleatDestinatariID: data.EmpleatDestinatariID,
			Justificacio:         data.Justificacio,
			Tipus:                models.SolicitudNormal,
			Estat:                models.SolicitudPendent,
		}
		id, err = h.store.Create(rec)
		if err != nil {
			return errors.Wrap(err, "failed to create solicitud")
		}
		for _, item := range data.Sistemes {
			_, err = h.store.SaveSistema(dbmodels.SolicitudSistema{
				SolicitudID:   id,
				SistemaID:     item.SistemaID,
				NivellAccesID: item.NivellAccesID,
			})
			if err != nil {
				return errors.Wrap(err, "failed to save solicitud sistema")
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	i.getLogger(id).
		WithField("empleat_id", data.EmpleatDestinatariID).
		WithField("sistemes", len(data.Sistemes)).
		Info("solicitud created")
	return id, nil
}

func (i impl) Submit(id, actorID string, roles models.RoleSet) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.NotFound("sol·licitud no trobada")
	}
	if rec.SolicitantID != actorID && !roles.IsAdmin() {
		return apperrors.Unauthorized("només el sol·licitant pot enviar la sol·licitud")
	}
	if rec.Estat != models.SolicitudPendent {
		return apperrors.StateConflict("la sol·licitud ja s'ha enviat a validació")
	}
	var validadorIDs []string
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		h := NewHandlerWithTx(tx).(impl)
		validadorIDs, err = validaciohandler.NewHandlerWithTx(tx).SpawnForSolicitud(*rec)
		if err != nil {
			return err
		}
		ok, err := h.store.UpdateWhereEstat(id, models.SolicitudPendent, map[string]interface{}{
			"estat": models.SolicitudValidant,
		})
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.StateConflict("la sol·licitud ja s'ha enviat a validació")
		}
		return nil
	})
	if err != nil {
		return err
	}
	empleatNom := ""
	if rec.EmpleatDestinatari != nil {
		empleatNom = rec.EmpleatDestinatari.GetFullName()
	}
	notifyhandler.Instance.EnqueueForUsuaris(validadorIDs, models.NotifyValidacioPendent, notifyhandler.TemplateParams{
		SolicitudCodi: rec.Codi,
		EmpleatNom:    empleatNom,
	})
	i.getLogger(id).Info("solicitud submitted for validation")
	return nil
}

func (i impl) Get(id string) (view solicitudapimodels.SolicitudView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return view, err
	}
	if rec == nil {
		return view, apperrors.NotFound("sol·licitud no trobada")
	}
	return solicitudapimodels.SolicitudConvert(*rec), nil
}

func (i impl) List(filter solicitudstore.ListFilter) (list []solicitudapimodels.SolicitudView, err error) {
	recs, err := i.store.List(filter)
	if err != nil {
		return nil, err
	}
	list = make([]solicitudapimodels.SolicitudView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, solicitudapimodels.SolicitudConvert(rec))
	}
	return list, nil
}

func (i impl) ExportToXls(filter solicitudstore.ListFilter) (*bytes.Buffer, error) {
	recs, err := i.store.List(filter)
	if err != nil {
		return nil, err
	}
	return xlsexport.Instance.ExportSolicitudList(recs)
}

func (i impl) Delete(id, actorID string, roles models.RoleSet) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return nil
	}
	if rec.SolicitantID != actorID && !roles.IsAdmin() {
		return apperrors.Unauthorized("només el sol·licitant pot eliminar la sol·licitud")
	}
	if !rec.Estat.AllowDelete() {
		return apperrors.StateConflict("només es poden eliminar sol·licituds pendents")
	}
	return i.store.Delete(id)
}

func (i impl) ResolveValidacio(validacioID, actorID string, roles models.RoleSet, data solicitudapimodels.ResolveData) error {
	var solicitudID string
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		validacio, err := validaciohandler.NewHandlerWithTx(tx).Resolve(validacioID, actorID, roles, data)
		if err != nil {
			return err
		}
		solicitudID = validacio.SolicitudID
		h := NewHandlerWithTx(tx).(impl)
		if data.Decisio == models.ValidacioAprovada {
			if err = h.markSistemaAprovat(validacio.SolicitudID, validacio.SistemaID); err != nil {
				return err
			}
		}
		return h.aggregate(tx, validacio.SolicitudID, actorID)
	})
	if err != nil {
		return err
	}
	return i.notifyIfResolved(solicitudID)
}

func (i impl) markSistemaAprovat(solicitudID, sistemaID string) error {
	items, err := i.store.ListSistemes(solicitudID)
	if err != nil {
		return err
	}
	for _, item := range items {
		if item.SistemaID == sistemaID {
			return i.store.UpdateSistema(item.ID, map[string]interface{}{"aprovat": true})
		}
	}
	return nil
}

// aggregate recomputes the request state after a validation decision and,
// when the request is approved, grants the accesses and closes it.
func (i impl) aggregate(tx *gorm.DB, solicitudID, actorID string) error {
	rec, err := i.store.GetByID(solicitudID)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.NotFound("sol·licitud no trobada")
	}
	if rec.Estat.IsTerminal() {
		return nil
	}
	estat := ComputeEstat(rec.Validacions)
	now := time.Now()
	switch estat {
	case models.SolicitudRebutjada:
		justificacio := rec.Justificacio
		for _, validacio := range rec.Validacions {
			if validacio.Estat == models.ValidacioRebutjada && validacio.Observacions != "" {
				justificacio = justificacio + "\nMotiu del rebuig: " + validacio.Observacions
				break
			}
		}
		ok, err := i.store.UpdateWhereEstat(solicitudID, rec.Estat, map[string]interface{}{
			"estat":          models.SolicitudRebutjada,
			"data_resolucio": now,
			"justificacio":   justificacio,
		})
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.StateConflict("la sol·licitud ha canviat d'estat, torna-ho a provar")
		}
		return i.closeMobilitat(tx, rec, false)
	case models.SolicitudAprovada:
		if err = i.grantAccessos(*rec, now); err != nil {
			return err
		}
		if err = i.openProvisioningTasks(*rec, now); err != nil {
			return err
		}
		// approval flows straight into the final state once access is granted
		ok, err := i.store.UpdateWhereEstat(solicitudID, rec.Estat, map[string]interface{}{
			"estat":          models.SolicitudFinalitzada,
			"data_resolucio": now,
		})
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.StateConflict("la sol·licitud ha canviat d'estat, torna-ho a provar")
		}
		return i.closeMobilitat(tx, rec, true)
	}
	return nil
}

func (i impl) grantAccessos(rec dbmodels.SolicitudAcces, now time.Time) error {
	// a mobility request's access changes are applied by the mobility closer
	if rec.Tipus == models.SolicitudMobilitat {
		return nil
	}
	for _, item := range rec.Sistemes {
		acces := dbmodels.AccesEmpleat{
			EmpleatID:     rec.EmpleatDestinatariID,
			SistemaID:     item.SistemaID,
			NivellAccesID: item.NivellAccesID,
			Actiu:         true,
			DataConcessio: now,
		}
		existing, err := i.accesStore.Get(rec.EmpleatDestinatariID, item.SistemaID)
		if err != nil {
			return err
		}
		if existing != nil {
			acces.BaseModel = existing.BaseModel
		}
		if _, err = i.accesStore.Save(acces); err != nil {
			return errors.Wrap(err, "failed to grant acces")
		}
		if err = i.store.UpdateSistema(item.ID, map[string]interface{}{"aprovat": true}); err != nil {
			return err
		}
	}
	return nil
}

// openProvisioningTasks appends one technical-setup task per approved system
// to the employee's open onboarding checklist, linked back to the request.
// Without an open checklist the grant stands on its own.
func (i impl) openProvisioningTasks(rec dbmodels.SolicitudAcces, now time.Time) error {
	if rec.Tipus == models.SolicitudMobilitat {
		return nil
	}
	instance, err := i.checklistStore.GetOpenByEmpleat(rec.EmpleatDestinatariID, models.ChecklistOnboarding)
	if err != nil {
		return err
	}
	if instance == nil {
		return nil
	}
	rol := models.ItRole
	for _, item := range rec.Sistemes {
		solicitudID := rec.ID
		nom := "Provisionar accés"
		if item.Sistema != nil {
			nom = "Provisionar accés a " + item.Sistema.Nom
		}
		tasca := dbmodels.ChecklistTask{
			InstanceID:       instance.ID,
			SolicitudAccesID: &solicitudID,
			Nom:              nom,
			Descripcio:       "Sol·licitud d'accés " + rec.Codi,
			Obligatoria:      true,
			RolAssignat:      &rol,
			DataAssignacio:   now,
		}
		if _, err := i.taskStore.Create(tasca); err != nil {
			return errors.Wrap(err, "failed to create provisioning task")
		}
	}
	return nil
}

func (i impl) closeMobilitat(tx *gorm.DB, rec *dbmodels.SolicitudAcces, aprovat bool) error {
	if rec.Tipus != models.SolicitudMobilitat || rec.ProcessMobilitatID == nil {
		return nil
	}
	if MobilitatFinalizer == nil {
		return apperrors.Configuration("el tancament de mobilitat no està inicialitzat")
	}
	return MobilitatFinalizer(tx, *rec.ProcessMobilitatID, aprovat)
}

func (i impl) notifyIfResolved(solicitudID string) error {
	rec, err := i.store.GetByID(solicitudID)
	if err != nil {
		return err
	}
	if rec == nil || !rec.Estat.IsTerminal() {
		return nil
	}
	decisio := "aprovada"
	if rec.Estat == models.SolicitudRebutjada {
		decisio = "rebutjada"
	}
	observacions := ""
	for _, validacio := range rec.Validacions {
		if validacio.Estat == models.ValidacioRebutjada {
			observacions = validacio.Observacions
			break
		}
	}
	notifyhandler.Instance.EnqueueForUsuari(rec.SolicitantID, models.NotifySolicitudResolta, notifyhandler.TemplateParams{
		SolicitudCodi: rec.Codi,
		Decisio:       decisio,
		Observacions:  observacions,
	})
	return nil
}

func (i impl) ForceApprove(id, actorID string, observacions string) error {
	return i.forceResolve(id, actorID, models.ValidacioAprovada, observacions)
}

func (i impl) ForceReject(id, actorID string, data solicitudapimodels.RejectData) error {
	return i.forceResolve(id, actorID, models.ValidacioRebutjada, data.Motiu)
}

func (i impl) forceResolve(id, actorID string, decisio models.ValidacioEstat, observacions string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.NotFound("sol·licitud no trobada")
	}
	if !rec.Estat.AllowManualDecision() {
		return apperrors.StateConflict("la sol·licitud ja està resolta")
	}
	adminRoles := models.NewRoleSet(models.AdminRole)
	if rec.Estat == models.SolicitudPendent {
		if err = i.Submit(id, actorID, adminRoles); err != nil {
			return err
		}
	}
	resolveData := solicitudapimodels.ResolveData{
		Decisio:      decisio,
		Observacions: observacions,
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		h := NewHandlerWithTx(tx).(impl)
		vh := validaciohandler.NewHandlerWithTx(tx)
		validacions, err := vh.ListBySolicitud(id)
		if err != nil {
			return err
		}
		for _, validacio := range validacions {
			if validacio.Estat.IsResolved() {
				continue
			}
			resolved, err := vh.Resolve(validacio.ID, actorID, adminRoles, resolveData)
			if err != nil {
				return err
			}
			if decisio == models.ValidacioAprovada {
				if err = h.markSistemaAprovat(id, resolved.SistemaID); err != nil {
					return err
				}
			}
		}
		return h.aggregate(tx, id, actorID)
	})
	if err != nil {
		return err
	}
	i.getLogger(id).
		WithField("actor_id", actorID).
		WithField("decisio", decisio).
		Info("solicitud force resolved")
	return i.notifyIfResolved(id)
}
