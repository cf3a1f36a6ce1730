package validaciohandler

import (
	"time"

	"hr-access-backend/db"
	sistemastore "hr-access-backend/lib/dicts/sistema/store"
	"hr-access-backend/lib/identity"
	"hr-access-backend/lib/utils/apperrors"
	initchecker "hr-access-backend/lib/utils/init-checker"
	validaciostore "hr-access-backend/lib/validacio/store"
	"hr-access-backend/models"
	solicitudapimodels "hr-access-backend/models/api/solicitud"
	dbmodels "hr-access-backend/models/db"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	// SpawnForSolicitud creates one validation per requested system. Every
	// active validator entry of the system contributes its approvers to that
	// single validation; the membership is snapshotted at spawn time and
	// never re-resolved.
	SpawnForSolicitud(solicitud dbmodels.SolicitudAcces) (validadorIDs []string, err error)
	// Resolve records the actor's decision. The first decision wins; a second
	// resolver gets a state conflict.
	Resolve(validacioID, actorID string, roles models.RoleSet, data solicitudapimodels.ResolveData) (rec *dbmodels.Validacio, err error)
	GetByID(validacioID string) (rec *dbmodels.Validacio, err error)
	ListBySolicitud(solicitudID string) (list []dbmodels.Validacio, err error)
	MyPending(actorID string) (list []solicitudapimodels.ValidacioView, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:        validaciostore.NewInstance(db.DB),
		sistemaStore: sistemastore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"sistemaStore", instance.sistemaStore,
	)
	Instance = instance
}

func NewHandlerWithTx(tx *gorm.DB) Provider {
	return impl{
		store:        validaciostore.NewInstance(tx),
		sistemaStore: sistemastore.NewInstance(tx),
	}
}

type impl struct {
	store        validaciostore.Provider
	sistemaStore sistemastore.Provider
}

func (i impl) getLogger(solicitudID string) *log.Entry {
	return log.WithField("solicitud_id", solicitudID)
}

func (i impl) SpawnForSolicitud(solicitud dbmodels.SolicitudAcces) (validadorIDs []string, err error) {
	logger := i.getLogger(solicitud.ID)
	for _, item := range solicitud.Sistemes {
		configs, err := i.sistemaStore.ListValidadors(item.SistemaID)
		if err != nil {
			return nil, err
		}
		if len(configs) == 0 {
			return nil, apperrors.Configuration("el sistema no té validadors configurats")
		}
		// the (solicitud, sistema) pair is unique, so every configured entry
		// funnels into one validation with the merged approver snapshot
		approvers := []string{}
		seen := map[string]bool{}
		for _, config := range configs {
			entryIDs, err := i.approversOf(config)
			if err != nil {
				if !config.Requerit && apperrors.IsKind(err, apperrors.KindConfiguration) {
					logger.
						WithField("sistema_id", item.SistemaID).
						WithError(err).
						Warn("optional validator entry skipped")
					continue
				}
				return nil, err
			}
			for _, id := range entryIDs {
				if !seen[id] {
					seen[id] = true
					approvers = append(approvers, id)
				}
			}
		}
		if len(approvers) == 0 {
			return nil, apperrors.Configuration("el sistema no té cap validador elegible")
		}
		rec := dbmodels.Validacio{
			SolicitudID: solicitud.ID,
			SistemaID:   item.SistemaID,
			Estat:       models.ValidacioPendent,
		}
		if len(configs) == 1 && configs[0].Tipus == models.ValidadorUsuariEspecific {
			rec.Tipus = models.ValidacioIndividual
			rec.ValidadorID = configs[0].UsuariID
		} else {
			rec.Tipus = models.ValidacioGrup
			rec.GrupValidadorsIDs = approvers
		}
		if _, err = i.store.Create(rec); err != nil {
			return nil, err
		}
		validadorIDs = append(validadorIDs, approvers...)
		logger.
			WithField("sistema_id", item.SistemaID).
			WithField("tipus", rec.Tipus).
			WithField("validadors", len(approvers)).
			Info("validation spawned")
	}
	return validadorIDs, nil
}

// approversOf resolves one validator entry to concrete user ids.
func (i impl) approversOf(config dbmodels.SistemaValidador) ([]string, error) {
	switch config.Tipus {
	case models.ValidadorUsuariEspecific:
		if config.UsuariID == nil {
			return nil, apperrors.Configuration("el validador del sistema no té usuari assignat")
		}
		return []string{*config.UsuariID}, nil
	case models.ValidadorGestorDepartament:
		if config.DepartamentID == nil {
			return nil, apperrors.Configuration("el validador del sistema no té departament assignat")
		}
		managerIDs, err := identity.Instance.ManagerIDsOf(*config.DepartamentID)
		if err != nil {
			return nil, err
		}
		if len(managerIDs) == 0 {
			return nil, apperrors.Configuration("el departament validador no té gestors actius")
		}
		return managerIDs, nil
	}
	return nil, apperrors.Configuration("tipus de validador desconegut")
}

func (i impl) Resolve(validacioID, actorID string, roles models.RoleSet, data solicitudapimodels.ResolveData) (*dbmodels.Validacio, error) {
	rec, err := i.store.GetByID(validacioID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apperrors.NotFound("validació no trobada")
	}
	if rec.Estat.IsResolved() {
		return nil, apperrors.StateConflict("la validació ja està resolta")
	}
	// a sibling decision may already have sunk or closed the request
	if rec.Solicitud != nil && rec.Solicitud.Estat.IsTerminal() {
		return nil, apperrors.StateConflict("la sol·licitud ja està resolta")
	}
	if !rec.CanBeResolvedBy(actorID, roles) {
		return nil, apperrors.Unauthorized("no tens permís per resoldre aquesta validació")
	}
	now := time.Now()
	updMap := map[string]interface{}{
		"estat":          data.Decisio,
		"validat_per_id": actorID,
		"observacions":   data.Observacions,
		"data_validacio": now,
	}
	done, err := i.store.Resolve(validacioID, updMap)
	if err != nil {
		return nil, err
	}
	if !done {
		return nil, apperrors.StateConflict("la validació ja està resolta")
	}
	i.getLogger(rec.SolicitudID).
		WithField("validacio_id", validacioID).
		WithField("decisio", data.Decisio).
		Info("validation resolved")
	rec.Estat = data.Decisio
	rec.ValidatPerID = &actorID
	rec.Observacions = data.Observacions
	rec.DataValidacio = &now
	return rec, nil
}

func (i impl) GetByID(validacioID string) (*dbmodels.Validacio, error) {
	return i.store.GetByID(validacioID)
}

func (i impl) ListBySolicitud(solicitudID string) (list []dbmodels.Validacio, err error) {
	return i.store.ListBySolicitud(solicitudID)
}

func (i impl) MyPending(actorID string) (list []solicitudapimodels.ValidacioView, err error) {
	recs, err := i.store.ListPendingFor(actorID)
	if err != nil {
		return nil, err
	}
	list = make([]solicitudapimodels.ValidacioView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, solicitudapimodels.ValidacioConvert(rec))
	}
	return list, nil
}
