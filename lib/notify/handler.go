package notifyhandler

import (
	"hr-access-backend/db"
	usuaristore "hr-access-backend/lib/identity/store"
	notifystore "hr-access-backend/lib/notify/store"
	initchecker "hr-access-backend/lib/utils/init-checker"
	"hr-access-backend/models"
	dbmodels "hr-access-backend/models/db"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Provider enqueues notifications into the outbox. Delivery is asynchronous;
// an enqueue failure is logged and never propagated to the caller, a business
// operation must not fail because of mail.
type Provider interface {
	EnqueueForUsuari(usuariID string, code models.NotificacioCode, params TemplateParams)
	EnqueueForUsuaris(usuariIDs []string, code models.NotificacioCode, params TemplateParams)
	EnqueueForRole(role models.UserRole, code models.NotificacioCode, params TemplateParams)
	ListByUsuari(usuariID string) (list []dbmodels.Notificacio, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:       notifystore.NewInstance(db.DB),
		usuariStore: usuaristore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"usuariStore", instance.usuariStore,
	)
	Instance = instance
}

func NewHandlerWithTx(tx *gorm.DB) Provider {
	return impl{
		store:       notifystore.NewInstance(tx),
		usuariStore: usuaristore.NewInstance(tx),
	}
}

type impl struct {
	store       notifystore.Provider
	usuariStore usuaristore.Provider
}

func (i impl) getLogger(code models.NotificacioCode) *log.Entry {
	return log.WithField("notification_code", code)
}

func (i impl) EnqueueForUsuari(usuariID string, code models.NotificacioCode, params TemplateParams) {
	logger := i.getLogger(code).WithField("usuari_id", usuariID)
	usuari, err := i.usuariStore.GetByID(usuariID)
	if err != nil {
		logger.WithError(err).Error("failed to load notification recipient")
		return
	}
	if usuari == nil || !usuari.IsActive || usuari.Email == "" {
		logger.Warn("notification skipped, recipient missing or inactive")
		return
	}
	if params.DestinatariNom == "" {
		params.DestinatariNom = usuari.GetFullName()
	}
	subject, body, err := Render(code, params)
	if err != nil {
		logger.WithError(err).Error("failed to render notification")
		return
	}
	rec := dbmodels.Notificacio{
		UsuariID: usuariID,
		Email:    usuari.Email,
		Code:     code,
		Assumpte: subject,
		Cos:      body,
		Estat:    models.NotificacioPendent,
	}
	if _, err = i.store.Create(rec); err != nil {
		logger.WithError(err).Error("failed to enqueue notification")
	}
}

func (i impl) EnqueueForUsuaris(usuariIDs []string, code models.NotificacioCode, params TemplateParams) {
	seen := map[string]bool{}
	for _, usuariID := range usuariIDs {
		if seen[usuariID] {
			continue
		}
		seen[usuariID] = true
		p := params
		p.DestinatariNom = ""
		i.EnqueueForUsuari(usuariID, code, p)
	}
}

func (i impl) EnqueueForRole(role models.UserRole, code models.NotificacioCode, params TemplateParams) {
	logger := i.getLogger(code).WithField("role", role)
	usuaris, err := i.usuariStore.ListActiveByRole(role)
	if err != nil {
		logger.WithError(err).Error("failed to list notification recipients by role")
		return
	}
	ids := make([]string, 0, len(usuaris))
	for _, usuari := range usuaris {
		ids = append(ids, usuari.ID)
	}
	i.EnqueueForUsuaris(ids, code, params)
}

func (i impl) ListByUsuari(usuariID string) (list []dbmodels.Notificacio, err error) {
	return i.store.ListByUsuari(usuariID)
}
