package checklisthandler

import (
	"bytes"
	"context"
	"io"
	"time"

	"hr-access-backend/db"
	checkliststore "hr-access-backend/lib/checklist/store"
	taskstore "hr-access-backend/lib/checklist/task-store"
	templatestore "hr-access-backend/lib/checklist/template-store"
	departamentstore "hr-access-backend/lib/dicts/departament/store"
	empleatstore "hr-access-backend/lib/empleat/store"
	xlsexport "hr-access-backend/lib/export/xls"
	filestorage "hr-access-backend/lib/file-storage"
	usuaristore "hr-access-backend/lib/identity/store"
	notifyhandler "hr-access-backend/lib/notify"
	"hr-access-backend/lib/utils/apperrors"
	initchecker "hr-access-backend/lib/utils/init-checker"
	"hr-access-backend/models"
	checklistapimodels "hr-access-backend/models/api/checklist"
	dbmodels "hr-access-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	CreateTemplate(data checklistapimodels.TemplateData) (id string, err error)
	UpdateTemplate(id string, data checklistapimodels.TemplateData) error
	DeleteTemplate(id string) error
	GetTemplate(id string) (view checklistapimodels.TemplateView, err error)
	ListTemplates(tipus *models.ChecklistTipus) (list []checklistapimodels.TemplateView, err error)

	Instantiate(data checklistapimodels.InstantiateData) (id string, err error)
	Get(id string) (view checklistapimodels.InstanceView, err error)
	List(filter checkliststore.ListFilter) (list []checklistapimodels.InstanceView, err error)
	ExportToXls(filter checkliststore.ListFilter) (*bytes.Buffer, error)
	MyTasks(actorID string, roles models.RoleSet) (list []checklistapimodels.TaskView, err error)
	CompleteTask(taskID, actorID string, roles models.RoleSet, data checklistapimodels.CompleteTaskData) error
	AssignTask(taskID, usuariID string) error
	// ForceComplete closes every open task of the instance on behalf of an
	// administrator. The completion is attributed to the actor.
	ForceComplete(instanceID, actorID, observacions string) error

	UploadTaskDocument(ctx context.Context, taskID, actorID, fileName, contentType string, size int64, body io.Reader) (id string, err error)
	GetTaskDocument(ctx context.Context, documentID string) (doc *dbmodels.ChecklistTaskDocument, content []byte, err error)
	DeleteTaskDocument(ctx context.Context, documentID string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:            checkliststore.NewInstance(db.DB),
		taskStore:        taskstore.NewInstance(db.DB),
		templateStore:    templatestore.NewInstance(db.DB),
		empleatStore:     empleatstore.NewInstance(db.DB),
		usuariStore:      usuaristore.NewInstance(db.DB),
		departamentStore: departamentstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"taskStore", instance.taskStore,
		"templateStore", instance.templateStore,
		"empleatStore", instance.empleatStore,
		"usuariStore", instance.usuariStore,
		"departamentStore", instance.departamentStore,
	)
	Instance = instance
}

func NewHandlerWithTx(tx *gorm.DB) Provider {
	return impl{
		store:            checkliststore.NewInstance(tx),
		taskStore:        taskstore.NewInstance(tx),
		templateStore:    templatestore.NewInstance(tx),
		empleatStore:     empleatstore.NewInstance(tx),
		usuariStore:      usuaristore.NewInstance(tx),
		departamentStore: departamentstore.NewInstance(tx),
	}
}

type impl struct {
	store            checkliststore.Provider
	taskStore        taskstore.Provider
	templateStore    templatestore.Provider
	empleatStore     empleatstore.Provider
	usuariStore      usuaristore.Provider
	departamentStore departamentstore.Provider
}

func (i impl) getLogger(instanceID string) *log.Entry {
	return log.WithField("checklist_instance_id", instanceID)
}

// ComputeEstat derives the instance state from its tasks: untouched lists are
// pending, a list whose obligatory tasks are all done is complete, anything
// else is in progress.
func ComputeEstat(tasques []dbmodels.ChecklistTask) models.ChecklistEstat {
	anyCompleted := false
	allObligatoryCompleted := true
	for _, tasca := range tasques {
		if tasca.Completada {
			anyCompleted = true
		} else if tasca.Obligatoria {
			allObligatoryCompleted = false
		}
	}
	if !anyCompleted {
		return models.ChecklistPendent
	}
	if allObligatoryCompleted {
		return models.ChecklistCompletada
	}
	return models.ChecklistEnProgres
}

func (i impl) CreateTemplate(data checklistapimodels.TemplateData) (id string, err error) {
	rec := dbmodels.ChecklistTemplate{
		Nom:   data.Nom,
		Tipus: data.Tipus,
		Actiu: data.Actiu,
	}
	if data.DepartamentID != "" {
		departament, err := i.departamentStore.GetByID(data.DepartamentID)
		if err != nil {
			return "", err
		}
		if departament == nil {
			return "", apperrors.Validation("el departament de la plantilla no existeix")
		}
		rec.DepartamentID = &data.DepartamentID
	}
	id, err = i.templateStore.Create(rec)
	if err != nil {
		return "", errors.Wrap(err, "failed to create checklist template")
	}
	if err = i.templateStore.SaveTasques(id, templateTasques(data.Tasques)); err != nil {
		return "", err
	}
	return id, nil
}

func (i impl) UpdateTemplate(id string, data checklistapimodels.TemplateData) error {
	rec, err := i.templateStore.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.NotFound("plantilla no trobada")
	}
	updMap := map[string]interface{}{
		"nom":   data.Nom,
		"tipus": data.Tipus,
		"actiu": data.Actiu,
	}
	if data.DepartamentID != "" {
		updMap["departament_id"] = data.DepartamentID
	} else {
		updMap["departament_id"] = nil
	}
	if err = i.templateStore.Update(id, updMap); err != nil {
		return err
	}
	return i.templateStore.SaveTasques(id, templateTasques(data.Tasques))
}

func templateTasques(data []checklistapimodels.TemplateTascaData) []dbmodels.ChecklistTemplateTasca {
	tasques := make([]dbmodels.ChecklistTemplateTasca, 0, len(data))
	for _, tasca := range data {
		tasques = append(tasques, dbmodels.ChecklistTemplateTasca{
			Nom:         tasca.Nom,
			Descripcio:  tasca.Descripcio,
			RolAssignat: tasca.RolAssignat,
			Obligatoria: tasca.Obligatoria,
			DiesLimit:   tasca.DiesLimit,
			Ordre:       tasca.Ordre,
			Actiu:       true,
		})
	}
	return tasques
}

func (i impl) DeleteTemplate(id string) error {
	rec, err := i.templateStore.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return nil
	}
	return i.templateStore.Delete(id)
}

func (i impl) GetTemplate(id string) (view checklistapimodels.TemplateView, err error) {
	rec, err := i.templateStore.GetByID(id)
	if err != nil {
		return view, err
	}
	if rec == nil {
		return view, apperrors.NotFound("plantilla no trobada")
	}
	return checklistapimodels.TemplateConvert(*rec), nil
}

func (i impl) ListTemplates(tipus *models.ChecklistTipus) (list []checklistapimodels.TemplateView, err error) {
	recs, err := i.templateStore.List(tipus)
	if err != nil {
		return nil, err
	}
	list = make([]checklistapimodels.TemplateView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, checklistapimodels.TemplateConvert(rec))
	}
	return list, nil
}

func (i impl) Instantiate(data checklistapimodels.InstantiateData) (id string, err error) {
	empleat, err := i.empleatStore.GetByID(data.EmpleatID)
	if err != nil {
		return "", err
	}
	if empleat == nil {
		return "", apperrors.NotFound("empleat no trobat")
	}

	var template *dbmodels.ChecklistTemplate
	if data.TemplateID != "" {
		template, err = i.templateStore.GetByID(data.TemplateID)
	} else {
		template, err = i.templateStore.Resolve(data.Tipus, empleat.DepartamentID)
	}
	if err != nil {
		return "", err
	}
	if template == nil {
		return "", apperrors.Configuration("no hi ha cap plantilla activa per a aquest tipus de checklist")
	}
	activeTasques := make([]dbmodels.ChecklistTemplateTasca, 0, len(template.Tasques))
	for _, tasca := range template.Tasques {
		if tasca.Actiu {
			activeTasques = append(activeTasques, tasca)
		}
	}
	if len(activeTasques) == 0 {
		return "", apperrors.Configuration("la plantilla no té tasques actives")
	}

	open, err := i.store.GetOpenByEmpleat(data.EmpleatID, template.Tipus)
	if err != nil {
		return "", err
	}
	if open != nil {
		return "", apperrors.StateConflict("l'empleat ja té una checklist oberta d'aquest tipus")
	}

	now := time.Now()
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		h := NewHandlerWithTx(tx).(impl)
		instance := dbmodels.ChecklistInstance{
			EmpleatID:  data.EmpleatID,
			TemplateID: template.ID,
			Tipus:      template.Tipus,
			Estat:      models.ChecklistPendent,
		}
		id, err = h.store.Create(instance)
		if err != nil {
			return errors.Wrap(err, "failed to create checklist instance")
		}
		for _, tplTasca := range activeTasques {
			rol := tplTasca.RolAssignat
			tasca := dbmodels.ChecklistTask{
				InstanceID:     id,
				Nom:            tplTasca.Nom,
				Descripcio:     tplTasca.Descripcio,
				Ordre:          tplTasca.Ordre,
				Obligatoria:    tplTasca.Obligatoria,
				RolAssignat:    &rol,
				DataAssignacio: now,
			}
			if tplTasca.DiesLimit != nil {
				limit := now.AddDate(0, 0, *tplTasca.DiesLimit)
				tasca.DataLimit = &limit
			}
			if _, err := h.taskStore.Create(tasca); err != nil {
				return errors.Wrap(err, "failed to create checklist task")
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	params := notifyhandler.TemplateParams{
		EmpleatNom:   empleat.GetFullName(),
		ChecklistNom: template.Nom,
	}
	for _, tplTasca := range activeTasques {
		p := params
		p.TascaNom = tplTasca.Nom
		notifyhandler.Instance.EnqueueForRole(tplTasca.RolAssignat, models.NotifyTascaAssignada, p)
	}
	i.getLogger(id).
		WithField("empleat_id", data.EmpleatID).
		WithField("tipus", template.Tipus).
		Info("checklist instantiated")
	return id, nil
}

func (i impl) Get(id string) (view checklistapimodels.InstanceView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return view, err
	}
	if rec == nil {
		return view, apperrors.NotFound("checklist no trobada")
	}
	return checklistapimodels.InstanceConvert(*rec, time.Now()), nil
}

func (i impl) List(filter checkliststore.ListFilter) (list []checklistapimodels.InstanceView, err error) {
	recs, err := i.store.List(filter)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	list = make([]checklistapimodels.InstanceView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, checklistapimodels.InstanceConvert(rec, now))
	}
	return list, nil
}

func (i impl) ExportToXls(filter checkliststore.ListFilter) (*bytes.Buffer, error) {
	recs, err := i.store.List(filter)
	if err != nil {
		return nil, err
	}
	return xlsexport.Instance.ExportChecklistList(recs)
}

func (i impl) MyTasks(actorID string, roles models.RoleSet) (list []checklistapimodels.TaskView, err error) {
	recs, err := i.taskStore.ListAssigned(actorID, roles)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	list = make([]checklistapimodels.TaskView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, checklistapimodels.TaskConvert(rec, now))
	}
	return list, nil
}

func canCompleteTask(tasca dbmodels.ChecklistTask, actorID string, roles models.RoleSet) bool {
	if roles.IsAdmin() {
		return true
	}
	if tasca.UsuariAssignatID != nil {
		return *tasca.UsuariAssignatID == actorID
	}
	return tasca.RolAssignat != nil && roles.Has(*tasca.RolAssignat)
}

func (i impl) CompleteTask(taskID, actorID string, roles models.RoleSet, data checklistapimodels.CompleteTaskData) error {
	tasca, err := i.taskStore.GetByID(taskID)
	if err != nil {
		return err
	}
	if tasca == nil {
		return apperrors.NotFound("tasca no trobada")
	}
	if tasca.Completada {
		return apperrors.StateConflict("la tasca ja està completada")
	}
	if tasca.Instance != nil && tasca.Instance.Estat == models.ChecklistCompletada {
		return apperrors.StateConflict("la checklist ja està completada")
	}
	if !canCompleteTask(*tasca, actorID, roles) {
		return apperrors.Unauthorized("no tens permís per completar aquesta tasca")
	}

	var completedInstance *dbmodels.ChecklistInstance
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		h := NewHandlerWithTx(tx).(impl)
		now := time.Now()
		updMap := map[string]interface{}{
			"completada":          true,
			"usuari_completat_id": actorID,
			"observacions":        data.Observacions,
			"data_completada":     now,
		}
		done, err := h.taskStore.Complete(taskID, updMap)
		if err != nil {
			return err
		}
		if !done {
			return apperrors.StateConflict("la tasca ja està completada")
		}
		tasques, err := h.taskStore.ListByInstance(tasca.InstanceID)
		if err != nil {
			return err
		}
		estat := ComputeEstat(tasques)
		instance, err := h.store.GetByID(tasca.InstanceID)
		if err != nil {
			return err
		}
		if instance == nil || instance.Estat == estat {
			return nil
		}
		updInstance := map[string]interface{}{"estat": estat}
		if estat == models.ChecklistCompletada {
			updInstance["data_finalitzacio"] = now
			completedInstance = instance
		}
		return h.store.Update(tasca.InstanceID, updInstance)
	})
	if err != nil {
		return err
	}

	if completedInstance != nil {
		empleatNom := ""
		if completedInstance.Empleat != nil {
			empleatNom = completedInstance.Empleat.GetFullName()
		}
		checklistNom := ""
		if completedInstance.Template != nil {
			checklistNom = completedInstance.Template.Nom
		}
		notifyhandler.Instance.EnqueueForRole(models.RrhhRole, models.NotifyChecklistCompletada, notifyhandler.TemplateParams{
			EmpleatNom:   empleatNom,
			ChecklistNom: checklistNom,
		})
		i.getLogger(tasca.InstanceID).Info("checklist completed")
	}
	return nil
}

func (i impl) AssignTask(taskID, usuariID string) error {
	tasca, err := i.taskStore.GetByID(taskID)
	if err != nil {
		return err
	}
	if tasca == nil {
		return apperrors.NotFound("tasca no trobada")
	}
	if tasca.Completada {
		return apperrors.StateConflict("la tasca ja està completada")
	}
	if tasca.Instance != nil && tasca.Instance.Estat == models.ChecklistCompletada {
		return apperrors.StateConflict("la checklist ja està completada")
	}
	usuari, err := i.usuariStore.GetByID(usuariID)
	if err != nil {
		return err
	}
	if usuari == nil || !usuari.IsActive {
		return apperrors.Validation("l'usuari assignat no existeix o no està actiu")
	}
	err = i.taskStore.Update(taskID, map[string]interface{}{
		"usuari_assignat_id": usuariID,
		"data_assignacio":    time.Now(),
	})
	if err != nil {
		return err
	}
	notifyhandler.Instance.EnqueueForUsuari(usuariID, models.NotifyTascaAssignada, notifyhandler.TemplateParams{
		TascaNom: tasca.Nom,
	})
	return nil
}

func (i impl) ForceComplete(instanceID, actorID, observacions string) error {
	instance, err := i.store.GetByID(instanceID)
	if err != nil {
		return err
	}
	if instance == nil {
		return apperrors.NotFound("checklist no trobada")
	}
	if instance.Estat == models.ChecklistCompletada {
		return apperrors.StateConflict("la checklist ja està completada")
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		h := NewHandlerWithTx(tx).(impl)
		now := time.Now()
		for _, tasca := range instance.Tasques {
			if tasca.Completada {
				continue
			}
			updMap := map[string]interface{}{
				"completada":          true,
				"usuari_completat_id": actorID,
				"observacions":        observacions,
				"data_completada":     now,
			}
			if _, err := h.taskStore.Complete(tasca.ID, updMap); err != nil {
				return err
			}
		}
		ok, err := h.store.UpdateWhereEstat(instanceID, instance.Estat, map[string]interface{}{
			"estat":             models.ChecklistCompletada,
			"data_finalitzacio": now,
		})
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.StateConflict("la checklist ha canviat d'estat, torna-ho a provar")
		}
		return nil
	})
	if err != nil {
		return err
	}
	i.getLogger(instanceID).
		WithField("actor_id", actorID).
		Info("checklist force completed")
	return nil
}

func (i impl) UploadTaskDocument(ctx context.Context, taskID, actorID, fileName, contentType string, size int64, body io.Reader) (id string, err error) {
	tasca, err := i.taskStore.GetByID(taskID)
	if err != nil {
		return "", err
	}
	if tasca == nil {
		return "", apperrors.NotFound("tasca no trobada")
	}
	objectKey, err := filestorage.Instance.UploadTaskDocument(ctx, taskID, fileName, contentType, body, size)
	if err != nil {
		return "", err
	}
	rec := dbmodels.ChecklistTaskDocument{
		TaskID:      taskID,
		NomFitxer:   fileName,
		ObjectKey:   objectKey,
		ContentType: contentType,
		Mida:        size,
		PujatPerID:  actorID,
	}
	return i.taskStore.SaveDocument(rec)
}

func (i impl) GetTaskDocument(ctx context.Context, documentID string) (*dbmodels.ChecklistTaskDocument, []byte, error) {
	doc, err := i.taskStore.GetDocument(documentID)
	if err != nil {
		return nil, nil, err
	}
	if doc == nil {
		return nil, nil, apperrors.NotFound("document no trobat")
	}
	content, err := filestorage.Instance.GetTaskDocument(ctx, doc.ObjectKey)
	if err != nil {
		return nil, nil, err
	}
	return doc, content, nil
}

func (i impl) DeleteTaskDocument(ctx context.Context, documentID string) error {
	doc, err := i.taskStore.GetDocument(documentID)
	if err != nil {
		return err
	}
	if doc == nil {
		return nil
	}
	if err = filestorage.Instance.DeleteTaskDocument(ctx, doc.ObjectKey); err != nil {
		return err
	}
	return i.taskStore.DeleteDocument(documentID)
}
