package checklistapimodels

import (
	"hr-access-backend/models"
	dbmodels "hr-access-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

type TemplateData struct {
	Nom           string                `json:"nom"`
	Tipus         models.ChecklistTipus `json:"tipus"`
	DepartamentID string                `json:"departament_id,omitempty"`
	Actiu         bool                  `json:"actiu"`
	Tasques       []TemplateTascaData   `json:"tasques"`
}

func (t TemplateData) Validate() error {
	if t.Nom == "" {
		return errors.New("falta el nom de la plantilla")
	}
	if !t.Tipus.IsValid() {
		return errors.New("tipus de plantilla desconegut")
	}
	for _, tasca := range t.Tasques {
		if err := tasca.Validate(); err != nil {
			return err
		}
	}
	return nil
}

type TemplateTascaData struct {
	Nom         string          `json:"nom"`
	Descripcio  string          `json:"descripcio"`
	RolAssignat models.UserRole `json:"rol_assignat"`
	Obligatoria bool            `json:"obligatoria"`
	DiesLimit   *int            `json:"dies_limit,omitempty"`
	Ordre       int             `json:"ordre"`
}

func (t TemplateTascaData) Validate() error {
	if t.Nom == "" {
		return errors.New("falta el nom de la tasca")
	}
	if !t.RolAssignat.IsTaskAssignable() {
		return errors.New("rol assignat no vàlid per a una tasca")
	}
	return nil
}

type TemplateView struct {
	TemplateData
	ID string `json:"id"`
}

type InstantiateData struct {
	EmpleatID  string                `json:"empleat_id"`
	Tipus      models.ChecklistTipus `json:"tipus"`
	TemplateID string                `json:"template_id,omitempty"`
}

func (d InstantiateData) Validate() error {
	if d.EmpleatID == "" {
		return errors.New("falta l'empleat")
	}
	if d.TemplateID == "" && !d.Tipus.IsValid() {
		return errors.New("cal indicar una plantilla o un tipus de checklist")
	}
	return nil
}

type CompleteTaskData struct {
	Observacions string `json:"observacions"`
}

type AssignTaskData struct {
	UsuariID string `json:"usuari_id"`
}

func (a AssignTaskData) Validate() error {
	if a.UsuariID == "" {
		return errors.New("falta l'usuari a assignar")
	}
	return nil
}

type InstanceView struct {
	ID               string                `json:"id"`
	EmpleatID        string                `json:"empleat_id"`
	EmpleatNom       string                `json:"empleat_nom,omitempty"`
	TemplateID       string                `json:"template_id"`
	Tipus            models.ChecklistTipus `json:"tipus"`
	Estat            models.ChecklistEstat `json:"estat"`
	DataFinalitzacio *time.Time            `json:"data_finalitzacio,omitempty"`
	Tasques          []TaskView            `json:"tasques,omitempty"`
}

type TaskView struct {
	ID               string                  `json:"id"`
	Nom              string                  `json:"nom"`
	Descripcio       string                  `json:"descripcio,omitempty"`
	Ordre            int                     `json:"ordre"`
	Obligatoria      bool                    `json:"obligatoria"`
	UsuariAssignatID string                  `json:"usuari_assignat_id,omitempty"`
	RolAssignat      string                  `json:"rol_assignat,omitempty"`
	Completada       bool                    `json:"completada"`
	UsuariCompletat  string                  `json:"usuari_completat,omitempty"`
	Observacions     string                  `json:"observacions,omitempty"`
	DataAssignacio   time.Time               `json:"data_assignacio"`
	DataLimit        *time.Time              `json:"data_limit,omitempty"`
	DataCompletada   *time.Time              `json:"data_completada,omitempty"`
	EstatVisual      models.TascaEstatVisual `json:"estat_visual"`
	Documents        []DocumentView          `json:"documents,omitempty"`
}

type DocumentView struct {
	ID          string `json:"id"`
	NomFitxer   string `json:"nom_fitxer"`
	ContentType string `json:"content_type"`
	Mida        int64  `json:"mida"`
}

func InstanceConvert(rec dbmodels.ChecklistInstance, now time.Time) InstanceView {
	view := InstanceView{
		ID:               rec.ID,
		EmpleatID:        rec.EmpleatID,
		TemplateID:       rec.TemplateID,
		Tipus:            rec.Tipus,
		Estat:            rec.Estat,
		DataFinalitzacio: rec.DataFinalitzacio,
	}
	if rec.Empleat != nil {
		view.EmpleatNom = rec.Empleat.GetFullName()
	}
	for _, tasca := range rec.Tasques {
		view.Tasques = append(view.Tasques, TaskConvert(tasca, now))
	}
	return view
}

func TaskConvert(rec dbmodels.ChecklistTask, now time.Time) TaskView {
	view := TaskView{
		ID:             rec.ID,
		Nom:            rec.Nom,
		Descripcio:     rec.Descripcio,
		Ordre:          rec.Ordre,
		Obligatoria:    rec.Obligatoria,
		Completada:     rec.Completada,
		Observacions:   rec.Observacions,
		DataAssignacio: rec.DataAssignacio,
		DataLimit:      rec.DataLimit,
		DataCompletada: rec.DataCompletada,
		EstatVisual:    rec.EstatVisual(now),
	}
	if rec.UsuariAssignatID != nil {
		view.UsuariAssignatID = *rec.UsuariAssignatID
	}
	if rec.RolAssignat != nil {
		view.RolAssignat = string(*rec.RolAssignat)
	}
	if rec.UsuariCompletat != nil {
		view.UsuariCompletat = rec.UsuariCompletat.GetFullName()
	}
	for _, doc := range rec.Documents {
		view.Documents = append(view.Documents, DocumentView{
			ID:          doc.ID,
			NomFitxer:   doc.NomFitxer,
			ContentType: doc.ContentType,
			Mida:        doc.Mida,
		})
	}
	return view
}

func TemplateConvert(rec dbmodels.ChecklistTemplate) TemplateView {
	view := TemplateView{
		TemplateData: TemplateData{
			Nom:   rec.Nom,
			Tipus: rec.Tipus,
			Actiu: rec.Actiu,
		},
		ID: rec.ID,
	}
	if rec.DepartamentID != nil {
		view.DepartamentID = *rec.DepartamentID
	}
	for _, tasca := range rec.Tasques {
		view.Tasques = append(view.Tasques, TemplateTascaData{
			Nom:         tasca.Nom,
			Descripcio:  tasca.Descripcio,
			RolAssignat: tasca.RolAssignat,
			Obligatoria: tasca.Obligatoria,
			DiesLimit:   tasca.DiesLimit,
			Ordre:       tasca.Ordre,
		})
	}
	return view
}
