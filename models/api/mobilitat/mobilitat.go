package mobilitatapimodels

import (
	"hr-access-backend/models"
	dbmodels "hr-access-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

type MobilitatCreateData struct {
	EmpleatID        string `json:"empleat_id"`
	DepartamentNouID string `json:"departament_nou_id"`
	Justificacio     string `json:"justificacio"`
}

func (m MobilitatCreateData) Validate() error {
	if m.EmpleatID == "" {
		return errors.New("falta l'empleat")
	}
	if m.DepartamentNouID == "" {
		return errors.New("falta el departament de destinació")
	}
	return nil
}

type AccioDeptActualData struct {
	Accio models.AccioDeptActual `json:"accio"`
}

func (a AccioDeptActualData) Validate() error {
	if !a.Accio.IsValid() {
		return errors.New("acció del departament actual desconeguda")
	}
	return nil
}

type AccioDeptNouData struct {
	Accio              models.AccioDeptNou `json:"accio"`
	NivellAccesFinalID string              `json:"nivell_acces_final_id,omitempty"`
}

func (a AccioDeptNouData) Validate() error {
	if !a.Accio.IsValid() {
		return errors.New("acció del departament nou desconeguda")
	}
	if (a.Accio == models.DeptNouAfegir || a.Accio == models.DeptNouModificar) && a.NivellAccesFinalID == "" {
		return errors.New("cal indicar el nivell d'accés final")
	}
	return nil
}

type MobilitatView struct {
	ID                  string                `json:"id"`
	Codi                string                `json:"codi"`
	EmpleatID           string                `json:"empleat_id"`
	EmpleatNom          string                `json:"empleat_nom,omitempty"`
	DepartamentActualID string                `json:"departament_actual_id"`
	DepartamentActual   string                `json:"departament_actual,omitempty"`
	DepartamentNouID    string                `json:"departament_nou_id"`
	DepartamentNou      string                `json:"departament_nou,omitempty"`
	Estat               models.MobilitatEstat `json:"estat"`
	Justificacio        string                `json:"justificacio,omitempty"`
	SolicitudAccesID    string                `json:"solicitud_acces_id,omitempty"`
	DataFinalitzacio    *time.Time            `json:"data_finalitzacio,omitempty"`
	Sistemes            []SistemaRowView      `json:"sistemes,omitempty"`
}

type SistemaRowView struct {
	ID                  string                 `json:"id"`
	SistemaID           string                 `json:"sistema_id"`
	SistemaNom          string                 `json:"sistema_nom,omitempty"`
	NivellAccesActualID string                 `json:"nivell_acces_actual_id,omitempty"`
	NivellAccesFinalID  string                 `json:"nivell_acces_final_id,omitempty"`
	AccioDeptActual     models.AccioDeptActual `json:"accio_dept_actual,omitempty"`
	AccioDeptNou        models.AccioDeptNou    `json:"accio_dept_nou,omitempty"`
	EstatFinal          models.EstatFinal      `json:"estat_final,omitempty"`
	ProcessatDeptActual bool                   `json:"processat_dept_actual"`
	ProcessatDeptNou    bool                   `json:"processat_dept_nou"`
}

func MobilitatConvert(rec dbmodels.ProcessMobilitat) MobilitatView {
	view := MobilitatView{
		ID:                  rec.ID,
		Codi:                rec.Codi,
		EmpleatID:           rec.EmpleatID,
		DepartamentActualID: rec.DepartamentActualID,
		DepartamentNouID:    rec.DepartamentNouID,
		Estat:               rec.Estat,
		Justificacio:        rec.Justificacio,
		DataFinalitzacio:    rec.DataFinalitzacio,
	}
	if rec.Empleat != nil {
		view.EmpleatNom = rec.Empleat.GetFullName()
	}
	if rec.DepartamentActual != nil {
		view.DepartamentActual = rec.DepartamentActual.Nom
	}
	if rec.DepartamentNou != nil {
		view.DepartamentNou = rec.DepartamentNou.Nom
	}
	if rec.SolicitudAccesID != nil {
		view.SolicitudAccesID = *rec.SolicitudAccesID
	}
	for _, sistema := range rec.Sistemes {
		view.Sistemes = append(view.Sistemes, SistemaRowConvert(sistema))
	}
	return view
}

func SistemaRowConvert(rec dbmodels.ProcessMobilitatSistema) SistemaRowView {
	view := SistemaRowView{
		ID:                  rec.ID,
		SistemaID:           rec.SistemaID,
		AccioDeptActual:     rec.AccioDeptActual,
		AccioDeptNou:        rec.AccioDeptNou,
		EstatFinal:          rec.EstatFinal,
		ProcessatDeptActual: rec.ProcessatDeptActual,
		ProcessatDeptNou:    rec.ProcessatDeptNou,
	}
	if rec.Sistema != nil {
		view.SistemaNom = rec.Sistema.Nom
	}
	if rec.NivellAccesActualID != nil {
		view.NivellAccesActualID = *rec.NivellAccesActualID
	}
	if rec.NivellAccesFinalID != nil {
		view.NivellAccesFinalID = *rec.NivellAccesFinalID
	}
	return view
}
