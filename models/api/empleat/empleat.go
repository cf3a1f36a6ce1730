package empleatapimodels

import (
	"hr-access-backend/models"
	dbmodels "hr-access-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

type EmpleatData struct {
	Nom           string `json:"nom"`
	Cognoms       string `json:"cognoms"`
	Email         string `json:"email"`
	DepartamentID string `json:"departament_id"`
	CarrecNom     string `json:"carrec_nom"`
}

func (e EmpleatData) Validate() error {
	if e.Nom == "" {
		return errors.New("falta el nom de l'empleat")
	}
	if e.DepartamentID == "" {
		return errors.New("falta el departament de l'empleat")
	}
	return nil
}

type EmpleatEstatData struct {
	Estat models.EmpleatEstat `json:"estat"`
}

func (e EmpleatEstatData) Validate() error {
	if !e.Estat.IsValid() {
		return errors.New("estat de l'empleat desconegut")
	}
	return nil
}

type AccesData struct {
	SistemaID     string `json:"sistema_id"`
	NivellAccesID string `json:"nivell_acces_id"`
}

func (a AccesData) Validate() error {
	if a.SistemaID == "" {
		return errors.New("falta el sistema")
	}
	if a.NivellAccesID == "" {
		return errors.New("falta el nivell d'accés")
	}
	return nil
}

type EmpleatView struct {
	EmpleatData
	ID             string              `json:"id"`
	Codi           string              `json:"codi"`
	DepartamentNom string              `json:"departament_nom,omitempty"`
	Estat          models.EmpleatEstat `json:"estat"`
	EstatNom       string              `json:"estat_nom"`
	DataAlta       time.Time           `json:"data_alta"`
	DataBaixa      *time.Time          `json:"data_baixa,omitempty"`
	Accessos       []AccesView         `json:"accessos,omitempty"`
}

type AccesView struct {
	AccesData
	ID            string    `json:"id"`
	SistemaNom    string    `json:"sistema_nom,omitempty"`
	NivellNom     string    `json:"nivell_nom,omitempty"`
	Actiu         bool      `json:"actiu"`
	DataConcessio time.Time `json:"data_concessio"`
}

func EmpleatConvert(rec dbmodels.Empleat) EmpleatView {
	view := EmpleatView{
		EmpleatData: EmpleatData{
			Nom:           rec.Nom,
			Cognoms:       rec.Cognoms,
			Email:         rec.Email,
			DepartamentID: rec.DepartamentID,
			CarrecNom:     rec.CarrecNom,
		},
		ID:        rec.ID,
		Codi:      rec.Codi,
		Estat:     rec.Estat,
		EstatNom:  rec.Estat.ToHuman(),
		DataAlta:  rec.DataAlta,
		DataBaixa: rec.DataBaixa,
	}
	if rec.Departament != nil {
		view.DepartamentNom = rec.Departament.Nom
	}
	for _, acces := range rec.Accessos {
		view.Accessos = append(view.Accessos, AccesConvert(acces))
	}
	return view
}

func AccesConvert(rec dbmodels.AccesEmpleat) AccesView {
	view := AccesView{
		AccesData: AccesData{
			SistemaID:     rec.SistemaID,
			NivellAccesID: rec.NivellAccesID,
		},
		ID:            rec.ID,
		Actiu:         rec.Actiu,
		DataConcessio: rec.DataConcessio,
	}
	if rec.Sistema != nil {
		view.SistemaNom = rec.Sistema.Nom
	}
	if rec.NivellAcces != nil {
		view.NivellNom = rec.NivellAcces.Nom
	}
	return view
}
