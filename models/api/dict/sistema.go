package dictapimodels

import (
	"hr-access-backend/models"
	dbmodels "hr-access-backend/models/db"

	"github.com/pkg/errors"
)

type SistemaData struct {
	Nom         string `json:"nom"`
	Codi        string `json:"codi"`
	Descripcio  string `json:"descripcio"`
	Responsable string `json:"responsable"`
	Actiu       bool   `json:"actiu"`
}

func (s SistemaData) Validate() error {
	if s.Nom == "" {
		return errors.New("falta el nom del sistema")
	}
	return nil
}

type SistemaView struct {
	SistemaData
	ID         string          `json:"id"`
	Nivells    []NivellView    `json:"nivells,omitempty"`
	Validadors []ValidadorView `json:"validadors,omitempty"`
}

type NivellData struct {
	Nom   string `json:"nom"`
	Ordre int    `json:"ordre"`
	Actiu bool   `json:"actiu"`
}

func (n NivellData) Validate() error {
	if n.Nom == "" {
		return errors.New("falta el nom del nivell d'accés")
	}
	return nil
}

type NivellView struct {
	NivellData
	ID string `json:"id"`
}

type ValidadorData struct {
	Tipus         models.TipusValidador `json:"tipus"`
	UsuariID      string                `json:"usuari_id,omitempty"`
	DepartamentID string                `json:"departament_id,omitempty"`
	Ordre         int                   `json:"ordre"`
	Requerit      bool                  `json:"requerit"`
	Actiu         bool                  `json:"actiu"`
}

func (v ValidadorData) Validate() error {
	switch v.Tipus {
	case models.ValidadorUsuariEspecific:
		if v.UsuariID == "" {
			return errors.New("falta l'usuari validador")
		}
	case models.ValidadorGestorDepartament:
		if v.DepartamentID == "" {
			return errors.New("falta el departament validador")
		}
	default:
		return errors.New("tipus de validador desconegut")
	}
	return nil
}

type ValidadorView struct {
	ValidadorData
	ID        string `json:"id"`
	UsuariNom string `json:"usuari_nom,omitempty"`
}

func SistemaConvert(rec dbmodels.Sistema) SistemaView {
	view := SistemaView{
		SistemaData: SistemaData{
			Nom:         rec.Nom,
			Codi:        rec.Codi,
			Descripcio:  rec.Descripcio,
			Responsable: rec.Responsable,
			Actiu:       rec.Actiu,
		},
		ID: rec.ID,
	}
	for _, nivell := range rec.Nivells {
		view.Nivells = append(view.Nivells, NivellConvert(nivell))
	}
	for _, validador := range rec.Validadors {
		view.Validadors = append(view.Validadors, ValidadorConvert(validador))
	}
	return view
}

func NivellConvert(rec dbmodels.NivellAccesSistema) NivellView {
	return NivellView{
		NivellData: NivellData{
			Nom:   rec.Nom,
			Ordre: rec.Ordre,
			Actiu: rec.Actiu,
		},
		ID: rec.ID,
	}
}

func ValidadorConvert(rec dbmodels.SistemaValidador) ValidadorView {
	view := ValidadorView{
		ValidadorData: ValidadorData{
			Tipus:    rec.Tipus,
			Ordre:    rec.Ordre,
			Requerit: rec.Requerit,
			Actiu:    rec.Actiu,
		},
		ID: rec.ID,
	}
	if rec.UsuariID != nil {
		view.UsuariID = *rec.UsuariID
	}
	if rec.DepartamentID != nil {
		view.DepartamentID = *rec.DepartamentID
	}
	if rec.Usuari != nil {
		view.UsuariNom = rec.Usuari.GetFullName()
	}
	return view
}
