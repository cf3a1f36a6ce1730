package dictapimodels

import (
	dbmodels "hr-access-backend/models/db"

	"github.com/pkg/errors"
)

type DepartamentData struct {
	Nom   string `json:"nom"`
	Codi  string `json:"codi"`
	Actiu bool   `json:"actiu"`
}

func (d DepartamentData) Validate() error {
	if d.Nom == "" {
		return errors.New("falta el nom del departament")
	}
	return nil
}

type DepartamentView struct {
	DepartamentData
	ID      string       `json:"id"`
	Gestors []GestorView `json:"gestors,omitempty"`
}

type GestorData struct {
	UsuariID  string `json:"usuari_id"`
	Principal bool   `json:"principal"`
}

func (g GestorData) Validate() error {
	if g.UsuariID == "" {
		return errors.New("falta l'identificador de l'usuari gestor")
	}
	return nil
}

type GestorView struct {
	GestorData
	ID        string `json:"id"`
	UsuariNom string `json:"usuari_nom"`
}

func DepartamentConvert(rec dbmodels.Departament) DepartamentView {
	view := DepartamentView{
		DepartamentData: DepartamentData{
			Nom:   rec.Nom,
			Codi:  rec.Codi,
			Actiu: rec.Actiu,
		},
		ID: rec.ID,
	}
	for _, gestor := range rec.Gestors {
		view.Gestors = append(view.Gestors, GestorConvert(gestor))
	}
	return view
}

func GestorConvert(rec dbmodels.DepartamentGestor) GestorView {
	userName := ""
	if rec.Usuari != nil {
		userName = rec.Usuari.GetFullName()
	}
	return GestorView{
		GestorData: GestorData{
			UsuariID:  rec.UsuariID,
			Principal: rec.Principal,
		},
		ID:        rec.ID,
		UsuariNom: userName,
	}
}
