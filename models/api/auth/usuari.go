package authapimodels

import (
	"hr-access-backend/models"
	dbmodels "hr-access-backend/models/db"

	"github.com/pkg/errors"
)

type UsuariData struct {
	Nom         string `json:"nom"`
	Cognoms     string `json:"cognoms"`
	Email       string `json:"email"`
	Password    string `json:"password,omitempty"`
	PhoneNumber string `json:"phone_number"`
	EmpleatID   string `json:"empleat_id,omitempty"`
	IsActive    bool   `json:"is_active"`
}

func (u UsuariData) Validate() error {
	if u.Nom == "" {
		return errors.New("falta el nom de l'usuari")
	}
	if u.Email == "" {
		return errors.New("falta el correu electrònic")
	}
	return nil
}

type RolesData struct {
	Roles []models.UserRole `json:"roles"`
}

func (r RolesData) Validate() error {
	for _, role := range r.Roles {
		if !role.IsValid() {
			return errors.Errorf("rol desconegut: %s", role)
		}
	}
	return nil
}

type UsuariView struct {
	ID          string   `json:"id"`
	Nom         string   `json:"nom"`
	Cognoms     string   `json:"cognoms"`
	Email       string   `json:"email"`
	PhoneNumber string   `json:"phone_number"`
	EmpleatID   string   `json:"empleat_id,omitempty"`
	IsActive    bool     `json:"is_active"`
	Roles       []string `json:"roles"`
}

func UsuariConvert(rec dbmodels.Usuari) UsuariView {
	view := UsuariView{
		ID:          rec.ID,
		Nom:         rec.Nom,
		Cognoms:     rec.Cognoms,
		Email:       rec.Email,
		PhoneNumber: rec.PhoneNumber,
		IsActive:    rec.IsActive,
		Roles:       []string{},
	}
	if rec.EmpleatID != nil {
		view.EmpleatID = *rec.EmpleatID
	}
	for _, rol := range rec.Rols {
		view.Roles = append(view.Roles, string(rol.Rol))
	}
	return view
}
