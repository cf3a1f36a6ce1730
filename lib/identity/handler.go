// Package identity answers the role and department-membership questions every
// authorization check in the workflow engines depends on.
package identity

import (
	"hr-access-backend/db"
	usuaristore "hr-access-backend/lib/identity/store"
	"hr-access-backend/lib/utils/apperrors"
	authutils "hr-access-backend/lib/utils/auth-utils"
	initchecker "hr-access-backend/lib/utils/init-checker"
	"hr-access-backend/models"
	authapimodels "hr-access-backend/models/api/auth"
	dbmodels "hr-access-backend/models/db"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	GetByID(userID string) (rec *dbmodels.Usuari, err error)
	RolesOf(userID string) (models.RoleSet, error)
	ManagersOf(departamentID string) ([]dbmodels.Usuari, error)
	ManagerIDsOf(departamentID string) ([]string, error)
	IsManagerOf(userID, departamentID string) (bool, error)
	Authenticate(email, password string) (rec *dbmodels.Usuari, err error)

	CreateUsuari(data authapimodels.UsuariData) (id string, err error)
	UpdateUsuari(id string, data authapimodels.UsuariData) error
	GetUsuari(id string) (view authapimodels.UsuariView, err error)
	ListUsuaris() (list []authapimodels.UsuariView, err error)
	SetRoles(id string, roles []models.UserRole) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: usuaristore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store usuaristore.Provider
}

func (i impl) GetByID(userID string) (*dbmodels.Usuari, error) {
	return i.store.GetByID(userID)
}

func (i impl) RolesOf(userID string) (models.RoleSet, error) {
	rec, err := i.store.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return models.RoleSet{}, nil
	}
	return rec.RoleSet(), nil
}

func (i impl) ManagersOf(departamentID string) ([]dbmodels.Usuari, error) {
	gestors, err := i.store.ListGestors(departamentID)
	if err != nil {
		return nil, err
	}
	result := make([]dbmodels.Usuari, 0, len(gestors))
	for _, gestor := range gestors {
		if gestor.Usuari != nil {
			result = append(result, *gestor.Usuari)
		}
	}
	return result, nil
}

func (i impl) ManagerIDsOf(departamentID string) ([]string, error) {
	gestors, err := i.store.ListGestors(departamentID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(gestors))
	for _, gestor := range gestors {
		ids = append(ids, gestor.UsuariID)
	}
	return ids, nil
}

func (i impl) IsManagerOf(userID, departamentID string) (bool, error) {
	ids, err := i.ManagerIDsOf(departamentID)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == userID {
			return true, nil
		}
	}
	return false, nil
}

func (i impl) Authenticate(email, password string) (*dbmodels.Usuari, error) {
	logger := log.WithField("email", email)
	rec, err := i.store.FindByEmail(email)
	if err != nil {
		logger.WithError(err).Error("error fetching user by email")
		return nil, err
	}
	if rec == nil || !rec.IsActive {
		return nil, apperrors.Unauthorized("credencials incorrectes")
	}
	if rec.Password != authutils.GetMD5Hash(password) {
		return nil, apperrors.Unauthorized("credencials incorrectes")
	}
	return rec, nil
}

func (i impl) CreateUsuari(data authapimodels.UsuariData) (string, error) {
	if data.Password == "" {
		return "", apperrors.Validation("falta la contrasenya")
	}
	existing, err := i.store.FindByEmail(data.Email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", apperrors.Validation("ja existeix un usuari amb aquest correu electrònic")
	}
	rec := dbmodels.Usuari{
		Nom:         data.Nom,
		Cognoms:     data.Cognoms,
		Email:       data.Email,
		Password:    authutils.GetMD5Hash(data.Password),
		PhoneNumber: data.PhoneNumber,
		IsActive:    data.IsActive,
	}
	if data.EmpleatID != "" {
		rec.EmpleatID = &data.EmpleatID
	}
	return i.store.Create(rec)
}

func (i impl) UpdateUsuari(id string, data authapimodels.UsuariData) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.NotFound("usuari no trobat")
	}
	if data.Email != rec.Email {
		existing, err := i.store.FindByEmail(data.Email)
		if err != nil {
			return err
		}
		if existing != nil && existing.ID != id {
			return apperrors.Validation("ja existeix un usuari amb aquest correu electrònic")
		}
	}
	updMap := map[string]interface{}{
		"nom":          data.Nom,
		"cognoms":      data.Cognoms,
		"email":        data.Email,
		"phone_number": data.PhoneNumber,
		"is_active":    data.IsActive,
	}
	if data.EmpleatID != "" {
		updMap["empleat_id"] = data.EmpleatID
	}
	if data.Password != "" {
		updMap["password"] = authutils.GetMD5Hash(data.Password)
	}
	return i.store.Update(id, updMap)
}

func (i impl) GetUsuari(id string) (authapimodels.UsuariView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return authapimodels.UsuariView{}, err
	}
	if rec == nil {
		return authapimodels.UsuariView{}, apperrors.NotFound("usuari no trobat")
	}
	return authapimodels.UsuariConvert(*rec), nil
}

func (i impl) ListUsuaris() ([]authapimodels.UsuariView, error) {
	recs, err := i.store.List()
	if err != nil {
		return nil, err
	}
	list := make([]authapimodels.UsuariView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, authapimodels.UsuariConvert(rec))
	}
	return list, nil
}

func (i impl) SetRoles(id string, roles []models.UserRole) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.NotFound("usuari no trobat")
	}
	return i.store.SetRoles(id, roles)
}
