package db

import (
	"hr-access-backend/config"
	usuaristore "hr-access-backend/lib/identity/store"
	authutils "hr-access-backend/lib/utils/auth-utils"
	"hr-access-backend/models"
	dbmodels "hr-access-backend/models/db"

	log "github.com/sirupsen/logrus"
)

func InitPreload() {
	addAdmin()
}

func addAdmin() {
	if config.Conf.Admin.Email == "" {
		log.Warn("admin user not created, ADMIN_EMAIL is not configured")
		return
	}
	store := usuaristore.NewInstance(DB)
	existedRec, err := store.FindByEmail(config.Conf.Admin.Email)
	if err != nil {
		log.WithError(err).Error("error checking for admin user")
		return
	}
	if existedRec != nil {
		return
	}
	rec := dbmodels.Usuari{
		Nom:      config.Conf.Admin.Nom,
		Cognoms:  config.Conf.Admin.Cognoms,
		Email:    config.Conf.Admin.Email,
		Password: authutils.GetMD5Hash(config.Conf.Admin.Password),
		IsActive: true,
	}
	id, err := store.Create(rec)
	if err != nil {
		log.WithError(err).Error("error creating admin user")
		return
	}
	if err = store.SetRoles(id, []models.UserRole{models.AdminRole}); err != nil {
		log.WithError(err).Error("error assigning admin role")
	}
}
