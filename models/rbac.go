package models

type RbacFunc func(userID string, roles RoleSet, path string) bool

type Module string

const (
	UsersModule     Module = "USERS"
	EmpleatModule   Module = "EMPLEAT"
	ChecklistModule Module = "CHECKLIST"
	SolicitudModule Module = "SOLICITUD"
	MobilitatModule Module = "MOBILITAT"
	DictModule      Module = "DICT"
	ExportModule    Module = "EXPORT"
)

type Permission string

const (
	CreatePermission Permission = "CREATE"
	EditPermission   Permission = "EDIT"
	ViewPermission   Permission = "VIEW"
	ManagePermission Permission = "MANAGE"
	FlowPermission   Permission = "FLOW"
)
