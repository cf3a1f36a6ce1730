package models

type UserRole string

const (
	AdminRole   UserRole = "admin"
	RrhhRole    UserRole = "rrhh"
	ItRole      UserRole = "it"
	GestorRole  UserRole = "gestor"
	EmpleatRole UserRole = "empleat"
)

var roleHumanName = map[UserRole]string{
	AdminRole:   "Administrador",
	RrhhRole:    "Recursos Humans",
	ItRole:      "Informàtica",
	GestorRole:  "Gestor de departament",
	EmpleatRole: "Empleat",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsValid() bool {
	_, exist := roleHumanName[r]
	return exist
}

// AssignableTaskRoles are the role pools a checklist task may be assigned to.
var AssignableTaskRoles = []UserRole{ItRole, RrhhRole, GestorRole}

func (r UserRole) IsTaskAssignable() bool {
	for _, role := range AssignableTaskRoles {
		if r == role {
			return true
		}
	}
	return false
}

type RoleSet map[UserRole]bool

func NewRoleSet(roles ...UserRole) RoleSet {
	set := RoleSet{}
	for _, role := range roles {
		set[role] = true
	}
	return set
}

func (s RoleSet) Has(role UserRole) bool {
	return s[role]
}

func (s RoleSet) IsAdmin() bool {
	return s[AdminRole]
}

func (s RoleSet) List() []UserRole {
	list := make([]UserRole, 0, len(s))
	for role := range s {
		list = append(list, role)
	}
	return list
}
