package rbac

import (
	"hr-access-backend/models"
)

var (
	AdminOnlyRoleSet       = []models.UserRole{models.AdminRole}
	AdminRrhhRoleSet       = []models.UserRole{models.AdminRole, models.RrhhRole}
	AdminItRoleSet         = []models.UserRole{models.AdminRole, models.ItRole}
	StaffRoleSet           = []models.UserRole{models.AdminRole, models.RrhhRole, models.ItRole, models.GestorRole}
	AdminRrhhGestorRoleSet = []models.UserRole{models.AdminRole, models.RrhhRole, models.GestorRole}
	AllRoles               = []models.UserRole{models.AdminRole, models.RrhhRole, models.ItRole, models.GestorRole, models.EmpleatRole}
)

func (i *impl) initRules() {
	i.addUsersRules()
	i.addDictRules()
	i.addEmpleatRules()
	i.addChecklistRules()
	i.addSolicitudRules()
	i.addMobilitatRules()
	i.addExportRules()
}

func (i *impl) addUsersRules() {
	//VIEW
	i.RegisterRule(models.UsersModule, models.ViewPermission, AdminRrhhRoleSet, "/api/v1/users [get]", nil)
	i.RegisterRule(models.UsersModule, models.ViewPermission, AdminRrhhRoleSet, "/api/v1/users/{id} [get]", nil)
	i.RegisterRule(models.UsersModule, models.ViewPermission, AllRoles, "/api/v1/profile/permissions [get]", nil)
	i.RegisterRule(models.UsersModule, models.ViewPermission, AllRoles, "/api/v1/profile/notifications [get]", nil)
	//MANAGE
	i.RegisterRule(models.UsersModule, models.ManagePermission, AdminOnlyRoleSet, "/api/v1/users [post]", nil)
	i.RegisterRule(models.UsersModule, models.ManagePermission, AdminOnlyRoleSet, "/api/v1/users/{id} [put]", nil)
	i.RegisterRule(models.UsersModule, models.ManagePermission, AdminOnlyRoleSet, "/api/v1/users/{id}/roles [put]", nil)
}

func (i *impl) addDictRules() {
	//VIEW
	i.RegisterRule(models.DictModule, models.ViewPermission, AllRoles, "/api/v1/dict/departament [get]", nil)
	i.RegisterRule(models.DictModule, models.ViewPermission, AllRoles, "/api/v1/dict/departament/{id} [get]", nil)
	i.RegisterRule(models.DictModule, models.ViewPermission, AllRoles, "/api/v1/dict/sistema [get]", nil)
	i.RegisterRule(models.DictModule, models.ViewPermission, AllRoles, "/api/v1/dict/sistema/{id} [get]", nil)
	//MANAGE
	i.RegisterRule(models.DictModule, models.ManagePermission, AdminRrhhRoleSet, "/api/v1/dict/departament [post]", nil)
	i.RegisterRule(models.DictModule, models.ManagePermission, AdminRrhhRoleSet, "/api/v1/dict/departament/{id} [put]", nil)
	i.RegisterRule(models.DictModule, models.ManagePermission, AdminOnlyRoleSet, "/api/v1/dict/departament/{id} [delete]", nil)
	i.RegisterRule(models.DictModule, models.ManagePermission, AdminRrhhRoleSet, "/api/v1/dict/departament/{id}/gestors [put]", nil)
	i.RegisterRule(models.DictModule, models.ManagePermission, AdminItRoleSet, "/api/v1/dict/sistema [post]", nil)
	i.RegisterRule(models.DictModule, models.ManagePermission, AdminItRoleSet, "/api/v1/dict/sistema/{id} [put]", nil)
	i.RegisterRule(models.DictModule, models.ManagePermission, AdminOnlyRoleSet, "/api/v1/dict/sistema/{id} [delete]", nil)
	i.RegisterRule(models.DictModule, models.ManagePermission, AdminItRoleSet, "/api/v1/dict/sistema/{id}/nivell [post]", nil)
	i.RegisterRule(models.DictModule, models.ManagePermission, AdminItRoleSet, "/api/v1/dict/sistema/{id}/nivell/{nivellId} [put]", nil)
	i.RegisterRule(models.DictModule, models.ManagePermission, AdminItRoleSet, "/api/v1/dict/sistema/{id}/nivell/{nivellId} [delete]", nil)
	i.RegisterRule(models.DictModule, models.ManagePermission, AdminItRoleSet, "/api/v1/dict/sistema/{id}/validador [post]", nil)
	i.RegisterRule(models.DictModule, models.ManagePermission, AdminItRoleSet, "/api/v1/dict/sistema/{id}/validador/{validadorId} [put]", nil)
	i.RegisterRule(models.DictModule, models.ManagePermission, AdminItRoleSet, "/api/v1/dict/sistema/{id}/validador/{validadorId} [delete]", nil)
}

func (i *impl) addEmpleatRules() {
	//VIEW
	i.RegisterRule(models.EmpleatModule, models.ViewPermission, StaffRoleSet, "/api/v1/empleat [get]", nil)
	i.RegisterRule(models.EmpleatModule, models.ViewPermission, StaffRoleSet, "/api/v1/empleat/{id} [get]", nil)
	//CREATE
	i.RegisterRule(models.EmpleatModule, models.CreatePermission, AdminRrhhRoleSet, "/api/v1/empleat [post]", nil)
	//EDIT
	i.RegisterRule(models.EmpleatModule, models.EditPermission, AdminRrhhRoleSet, "/api/v1/empleat/{id} [put]", nil)
	i.RegisterRule(models.EmpleatModule, models.EditPermission, AdminRrhhRoleSet, "/api/v1/empleat/{id}/estat [put]", nil)
	//MANAGE (direct access register changes)
	i.RegisterRule(models.EmpleatModule, models.ManagePermission, AdminItRoleSet, "/api/v1/empleat/{id}/acces [post]", nil)
	i.RegisterRule(models.EmpleatModule, models.ManagePermission, AdminItRoleSet, "/api/v1/empleat/{id}/acces/{accesId} [delete]", nil)
}

func (i *impl) addChecklistRules() {
	//VIEW
	i.RegisterRule(models.ChecklistModule, models.ViewPermission, StaffRoleSet, "/api/v1/checklist/template [get]", nil)
	i.RegisterRule(models.ChecklistModule, models.ViewPermission, StaffRoleSet, "/api/v1/checklist/template/{id} [get]", nil)
	i.RegisterRule(models.ChecklistModule, models.ViewPermission, StaffRoleSet, "/api/v1/checklist/instance [get]", nil)
	i.RegisterRule(models.ChecklistModule, models.ViewPermission, StaffRoleSet, "/api/v1/checklist/instance/{id} [get]", nil)
	i.RegisterRule(models.ChecklistModule, models.ViewPermission, AllRoles, "/api/v1/checklist/tasks/my [get]", nil)
	i.RegisterRule(models.ChecklistModule, models.ViewPermission, StaffRoleSet, "/api/v1/checklist/document/{id} [get]", nil)
	//MANAGE (templates)
	i.RegisterRule(models.ChecklistModule, models.ManagePermission, AdminRrhhRoleSet, "/api/v1/checklist/template [post]", nil)
	i.RegisterRule(models.ChecklistModule, models.ManagePermission, AdminRrhhRoleSet, "/api/v1/checklist/template/{id} [put]", nil)
	i.RegisterRule(models.ChecklistModule, models.ManagePermission, AdminOnlyRoleSet, "/api/v1/checklist/template/{id} [delete]", nil)
	//CREATE (instances)
	i.RegisterRule(models.ChecklistModule, models.CreatePermission, AdminRrhhRoleSet, "/api/v1/checklist/instance [post]", nil)
	//FLOW
	i.RegisterRule(models.ChecklistModule, models.FlowPermission, StaffRoleSet, "/api/v1/checklist/task/{id}/complete [put]", nil)
	i.RegisterRule(models.ChecklistModule, models.FlowPermission, AdminRrhhRoleSet, "/api/v1/checklist/task/{id}/assign [put]", nil)
	i.RegisterRule(models.ChecklistModule, models.FlowPermission, AdminOnlyRoleSet, "/api/v1/checklist/instance/{id}/force_complete [put]", nil)
	i.RegisterRule(models.ChecklistModule, models.FlowPermission, StaffRoleSet, "/api/v1/checklist/task/{id}/document [post]", nil)
	i.RegisterRule(models.ChecklistModule, models.FlowPermission, AdminRrhhRoleSet, "/api/v1/checklist/document/{id} [delete]", nil)
}

func (i *impl) addSolicitudRules() {
	//VIEW — controllers narrow non-privileged actors to their own requests
	i.RegisterRule(models.SolicitudModule, models.ViewPermission, AllRoles, "/api/v1/solicitud [get]", nil)
	i.RegisterRule(models.SolicitudModule, models.ViewPermission, AllRoles, "/api/v1/solicitud/{id} [get]", nil)
	i.RegisterRule(models.SolicitudModule, models.ViewPermission, AllRoles, "/api/v1/solicitud/validacio/my [get]", nil)
	//CREATE
	i.RegisterRule(models.SolicitudModule, models.CreatePermission, AllRoles, "/api/v1/solicitud [post]", nil)
	i.RegisterRule(models.SolicitudModule, models.CreatePermission, AllRoles, "/api/v1/solicitud/{id}/submit [put]", nil)
	i.RegisterRule(models.SolicitudModule, models.EditPermission, AllRoles, "/api/v1/solicitud/{id} [delete]", nil)
	//FLOW — validator eligibility is enforced per record by the engine
	i.RegisterRule(models.SolicitudModule, models.FlowPermission, AllRoles, "/api/v1/solicitud/validacio/{id}/resolve [put]", nil)
	i.RegisterRule(models.SolicitudModule, models.ManagePermission, AdminOnlyRoleSet, "/api/v1/solicitud/{id}/force_approve [put]", nil)
	i.RegisterRule(models.SolicitudModule, models.ManagePermission, AdminOnlyRoleSet, "/api/v1/solicitud/{id}/force_reject [put]", nil)
}

func (i *impl) addMobilitatRules() {
	//VIEW
	i.RegisterRule(models.MobilitatModule, models.ViewPermission, AdminRrhhGestorRoleSet, "/api/v1/mobilitat [get]", nil)
	i.RegisterRule(models.MobilitatModule, models.ViewPermission, AdminRrhhGestorRoleSet, "/api/v1/mobilitat/{id} [get]", nil)
	//CREATE
	i.RegisterRule(models.MobilitatModule, models.CreatePermission, AdminRrhhRoleSet, "/api/v1/mobilitat [post]", nil)
	//FLOW — department-manager checks are per record, done by the engine
	i.RegisterRule(models.MobilitatModule, models.FlowPermission, AdminRrhhGestorRoleSet, "/api/v1/mobilitat/{id}/sistema/{rowId}/dept_actual [put]", nil)
	i.RegisterRule(models.MobilitatModule, models.FlowPermission, AdminRrhhGestorRoleSet, "/api/v1/mobilitat/{id}/sistema/{rowId}/dept_nou [put]", nil)
	i.RegisterRule(models.MobilitatModule, models.FlowPermission, AdminRrhhGestorRoleSet, "/api/v1/mobilitat/{id}/processar_dept_actual [put]", nil)
	i.RegisterRule(models.MobilitatModule, models.FlowPermission, AdminRrhhGestorRoleSet, "/api/v1/mobilitat/{id}/processar_dept_nou [put]", nil)
}

func (i *impl) addExportRules() {
	i.RegisterRule(models.ExportModule, models.ViewPermission, AdminRrhhRoleSet, "/api/v1/export/solicituds [get]", nil)
	i.RegisterRule(models.ExportModule, models.ViewPermission, AdminRrhhRoleSet, "/api/v1/export/checklists [get]", nil)
}
