package models

// NotificacioCode identifies the mail template used for an outbox row.
type NotificacioCode string

const (
	NotifyTascaAssignada       NotificacioCode = "TASCA_ASSIGNADA"
	NotifyChecklistCompletada  NotificacioCode = "CHECKLIST_COMPLETADA"
	NotifyValidacioPendent     NotificacioCode = "VALIDACIO_PENDENT"
	NotifySolicitudResolta     NotificacioCode = "SOLICITUD_RESOLTA"
	NotifyMobilitatDeptNou     NotificacioCode = "MOBILITAT_DEPT_NOU"
	NotifyMobilitatFinalitzada NotificacioCode = "MOBILITAT_FINALITZADA"
)

var notificacioCodeMap = map[NotificacioCode]bool{
	NotifyTascaAssignada:       true,
	NotifyChecklistCompletada:  true,
	NotifyValidacioPendent:     true,
	NotifySolicitudResolta:     true,
	NotifyMobilitatDeptNou:     true,
	NotifyMobilitatFinalitzada: true,
}

func (c NotificacioCode) IsValid() bool {
	return notificacioCodeMap[c]
}
