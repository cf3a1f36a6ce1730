package notifyhandler

import (
	"bytes"
	"html/template"

	"hr-access-backend/lib/utils/apperrors"
	"hr-access-backend/models"

	"github.com/pkg/errors"
)

// TemplateParams carries the values the notification bodies interpolate.
// Unused fields render as empty strings.
type TemplateParams struct {
	DestinatariNom string
	EmpleatNom     string
	DepartamentNom string
	TascaNom       string
	SolicitudCodi  string
	MobilitatCodi  string
	ChecklistNom   string
	Decisio        string
	Observacions   string
}

type messageTemplate struct {
	subject string
	body    *template.Template
}

var messageTemplates = map[models.NotificacioCode]messageTemplate{
	models.NotifyTascaAssignada: {
		subject: "Nova tasca assignada",
		body: mustParse("tasca_assignada", `
<p>Hola {{.DestinatariNom}},</p>
<p>Se t'ha assignat la tasca <b>{{.TascaNom}}</b> del procés <b>{{.ChecklistNom}}</b> de l'empleat {{.EmpleatNom}}.</p>
<p>Pots consultar-la al portal de gestió d'accessos.</p>`),
	},
	models.NotifyChecklistCompletada: {
		subject: "Checklist completada",
		body: mustParse("checklist_completada", `
<p>Hola {{.DestinatariNom}},</p>
<p>La checklist <b>{{.ChecklistNom}}</b> de l'empleat {{.EmpleatNom}} s'ha completat.</p>`),
	},
	models.NotifyValidacioPendent: {
		subject: "Validació d'accés pendent",
		body: mustParse("validacio_pendent", `
<p>Hola {{.DestinatariNom}},</p>
<p>Tens una validació pendent de la sol·licitud <b>{{.SolicitudCodi}}</b> per a l'empleat {{.EmpleatNom}}.</p>`),
	},
	models.NotifySolicitudResolta: {
		subject: "Sol·licitud d'accés resolta",
		body: mustParse("solicitud_resolta", `
<p>Hola {{.DestinatariNom}},</p>
<p>La sol·licitud <b>{{.SolicitudCodi}}</b> s'ha resolt amb el resultat: <b>{{.Decisio}}</b>.</p>
{{if .Observacions}}<p>Observacions: {{.Observacions}}</p>{{end}}`),
	},
	models.NotifyMobilitatDeptNou: {
		subject: "Procés de mobilitat pendent de revisió",
		body: mustParse("mobilitat_dept_nou", `
<p>Hola {{.DestinatariNom}},</p>
<p>El procés de mobilitat <b>{{.MobilitatCodi}}</b> de l'empleat {{.EmpleatNom}} espera la revisió del departament {{.DepartamentNom}}.</p>`),
	},
	models.NotifyMobilitatFinalitzada: {
		subject: "Procés de mobilitat finalitzat",
		body: mustParse("mobilitat_finalitzada", `
<p>Hola {{.DestinatariNom}},</p>
<p>El procés de mobilitat <b>{{.MobilitatCodi}}</b> de l'empleat {{.EmpleatNom}} ha finalitzat.</p>`),
	},
}

func mustParse(name, text string) *template.Template {
	return template.Must(template.New(name).Parse(text))
}

// Render produces the subject and HTML body for an outbox row.
func Render(code models.NotificacioCode, params TemplateParams) (subject, body string, err error) {
	tpl, ok := messageTemplates[code]
	if !ok {
		return "", "", apperrors.Configuration("plantilla de notificació desconeguda")
	}
	buf := bytes.Buffer{}
	if err = tpl.body.Execute(&buf, params); err != nil {
		return "", "", errors.Wrapf(err, "failed to render notification template %v", code)
	}
	return tpl.subject, buf.String(), nil
}
