package models

// EmpleatEstat — employee lifecycle state.
type EmpleatEstat string

const (
	EmpleatActiu             EmpleatEstat = "actiu"
	EmpleatBaixa             EmpleatEstat = "baixa"
	EmpleatSuspens           EmpleatEstat = "suspens"
	EmpleatVacances          EmpleatEstat = "vacances"
	EmpleatBaixaLlargaDurada EmpleatEstat = "baixa_llarga_durada"
)

var empleatEstatHumanName = map[EmpleatEstat]string{
	EmpleatActiu:             "Actiu",
	EmpleatBaixa:             "Baixa",
	EmpleatSuspens:           "Suspès",
	EmpleatVacances:          "Vacances",
	EmpleatBaixaLlargaDurada: "Baixa de llarga durada",
}

func (e EmpleatEstat) ToHuman() string {
	if human, exist := empleatEstatHumanName[e]; exist {
		return human
	}
	return string(e)
}

func (e EmpleatEstat) IsValid() bool {
	_, exist := empleatEstatHumanName[e]
	return exist
}

// IsBaixa reports whether the state is an offboarding variant.
func (e EmpleatEstat) IsBaixa() bool {
	return e == EmpleatBaixa || e == EmpleatBaixaLlargaDurada
}

// ChecklistTipus — onboarding or offboarding.
type ChecklistTipus string

const (
	ChecklistOnboarding  ChecklistTipus = "onboarding"
	ChecklistOffboarding ChecklistTipus = "offboarding"
)

func (t ChecklistTipus) IsValid() bool {
	return t == ChecklistOnboarding || t == ChecklistOffboarding
}

// ChecklistEstat — derived state of a checklist instance.
type ChecklistEstat string

const (
	ChecklistPendent    ChecklistEstat = "pendent"
	ChecklistEnProgres  ChecklistEstat = "en_progres"
	ChecklistCompletada ChecklistEstat = "completada"
)

// TascaEstatVisual — display status of a single task, never persisted.
type TascaEstatVisual string

const (
	TascaCompletada     TascaEstatVisual = "completada"
	TascaVencuda        TascaEstatVisual = "vencuda"
	TascaProperaAVencer TascaEstatVisual = "propera_a_vencer"
	TascaPendent        TascaEstatVisual = "pendent"
)

// SolicitudEstat — access request lifecycle.
type SolicitudEstat string

const (
	SolicitudPendent     SolicitudEstat = "pendent"
	SolicitudValidant    SolicitudEstat = "validant"
	SolicitudAprovada    SolicitudEstat = "aprovada"
	SolicitudRebutjada   SolicitudEstat = "rebutjada"
	SolicitudFinalitzada SolicitudEstat = "finalitzada"
)

func (e SolicitudEstat) IsTerminal() bool {
	return e == SolicitudRebutjada || e == SolicitudFinalitzada
}

// AllowManualDecision reports whether an admin may still force a decision.
func (e SolicitudEstat) AllowManualDecision() bool {
	return !e.IsTerminal()
}

func (e SolicitudEstat) AllowDelete() bool {
	return e == SolicitudPendent
}

type SolicitudTipus string

const (
	SolicitudNormal    SolicitudTipus = "normal"
	SolicitudMobilitat SolicitudTipus = "mobilitat"
)

// ValidacioEstat — per-system validation step state.
type ValidacioEstat string

const (
	ValidacioPendent   ValidacioEstat = "pendent"
	ValidacioAprovada  ValidacioEstat = "aprovada"
	ValidacioRebutjada ValidacioEstat = "rebutjada"
)

func (e ValidacioEstat) IsResolved() bool {
	return e == ValidacioAprovada || e == ValidacioRebutjada
}

type ValidacioTipus string

const (
	ValidacioIndividual ValidacioTipus = "individual"
	ValidacioGrup       ValidacioTipus = "grup"
)

// TipusValidador — validator configuration kind on a Sistema.
type TipusValidador string

const (
	ValidadorUsuariEspecific   TipusValidador = "usuari_especific"
	ValidadorGestorDepartament TipusValidador = "gestor_departament"
)

// MobilitatEstat — strictly ordered department-transfer states.
type MobilitatEstat string

const (
	MobilitatPendentDeptActual MobilitatEstat = "pendent_dept_actual"
	MobilitatPendentDeptNou    MobilitatEstat = "pendent_dept_nou"
	MobilitatValidant          MobilitatEstat = "validant"
	MobilitatAprovada          MobilitatEstat = "aprovada"
	MobilitatFinalitzada       MobilitatEstat = "finalitzada"
)

var mobilitatOrder = map[MobilitatEstat]int{
	MobilitatPendentDeptActual: 0,
	MobilitatPendentDeptNou:    1,
	MobilitatValidant:          2,
	MobilitatAprovada:          3,
	MobilitatFinalitzada:       4,
}

func (e MobilitatEstat) Order() int {
	if ord, exist := mobilitatOrder[e]; exist {
		return ord
	}
	return -1
}

func (e MobilitatEstat) IsTerminal() bool {
	return e == MobilitatFinalitzada
}

// IsAllowChange reports whether the transition to next is a legal forward
// step. The chain is linear: regressions and skips are rejected, with two
// jumps straight to finalitzada — from pendent_dept_nou when nothing needs
// validation, and from validant when the validation round is rejected.
func (e MobilitatEstat) IsAllowChange(next MobilitatEstat) bool {
	from, ok := mobilitatOrder[e]
	if !ok {
		return false
	}
	to, ok := mobilitatOrder[next]
	if !ok {
		return false
	}
	if to == from+1 {
		return true
	}
	if next != MobilitatFinalitzada {
		return false
	}
	return e == MobilitatPendentDeptNou || e == MobilitatValidant
}

// AccioDeptActual — current-department decision per system.
type AccioDeptActual string

const (
	DeptActualMantenir AccioDeptActual = "mantenir"
	DeptActualEliminar AccioDeptActual = "eliminar"
)

func (a AccioDeptActual) IsValid() bool {
	return a == DeptActualMantenir || a == DeptActualEliminar
}

// AccioDeptNou — new-department decision per system.
type AccioDeptNou string

const (
	DeptNouMantenir  AccioDeptNou = "mantenir"
	DeptNouModificar AccioDeptNou = "modificar"
	DeptNouEliminar  AccioDeptNou = "eliminar"
	DeptNouAfegir    AccioDeptNou = "afegir"
)

func (a AccioDeptNou) IsValid() bool {
	switch a {
	case DeptNouMantenir, DeptNouModificar, DeptNouEliminar, DeptNouAfegir:
		return true
	}
	return false
}

// EstatFinal — resolved disposition of a system after both review phases.
type EstatFinal string

const (
	FinalMantenir  EstatFinal = "mantenir"
	FinalEliminar  EstatFinal = "eliminar"
	FinalAfegir    EstatFinal = "afegir"
	FinalModificar EstatFinal = "modificar"
)

// RequiresValidation reports whether the disposition asks for new access and
// therefore needs a validation round.
func (e EstatFinal) RequiresValidation() bool {
	return e == FinalAfegir || e == FinalModificar
}

// NotificacioEstat — outbox row state.
type NotificacioEstat string

const (
	NotificacioPendent NotificacioEstat = "pendent"
	NotificacioEnviada NotificacioEstat = "enviada"
	NotificacioError   NotificacioEstat = "error"
)
