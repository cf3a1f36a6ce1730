package solicitudapimodels

import (
	"hr-access-backend/models"
	dbmodels "hr-access-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

type SolicitudCreateData struct {
	EmpleatDestinatariID string     `json:"empleat_destinatari_id"`
	Justificacio         string     `json:"justificacio"`
	Sistemes             []ItemData `json:"sistemes"`
}

func (s SolicitudCreateData) Validate() error {
	if s.EmpleatDestinatariID == "" {
		return errors.New("falta l'empleat destinatari")
	}
	if len(s.Sistemes) == 0 {
		return errors.New("cal sol·licitar accés a almenys un sistema")
	}
	for _, item := range s.Sistemes {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}

type ItemData struct {
	SistemaID     string `json:"sistema_id"`
	NivellAccesID string `json:"nivell_acces_id"`
}

func (i ItemData) Validate() error {
	if i.SistemaID == "" {
		return errors.New("falta el sistema")
	}
	if i.NivellAccesID == "" {
		return errors.New("falta el nivell d'accés")
	}
	return nil
}

type ResolveData struct {
	Decisio      models.ValidacioEstat `json:"decisio"`
	Observacions string                `json:"observacions"`
}

func (r ResolveData) Validate() error {
	if !r.Decisio.IsResolved() {
		return errors.New("la decisió ha de ser aprovada o rebutjada")
	}
	return nil
}

type RejectData struct {
	Motiu string `json:"motiu"`
}

func (r RejectData) Validate() error {
	if r.Motiu == "" {
		return errors.New("falta el motiu del rebuig")
	}
	return nil
}

type SolicitudView struct {
	ID                   string                `json:"id"`
	Codi                 string                `json:"codi"`
	SolicitantID         string                `json:"solicitant_id"`
	SolicitantNom        string                `json:"solicitant_nom,omitempty"`
	EmpleatDestinatariID string                `json:"empleat_destinatari_id"`
	EmpleatNom           string                `json:"empleat_nom,omitempty"`
	Justificacio         string                `json:"justificacio"`
	Tipus                models.SolicitudTipus `json:"tipus"`
	Estat                models.SolicitudEstat `json:"estat"`
	ProcessMobilitatID   string                `json:"process_mobilitat_id,omitempty"`
	DataResolucio        *time.Time            `json:"data_resolucio,omitempty"`
	CreatedAt            time.Time             `json:"created_at"`
	Sistemes             []ItemView            `json:"sistemes,omitempty"`
	Validacions          []ValidacioView       `json:"validacions,omitempty"`
}

type ItemView struct {
	ItemData
	ID         string `json:"id"`
	SistemaNom string `json:"sistema_nom,omitempty"`
	NivellNom  string `json:"nivell_nom,omitempty"`
	Aprovat    bool   `json:"aprovat"`
}

type ValidacioView struct {
	ID             string                `json:"id"`
	SistemaID      string                `json:"sistema_id"`
	SistemaNom     string                `json:"sistema_nom,omitempty"`
	Tipus          models.ValidacioTipus `json:"tipus"`
	Estat          models.ValidacioEstat `json:"estat"`
	ValidadorID    string                `json:"validador_id,omitempty"`
	GrupValidadors []string              `json:"grup_validadors,omitempty"`
	ValidatPer     string                `json:"validat_per,omitempty"`
	Observacions   string                `json:"observacions,omitempty"`
	DataValidacio  *time.Time            `json:"data_validacio,omitempty"`
}

func SolicitudConvert(rec dbmodels.SolicitudAcces) SolicitudView {
	view := SolicitudView{
		ID:                   rec.ID,
		Codi:                 rec.Codi,
		SolicitantID:         rec.SolicitantID,
		EmpleatDestinatariID: rec.EmpleatDestinatariID,
		Justificacio:         rec.Justificacio,
		Tipus:                rec.Tipus,
		Estat:                rec.Estat,
		DataResolucio:        rec.DataResolucio,
		CreatedAt:            rec.CreatedAt,
	}
	if rec.Solicitant != nil {
		view.SolicitantNom = rec.Solicitant.GetFullName()
	}
	if rec.EmpleatDestinatari != nil {
		view.EmpleatNom = rec.EmpleatDestinatari.GetFullName()
	}
	if rec.ProcessMobilitatID != nil {
		view.ProcessMobilitatID = *rec.ProcessMobilitatID
	}
	for _, item := range rec.Sistemes {
		view.Sistemes = append(view.Sistemes, ItemConvert(item))
	}
	for _, validacio := range rec.Validacions {
		view.Validacions = append(view.Validacions, ValidacioConvert(validacio))
	}
	return view
}

func ItemConvert(rec dbmodels.SolicitudSistema) ItemView {
	view := ItemView{
		ItemData: ItemData{
			SistemaID:     rec.SistemaID,
			NivellAccesID: rec.NivellAccesID,
		},
		ID:      rec.ID,
		Aprovat: rec.Aprovat,
	}
	if rec.Sistema != nil {
		view.SistemaNom = rec.Sistema.Nom
	}
	if rec.NivellAcces != nil {
		view.NivellNom = rec.NivellAcces.Nom
	}
	return view
}

func ValidacioConvert(rec dbmodels.Validacio) ValidacioView {
	view := ValidacioView{
		ID:             rec.ID,
		SistemaID:      rec.SistemaID,
		Tipus:          rec.Tipus,
		Estat:          rec.Estat,
		GrupValidadors: rec.GrupValidadorsIDs,
		Observacions:   rec.Observacions,
		DataValidacio:  rec.DataValidacio,
	}
	if rec.Sistema != nil {
		view.SistemaNom = rec.Sistema.Nom
	}
	if rec.ValidadorID != nil {
		view.ValidadorID = *rec.ValidadorID
	}
	if rec.ValidatPer != nil {
		view.ValidatPer = rec.ValidatPer.GetFullName()
	}
	return view
}
