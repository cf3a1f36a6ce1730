package validaciohandler

import (
	"fmt"
	"testing"

	sistemastore "hr-access-backend/lib/dicts/sistema/store"
	"hr-access-backend/lib/identity"
	"hr-access-backend/lib/utils/apperrors"
	validaciostore "hr-access-backend/lib/validacio/store"
	"hr-access-backend/models"
	solicitudapimodels "hr-access-backend/models/api/solicitud"
	dbmodels "hr-access-backend/models/db"

	"github.com/stretchr/testify/require"
)

type fakeValidacioStore struct {
	validaciostore.Provider
	rec     *dbmodels.Validacio
	created []dbmodels.Validacio
}

func (f *fakeValidacioStore) Create(rec dbmodels.Validacio) (string, error) {
	f.created = append(f.created, rec)
	return fmt.Sprintf("val-%d", len(f.created)), nil
}

func (f *fakeValidacioStore) GetByID(id string) (*dbmodels.Validacio, error) {
	return f.rec, nil
}

type fakeSistemaStore struct {
	sistemastore.Provider
	validadors map[string][]dbmodels.SistemaValidador
}

func (f *fakeSistemaStore) ListValidadors(sistemaID string) ([]dbmodels.SistemaValidador, error) {
	return f.validadors[sistemaID], nil
}

type fakeIdentity struct {
	identity.Provider
	managers map[string][]string
}

func (f fakeIdentity) ManagerIDsOf(departamentID string) ([]string, error) {
	return f.managers[departamentID], nil
}

func strPtr(s string) *string {
	return &s
}

func solicitudFor(sistemes ...string) dbmodels.SolicitudAcces {
	rec := dbmodels.SolicitudAcces{BaseModel: dbmodels.BaseModel{ID: "sol-1"}}
	for _, sistemaID := range sistemes {
		rec.Sistemes = append(rec.Sistemes, dbmodels.SolicitudSistema{SistemaID: sistemaID})
	}
	return rec
}

func TestSpawnForSolicitud(t *testing.T) {
	prevIdentity := identity.Instance
	identity.Instance = fakeIdentity{managers: map[string][]string{"dept-1": {"mgr-1"}}}
	defer func() { identity.Instance = prevIdentity }()

	t.Run(`every configured entry contributes to one validation per system`, func(t *testing.T) {
		store := &fakeValidacioStore{}
		h := impl{
			store: store,
			sistemaStore: &fakeSistemaStore{validadors: map[string][]dbmodels.SistemaValidador{
				"sys-1": {
					{Tipus: models.ValidadorUsuariEspecific, UsuariID: strPtr("val-user"), Ordre: 1, Requerit: true},
					{Tipus: models.ValidadorGestorDepartament, DepartamentID: strPtr("dept-1"), Ordre: 2, Requerit: true},
				},
			}},
		}
		validadorIDs, err := h.SpawnForSolicitud(solicitudFor("sys-1"))
		require.Nil(t, err)
		require.Len(t, store.created, 1)

		rec := store.created[0]
		require.Equal(t, models.ValidacioGrup, rec.Tipus)
		require.True(t, rec.GrupValidadorsIDs.Contains("val-user"))
		require.True(t, rec.GrupValidadorsIDs.Contains("mgr-1"))
		require.Contains(t, validadorIDs, "mgr-1")
	})

	t.Run(`a single specific-user entry stays individual`, func(t *testing.T) {
		store := &fakeValidacioStore{}
		h := impl{
			store: store,
			sistemaStore: &fakeSistemaStore{validadors: map[string][]dbmodels.SistemaValidador{
				"sys-1": {
					{Tipus: models.ValidadorUsuariEspecific, UsuariID: strPtr("val-user"), Requerit: true},
				},
			}},
		}
		_, err := h.SpawnForSolicitud(solicitudFor("sys-1"))
		require.Nil(t, err)
		require.Len(t, store.created, 1)
		require.Equal(t, models.ValidacioIndividual, store.created[0].Tipus)
		require.Equal(t, "val-user", *store.created[0].ValidadorID)
	})

	t.Run(`misconfigured optional entry is skipped, required one fails`, func(t *testing.T) {
		store := &fakeValidacioStore{}
		h := impl{
			store: store,
			sistemaStore: &fakeSistemaStore{validadors: map[string][]dbmodels.SistemaValidador{
				"sys-1": {
					{Tipus: models.ValidadorUsuariEspecific, UsuariID: strPtr("val-user"), Requerit: true},
					{Tipus: models.ValidadorGestorDepartament, DepartamentID: nil, Requerit: false},
				},
			}},
		}
		_, err := h.SpawnForSolicitud(solicitudFor("sys-1"))
		require.Nil(t, err)
		require.Len(t, store.created, 1)

		h.sistemaStore = &fakeSistemaStore{validadors: map[string][]dbmodels.SistemaValidador{
			"sys-1": {
				{Tipus: models.ValidadorGestorDepartament, DepartamentID: nil, Requerit: true},
			},
		}}
		_, err = h.SpawnForSolicitud(solicitudFor("sys-1"))
		require.Equal(t, apperrors.KindConfiguration, apperrors.KindOf(err))
	})

	t.Run(`system without validators is a configuration error`, func(t *testing.T) {
		h := impl{
			store:        &fakeValidacioStore{},
			sistemaStore: &fakeSistemaStore{validadors: map[string][]dbmodels.SistemaValidador{}},
		}
		_, err := h.SpawnForSolicitud(solicitudFor("sys-1"))
		require.Equal(t, apperrors.KindConfiguration, apperrors.KindOf(err))
	})
}

func TestResolve(t *testing.T) {
	t.Run(`a sibling of a resolved request cannot be approved`, func(t *testing.T) {
		h := impl{
			store: &fakeValidacioStore{rec: &dbmodels.Validacio{
				BaseModel:   dbmodels.BaseModel{ID: "val-1"},
				SolicitudID: "sol-1",
				Solicitud:   &dbmodels.SolicitudAcces{Estat: models.SolicitudRebutjada},
				Tipus:       models.ValidacioIndividual,
				ValidadorID: strPtr("val-user"),
				Estat:       models.ValidacioPendent,
			}},
		}
		_, err := h.Resolve("val-1", "val-user", models.NewRoleSet(models.GestorRole), solicitudapimodels.ResolveData{
			Decisio: models.ValidacioAprovada,
		})
		require.Equal(t, apperrors.KindStateConflict, apperrors.KindOf(err))
	})
}
