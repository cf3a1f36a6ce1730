package solicitudhandler

import (
	"testing"
	"time"

	checkliststore "hr-access-backend/lib/checklist/store"
	taskstore "hr-access-backend/lib/checklist/task-store"
	solicitudstore "hr-access-backend/lib/solicitud/store"
	"hr-access-backend/lib/utils/apperrors"
	"hr-access-backend/models"
	dbmodels "hr-access-backend/models/db"

	"github.com/stretchr/testify/require"
)

type fakeSolicitudStore struct {
	solicitudstore.Provider
	rec *dbmodels.SolicitudAcces
}

func (f *fakeSolicitudStore) GetByID(id string) (*dbmodels.SolicitudAcces, error) {
	return f.rec, nil
}

type fakeChecklistStore struct {
	checkliststore.Provider
	open *dbmodels.ChecklistInstance
}

func (f *fakeChecklistStore) GetOpenByEmpleat(empleatID string, tipus models.ChecklistTipus) (*dbmodels.ChecklistInstance, error) {
	return f.open, nil
}

type fakeTaskStore struct {
	taskstore.Provider
	created []dbmodels.ChecklistTask
}

func (f *fakeTaskStore) Create(rec dbmodels.ChecklistTask) (string, error) {
	f.created = append(f.created, rec)
	return "task-1", nil
}

func TestSubmitOwnership(t *testing.T) {
	draft := &dbmodels.SolicitudAcces{
		BaseModel:    dbmodels.BaseModel{ID: "sol-1"},
		SolicitantID: "owner-1",
		Estat:        models.SolicitudPendent,
	}

	t.Run(`a stranger cannot submit someone else's draft`, func(t *testing.T) {
		h := impl{store: &fakeSolicitudStore{rec: draft}}
		err := h.Submit("sol-1", "altre", models.NewRoleSet(models.EmpleatRole))
		require.Equal(t, apperrors.KindUnauthorized, apperrors.KindOf(err))
	})

	t.Run(`an administrator may submit on behalf of the requester`, func(t *testing.T) {
		resolved := *draft
		resolved.Estat = models.SolicitudValidant
		h := impl{store: &fakeSolicitudStore{rec: &resolved}}
		// past the ownership gate the state check answers
		err := h.Submit("sol-1", "admin-1", models.NewRoleSet(models.AdminRole))
		require.Equal(t, apperrors.KindStateConflict, apperrors.KindOf(err))
	})
}

func TestOpenProvisioningTasks(t *testing.T) {
	now := time.Now()
	rec := dbmodels.SolicitudAcces{
		BaseModel:            dbmodels.BaseModel{ID: "sol-1"},
		Codi:                 "SOL-1-abc",
		EmpleatDestinatariID: "emp-1",
		Tipus:                models.SolicitudNormal,
		Sistemes: []dbmodels.SolicitudSistema{
			{SistemaID: "sys-1", Sistema: &dbmodels.Sistema{Nom: "ERP"}},
		},
	}

	t.Run(`approved systems land as linked tasks on the open onboarding checklist`, func(t *testing.T) {
		tasks := &fakeTaskStore{}
		h := impl{
			checklistStore: &fakeChecklistStore{open: &dbmodels.ChecklistInstance{
				BaseModel: dbmodels.BaseModel{ID: "chk-1"},
			}},
			taskStore: tasks,
		}
		require.Nil(t, h.openProvisioningTasks(rec, now))
		require.Len(t, tasks.created, 1)

		tasca := tasks.created[0]
		require.Equal(t, "chk-1", tasca.InstanceID)
		require.NotNil(t, tasca.SolicitudAccesID)
		require.Equal(t, "sol-1", *tasca.SolicitudAccesID)
		require.Equal(t, "Provisionar accés a ERP", tasca.Nom)
		require.Equal(t, models.ItRole, *tasca.RolAssignat)
	})

	t.Run(`no open checklist means no tasks`, func(t *testing.T) {
		tasks := &fakeTaskStore{}
		h := impl{
			checklistStore: &fakeChecklistStore{},
			taskStore:      tasks,
		}
		require.Nil(t, h.openProvisioningTasks(rec, now))
		require.Empty(t, tasks.created)
	})

	t.Run(`mobility requests are applied by the mobility closer`, func(t *testing.T) {
		tasks := &fakeTaskStore{}
		h := impl{
			checklistStore: &fakeChecklistStore{open: &dbmodels.ChecklistInstance{}},
			taskStore:      tasks,
		}
		mobilitat := rec
		mobilitat.Tipus = models.SolicitudMobilitat
		require.Nil(t, h.openProvisioningTasks(mobilitat, now))
		require.Empty(t, tasks.created)
	})
}
