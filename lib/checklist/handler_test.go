package checklisthandler

import (
	"testing"

	taskstore "hr-access-backend/lib/checklist/task-store"
	"hr-access-backend/lib/utils/apperrors"
	"hr-access-backend/models"
	checklistapimodels "hr-access-backend/models/api/checklist"
	dbmodels "hr-access-backend/models/db"

	"github.com/stretchr/testify/require"
)

func TestComputeEstat(t *testing.T) {
	tasca := func(completada, obligatoria bool) dbmodels.ChecklistTask {
		return dbmodels.ChecklistTask{Completada: completada, Obligatoria: obligatoria}
	}

	t.Run(`empty checklist is pending`, func(t *testing.T) {
		require.Equal(t, models.ChecklistPendent, ComputeEstat(nil))
	})

	t.Run(`nothing completed is pending`, func(t *testing.T) {
		tasques := []dbmodels.ChecklistTask{
			tasca(false, true),
			tasca(false, false),
		}
		require.Equal(t, models.ChecklistPendent, ComputeEstat(tasques))
	})

	t.Run(`all obligatory completed finishes the checklist`, func(t *testing.T) {
		tasques := []dbmodels.ChecklistTask{
			tasca(true, true),
			tasca(true, true),
			tasca(false, false),
		}
		require.Equal(t, models.ChecklistCompletada, ComputeEstat(tasques))
	})

	t.Run(`open obligatory task keeps it in progress`, func(t *testing.T) {
		tasques := []dbmodels.ChecklistTask{
			tasca(true, false),
			tasca(false, true),
		}
		require.Equal(t, models.ChecklistEnProgres, ComputeEstat(tasques))
	})
}

type fakeTaskStore struct {
	taskstore.Provider
	rec *dbmodels.ChecklistTask
}

func (f *fakeTaskStore) GetByID(id string) (*dbmodels.ChecklistTask, error) {
	return f.rec, nil
}

func TestCompleteTaskClosedChecklist(t *testing.T) {
	t.Run(`a task on a completed checklist stays frozen`, func(t *testing.T) {
		h := impl{taskStore: &fakeTaskStore{rec: &dbmodels.ChecklistTask{
			BaseModel:  dbmodels.BaseModel{ID: "task-1"},
			InstanceID: "chk-1",
			Instance: &dbmodels.ChecklistInstance{
				BaseModel: dbmodels.BaseModel{ID: "chk-1"},
				Estat:     models.ChecklistCompletada,
			},
		}}}
		err := h.CompleteTask("task-1", "admin-1", models.NewRoleSet(models.AdminRole), checklistapimodels.CompleteTaskData{})
		require.Equal(t, apperrors.KindStateConflict, apperrors.KindOf(err))
	})

	t.Run(`a completed task cannot be completed twice`, func(t *testing.T) {
		h := impl{taskStore: &fakeTaskStore{rec: &dbmodels.ChecklistTask{
			BaseModel:  dbmodels.BaseModel{ID: "task-1"},
			Completada: true,
		}}}
		err := h.CompleteTask("task-1", "admin-1", models.NewRoleSet(models.AdminRole), checklistapimodels.CompleteTaskData{})
		require.Equal(t, apperrors.KindStateConflict, apperrors.KindOf(err))
	})
}
