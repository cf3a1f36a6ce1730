package empleathandler

import (
	"testing"

	checklisthandler "hr-access-backend/lib/checklist"
	departamentstore "hr-access-backend/lib/dicts/departament/store"
	empleatstore "hr-access-backend/lib/empleat/store"
	"hr-access-backend/lib/utils/apperrors"
	checklistapimodels "hr-access-backend/models/api/checklist"
	empleatapimodels "hr-access-backend/models/api/empleat"
	dbmodels "hr-access-backend/models/db"

	"github.com/stretchr/testify/require"
)

type fakeDepartamentStore struct {
	departamentstore.Provider
	rec *dbmodels.Departament
}

func (f *fakeDepartamentStore) GetByID(id string) (*dbmodels.Departament, error) {
	return f.rec, nil
}

type fakeEmpleatStore struct {
	empleatstore.Provider
}

func (f *fakeEmpleatStore) Create(rec dbmodels.Empleat) (string, error) {
	return "emp-1", nil
}

type fakeChecklistHandler struct {
	checklisthandler.Provider
	instantiateErr error
}

func (f *fakeChecklistHandler) Instantiate(data checklistapimodels.InstantiateData) (string, error) {
	return "", f.instantiateErr
}

func TestCreate(t *testing.T) {
	saved := checklisthandler.Instance
	defer func() { checklisthandler.Instance = saved }()

	data := empleatapimodels.EmpleatData{
		Nom:           "Laia",
		Cognoms:       "Puig",
		Email:         "laia.puig@example.com",
		DepartamentID: "dept-1",
		CarrecNom:     "Analista",
	}
	h := impl{
		store: &fakeEmpleatStore{},
		departamentStore: &fakeDepartamentStore{rec: &dbmodels.Departament{
			BaseModel: dbmodels.BaseModel{ID: "dept-1"},
			Actiu:     true,
		}},
	}

	t.Run(`a broken onboarding template surfaces to the caller`, func(t *testing.T) {
		checklisthandler.Instance = &fakeChecklistHandler{
			instantiateErr: apperrors.Configuration("no hi ha plantilla activa"),
		}
		_, err := h.Create(data)
		require.Equal(t, apperrors.KindConfiguration, apperrors.KindOf(err))
	})

	t.Run(`employee creation opens the onboarding checklist`, func(t *testing.T) {
		checklisthandler.Instance = &fakeChecklistHandler{}
		id, err := h.Create(data)
		require.Nil(t, err)
		require.Equal(t, "emp-1", id)
	})

	t.Run(`an inactive departament is rejected`, func(t *testing.T) {
		inactive := impl{
			store: &fakeEmpleatStore{},
			departamentStore: &fakeDepartamentStore{rec: &dbmodels.Departament{
				BaseModel: dbmodels.BaseModel{ID: "dept-1"},
			}},
		}
		_, err := inactive.Create(data)
		require.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	})
}
