package solicitudhandler

import (
	"testing"

	"hr-access-backend/models"
	dbmodels "hr-access-backend/models/db"

	"github.com/stretchr/testify/require"
)

func TestComputeEstat(t *testing.T) {
	validacio := func(estat models.ValidacioEstat) dbmodels.Validacio {
		return dbmodels.Validacio{Estat: estat}
	}

	t.Run(`no validations keeps the request in review`, func(t *testing.T) {
		require.Equal(t, models.SolicitudValidant, ComputeEstat(nil))
	})

	t.Run(`a single rejection rejects the whole request`, func(t *testing.T) {
		validacions := []dbmodels.Validacio{
			validacio(models.ValidacioAprovada),
			validacio(models.ValidacioRebutjada),
			validacio(models.ValidacioPendent),
		}
		require.Equal(t, models.SolicitudRebutjada, ComputeEstat(validacions))
	})

	t.Run(`all approvals approve the request`, func(t *testing.T) {
		validacions := []dbmodels.Validacio{
			validacio(models.ValidacioAprovada),
			validacio(models.ValidacioAprovada),
		}
		require.Equal(t, models.SolicitudAprovada, ComputeEstat(validacions))
	})

	t.Run(`pending validations keep it in review`, func(t *testing.T) {
		validacions := []dbmodels.Validacio{
			validacio(models.ValidacioAprovada),
			validacio(models.ValidacioPendent),
		}
		require.Equal(t, models.SolicitudValidant, ComputeEstat(validacions))
	})
}
