package mobilitathandler

import (
	"testing"

	"hr-access-backend/models"

	"github.com/stretchr/testify/require"
)

func TestComputeEstatFinal(t *testing.T) {
	t.Run(`new department adding wins`, func(t *testing.T) {
		require.Equal(t, models.FinalAfegir, ComputeEstatFinal(models.DeptActualMantenir, models.DeptNouAfegir))
		require.Equal(t, models.FinalAfegir, ComputeEstatFinal(models.DeptActualEliminar, models.DeptNouAfegir))
	})

	t.Run(`new department modifying wins`, func(t *testing.T) {
		require.Equal(t, models.FinalModificar, ComputeEstatFinal(models.DeptActualMantenir, models.DeptNouModificar))
		require.Equal(t, models.FinalModificar, ComputeEstatFinal(models.DeptActualEliminar, models.DeptNouModificar))
	})

	t.Run(`removal from either side removes the access`, func(t *testing.T) {
		require.Equal(t, models.FinalEliminar, ComputeEstatFinal(models.DeptActualEliminar, models.DeptNouMantenir))
		require.Equal(t, models.FinalEliminar, ComputeEstatFinal(models.DeptActualMantenir, models.DeptNouEliminar))
		require.Equal(t, models.FinalEliminar, ComputeEstatFinal(models.DeptActualEliminar, models.DeptNouEliminar))
	})

	t.Run(`keeping on both sides keeps it`, func(t *testing.T) {
		require.Equal(t, models.FinalMantenir, ComputeEstatFinal(models.DeptActualMantenir, models.DeptNouMantenir))
	})
}
