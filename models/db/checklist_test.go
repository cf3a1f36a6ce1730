package dbmodels

import (
	"testing"
	"time"

	"hr-access-backend/models"

	"github.com/stretchr/testify/require"
)

func TestChecklistTaskEstatVisual(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	deadline := func(d time.Duration) *time.Time {
		value := now.Add(d)
		return &value
	}

	t.Run(`completed wins over everything`, func(t *testing.T) {
		task := ChecklistTask{Completada: true, DataLimit: deadline(-24 * time.Hour)}
		require.Equal(t, models.TascaCompletada, task.EstatVisual(now))
	})

	t.Run(`no deadline means pending`, func(t *testing.T) {
		task := ChecklistTask{}
		require.Equal(t, models.TascaPendent, task.EstatVisual(now))
	})

	t.Run(`past deadline is overdue`, func(t *testing.T) {
		task := ChecklistTask{DataLimit: deadline(-time.Minute)}
		require.Equal(t, models.TascaVencuda, task.EstatVisual(now))
	})

	t.Run(`within 72 hours is due soon`, func(t *testing.T) {
		task := ChecklistTask{DataLimit: deadline(24 * time.Hour)}
		require.Equal(t, models.TascaProperaAVencer, task.EstatVisual(now))

		// boundary: exactly 72 hours away still counts as due soon
		task = ChecklistTask{DataLimit: deadline(72 * time.Hour)}
		require.Equal(t, models.TascaProperaAVencer, task.EstatVisual(now))
	})

	t.Run(`beyond 72 hours is pending`, func(t *testing.T) {
		task := ChecklistTask{DataLimit: deadline(72*time.Hour + time.Second)}
		require.Equal(t, models.TascaPendent, task.EstatVisual(now))
	})
}
