package notifyhandler

import (
	"testing"

	"hr-access-backend/lib/utils/apperrors"
	"hr-access-backend/models"

	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	t.Run(`known template renders its params`, func(t *testing.T) {
		subject, body, err := Render(models.NotifyValidacioPendent, TemplateParams{
			DestinatariNom: "Anna",
			EmpleatNom:     "Joan Puig",
			SolicitudCodi:  "SOL-1700000000-a1b2c3d4",
		})
		require.Nil(t, err)
		require.Equal(t, "Validació d'accés pendent", subject)
		require.Contains(t, body, "Anna")
		require.Contains(t, body, "Joan Puig")
		require.Contains(t, body, "SOL-1700000000-a1b2c3d4")
	})

	t.Run(`conditional block only renders when set`, func(t *testing.T) {
		_, body, err := Render(models.NotifySolicitudResolta, TemplateParams{
			DestinatariNom: "Marc",
			SolicitudCodi:  "SOL-1",
			Decisio:        "aprovada",
		})
		require.Nil(t, err)
		require.NotContains(t, body, "Observacions")

		_, body, err = Render(models.NotifySolicitudResolta, TemplateParams{
			DestinatariNom: "Marc",
			SolicitudCodi:  "SOL-1",
			Decisio:        "rebutjada",
			Observacions:   "falta el vistiplau del gestor",
		})
		require.Nil(t, err)
		require.Contains(t, body, "falta el vistiplau del gestor")
	})

	t.Run(`unknown code is a configuration error`, func(t *testing.T) {
		_, _, err := Render(models.NotificacioCode("INEXISTENT"), TemplateParams{})
		require.NotNil(t, err)
		require.Equal(t, apperrors.KindConfiguration, apperrors.KindOf(err))
	})
}
