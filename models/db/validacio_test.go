package dbmodels

import (
	"testing"

	"hr-access-backend/models"

	"github.com/stretchr/testify/require"
)

func TestIDList(t *testing.T) {
	t.Run(`jsonb round trip`, func(t *testing.T) {
		list := IDList{"u1", "u2"}
		value, err := list.Value()
		require.Nil(t, err)
		require.Equal(t, `["u1","u2"]`, value)

		var decoded IDList
		err = decoded.Scan([]byte(`["u1","u2"]`))
		require.Nil(t, err)
		require.Equal(t, list, decoded)

		err = decoded.Scan(nil)
		require.Nil(t, err)
		require.Nil(t, decoded)
	})

	t.Run(`membership`, func(t *testing.T) {
		list := IDList{"u1", "u2"}
		require.True(t, list.Contains("u2"))
		require.False(t, list.Contains("u3"))
		require.False(t, IDList(nil).Contains("u1"))
	})
}

func TestValidacioCanBeResolvedBy(t *testing.T) {
	validadorID := "validador-1"

	t.Run(`individual validation`, func(t *testing.T) {
		rec := Validacio{
			Tipus:       models.ValidacioIndividual,
			ValidadorID: &validadorID,
		}
		require.True(t, rec.CanBeResolvedBy(validadorID, models.NewRoleSet(models.GestorRole)))
		require.False(t, rec.CanBeResolvedBy("altre", models.NewRoleSet(models.GestorRole)))
	})

	t.Run(`grup validation uses the snapshot`, func(t *testing.T) {
		rec := Validacio{
			Tipus:             models.ValidacioGrup,
			GrupValidadorsIDs: IDList{"g1", "g2"},
		}
		require.True(t, rec.CanBeResolvedBy("g1", models.NewRoleSet(models.GestorRole)))
		require.False(t, rec.CanBeResolvedBy("g3", models.NewRoleSet(models.GestorRole)))
	})

	t.Run(`admin override`, func(t *testing.T) {
		rec := Validacio{
			Tipus:             models.ValidacioGrup,
			GrupValidadorsIDs: IDList{"g1"},
		}
		require.True(t, rec.CanBeResolvedBy("qualsevol", models.NewRoleSet(models.AdminRole)))
	})

	t.Run(`unknown kind rejected`, func(t *testing.T) {
		rec := Validacio{}
		require.False(t, rec.CanBeResolvedBy(validadorID, models.NewRoleSet(models.GestorRole)))
	})
}
