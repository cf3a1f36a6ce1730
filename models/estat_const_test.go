package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmpleatEstat(t *testing.T) {
	t.Run(`baixa variants`, func(t *testing.T) {
		require.True(t, EmpleatBaixa.IsBaixa())
		require.True(t, EmpleatBaixaLlargaDurada.IsBaixa())
		require.False(t, EmpleatActiu.IsBaixa())
		require.False(t, EmpleatSuspens.IsBaixa())
		require.False(t, EmpleatVacances.IsBaixa())
	})

	t.Run(`validity`, func(t *testing.T) {
		require.True(t, EmpleatActiu.IsValid())
		require.False(t, EmpleatEstat("desconegut").IsValid())
	})
}

func TestSolicitudEstat(t *testing.T) {
	t.Run(`terminal states`, func(t *testing.T) {
		require.True(t, SolicitudRebutjada.IsTerminal())
		require.True(t, SolicitudFinalitzada.IsTerminal())
		require.False(t, SolicitudPendent.IsTerminal())
		require.False(t, SolicitudValidant.IsTerminal())
	})

	t.Run(`manual decision window`, func(t *testing.T) {
		require.True(t, SolicitudPendent.AllowManualDecision())
		require.True(t, SolicitudValidant.AllowManualDecision())
		require.False(t, SolicitudFinalitzada.AllowManualDecision())
	})

	t.Run(`delete only while draft`, func(t *testing.T) {
		require.True(t, SolicitudPendent.AllowDelete())
		require.False(t, SolicitudValidant.AllowDelete())
		require.False(t, SolicitudRebutjada.AllowDelete())
	})
}

func TestMobilitatEstatIsAllowChange(t *testing.T) {
	t.Run(`forward steps`, func(t *testing.T) {
		require.True(t, MobilitatPendentDeptActual.IsAllowChange(MobilitatPendentDeptNou))
		require.True(t, MobilitatPendentDeptNou.IsAllowChange(MobilitatValidant))
		require.True(t, MobilitatValidant.IsAllowChange(MobilitatAprovada))
		require.True(t, MobilitatAprovada.IsAllowChange(MobilitatFinalitzada))
	})

	t.Run(`direct finalization without validation round`, func(t *testing.T) {
		require.True(t, MobilitatPendentDeptNou.IsAllowChange(MobilitatFinalitzada))
	})

	t.Run(`direct finalization on a rejected validation round`, func(t *testing.T) {
		require.True(t, MobilitatValidant.IsAllowChange(MobilitatFinalitzada))
	})

	t.Run(`regressions and skips rejected`, func(t *testing.T) {
		require.False(t, MobilitatPendentDeptNou.IsAllowChange(MobilitatPendentDeptActual))
		require.False(t, MobilitatPendentDeptActual.IsAllowChange(MobilitatValidant))
		require.False(t, MobilitatPendentDeptActual.IsAllowChange(MobilitatFinalitzada))
		require.False(t, MobilitatFinalitzada.IsAllowChange(MobilitatFinalitzada))
	})

	t.Run(`unknown states rejected`, func(t *testing.T) {
		require.False(t, MobilitatEstat("").IsAllowChange(MobilitatValidant))
		require.False(t, MobilitatValidant.IsAllowChange(MobilitatEstat("cancel·lada")))
	})
}

func TestEstatFinalRequiresValidation(t *testing.T) {
	require.True(t, FinalAfegir.RequiresValidation())
	require.True(t, FinalModificar.RequiresValidation())
	require.False(t, FinalMantenir.RequiresValidation())
	require.False(t, FinalEliminar.RequiresValidation())
}

func TestAccioValidity(t *testing.T) {
	require.True(t, DeptActualMantenir.IsValid())
	require.True(t, DeptActualEliminar.IsValid())
	require.False(t, AccioDeptActual("afegir").IsValid())

	require.True(t, DeptNouAfegir.IsValid())
	require.True(t, DeptNouModificar.IsValid())
	require.False(t, AccioDeptNou("").IsValid())
}

func TestRoleSet(t *testing.T) {
	set := NewRoleSet(RrhhRole, GestorRole)
	require.True(t, set.Has(RrhhRole))
	require.False(t, set.Has(AdminRole))
	require.False(t, set.IsAdmin())
	require.True(t, NewRoleSet(AdminRole).IsAdmin())
	require.Len(t, set.List(), 2)
}
