package rbac

import (
	"testing"

	"hr-access-backend/models"

	"github.com/stretchr/testify/require"
)

func TestRbac(t *testing.T) {
	t.Run(`pathToRegex check`, func(t *testing.T) {
		path, method, err := parseSwaggerPattern("/api/v1/empleat/{id}/acces [post]")
		require.Nil(t, err)
		require.Equal(t, POST, method)
		r1 := pathToRegex(path)

		validUri := "/api/v1/empleat/123-321/acces"
		isMatch := r1.MatchString(validUri)
		require.Equal(t, true, isMatch)

		invalidUri := "/api/v1/empleat/acces"
		isMatch = r1.MatchString(invalidUri)
		require.Equal(t, false, isMatch)

		path, method, err = parseSwaggerPattern("/api/v1/mobilitat/{id}/sistema/{rowId}/dept_nou [put]")
		require.Nil(t, err)
		require.Equal(t, PUT, method)
		r2 := pathToRegex(path)

		validUri = "/api/v1/mobilitat/123-321/sistema/qwe-ewr123-wr-12/dept_nou"
		isMatch = r2.MatchString(validUri)
		require.Equal(t, true, isMatch)

		invalidUri = "/api/v1/mobilitat/we-ewr123-wr-12/dept_nou"
		isMatch = r2.MatchString(invalidUri)
		require.Equal(t, false, isMatch)
	})

	t.Run(`swagger pattern without a method is rejected`, func(t *testing.T) {
		_, _, err := parseSwaggerPattern("/api/v1/empleat")
		require.NotNil(t, err)
	})

	t.Run(`rule lookup`, func(t *testing.T) {
		NewHandler()

		ruleFn, found := Instance.GetRuleFunc("POST", "/api/v1/empleat")
		require.True(t, found)
		require.True(t, ruleFn("user-1", models.NewRoleSet(models.RrhhRole), "/api/v1/empleat"))
		require.False(t, ruleFn("user-2", models.NewRoleSet(models.EmpleatRole), "/api/v1/empleat"))

		ruleFn, found = Instance.GetRuleFunc("PUT", "/api/v1/mobilitat/123-321/processar_dept_nou")
		require.True(t, found)
		require.True(t, ruleFn("user-1", models.NewRoleSet(models.GestorRole), "/api/v1/mobilitat/123-321/processar_dept_nou"))

		_, found = Instance.GetRuleFunc("DELETE", "/api/v1/mobilitat/123-321")
		require.False(t, found)
	})

	t.Run(`role permission matrix`, func(t *testing.T) {
		NewHandler()

		permissions := Instance.GetPermissions(models.RrhhRole)
		require.Contains(t, permissions[models.EmpleatModule], models.CreatePermission)
		require.NotContains(t, permissions[models.UsersModule], models.ManagePermission)
	})
}
