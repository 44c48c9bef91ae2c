package auth

import (
	"github.com/charankumarpalimara/jewelstock/internal/models"
)

// Permission names a privileged capability
type Permission string

const (
	PermManageUsers Permission = "users:manage"
	PermUpdateRates Permission = "rates:update"
)

// rolePermissions is the closed role-to-capability mapping. Roles are
// granted capabilities here and nowhere else; handlers check a
// capability, never a role string.
var rolePermissions = map[string]map[Permission]bool{
	models.RoleWorker: {},
	models.RoleAdmin: {
		PermManageUsers: true,
		PermUpdateRates: true,
	},
	models.RoleSuperAdmin: {
		PermManageUsers: true,
		PermUpdateRates: true,
	},
}

// HasPermission reports whether the role grants the capability
func HasPermission(role string, p Permission) bool {
	perms, ok := rolePermissions[role]
	if !ok {
		return false
	}
	return perms[p]
}
