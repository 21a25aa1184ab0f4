package constants

import "fmt"

const (
	RoleSuperadmin = "superadmin"
	RoleAdmin      = "admin"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess     = "Only admins may access %s."
	ErrOnlySuperadminCanAccess = "Only the superadmin may access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorSuperadmin(feature string) string {
	return fmt.Sprintf(ErrOnlySuperadminCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AdminAndAbove = []string{
		RoleAdmin,
		RoleSuperadmin,
	}

	SuperadminOnly = []string{
		RoleSuperadmin,
	}
)
