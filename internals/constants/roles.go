package constants

import "fmt"

// Role yang dikenal sistem
const (
	RoleMember    = "member"
	RoleLibrarian = "librarian"
	RoleAdmin     = "admin"
	RoleOwner     = "owner"
)

// Template pesan error role
const (
	ErrOnlyLibrariansCanAccess = "❌ Hanya librarian, admin, atau owner yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess     = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyOwnersCanAccess     = "❌ Hanya owner yang boleh mengakses fitur %s."
)

func RoleErrorLibrarian(feature string) string {
	return fmt.Sprintf(ErrOnlyLibrariansCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorOwner(feature string) string {
	return fmt.Sprintf(ErrOnlyOwnersCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleMember,
		RoleLibrarian,
		RoleAdmin,
		RoleOwner,
	}

	LibrarianAndAbove = []string{
		RoleLibrarian,
		RoleAdmin,
		RoleOwner,
	}

	AdminAndAbove = []string{
		RoleAdmin,
		RoleOwner,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
