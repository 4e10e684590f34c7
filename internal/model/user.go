package model

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleRouteman Role = "routeman"
	RoleViewer   Role = "viewer"
)

type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	Role         Role       `json:"role"`
	IsActive     bool       `json:"isActive"`
	PasswordHash string     `json:"-"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
}

// Capability names an operation a role may perform. The role-to-capability
// map is evaluated once at the access-control boundary instead of re-checking
// roles ad hoc in every handler.
type Capability string

const (
	CapViewAllReports    Capability = "reports:view-all"
	CapViewOwnReports    Capability = "reports:view-own"
	CapCreateReports     Capability = "reports:create"
	CapResolveIssues     Capability = "reports:resolve-issue"
	CapDeleteReports     Capability = "reports:delete"
	CapExportReports     Capability = "reports:export"
	CapManageUsers       Capability = "users:manage"
	CapManageCommodities Capability = "commodities:manage"
)

var roleCapabilities = map[Role]map[Capability]struct{}{
	RoleAdmin: capSet(
		CapViewAllReports, CapViewOwnReports, CapCreateReports,
		CapResolveIssues, CapDeleteReports, CapExportReports,
		CapManageUsers, CapManageCommodities,
	),
	RoleRouteman: capSet(CapViewOwnReports, CapCreateReports),
	RoleViewer:   capSet(CapViewAllReports),
}

func capSet(caps ...Capability) map[Capability]struct{} {
	set := make(map[Capability]struct{}, len(caps))
	for _, c := range caps {
		set[c] = struct{}{}
	}
	return set
}

// Principal is the authenticated identity carried through a request.
type Principal struct {
	UserID string
	Name   string
	Role   Role
}

func (p Principal) IsAdmin() bool    { return p.Role == RoleAdmin }
func (p Principal) IsRouteman() bool { return p.Role == RoleRouteman }
func (p Principal) IsViewer() bool   { return p.Role == RoleViewer }

func (p Principal) Can(capability Capability) bool {
	caps, ok := roleCapabilities[p.Role]
	if !ok {
		return false
	}
	_, ok = caps[capability]
	return ok
}
