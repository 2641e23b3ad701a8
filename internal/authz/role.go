// Package authz decides, per navigation attempt, whether a principal may
// see a requested path or gets redirected to a landing page appropriate
// for their role. It holds no state and never returns an error; every
// failure mode degrades to a redirect.
package authz

// Role classifies which platform area a principal may access.
type Role string

const (
	RoleFarmer   Role = "farmer"
	RoleYouth    Role = "youth"
	RoleInvestor Role = "investor"
	RoleBusiness Role = "business"
)

// ParseRole maps a stored role tag to a Role. Unknown or empty tags
// default to farmer.
func ParseRole(tag string) Role {
	switch Role(tag) {
	case RoleYouth, RoleInvestor, RoleBusiness, RoleFarmer:
		return Role(tag)
	default:
		return RoleFarmer
	}
}
