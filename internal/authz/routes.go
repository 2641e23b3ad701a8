package authz

import "strings"

// Landing targets per area.
const (
	PathLanding      = "/landing"
	PathDashboard    = "/dashboard"
	PathYouthHome    = "/youth"
	PathInvestorHome = "/investor"
)

// farmerPaths is the fixed set of farmer-area paths, matched exactly.
// Farmer paths not listed here fall through to the default rule.
var farmerPaths = map[string]struct{}{
	"/dashboard":   {},
	"/marketplace": {},
	"/weather":     {},
	"/my-farm":     {},
	"/community":   {},
}

func inYouthArea(path string) bool {
	return strings.HasPrefix(path, PathYouthHome)
}

func inInvestorArea(path string) bool {
	return strings.HasPrefix(path, PathInvestorHome)
}

func inFarmerArea(path string) bool {
	_, ok := farmerPaths[path]
	return ok
}
