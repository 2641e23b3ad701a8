package authz

// Decision is the outcome of an authorization check: either the
// navigation proceeds, or the caller must redirect to Target.
type Decision struct {
	Allow  bool
	Target string
}

func allow() Decision {
	return Decision{Allow: true}
}

func redirect(target string) Decision {
	return Decision{Target: target}
}

// Decide evaluates the route policy for one navigation attempt. Rules
// are checked in order; the first match wins.
//
// Roles not named by any rule (business, admin) fall through to allow,
// including on farmer-area paths. That is the behavior the rest of the
// platform relies on; do not tighten it to default-deny here.
func Decide(loggedIn bool, role Role, path string) Decision {
	if !loggedIn {
		return redirect(PathLanding)
	}

	if inYouthArea(path) && role != RoleYouth {
		if role == RoleInvestor {
			return redirect(PathInvestorHome)
		}
		return redirect(PathDashboard)
	}

	if inInvestorArea(path) && role != RoleInvestor {
		if role == RoleYouth {
			return redirect(PathYouthHome)
		}
		return redirect(PathDashboard)
	}

	if inFarmerArea(path) {
		if role == RoleYouth {
			return redirect(PathYouthHome)
		}
		if role == RoleInvestor {
			return redirect(PathInvestorHome)
		}
	}

	return allow()
}
