package shared

// Role determines which operations an identity may invoke.
type Role string

// Platform roles.
const (
	RoleEmployee Role = "Employee"
	RoleManager  Role = "Manager"
	RoleAdmin    Role = "Admin"
)

// ValidRole reports whether r is one of the platform roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleEmployee, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// Operation names a guarded API operation.
type Operation string

// Guarded operations.
const (
	OpCreateSoftware      Operation = "software.create"
	OpListSoftware        Operation = "software.list"
	OpSubmitRequest       Operation = "requests.submit"
	OpListOwnRequests     Operation = "requests.list_own"
	OpListPendingRequests Operation = "requests.list_pending"
	OpTransitionRequest   Operation = "requests.transition"
	OpListAllRequests     Operation = "requests.list_all"
)

// allowedRoles maps each operation to the roles permitted to invoke it.
// The table is consulted once at the router boundary; business logic never
// branches on roles.
var allowedRoles = map[Operation][]Role{
	OpCreateSoftware:      {RoleAdmin},
	OpListSoftware:        {RoleEmployee, RoleManager, RoleAdmin},
	OpSubmitRequest:       {RoleEmployee, RoleAdmin},
	OpListOwnRequests:     {RoleEmployee, RoleAdmin},
	OpListPendingRequests: {RoleManager, RoleAdmin},
	OpTransitionRequest:   {RoleManager, RoleAdmin},
	OpListAllRequests:     {RoleAdmin},
}

// Authorize reports whether role may invoke op. Unknown operations deny.
func Authorize(role Role, op Operation) bool {
	for _, allowed := range allowedRoles[op] {
		if allowed == role {
			return true
		}
	}
	return false
}
