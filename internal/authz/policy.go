// AngelaMos | 2026
// policy.go

package authz

// Role strings are case-sensitive. Anything else is treated as an
// authorization failure, never as a default role.
const (
	RoleAdmin = "ADMIN"
	RoleAgent = "AGENT"
	RoleBuyer = "BUYER"
)

type ResourceType string

const (
	ResourceUser        ResourceType = "USER"
	ResourceProperty    ResourceType = "PROPERTY"
	ResourceTransaction ResourceType = "TRANSACTION"
	ResourceMessage     ResourceType = "MESSAGE"
	ResourceFavorite    ResourceType = "FAVORITE"
)

type Action string

const (
	ActionRead   Action = "READ"
	ActionCreate Action = "CREATE"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
)

// Caller is the authenticated identity evaluated against a resource.
type Caller struct {
	UserID int64
	Role   string
}

// Resource describes the target of a request. Owner is nil when the
// resource has no meaningful owner for the requested action.
type Resource struct {
	Type  ResourceType
	Owner *int64
}

// Owned is a convenience constructor for resources with a known owner.
func Owned(t ResourceType, owner int64) Resource {
	return Resource{Type: t, Owner: &owner}
}

// CanAccess evaluates the rule chain in order; the first matching rule
// decides. Unmatched combinations deny.
func CanAccess(caller Caller, resource Resource, action Action) bool {
	if !validRole(caller.Role) {
		return false
	}

	if caller.Role == RoleAdmin {
		return true
	}

	if resource.Type == ResourceUser &&
		(action == ActionRead || action == ActionUpdate) &&
		ownedBy(resource, caller.UserID) {
		return true
	}

	if resource.Type == ResourceProperty || resource.Type == ResourceTransaction {
		switch action {
		case ActionCreate, ActionUpdate:
			return caller.Role == RoleAgent
		case ActionDelete:
			// Agents never delete listings. Property removal stays an
			// admin operation, already granted above.
			if resource.Type == ResourceProperty {
				return false
			}
			return caller.Role == RoleAgent
		}
	}

	if resource.Type == ResourceMessage || resource.Type == ResourceFavorite {
		return ownedBy(resource, caller.UserID)
	}

	return false
}

func validRole(role string) bool {
	switch role {
	case RoleAdmin, RoleAgent, RoleBuyer:
		return true
	}
	return false
}

func ownedBy(resource Resource, userID int64) bool {
	return resource.Owner != nil && *resource.Owner == userID
}
