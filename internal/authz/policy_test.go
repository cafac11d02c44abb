// AngelaMos | 2026
// policy_test.go

package authz

import "testing"

func TestAdminAlwaysAllowed(t *testing.T) {
	admin := Caller{UserID: 1, Role: RoleAdmin}

	resources := []Resource{
		Owned(ResourceUser, 99),
		Owned(ResourceProperty, 99),
		Owned(ResourceTransaction, 99),
		Owned(ResourceMessage, 99),
		Owned(ResourceFavorite, 99),
		{Type: ResourceProperty},
	}
	actions := []Action{ActionRead, ActionCreate, ActionUpdate, ActionDelete}

	for _, res := range resources {
		for _, act := range actions {
			if !CanAccess(admin, res, act) {
				t.Errorf("admin denied %s on %s", act, res.Type)
			}
		}
	}
}

func TestSelfAccessOnUser(t *testing.T) {
	buyer := Caller{UserID: 7, Role: RoleBuyer}

	if !CanAccess(buyer, Owned(ResourceUser, 7), ActionRead) {
		t.Error("buyer denied read on own user record")
	}
	if CanAccess(buyer, Owned(ResourceUser, 9), ActionRead) {
		t.Error("buyer allowed read on another user's record")
	}
	if !CanAccess(buyer, Owned(ResourceUser, 7), ActionUpdate) {
		t.Error("buyer denied update on own user record")
	}
	if CanAccess(buyer, Owned(ResourceUser, 7), ActionDelete) {
		t.Error("buyer allowed delete on own user record")
	}
}

func TestAgentListingMutations(t *testing.T) {
	agent := Caller{UserID: 3, Role: RoleAgent}

	if !CanAccess(agent, Resource{Type: ResourceProperty}, ActionCreate) {
		t.Error("agent denied property create")
	}
	if !CanAccess(agent, Owned(ResourceProperty, 3), ActionUpdate) {
		t.Error("agent denied property update")
	}
	if !CanAccess(agent, Resource{Type: ResourceTransaction}, ActionCreate) {
		t.Error("agent denied transaction create")
	}
	if !CanAccess(agent, Owned(ResourceTransaction, 3), ActionDelete) {
		t.Error("agent denied transaction delete")
	}
}

func TestPropertyDeleteIsAdminOnly(t *testing.T) {
	cases := []Caller{
		{UserID: 3, Role: RoleAgent},
		{UserID: 7, Role: RoleBuyer},
	}

	for _, caller := range cases {
		// Even the owning agent may not delete a listing.
		if CanAccess(caller, Owned(ResourceProperty, caller.UserID), ActionDelete) {
			t.Errorf("%s allowed property delete", caller.Role)
		}
	}

	if !CanAccess(
		Caller{UserID: 1, Role: RoleAdmin},
		Owned(ResourceProperty, 3),
		ActionDelete,
	) {
		t.Error("admin denied property delete")
	}
}

func TestBuyerCannotMutateListings(t *testing.T) {
	buyer := Caller{UserID: 7, Role: RoleBuyer}

	for _, act := range []Action{ActionCreate, ActionUpdate, ActionDelete} {
		if CanAccess(buyer, Resource{Type: ResourceProperty}, act) {
			t.Errorf("buyer allowed property %s", act)
		}
		if CanAccess(buyer, Resource{Type: ResourceTransaction}, act) {
			t.Errorf("buyer allowed transaction %s", act)
		}
	}
}

func TestMessageAndFavoriteOwnership(t *testing.T) {
	buyer := Caller{UserID: 7, Role: RoleBuyer}

	if !CanAccess(buyer, Owned(ResourceFavorite, 7), ActionCreate) {
		t.Error("buyer denied mutating own favorite")
	}
	if CanAccess(buyer, Owned(ResourceFavorite, 9), ActionCreate) {
		t.Error("buyer allowed mutating another user's favorite")
	}
	if !CanAccess(buyer, Owned(ResourceMessage, 7), ActionRead) {
		t.Error("buyer denied reading own messages")
	}
	if CanAccess(buyer, Owned(ResourceMessage, 9), ActionRead) {
		t.Error("buyer allowed reading another user's messages")
	}
	if CanAccess(buyer, Resource{Type: ResourceFavorite}, ActionCreate) {
		t.Error("ownerless favorite resource allowed")
	}
}

func TestUnknownRoleDenied(t *testing.T) {
	for _, role := range []string{"", "admin", "Agent", "SUPERUSER"} {
		caller := Caller{UserID: 7, Role: role}
		if CanAccess(caller, Owned(ResourceUser, 7), ActionRead) {
			t.Errorf("role %q allowed self read, want deny", role)
		}
	}
}
