package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorizeTable(t *testing.T) {
	cases := []struct {
		op       Operation
		employee bool
		manager  bool
		admin    bool
	}{
		{OpCreateSoftware, false, false, true},
		{OpListSoftware, true, true, true},
		{OpSubmitRequest, true, false, true},
		{OpListOwnRequests, true, false, true},
		{OpListPendingRequests, false, true, true},
		{OpTransitionRequest, false, true, true},
		{OpListAllRequests, false, false, true},
	}
	for _, tc := range cases {
		t.Run(string(tc.op), func(t *testing.T) {
			assert.Equal(t, tc.employee, Authorize(RoleEmployee, tc.op))
			assert.Equal(t, tc.manager, Authorize(RoleManager, tc.op))
			assert.Equal(t, tc.admin, Authorize(RoleAdmin, tc.op))
		})
	}
}

func TestAuthorizeUnknown(t *testing.T) {
	assert.False(t, Authorize(Role("Intern"), OpListSoftware))
	assert.False(t, Authorize(RoleAdmin, Operation("software.delete")))
	assert.False(t, Authorize(Role(""), OpSubmitRequest))
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleEmployee))
	assert.True(t, ValidRole(RoleManager))
	assert.True(t, ValidRole(RoleAdmin))
	assert.False(t, ValidRole(Role("employee")))
	assert.False(t, ValidRole(Role("")))
}
