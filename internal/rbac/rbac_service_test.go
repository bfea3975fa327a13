package rbac_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ray0128/sunday-for-rayinhair/internal/domain"
	"github.com/ray0128/sunday-for-rayinhair/internal/rbac"
	"github.com/ray0128/sunday-for-rayinhair/internal/rbac/infra"
)

func newTestService(t *testing.T) rbac.Service {
	t.Helper()

	enforcer, err := infra.NewEnforcer()
	assert.NoError(t, err)

	svc, err := rbac.NewService(enforcer)
	assert.NoError(t, err)
	return svc
}

func TestRBACService_Enforce(t *testing.T) {
	svc := newTestService(t)

	cases := []struct {
		name    string
		role    string
		res     string
		act     string
		allowed bool
	}{
		{"manager approves leave", domain.RoleManager, "leave", "approve", true},
		{"manager writes config", domain.RoleManager, "config", "write", true},
		{"assistant reads availability", domain.RoleAssistant, "availability", "read", true},
		{"assistant cannot approve leave", domain.RoleAssistant, "leave", "approve", false},
		{"designer cannot write config", domain.RoleDesigner, "config", "write", false},
		{"rookie writes own booking", domain.RoleRookie, "booking", "write", true},
		{"designer cannot write booking", domain.RoleDesigner, "booking", "write", false},
		{"unknown role denied", "JANITOR", "leave", "read", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			allowed, err := svc.Enforce(domain.EnforceRequest{
				Role:     tc.role,
				Resource: tc.res,
				Action:   tc.act,
			})
			assert.NoError(t, err)
			assert.Equal(t, tc.allowed, allowed)
		})
	}
}
