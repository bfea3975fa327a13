package rbac

import (
	"sync"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"

	"github.com/ray0128/sunday-for-rayinhair/internal/domain"
)

type Service interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
	logger   *zap.Logger
	mu       sync.Mutex
}

// staffPolicy maps the fixed role taxonomy onto resources and actions.
// Managers administer everything; requesting roles see availability and
// manage their own leave.
var staffPolicy = [][]string{
	{domain.RoleManager, "availability", "read"},
	{domain.RoleManager, "leave", "read"},
	{domain.RoleManager, "leave", "create"},
	{domain.RoleManager, "leave", "approve"},
	{domain.RoleManager, "store", "read"},
	{domain.RoleManager, "store", "write"},
	{domain.RoleManager, "staff", "read"},
	{domain.RoleManager, "staff", "write"},
	{domain.RoleManager, "config", "read"},
	{domain.RoleManager, "config", "write"},
	{domain.RoleManager, "binding", "read"},
	{domain.RoleManager, "binding", "write"},
	{domain.RoleManager, "override", "read"},
	{domain.RoleManager, "override", "write"},
	{domain.RoleManager, "booking", "read"},
	{domain.RoleManager, "booking", "write"},

	{domain.RoleDesigner, "availability", "read"},
	{domain.RoleDesigner, "leave", "read"},
	{domain.RoleDesigner, "leave", "create"},
	{domain.RoleDesigner, "leave", "cancel"},
	{domain.RoleDesigner, "override", "read"},

	{domain.RoleAssistant, "availability", "read"},
	{domain.RoleAssistant, "leave", "read"},
	{domain.RoleAssistant, "leave", "create"},
	{domain.RoleAssistant, "leave", "cancel"},

	{domain.RoleRookie, "availability", "read"},
	{domain.RoleRookie, "leave", "read"},
	{domain.RoleRookie, "leave", "create"},
	{domain.RoleRookie, "leave", "cancel"},
	{domain.RoleRookie, "booking", "read"},
	{domain.RoleRookie, "booking", "write"},
}

func NewService(enforcer *casbin.Enforcer, logger ...*zap.Logger) (Service, error) {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}

	for _, p := range staffPolicy {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}

	return &service{enforcer: enforcer, logger: l}, nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	allowed, err := s.enforcer.Enforce(req.Role, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", req.Role),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("role", req.Role),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)

	return allowed, nil
}
