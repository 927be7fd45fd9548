package service

import (
	"context"
	"sync"

	"github.com/pospoint/terminal-api/internal/domain/entity"
	"github.com/pospoint/terminal-api/internal/domain/enum"
	"github.com/pospoint/terminal-api/internal/domain/repository"
	"github.com/pospoint/terminal-api/pkg/apperror"
	"go.uber.org/zap"
)

// rolePermissions is the fixed role table. The sets are not a strict
// privilege hierarchy: a cashier works the counter (crm, no inventory) while
// floor staff stock shelves (inventory, no crm).
var rolePermissions = map[enum.Role][]string{
	enum.RoleAdmin: {
		enum.PermissionDashboard,
		enum.PermissionSales,
		enum.PermissionInventory,
		enum.PermissionOutlets,
		enum.PermissionReports,
		enum.PermissionCRM,
		enum.PermissionSettings,
		enum.PermissionStaff,
		enum.PermissionProducts,
		enum.PermissionPOS,
		enum.PermissionNotifications,
		enum.PermissionActivityLog,
	},
	enum.RoleManager: {
		enum.PermissionDashboard,
		enum.PermissionSales,
		enum.PermissionInventory,
		enum.PermissionOutlets,
		enum.PermissionReports,
		enum.PermissionCRM,
		enum.PermissionProducts,
		enum.PermissionPOS,
		enum.PermissionNotifications,
		enum.PermissionActivityLog,
	},
	enum.RoleCashier: {
		enum.PermissionDashboard,
		enum.PermissionSales,
		enum.PermissionCRM,
		enum.PermissionPOS,
		enum.PermissionNotifications,
	},
	enum.RoleStaff: {
		enum.PermissionDashboard,
		enum.PermissionSales,
		enum.PermissionInventory,
		enum.PermissionProducts,
		enum.PermissionPOS,
	},
}

// PermissionsForRole returns the fixed permission set for a role. The same
// slice is returned on every call for a given role; callers must not mutate
// it. Unknown roles get nil, so every membership check fails closed.
func PermissionsForRole(role enum.Role) []string {
	return rolePermissions[role]
}

// RoleService holds the terminal's active role and answers permission
// checks. The role survives restarts via the client state store; there is a
// single logical writer (the operator), so a plain mutex suffices.
type RoleService struct {
	stateRepo repository.ClientStateRepository
	logger    *zap.Logger

	mu   sync.RWMutex
	role enum.Role
}

// NewRoleService creates a role service and loads the persisted role. A
// missing or unrecognized persisted value falls back to admin and is written
// back, so the next start reads a valid role.
func NewRoleService(ctx context.Context, stateRepo repository.ClientStateRepository, logger *zap.Logger) (*RoleService, error) {
	s := &RoleService{stateRepo: stateRepo, logger: logger}

	stored, err := stateRepo.Get(ctx, entity.StateKeyActiveRole)
	if err != nil {
		return nil, err
	}

	role := enum.Role(stored)
	if !role.Valid() {
		// TODO: failing open to admin on corrupt state is inherited behavior;
		// revisit once the backend can confirm the operator's real role.
		logger.Warn("persisted role missing or invalid, defaulting to admin",
			zap.String("stored", stored))
		role = enum.RoleAdmin
		if err := stateRepo.Set(ctx, entity.StateKeyActiveRole, role.String()); err != nil {
			return nil, err
		}
	}

	s.role = role
	return s, nil
}

// CurrentRole returns the active role.
func (s *RoleService) CurrentRole() enum.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.role
}

// SetRole switches the active role. The new value is persisted before the
// in-memory role commits, so a permission check that follows a successful
// SetRole always sees the new role, even across a restart.
func (s *RoleService) SetRole(ctx context.Context, role enum.Role) error {
	if !role.Valid() {
		return apperror.NewBadRequestError("Unknown role: " + role.String())
	}
	if err := s.stateRepo.Set(ctx, entity.StateKeyActiveRole, role.String()); err != nil {
		return err
	}

	s.mu.Lock()
	s.role = role
	s.mu.Unlock()

	s.logger.Info("active role changed", zap.String("role", role.String()))
	return nil
}

// HasPermission reports whether the active role holds the given permission
// key. Unknown roles and unknown keys both fail closed.
func (s *RoleService) HasPermission(key string) bool {
	for _, p := range PermissionsForRole(s.CurrentRole()) {
		if p == key {
			return true
		}
	}
	return false
}

// Permissions returns the active role's permission set.
func (s *RoleService) Permissions() []string {
	return PermissionsForRole(s.CurrentRole())
}
