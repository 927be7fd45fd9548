package service

import (
	"sync"

	"github.com/pospoint/terminal-api/internal/domain/entity"
	"github.com/pospoint/terminal-api/internal/domain/enum"
	"github.com/pospoint/terminal-api/pkg/apperror"
)

// RequireBusiness validates that a business is selected.
func RequireBusiness(sess *entity.SessionContext) (*entity.Business, error) {
	if sess == nil || sess.Business == nil {
		return nil, apperror.ErrNoBusiness
	}
	return sess.Business, nil
}

// RequireOutlet validates that an outlet is resolved, falling back to the
// tenant-level outlet when no business-scoped one is set.
func RequireOutlet(sess *entity.SessionContext) (*entity.Outlet, error) {
	if sess == nil {
		return nil, apperror.ErrNoOutlet
	}
	if sess.Outlet != nil {
		return sess.Outlet, nil
	}
	if sess.TenantOutlet != nil {
		return sess.TenantOutlet, nil
	}
	return nil, apperror.ErrNoOutlet
}

// RequireShift validates that a shift is open.
func RequireShift(sess *entity.SessionContext) (*entity.Shift, error) {
	if sess == nil || sess.Shift == nil {
		return nil, apperror.ErrNoShift
	}
	return sess.Shift, nil
}

// RequireAll runs every guard in the fixed order business, outlet, shift and
// stops at the first failure. The order is part of the contract: a caller
// must not be told "no shift" while no business is selected at all.
func RequireAll(sess *entity.SessionContext) (*entity.SessionContext, error) {
	business, err := RequireBusiness(sess)
	if err != nil {
		return nil, err
	}
	outlet, err := RequireOutlet(sess)
	if err != nil {
		return nil, err
	}
	shift, err := RequireShift(sess)
	if err != nil {
		return nil, err
	}
	return &entity.SessionContext{Business: business, Outlet: outlet, Shift: shift}, nil
}

// SessionService owns the terminal's current session selections and gates
// entry into POS screens. Validation itself is pure; the service only stores
// what the operator has picked.
type SessionService struct {
	resolver *OutletResolver

	mu   sync.RWMutex
	sess entity.SessionContext
}

// NewSessionService creates a new session service
func NewSessionService(resolver *OutletResolver) *SessionService {
	return &SessionService{resolver: resolver}
}

// Context returns a snapshot of the current session selections.
func (s *SessionService) Context() *entity.SessionContext {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := s.sess
	return &snapshot
}

// SelectBusiness records the selected business and clears outlet and shift,
// which belong to the previous business.
func (s *SessionService) SelectBusiness(business *entity.Business) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess.Business = business
	s.sess.Outlet = nil
	s.sess.Shift = nil
}

// SelectOutlet records the selected outlet and clears any open shift.
func (s *SessionService) SelectOutlet(outlet *entity.Outlet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess.Outlet = outlet
	s.sess.Shift = nil
}

// SetTenantOutlet records the tenant-level fallback outlet.
func (s *SessionService) SetTenantOutlet(outlet *entity.Outlet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess.TenantOutlet = outlet
}

// SetShift records the active shift (nil closes it).
func (s *SessionService) SetShift(shift *entity.Shift) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess.Shift = shift
}

// EnterPOS gates entry into a POS variant. Guard failures are returned as-is
// so the caller can redirect to the matching selection screen. A mode
// mismatch is not a failure: the caller is redirected to the variant the
// outlet actually runs.
func (s *SessionService) EnterPOS(requested enum.PosMode) (route string, redirect bool, err error) {
	sess := s.Context()
	validated, err := RequireAll(sess)
	if err != nil {
		return "", false, err
	}

	route = s.resolver.ResolvePOSRoute(validated.Outlet, validated.Business)
	if validated.Business.PosType == enum.PosTypeSingleProduct {
		return route, true, nil
	}

	resolved := s.resolver.ResolveMode(validated.Outlet, validated.Business)
	if resolved != requested {
		return route, true, nil
	}
	return route, false, nil
}
