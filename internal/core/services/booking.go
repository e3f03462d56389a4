package services

import (
	"context"

	"github.com/homecrew-labs/homecrew-cli/internal/core/domain"
	"github.com/homecrew-labs/homecrew-cli/internal/core/ports/driven"
	"github.com/homecrew-labs/homecrew-cli/internal/core/ports/driving"
	"github.com/homecrew-labs/homecrew-cli/internal/logger"
	"github.com/homecrew-labs/homecrew-cli/internal/timeutil"
)

// Ensure BookingService implements the interface.
var _ driving.BookingService = (*BookingService)(nil)

// BookingService constructs and persists service bookings.
type BookingService struct {
	services driven.ServiceStore
	clock    timeutil.Clock
}

// NewBookingService creates a new booking service.
func NewBookingService(services driven.ServiceStore, clock timeutil.Clock) *BookingService {
	return &BookingService{
		services: services,
		clock:    clock,
	}
}

// CreateImmediate books work starting as soon as possible. The booking is
// stamped with the current date and time, persisted as Pending under a
// fresh id, and returned.
func (s *BookingService) CreateImmediate(ctx context.Context, params driving.BookingParams) (*domain.Service, error) {
	service, err := s.newService(ctx, params, domain.TypeImmediate)
	if err != nil {
		return nil, err
	}
	if err := s.services.Save(ctx, *service); err != nil {
		return nil, err
	}
	logger.Debug("created immediate booking %d for customer %s", service.ID, service.CustomerID)
	return service, nil
}

// CreateScheduling books work for a caller-supplied future slot. The slot
// is recorded as the booking's work date and start time.
func (s *BookingService) CreateScheduling(ctx context.Context, params driving.BookingParams, date, startTime string) (*domain.Service, error) {
	service, err := s.newService(ctx, params, domain.TypeScheduling)
	if err != nil {
		return nil, err
	}
	service.WorkDate = &date
	service.WorkStartTime = &startTime
	if err := s.services.Save(ctx, *service); err != nil {
		return nil, err
	}
	logger.Debug("created scheduled booking %d for customer %s on %s %s",
		service.ID, service.CustomerID, date, startTime)
	return service, nil
}

func (s *BookingService) newService(ctx context.Context, params driving.BookingParams, serviceType domain.ServiceType) (*domain.Service, error) {
	id, err := s.services.NextID(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.Service{
		ID:                id,
		Status:            domain.StatusPending,
		Type:              serviceType,
		Plan:              params.Plan,
		BookingDate:       timeutil.CurrentDate(s.clock),
		BookingTime:       timeutil.CurrentTime(s.clock),
		Locality:          params.Locality,
		CustomerID:        params.CustomerID,
		CustomerGender:    params.CustomerGender,
		Address:           params.Address,
		RequestedServices: params.RequestedServices,
		GenderPref:        params.GenderPref,
	}, nil
}
