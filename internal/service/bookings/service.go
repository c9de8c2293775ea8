package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/GameNet-ReservationService/internal/domain"
	bookingRepo "github.com/m04kA/GameNet-ReservationService/internal/infra/storage/booking"
	scheduleRepo "github.com/m04kA/GameNet-ReservationService/internal/infra/storage/schedule"
	"github.com/m04kA/GameNet-ReservationService/internal/integrations/events"
	"github.com/m04kA/GameNet-ReservationService/internal/service/bookings/models"
)

// Service сервис чтения и отмены бронирований
type Service struct {
	bookingRepo BookingRepository
	catalog     ScheduleCatalog
	txManager   TransactionManager
	publisher   EventPublisher
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	catalog ScheduleCatalog,
	txManager TransactionManager,
	publisher EventPublisher,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		catalog:     catalog,
		txManager:   txManager,
		publisher:   publisher,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Клиент видит только собственные бронирования
func (s *Service) GetByID(ctx context.Context, id uuid.UUID, customerID uuid.UUID) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for customer=%s", id, customerID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking.CustomerID != customerID {
		s.logger.Warn("GetByID: access denied for customer=%s to booking id=%s", customerID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetCustomerBookings получает историю бронирований клиента
// Опционально фильтрует по статусу
func (s *Service) GetCustomerBookings(ctx context.Context, req *models.GetCustomerBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetCustomerBookings: fetching bookings for customer=%s, status=%v", req.CustomerID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetCustomerBookings: invalid status=%s for customer=%s", *req.Status, req.CustomerID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByCustomerWithFilter(ctx, domain.CustomerBookingsFilter{
		CustomerID: req.CustomerID,
		Status:     domainStatus,
	})
	if err != nil {
		s.logger.Error("GetCustomerBookings: repository error for customer=%s: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: GetCustomerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCustomerBookings: fetched %d bookings for customer=%s", len(bookings), req.CustomerID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование клиента и возвращает слоты окна в available
//
// Отмена и возврат слотов выполняются в одной сериализуемой транзакции:
// читатель не увидит отмененное бронирование с еще занятыми слотами
func (s *Service) Cancel(ctx context.Context, bookingID uuid.UUID, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%s by customer=%s", bookingID, req.CustomerID)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason is too long", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%s not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if booking.CustomerID != req.CustomerID {
		s.logger.Warn("Cancel: access denied for customer=%s to booking id=%s", req.CustomerID, bookingID)
		return ErrAccessDenied
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%s cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := s.bookingRepo.Cancel(txCtx, bookingID, req.CancellationReason); err != nil {
			return err
		}

		// Возвращаем слоты окна: booked -> available
		// Конфликт CAS означает, что слот уже не booked (например, переведен
		// в maintenance персоналом) - для отмены это не препятствие
		for _, slotID := range booking.SlotIDs {
			err := s.catalog.CompareAndSetStatus(txCtx, booking.TerminalID, slotID, domain.SlotBooked, domain.SlotAvailable)
			if err != nil && !errors.Is(err, scheduleRepo.ErrStatusConflict) {
				return err
			}
			if errors.Is(err, scheduleRepo.ErrStatusConflict) {
				s.logger.Warn("Cancel: slot %d on terminal %d is no longer booked, skipping release",
					slotID, booking.TerminalID)
			}
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			// Конкурентная отмена успела раньше
			return ErrCannotCancel
		}
		s.logger.Error("Cancel: transaction failed for booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - transaction failed: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: booking id=%s cancelled, %d slots released", bookingID, len(booking.SlotIDs))

	s.publishEvents(ctx, booking)
	return nil
}

// publishEvents публикует события отмены бронирования
func (s *Service) publishEvents(ctx context.Context, booking *domain.Booking) {
	cancelled := events.BookingCancelled{
		BookingID:   booking.ID,
		TerminalID:  booking.TerminalID,
		CustomerID:  booking.CustomerID,
		CancelledAt: time.Now(),
	}
	if err := s.publisher.Publish(ctx, events.KeyBookingCancelled, cancelled); err != nil {
		s.logger.Warn("Cancel: failed to publish %s: %v", events.KeyBookingCancelled, err)
	}

	updated := events.ScheduleUpdated{
		TerminalID: booking.TerminalID,
		SlotIDs:    booking.SlotIDs,
		Status:     string(domain.SlotAvailable),
		UpdatedAt:  time.Now(),
	}
	if err := s.publisher.Publish(ctx, events.KeyScheduleUpdated, updated); err != nil {
		s.logger.Warn("Cancel: failed to publish %s: %v", events.KeyScheduleUpdated, err)
	}
}
