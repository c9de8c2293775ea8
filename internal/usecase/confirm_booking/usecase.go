package confirm_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/GameNet-ReservationService/internal/domain"
	terminalRepo "github.com/m04kA/GameNet-ReservationService/internal/infra/storage/terminal"
	"github.com/m04kA/GameNet-ReservationService/internal/integrations/events"
)

// UseCase use case подтверждения бронирования (коммитер)
//
// Превращает выбранное клиентом окно в подтвержденное бронирование как
// атомарный переход: либо все слоты окна переходят в booked и появляется
// запись бронирования, либо каталог остается в исходном состоянии.
//
// Вместо одной блокировки на все окно каждый слот захватывается отдельным
// compare-and-set: окно конкуренции минимально, а конфликт указывает на
// конкретный спорный слот. Частично захваченное окно откатывается здесь же,
// поэтому "осиротевших" booked-слотов без бронирования не бывает.
type UseCase struct {
	catalog      ScheduleCatalog
	bookingRepo  BookingRepository
	terminalRepo TerminalRepository
	txManager    TransactionManager
	publisher    EventPublisher
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalog ScheduleCatalog,
	bookingRepo BookingRepository,
	terminalRepo TerminalRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalog:      catalog,
		bookingRepo:  bookingRepo,
		terminalRepo: terminalRepo,
		txManager:    txManager,
		publisher:    publisher,
		logger:       logger,
	}
}

// Execute выполняет подтверждение бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmBooking: customer=%s, terminal=%d, slots=%v, rate=%d",
		req.CustomerID, req.TerminalID, req.SlotIDs, req.HourlyRate)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ConfirmBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование терминала
	if _, err := uc.terminalRepo.GetByID(ctx, req.TerminalID); err != nil {
		if errors.Is(err, terminalRepo.ErrTerminalNotFound) {
			uc.logger.Warn("ConfirmBooking: terminal id=%d not found", req.TerminalID)
			return nil, ErrTerminalNotFound
		}
		uc.logger.Error("ConfirmBooking: failed to get terminal id=%d: %v", req.TerminalID, err)
		return nil, fmt.Errorf("%w: failed to get terminal: %v", ErrInternal, err)
	}

	// 3. Резолвим слоты окна против каталога и перепроверяем непрерывность
	// Window Builder уже гарантирует ее, но коммитер не доверяет клиенту
	assignments, err := uc.catalog.GetAssignments(ctx, req.TerminalID)
	if err != nil {
		uc.logger.Error("ConfirmBooking: failed to get assignments for terminal id=%d: %v", req.TerminalID, err)
		return nil, fmt.Errorf("%w: failed to get assignments: %v", ErrInternal, err)
	}

	window, err := resolveWindow(assignments, req.SlotIDs)
	if err != nil {
		uc.logger.Warn("ConfirmBooking: window validation failed: %v", err)
		return nil, err
	}

	// 4. Захватываем слоты окна по одному: available -> booked
	// Доступность здесь не предполагается, а перепроверяется самим CAS
	claimed, err := uc.claimSlots(ctx, req.TerminalID, req.SlotIDs)
	if err != nil {
		return nil, err
	}

	// 5. Создаем запись бронирования; строка и связки на слоты пишутся
	// в одной транзакции
	booking := &domain.Booking{
		TerminalID:    req.TerminalID,
		CustomerID:    req.CustomerID,
		SlotIDs:       req.SlotIDs,
		StartTime:     window[0].StartTime,
		EndTime:       window[len(window)-1].EndTime,
		DurationHours: len(window),
		HourlyRate:    req.HourlyRate,
		TotalCost:     int64(len(window)) * req.HourlyRate,
		Status:        domain.StatusConfirmed,
	}

	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		_, err := uc.bookingRepo.Create(txCtx, booking)
		return err
	})
	if err != nil {
		// Запись не создалась - возвращаем захваченные слоты, чтобы каталог
		// не остался с booked-слотами без бронирования
		uc.logger.Error("ConfirmBooking: failed to create booking, releasing %d claimed slots: %v",
			len(claimed), err)
		uc.releaseSlots(ctx, req.TerminalID, claimed)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.logger.Info("ConfirmBooking: booking id=%s confirmed, terminal=%d, window=%s-%s, total=%d",
		booking.ID, booking.TerminalID, booking.StartTime, booking.EndTime, booking.TotalCost)

	// 6. Исходящие сигналы best-effort: брокер не влияет на результат коммита
	uc.publishEvents(ctx, booking)

	return &Response{
		ID:            booking.ID,
		TerminalID:    booking.TerminalID,
		CustomerID:    booking.CustomerID,
		SlotIDs:       booking.SlotIDs,
		StartTime:     booking.StartTime,
		EndTime:       booking.EndTime,
		DurationHours: booking.DurationHours,
		HourlyRate:    booking.HourlyRate,
		TotalCost:     booking.TotalCost,
		Status:        string(booking.Status),
		CreatedAt:     booking.CreatedAt,
	}, nil
}

// claimSlots последовательно захватывает слоты окна через compare-and-set
// При первом конфликте откатывает уже захваченные слоты этого вызова
// и возвращает SlotConflictError со спорным слотом
func (uc *UseCase) claimSlots(ctx context.Context, terminalID int64, slotIDs []int64) ([]int64, error) {
	claimed := make([]int64, 0, len(slotIDs))

	for _, slotID := range slotIDs {
		err := uc.catalog.CompareAndSetStatus(ctx, terminalID, slotID, domain.SlotAvailable, domain.SlotBooked)
		if err == nil {
			claimed = append(claimed, slotID)
			continue
		}

		uc.releaseSlots(ctx, terminalID, claimed)

		switch {
		case isConflict(err):
			uc.logger.Warn("ConfirmBooking: slot %d on terminal %d was claimed concurrently", slotID, terminalID)
			return nil, &SlotConflictError{TerminalID: terminalID, SlotIDs: []int64{slotID}}
		case isNotFound(err):
			uc.logger.Warn("ConfirmBooking: slot %d is not in terminal %d schedule", slotID, terminalID)
			return nil, fmt.Errorf("%w: slot %d", ErrSlotNotInCatalog, slotID)
		default:
			uc.logger.Error("ConfirmBooking: CAS failed for terminal=%d slot=%d: %v", terminalID, slotID, err)
			return nil, fmt.Errorf("%w: compare-and-set failed: %v", ErrInternal, err)
		}
	}

	return claimed, nil
}

// releaseSlots откатывает захваченные слоты: booked -> available
// Ошибки отката логируются, но не маскируют исходную ошибку вызова
//
// Откат идет на контексте без отмены: если клиент оборвал запрос посреди
// захвата, слоты все равно должны вернуться в available, иначе они
// останутся booked без бронирования
func (uc *UseCase) releaseSlots(ctx context.Context, terminalID int64, claimed []int64) {
	ctx = context.WithoutCancel(ctx)
	for _, slotID := range claimed {
		err := uc.catalog.CompareAndSetStatus(ctx, terminalID, slotID, domain.SlotBooked, domain.SlotAvailable)
		if err != nil {
			uc.logger.Error("ConfirmBooking: rollback failed for terminal=%d slot=%d: %v", terminalID, slotID, err)
		}
	}
}

// publishEvents публикует события успешного бронирования
func (uc *UseCase) publishEvents(ctx context.Context, booking *domain.Booking) {
	created := events.BookingCreated{
		BookingID:     booking.ID,
		TerminalID:    booking.TerminalID,
		CustomerID:    booking.CustomerID,
		StartTime:     booking.StartTime.String(),
		EndTime:       booking.EndTime.String(),
		DurationHours: booking.DurationHours,
		TotalCost:     booking.TotalCost,
		CreatedAt:     booking.CreatedAt,
	}
	if err := uc.publisher.Publish(ctx, events.KeyBookingCreated, created); err != nil {
		uc.logger.Warn("ConfirmBooking: failed to publish %s: %v", events.KeyBookingCreated, err)
	}

	updated := events.ScheduleUpdated{
		TerminalID: booking.TerminalID,
		SlotIDs:    booking.SlotIDs,
		Status:     string(domain.SlotBooked),
		UpdatedAt:  time.Now(),
	}
	if err := uc.publisher.Publish(ctx, events.KeyScheduleUpdated, updated); err != nil {
		uc.logger.Warn("ConfirmBooking: failed to publish %s: %v", events.KeyScheduleUpdated, err)
	}
}
