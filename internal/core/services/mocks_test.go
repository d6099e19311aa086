package services_test

import (
	"context"
	"time"

	"github.com/hostelhub/hostelhub_backend/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock RoomRepository ---
type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) SaveRoom(ctx context.Context, room domain.Room) (int64, error) {
	args := m.Called(ctx, room)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRoomRepository) FindRoomByID(ctx context.Context, roomID int64) (*domain.Room, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) ListRooms(ctx context.Context) ([]domain.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomRepository) ListAvailableRooms(ctx context.Context) ([]domain.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomRepository) ListMaintenanceAlerts(ctx context.Context) ([]domain.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomRepository) UpdateRoom(ctx context.Context, room domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomRepository) UpdateRoomStatus(ctx context.Context, roomID int64, status domain.RoomStatus, updatedAt time.Time) error {
	args := m.Called(ctx, roomID, status, updatedAt)
	return args.Error(0)
}

func (m *MockRoomRepository) DeleteRoom(ctx context.Context, roomID int64) error {
	args := m.Called(ctx, roomID)
	return args.Error(0)
}

// --- Mock ResidentRepository ---
type MockResidentRepository struct {
	mock.Mock
}

func (m *MockResidentRepository) SaveResident(ctx context.Context, resident domain.Resident) (int64, error) {
	args := m.Called(ctx, resident)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockResidentRepository) FindResidentByID(ctx context.Context, residentID int64) (*domain.Resident, error) {
	args := m.Called(ctx, residentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resident), args.Error(1)
}

func (m *MockResidentRepository) ListResidents(ctx context.Context) ([]domain.Resident, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Resident), args.Error(1)
}

func (m *MockResidentRepository) ListCurrentResidents(ctx context.Context, today domain.Date) ([]domain.Resident, error) {
	args := m.Called(ctx, today)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Resident), args.Error(1)
}

func (m *MockResidentRepository) ListResidentsByRoom(ctx context.Context, roomID int64) ([]domain.Resident, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Resident), args.Error(1)
}

func (m *MockResidentRepository) UpdateResident(ctx context.Context, resident domain.Resident) error {
	args := m.Called(ctx, resident)
	return args.Error(0)
}

func (m *MockResidentRepository) CheckOutResident(ctx context.Context, residentID int64, checkOutDate domain.Date, updatedAt time.Time) error {
	args := m.Called(ctx, residentID, checkOutDate, updatedAt)
	return args.Error(0)
}

func (m *MockResidentRepository) UpdateResidentPaymentStatus(ctx context.Context, residentID int64, status domain.PaymentStatus, lastPaymentDate *time.Time, updatedAt time.Time) error {
	args := m.Called(ctx, residentID, status, lastPaymentDate, updatedAt)
	return args.Error(0)
}

func (m *MockResidentRepository) DeleteResident(ctx context.Context, residentID int64) error {
	args := m.Called(ctx, residentID)
	return args.Error(0)
}

// --- Mock BookingRepository ---
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) SaveBooking(ctx context.Context, booking domain.Booking) (int64, error) {
	args := m.Called(ctx, booking)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) FindBookingByID(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListUpcomingBookings(ctx context.Context, today domain.Date) ([]domain.Booking, error) {
	args := m.Called(ctx, today)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListCheckInsOn(ctx context.Context, day domain.Date) ([]domain.Booking, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListCheckOutsOn(ctx context.Context, day domain.Date) ([]domain.Booking, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListNotificationAlerts(ctx context.Context, today, tomorrow domain.Date) ([]domain.Booking, error) {
	args := m.Called(ctx, today, tomorrow)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateBooking(ctx context.Context, booking domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) DeleteBooking(ctx context.Context, bookingID int64) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) (int64, error) {
	args := m.Called(ctx, payment)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaymentRepository) SavePaymentMarkingResidentPaid(ctx context.Context, payment domain.Payment) (int64, error) {
	args := m.Called(ctx, payment)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, paymentID int64) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListPaymentsByResident(ctx context.Context, residentID int64) ([]domain.Payment, error) {
	args := m.Called(ctx, residentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

// --- Mock DocumentRepository ---
type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) SaveDocument(ctx context.Context, document domain.Document) (int64, error) {
	args := m.Called(ctx, document)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDocumentRepository) FindDocumentByID(ctx context.Context, documentID int64) (*domain.Document, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentRepository) ListDocuments(ctx context.Context) ([]domain.Document, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Document), args.Error(1)
}

func (m *MockDocumentRepository) ListDocumentsByResident(ctx context.Context, residentID int64) ([]domain.Document, error) {
	args := m.Called(ctx, residentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Document), args.Error(1)
}

func (m *MockDocumentRepository) ListDocumentsByCategory(ctx context.Context, category domain.DocumentCategory) ([]domain.Document, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Document), args.Error(1)
}

func (m *MockDocumentRepository) UpdateDocument(ctx context.Context, document domain.Document) error {
	args := m.Called(ctx, document)
	return args.Error(0)
}

func (m *MockDocumentRepository) DeleteDocument(ctx context.Context, documentID int64) error {
	args := m.Called(ctx, documentID)
	return args.Error(0)
}

// --- Mock NotificationRepository ---
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) SaveNotification(ctx context.Context, notification domain.Notification) (int64, error) {
	args := m.Called(ctx, notification)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) FindNotificationByID(ctx context.Context, notificationID int64) (*domain.Notification, error) {
	args := m.Called(ctx, notificationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) ListNotifications(ctx context.Context) ([]domain.Notification, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) ListNotificationsByType(ctx context.Context, notificationType domain.NotificationType) ([]domain.Notification, error) {
	args := m.Called(ctx, notificationType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) CountUnreadNotifications(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockNotificationRepository) MarkNotificationRead(ctx context.Context, notificationID int64, readAt time.Time) error {
	args := m.Called(ctx, notificationID, readAt)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkAllNotificationsRead(ctx context.Context, readAt time.Time) error {
	args := m.Called(ctx, readAt)
	return args.Error(0)
}

func (m *MockNotificationRepository) DeleteNotification(ctx context.Context, notificationID int64) error {
	args := m.Called(ctx, notificationID)
	return args.Error(0)
}
