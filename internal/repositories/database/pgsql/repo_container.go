package pgsql

import (
	portsrepo "github.com/hostelhub/hostelhub_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	roomRepo := newPgxRoomRepository(dbPool)
	residentRepo := newPgxResidentRepository(dbPool)
	bookingRepo := newPgxBookingRepository(dbPool)
	paymentRepo := newPgxPaymentRepository(dbPool)
	documentRepo := newPgxDocumentRepository(dbPool)
	notificationRepo := newPgxNotificationRepository(dbPool)

	return portsrepo.RepositoryProvider{
		RoomRepo:         roomRepo,
		ResidentRepo:     residentRepo,
		BookingRepo:      bookingRepo,
		PaymentRepo:      paymentRepo,
		DocumentRepo:     documentRepo,
		NotificationRepo: notificationRepo,
	}
}
