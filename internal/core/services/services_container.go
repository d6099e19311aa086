package services

import (
	portsrepo "github.com/hostelhub/hostelhub_backend/internal/core/ports/repositories"
	portssvc "github.com/hostelhub/hostelhub_backend/internal/core/ports/services"
	"github.com/hostelhub/hostelhub_backend/internal/platform/config"
	"github.com/shopspring/decimal"
)

// NewServiceContainer wires up all application services from the repository
// provider and runtime configuration.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Room:     NewRoomService(repos.RoomRepo),
		Resident: NewResidentService(repos.ResidentRepo),
		Booking:  NewBookingService(repos.BookingRepo),
		Payment: NewPaymentService(repos.PaymentRepo, repos.ResidentRepo,
			WithFailureRate(cfg.PaymentFailureRate),
			WithFeeRate(decimal.NewFromFloat(cfg.PaymentFeeRate)),
		),
		Document:     NewDocumentService(repos.DocumentRepo, WithMaxUploadSize(cfg.MaxUploadSizeBytes)),
		Notification: NewNotificationService(repos.NotificationRepo, repos.BookingRepo, repos.RoomRepo),
		Reporting:    NewReportingService(repos.RoomRepo, repos.ResidentRepo, repos.BookingRepo),
	}
}
