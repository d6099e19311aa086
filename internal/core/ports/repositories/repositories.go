package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	RoomRepo         RoomRepositoryFacade
	ResidentRepo     ResidentRepositoryFacade
	BookingRepo      BookingRepositoryFacade
	PaymentRepo      PaymentRepositoryFacade
	DocumentRepo     DocumentRepositoryFacade
	NotificationRepo NotificationRepositoryFacade
}
