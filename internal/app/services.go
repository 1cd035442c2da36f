package app

import (
	"go.uber.org/fx"

	"github.com/turnos-app/turnos_backend/internal/repo"
	"github.com/turnos-app/turnos_backend/internal/service/booking"
	"github.com/turnos-app/turnos_backend/internal/service/directory"
	"github.com/turnos-app/turnos_backend/internal/store"
	"github.com/turnos-app/turnos_backend/internal/store/entstore"
	"github.com/turnos-app/turnos_backend/pkg/email"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideStore,
		ProvideBookingService,
		ProvideDirectoryService,
	),
)

func ProvideStore(client *repo.Client) store.Store {
	return entstore.New(client)
}

func ProvideBookingService(db store.Store, mailer *email.Client) booking.Service {
	return booking.New(db, mailer)
}

func ProvideDirectoryService(db store.Store) directory.Service {
	return directory.New(db)
}
