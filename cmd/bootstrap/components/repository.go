package components

import (
	"pupperazi-api/internal/infra/readstore"
	"pupperazi-api/internal/infra/repository"
	"pupperazi-api/internal/usecase/commands"
	"pupperazi-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Write side
		fx.Annotate(
			repository.NewLeadRepository,
			fx.As(new(commands.LeadRepository)),
		),
		fx.Annotate(
			repository.NewCustomerRepository,
			fx.As(new(commands.CustomerRepository)),
		),
		fx.Annotate(
			repository.NewAppointmentRepository,
			fx.As(new(commands.AppointmentRepository)),
		),
		fx.Annotate(
			repository.NewEventRepository,
			fx.As(new(commands.EventRepository)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		// Read side
		fx.Annotate(
			readstore.NewLeadReadStore,
			fx.As(new(queries.LeadReadStore)),
		),
		fx.Annotate(
			readstore.NewAppointmentReadStore,
			fx.As(new(queries.AppointmentReadStore)),
		),
		fx.Annotate(
			readstore.NewServiceReadStore,
			fx.As(new(queries.ServiceReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewEventReadStore,
			fx.As(new(queries.EventReadStore)),
		),
	),
)
