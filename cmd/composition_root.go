package cmd

import (
	"resourceshare/internal/adapters/out/jwtidentity"
	"resourceshare/internal/adapters/out/postgres"
	"resourceshare/internal/core/application/usecases/commands"
	"resourceshare/internal/core/application/usecases/queries"
	"resourceshare/internal/core/ports"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use-case handlers. All handlers share
// one unit-of-work factory bound to the application's connection pool.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	config     Config
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		config:     config,
	}
}

func (c *CompositionRoot) resourceUoWFactory() commands.ResourceUoWFactory {
	return FuncResourceUoWFactory(func() commands.ResourceUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreatePublishResourceCommandHandler() commands.PublishResourceCommandHandler {
	return commands.NewPublishResourceCommandHandler(c.resourceUoWFactory())
}

func (c *CompositionRoot) CreateClaimResourceCommandHandler() commands.ClaimResourceCommandHandler {
	return commands.NewClaimResourceCommandHandler(c.resourceUoWFactory())
}

func (c *CompositionRoot) CreateConfirmPickupCommandHandler() commands.ConfirmPickupCommandHandler {
	return commands.NewConfirmPickupCommandHandler(c.resourceUoWFactory())
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	return commands.NewConfirmDeliveryCommandHandler(c.resourceUoWFactory())
}

func (c *CompositionRoot) CreateToggleAutoConfirmCommandHandler() commands.ToggleAutoConfirmCommandHandler {
	return commands.NewToggleAutoConfirmCommandHandler(c.resourceUoWFactory())
}

func (c *CompositionRoot) CreateCancelResourceCommandHandler() commands.CancelResourceCommandHandler {
	return commands.NewCancelResourceCommandHandler(c.resourceUoWFactory())
}

func (c *CompositionRoot) CreateGetAvailableResourcesQueryHandler() queries.GetAvailableResourcesQueryHandler {
	return queries.NewGetAvailableResourcesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDonorResourcesQueryHandler() queries.GetDonorResourcesQueryHandler {
	return queries.NewGetDonorResourcesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetClaimedDonorResourcesQueryHandler() queries.GetClaimedDonorResourcesQueryHandler {
	return queries.NewGetClaimedDonorResourcesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetReceiverResourcesQueryHandler() queries.GetReceiverResourcesQueryHandler {
	return queries.NewGetReceiverResourcesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetResourceByIDQueryHandler() queries.GetResourceByIDQueryHandler {
	return queries.NewGetResourceByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStatusSummaryQueryHandler() queries.GetStatusSummaryQueryHandler {
	return queries.NewGetStatusSummaryQueryHandler(c.gormDB)
}

// CreateIdentityProvider builds the JWT resolver over a non-transactional
// user repository.
func (c *CompositionRoot) CreateIdentityProvider() ports.IdentityProvider {
	uow := c.uowFactory.Create()
	return jwtidentity.NewResolver([]byte(c.config.JWTSecret), uow.UserRepository())
}

type FuncResourceUoWFactory func() commands.ResourceUoW

func (f FuncResourceUoWFactory) Create() commands.ResourceUoW {
	return f()
}
