package cmd

import (
	"log/slog"

	httpin "creational/internal/adapters/in/http"
	"creational/internal/adapters/out/memory/orderrepo"
	"creational/internal/core/application/usecases/commands"
	"creational/internal/core/application/usecases/queries"
	"creational/internal/core/domain/model/report"
	"creational/internal/core/domain/model/settings"
	"creational/internal/core/ports"
	"creational/internal/demo"
	"creational/internal/jobs"
)

type CompositionRoot struct {
	config    Config
	logger    *slog.Logger
	provider  *settings.Provider
	orderRepo ports.OrderRepository
}

func NewCompositionRoot(config Config, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:    config,
		logger:    logger,
		provider:  settings.NewProvider(),
		orderRepo: orderrepo.NewMemoryOrderRepository(),
	}
}

func (c *CompositionRoot) SettingsProvider() *settings.Provider {
	return c.provider
}

func (c *CompositionRoot) CreateDemoRunner() *demo.Runner {
	return demo.NewRunner(c.provider, c.logger)
}

func (c *CompositionRoot) CreateSetSettingCommandHandler() commands.SetSettingCommandHandler {
	return commands.NewSetSettingCommandHandler(c.provider)
}

func (c *CompositionRoot) CreateLoadDefaultSettingsCommandHandler() commands.LoadDefaultSettingsCommandHandler {
	return commands.NewLoadDefaultSettingsCommandHandler(c.provider)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateCloneOrderCommandHandler() commands.CloneOrderCommandHandler {
	return commands.NewCloneOrderCommandHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateGetSettingQueryHandler() queries.GetSettingQueryHandler {
	return queries.NewGetSettingQueryHandler(c.provider)
}

func (c *CompositionRoot) CreateGetAllSettingsQueryHandler() queries.GetAllSettingsQueryHandler {
	return queries.NewGetAllSettingsQueryHandler(c.provider)
}

func (c *CompositionRoot) CreateBuildReportQueryHandler() queries.BuildReportQueryHandler {
	return queries.NewBuildReportQueryHandler(report.NewDirector())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		SetSetting:     c.CreateSetSettingCommandHandler(),
		LoadDefaults:   c.CreateLoadDefaultSettingsCommandHandler(),
		CreateOrder:    c.CreateCreateOrderCommandHandler(),
		CloneOrder:     c.CreateCloneOrderCommandHandler(),
		GetSetting:     c.CreateGetSettingQueryHandler(),
		GetAllSettings: c.CreateGetAllSettingsQueryHandler(),
		BuildReport:    c.CreateBuildReportQueryHandler(),
		GetOrder:       c.CreateGetOrderQueryHandler(),
		GetAllOrders:   c.CreateGetAllOrdersQueryHandler(),
	})
}

// CreateJobManager returns the background jobs for the configuration. The
// settings reload job is only scheduled when a settings file is configured.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	var list []jobs.Job
	if c.config.SettingsFile != "" {
		list = append(list, jobs.NewSettingsReloadJob(
			c.provider,
			c.config.SettingsFile,
			c.config.SettingsReloadSchedule,
			c.logger,
		))
	}
	return jobs.NewJobManager(c.logger, list...)
}
