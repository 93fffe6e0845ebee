package cmd

import (
	"context"

	"fulfillment/internal/adapters/out/locate2u"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/notifyrepo"
	"fulfillment/internal/adapters/out/s3store"
	"fulfillment/internal/adapters/out/shopify"
	"fulfillment/internal/adapters/out/shopify/fake"
	"fulfillment/internal/adapters/out/slack"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	orderSource   ports.OrderSource
	inventory     ports.InventoryAdjuster
	refunds       ports.RefundIssuer
	delivery      ports.DeliveryService
	notifier      ports.Notifier
	objectStorage ports.ObjectStorage
}

func NewCompositionRoot(ctx context.Context, config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	var (
		orderSource ports.OrderSource
		inventory   ports.InventoryAdjuster
		refunds     ports.RefundIssuer
	)
	if config.ShopifyShop == "" {
		// No shop configured: run against the canned local commerce platform.
		fakeClient := fake.New()
		orderSource, inventory, refunds = fakeClient, fakeClient, fakeClient
	} else {
		shopifyClient := shopify.New(
			config.ShopifyShop, config.ShopifyToken, config.ShopifyAPIVersion, config.ShopifyLocationID)
		orderSource, inventory, refunds = shopifyClient, shopifyClient, shopifyClient
	}

	locate2uClient := locate2u.New(
		config.Locate2uBaseURL, config.Locate2uClientID, config.Locate2uClientSecret)

	store, err := s3store.New(
		ctx,
		config.S3Endpoint, config.S3Region,
		config.S3AccessKey, config.S3SecretKey,
		config.S3Bucket, config.S3PublicURL,
	)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		orderSource:   orderSource,
		inventory:     inventory,
		refunds:       refunds,
		delivery:      locate2uClient,
		notifier:      notifyrepo.NewRecordingNotifier(gormDB, slack.New(config.SlackWebhookURL)),
		objectStorage: store,
	}, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderToteUoWFactory() commands.OrderToteUoWFactory {
	return FuncOrderToteUoWFactory(func() commands.OrderToteUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderOperatorUoWFactory() commands.OrderOperatorUoWFactory {
	return FuncOrderOperatorUoWFactory(func() commands.OrderOperatorUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) operatorUoWFactory() commands.OperatorUoWFactory {
	return FuncOperatorUoWFactory(func() commands.OperatorUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) ruleUoWFactory() commands.RuleUoWFactory {
	return FuncRuleUoWFactory(func() commands.RuleUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateImportOrdersCommandHandler() commands.ImportOrdersCommandHandler {
	return commands.NewImportOrdersCommandHandler(c.orderOperatorUoWFactory(), c.orderSource)
}

func (c *CompositionRoot) CreateSyncDeliveriesCommandHandler() commands.SyncDeliveriesCommandHandler {
	return commands.NewSyncDeliveriesCommandHandler(c.orderUoWFactory(), c.delivery)
}

func (c *CompositionRoot) CreatePickItemCommandHandler() commands.PickItemCommandHandler {
	return commands.NewPickItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUnpickItemCommandHandler() commands.UnpickItemCommandHandler {
	return commands.NewUnpickItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreatePackItemCommandHandler() commands.PackItemCommandHandler {
	return commands.NewPackItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUnpackItemCommandHandler() commands.UnpackItemCommandHandler {
	return commands.NewUnpackItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateFlagExceptionCommandHandler() commands.FlagExceptionCommandHandler {
	return commands.NewFlagExceptionCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUndoItemCommandHandler() commands.UndoItemCommandHandler {
	return commands.NewUndoItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRecordSubstitutionCommandHandler() commands.RecordSubstitutionCommandHandler {
	return commands.NewRecordSubstitutionCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateConfirmSubstitutionCommandHandler() commands.ConfirmSubstitutionCommandHandler {
	return commands.NewConfirmSubstitutionCommandHandler(c.orderUoWFactory(), c.inventory)
}

func (c *CompositionRoot) CreateRefundLineItemCommandHandler() commands.RefundLineItemCommandHandler {
	return commands.NewRefundLineItemCommandHandler(c.orderUoWFactory(), c.refunds, c.notifier)
}

func (c *CompositionRoot) CreateUpdateNotesCommandHandler() commands.UpdateNotesCommandHandler {
	return commands.NewUpdateNotesCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateApproveCommandHandler() commands.ApproveCommandHandler {
	return commands.NewApproveCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCompletePickingCommandHandler() commands.CompletePickingCommandHandler {
	return commands.NewCompletePickingCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateStartPackingCommandHandler() commands.StartPackingCommandHandler {
	return commands.NewStartPackingCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCompletePackingCommandHandler() commands.CompletePackingCommandHandler {
	return commands.NewCompletePackingCommandHandler(c.orderToteUoWFactory(), c.delivery, c.notifier)
}

func (c *CompositionRoot) CreateAssignToteCommandHandler() commands.AssignToteCommandHandler {
	return commands.NewAssignToteCommandHandler(c.orderToteUoWFactory())
}

func (c *CompositionRoot) CreateRemoveToteCommandHandler() commands.RemoveToteCommandHandler {
	return commands.NewRemoveToteCommandHandler(c.orderToteUoWFactory())
}

func (c *CompositionRoot) CreateAddPhotoCommandHandler() commands.AddPhotoCommandHandler {
	return commands.NewAddPhotoCommandHandler(c.orderUoWFactory(), c.objectStorage)
}

func (c *CompositionRoot) CreateRemovePhotoCommandHandler() commands.RemovePhotoCommandHandler {
	return commands.NewRemovePhotoCommandHandler(c.orderUoWFactory(), c.objectStorage)
}

func (c *CompositionRoot) CreateCreateOperatorCommandHandler() commands.CreateOperatorCommandHandler {
	return commands.NewCreateOperatorCommandHandler(c.operatorUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOperatorCommandHandler() commands.UpdateOperatorCommandHandler {
	return commands.NewUpdateOperatorCommandHandler(c.operatorUoWFactory())
}

func (c *CompositionRoot) CreateUpsertSubstitutionRuleCommandHandler() commands.UpsertSubstitutionRuleCommandHandler {
	return commands.NewUpsertSubstitutionRuleCommandHandler(c.ruleUoWFactory())
}

func (c *CompositionRoot) CreateDeleteSubstitutionRuleCommandHandler() commands.DeleteSubstitutionRuleCommandHandler {
	return commands.NewDeleteSubstitutionRuleCommandHandler(c.ruleUoWFactory())
}

func (c *CompositionRoot) CreateGetDashboardStatsQueryHandler() queries.GetDashboardStatsQueryHandler {
	return queries.NewGetDashboardStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPickBoardQueryHandler() queries.GetPickBoardQueryHandler {
	return queries.NewGetPickBoardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPackBoardQueryHandler() queries.GetPackBoardQueryHandler {
	return queries.NewGetPackBoardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderDetailQueryHandler() queries.GetOrderDetailQueryHandler {
	return queries.NewGetOrderDetailQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderLogQueryHandler() queries.GetOrderLogQueryHandler {
	return queries.NewGetOrderLogQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOperatorsQueryHandler() queries.GetAllOperatorsQueryHandler {
	return queries.NewGetAllOperatorsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSubstitutionCandidatesQueryHandler() queries.GetSubstitutionCandidatesQueryHandler {
	return queries.NewGetSubstitutionCandidatesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNotificationsQueryHandler() queries.GetNotificationsQueryHandler {
	return queries.NewGetNotificationsQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderToteUoWFactory func() commands.OrderToteUoW

func (f FuncOrderToteUoWFactory) Create() commands.OrderToteUoW {
	return f()
}

type FuncOrderOperatorUoWFactory func() commands.OrderOperatorUoW

func (f FuncOrderOperatorUoWFactory) Create() commands.OrderOperatorUoW {
	return f()
}

type FuncOperatorUoWFactory func() commands.OperatorUoW

func (f FuncOperatorUoWFactory) Create() commands.OperatorUoW {
	return f()
}

type FuncRuleUoWFactory func() commands.RuleUoW

func (f FuncRuleUoWFactory) Create() commands.RuleUoW {
	return f()
}
