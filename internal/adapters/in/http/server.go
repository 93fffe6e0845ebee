package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/operator"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/subrule"
	"fulfillment/internal/generated/servers"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Handlers bundles the command and query handlers the HTTP server dispatches to.
type Handlers struct {
	ImportOrders        commands.ImportOrdersCommandHandler
	SyncDeliveries      commands.SyncDeliveriesCommandHandler
	PickItem            commands.PickItemCommandHandler
	UnpickItem          commands.UnpickItemCommandHandler
	PackItem            commands.PackItemCommandHandler
	UnpackItem          commands.UnpackItemCommandHandler
	FlagException       commands.FlagExceptionCommandHandler
	UndoItem            commands.UndoItemCommandHandler
	RecordSubstitution  commands.RecordSubstitutionCommandHandler
	ConfirmSubstitution commands.ConfirmSubstitutionCommandHandler
	RefundLineItem      commands.RefundLineItemCommandHandler
	UpdateNotes         commands.UpdateNotesCommandHandler
	Approve             commands.ApproveCommandHandler
	CompletePicking     commands.CompletePickingCommandHandler
	StartPacking        commands.StartPackingCommandHandler
	CompletePacking     commands.CompletePackingCommandHandler
	AssignTote          commands.AssignToteCommandHandler
	RemoveTote          commands.RemoveToteCommandHandler
	AddPhoto            commands.AddPhotoCommandHandler
	RemovePhoto         commands.RemovePhotoCommandHandler
	CreateOperator      commands.CreateOperatorCommandHandler
	UpdateOperator      commands.UpdateOperatorCommandHandler
	UpsertRule          commands.UpsertSubstitutionRuleCommandHandler
	DeleteRule          commands.DeleteSubstitutionRuleCommandHandler

	DashboardStats         queries.GetDashboardStatsQueryHandler
	PickBoard              queries.GetPickBoardQueryHandler
	PackBoard              queries.GetPackBoardQueryHandler
	OrderDetail            queries.GetOrderDetailQueryHandler
	OrderLog               queries.GetOrderLogQueryHandler
	AllOperators           queries.GetAllOperatorsQueryHandler
	SubstitutionCandidates queries.GetSubstitutionCandidatesQueryHandler
	Notifications          queries.GetNotificationsQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// badRequest writes a 400 response carrying the reason.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps application errors onto HTTP statuses.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrPreconditionFailed), errors.Is(err, errs.ErrVersionConflict):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrExternalDependency):
		code = http.StatusBadGateway
	}

	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: err.Error(),
	})
}

func toKernelUUID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func optString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func strOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// GetDashboard handles GET /api/v1/dashboard - per-status order counts.
func (s *Server) GetDashboard(ctx echo.Context) error {
	if !roleAllowed(ctx, roleAdmin) {
		return forbidden(ctx)
	}

	query := queries.NewGetDashboardStatsQuery()

	stats, err := s.handlers.DashboardStats.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.DashboardStats{
		New:       stats.New,
		Picking:   stats.Picking,
		Picked:    stats.Picked,
		Packing:   stats.Packing,
		Packed:    stats.Packed,
		Delivered: stats.Delivered,
		Total:     stats.Total,
	})
}

// ImportOrders handles POST /api/v1/orders/import - runs one import sweep.
func (s *Server) ImportOrders(ctx echo.Context) error {
	if !roleAllowed(ctx, roleAdmin) {
		return forbidden(ctx)
	}

	cmd := commands.NewImportOrdersCommand()

	processed, err := s.handlers.ImportOrders.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.SweepResult{Processed: processed})
}

// SyncDeliveries handles POST /api/v1/deliveries/sync - runs one delivery sweep.
func (s *Server) SyncDeliveries(ctx echo.Context) error {
	if !roleAllowed(ctx, roleAdmin) {
		return forbidden(ctx)
	}

	cmd := commands.NewSyncDeliveriesCommand()

	processed, err := s.handlers.SyncDeliveries.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.SweepResult{Processed: processed})
}

// GetNotifications handles GET /api/v1/notifications - the caller's feed.
func (s *Server) GetNotifications(ctx echo.Context) error {
	if !roleAllowed(ctx, roleAdmin, rolePicker, rolePacker) {
		return forbidden(ctx)
	}

	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		return forbidden(ctx)
	}

	query, err := queries.NewGetNotificationsQuery(claims.Role)
	if err != nil {
		return badRequest(ctx, "Invalid notifications query: "+err.Error())
	}

	feed, err := s.handlers.Notifications.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.NotificationRecord, len(feed))
	for i, n := range feed {
		response[i] = servers.NotificationRecord{
			Id:          n.ID.Bytes(),
			Kind:        n.Kind,
			Message:     n.Message,
			OrderNumber: strOrNil(n.OrderNumber),
			ProductId:   strOrNil(n.ProductID),
			VariantId:   strOrNil(n.VariantID),
			CreatedAt:   n.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func boardResponse(board []queries.BoardOrderResponse) []servers.BoardOrder {
	response := make([]servers.BoardOrder, len(board))
	for i, card := range board {
		response[i] = servers.BoardOrder{
			Id:           card.ID.Bytes(),
			ExternalRef:  card.ExternalRef,
			Number:       card.Number,
			CustomerName: card.CustomerName,
			Status:       card.Status,
			ItemCount:    card.ItemCount,
			UnitCount:    card.UnitCount,
			PickedItems:  card.PickedItems,
			PackedItems:  card.PackedItems,
		}
		if card.PickerID != nil {
			pickerID := card.PickerID.Bytes()
			response[i].PickerId = &pickerID
		}
		if card.PackerID != nil {
			packerID := card.PackerID.Bytes()
			response[i].PackerId = &packerID
		}
	}
	return response
}

// GetPickBoard handles GET /api/v1/orders/pick-board - orders waiting to be picked.
func (s *Server) GetPickBoard(ctx echo.Context, params servers.GetPickBoardParams) error {
	if !roleAllowed(ctx, rolePicker, roleAdmin) {
		return forbidden(ctx)
	}

	var pickerID *kernel.UUID
	if params.PickerId != nil {
		id, err := toKernelUUID(*params.PickerId)
		if err != nil {
			return badRequest(ctx, "Invalid picker id: "+err.Error())
		}
		pickerID = &id
	}

	query, err := queries.NewGetPickBoardQuery(pickerID)
	if err != nil {
		return badRequest(ctx, "Invalid pick board query: "+err.Error())
	}

	board, err := s.handlers.PickBoard.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, boardResponse(board))
}

// GetPackBoard handles GET /api/v1/orders/pack-board - orders awaiting packing.
func (s *Server) GetPackBoard(ctx echo.Context) error {
	if !roleAllowed(ctx, rolePacker, roleAdmin) {
		return forbidden(ctx)
	}

	query := queries.NewGetPackBoardQuery()

	board, err := s.handlers.PackBoard.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, boardResponse(board))
}

// GetOrderLog handles GET /api/v1/orders/{orderId}/log - order audit trail.
// GetOrderDetail handles GET /api/v1/orders/by-ref/{externalRef}.
func (s *Server) GetOrderDetail(ctx echo.Context, externalRef string) error {
	if !roleAllowed(ctx, roleAdmin, rolePicker, rolePacker) {
		return forbidden(ctx)
	}

	query, err := queries.NewGetOrderDetailQuery(externalRef)
	if err != nil {
		return badRequest(ctx, "Invalid order detail query: "+err.Error())
	}

	detail, err := s.handlers.OrderDetail.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := servers.OrderDetail{
		Id:           detail.ID.Bytes(),
		ExternalRef:  detail.ExternalRef,
		Number:       detail.Number,
		CustomerName: detail.CustomerName,
		Status:       detail.Status,
		BoxCount:     detail.BoxCount,
		AdminNote:    strOrNil(detail.AdminNote),
		Approved:     detail.Approved,
		ToteBarcodes: detail.ToteBarcodes,
	}
	if detail.PickerID != nil {
		pickerID := detail.PickerID.Bytes()
		response.PickerId = &pickerID
	}
	if detail.PackerID != nil {
		packerID := detail.PackerID.Bytes()
		response.PackerId = &packerID
	}

	response.LineItems = make([]servers.OrderDetailLineItem, len(detail.LineItems))
	for i, item := range detail.LineItems {
		response.LineItems[i] = servers.OrderDetailLineItem{
			Ref:                   item.Ref,
			ProductId:             item.ProductID,
			VariantId:             strOrNil(item.VariantID),
			Name:                  item.Name,
			Sku:                   strOrNil(item.SKU),
			Quantity:              item.Quantity,
			PickedUnits:           item.PickedUnits,
			PackedUnits:           item.PackedUnits,
			Picked:                item.Picked,
			Packed:                item.Packed,
			Refunded:              item.Refunded,
			Substituted:           item.Substituted,
			SubstitutionConfirmed: item.SubstitutionConfirmed,
			Approved:              item.Approved,
			AdminNote:             strOrNil(item.AdminNote),
			CustomerNote:          strOrNil(item.CustomerNote),
		}
		if len(item.Flags) > 0 {
			flags := item.Flags
			response.LineItems[i].Flags = &flags
		}
	}

	response.Photos = make([]servers.Photo, len(detail.Photos))
	for i, photo := range detail.Photos {
		response.Photos[i] = servers.Photo{Url: photo.URL, StorageId: photo.StorageID}
	}

	if detail.Delivery != nil {
		response.Delivery = &servers.OrderDetailDelivery{
			TripId:       detail.Delivery.TripID,
			DriverName:   strOrNil(detail.Delivery.DriverName),
			StopSequence: detail.Delivery.StopSequence,
			Eta:          detail.Delivery.ETA,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) GetOrderLog(ctx echo.Context, orderId openapi_types.UUID) error {
	if !roleAllowed(ctx, roleAdmin) {
		return forbidden(ctx)
	}

	orderID, err := toKernelUUID(orderId)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderLogQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order log query: "+err.Error())
	}

	entries, err := s.handlers.OrderLog.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.LogEntry, len(entries))
	for i, entry := range entries {
		response[i] = servers.LogEntry{
			Kind:    entry.Kind,
			ItemRef: strOrNil(entry.ItemRef),
			Actor:   entry.Actor,
			Message: strOrNil(entry.Message),
			At:      entry.At,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// quantityMutation binds the shared pick/pack delta request body.
func quantityMutation(ctx echo.Context) (servers.QuantityMutationRequest, error) {
	var body servers.QuantityMutationRequest
	if err := ctx.Bind(&body); err != nil {
		return servers.QuantityMutationRequest{}, err
	}
	return body, nil
}

// PickItem handles POST /api/v1/orders/{orderId}/items/{itemRef}/pick.
func (s *Server) PickItem(ctx echo.Context, orderId openapi_types.UUID, itemRef string) error {
	if !roleAllowed(ctx, rolePicker, rolePacker, roleAdmin) {
		return forbidden(ctx)
	}

	body, err := quantityMutation(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := toKernelUUID(orderId)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewPickItemCommand(orderID, itemRef, body.Delta, body.Actor)
	if err != nil {
		return badRequest(ctx, "Invalid pick request: "+err.Error())
	}

	applied, err := s.handlers.PickItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.AppliedDelta{Applied: applied})
}

// UnpickItem handles POST /api/v1/orders/{orderId}/items/{itemRef}/unpick.
func (s *Server) UnpickItem(ctx echo.Context, orderId openapi_types.UUID, itemRef string) error {
	if !roleAllowed(ctx, rolePicker, rolePacker, roleAdmin) {
		return forbidden(ctx)
	}

	body, err := quantityMutation(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := toKernelUUID(orderId)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewUnpickItemCommand(orderID, itemRef, body.Delta, body.Actor)
	if err != nil {
		return badRequest(ctx, "Invalid unpick request: "+err.Error())
	}

	applied, err := s.handlers.UnpickItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.AppliedDelta{Applied: applied})
}

// PackItem handles POST /api/v1/orders/{orderId}/items/{itemRef}/pack.
func (s *Server) PackItem(ctx echo.Context, orderId openapi_types.UUID, itemRef string) error {
	if !roleAllowed(ctx, rolePacker, roleAdmin) {
		return forbidden(ctx)
	}

	body, err := quantityMutation(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := toKernelUUID(orderId)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewPackItemCommand(orderID, itemRef, body.Delta, callerOperatorID(ctx), body.Actor)
	if err != nil {
		return badRequest(ctx, "Invalid pack request: "+err.Error())
	}

	applied, err := s.handlers.PackItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.AppliedDelta{Applied: applied})
}

// UnpackItem handles POST /api/v1/orders/{orderId}/items/{itemRef}/unpack.
func (s *Server) UnpackItem(ctx echo.Context, orderId openapi_types.UUID, itemRef string) error {
	if !roleAllowed(ctx, rolePacker, roleAdmin) {
		return forbidden(ctx)
	}

	body, err := quantityMutation(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := toKernelUUID(orderId)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewUnpackItemCommand(orderID, itemRef, body.Delta, body.Actor)
	if err != nil {
		return badRequest(ctx, "Invalid unpack request: "+err.Error())
	}

	applied, err := s.handlers.UnpackItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.AppliedDelta{Applied: applied})
}

// FlagException handles POST /api/v1/orders/{orderId}/items/{itemRef}/flag.
func (s *Server) FlagException(ctx echo.Context, orderId openapi_types.UUID, itemRef string) error {
	if !roleAllowed(ctx, rolePicker, rolePacker, roleAdmin) {
		return forbidden(ctx)
	}

	var body servers.FlagExceptionRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := toKernelUUID(orderId)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	reason, err := order.ParseExceptionReason(body.Reason)
	if err != nil {
		return badRequest(ctx, "Invalid reason: "+err.Error())
	}

	cmd, err := commands.NewFlagExceptionCommand(
		orderID, itemRef, commands.Stage(body.Stage), reason, body.Quantity, body.Actor)
	if err != nil {
		return badRequest(ctx, "Invalid flag request: "+err.Error())
	}

	applied, err := s.handlers.FlagException.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.AppliedDelta{Applied: applied})
}

// UndoItem handles POST /api/v1/orders/{orderId}/items/{itemRef}/undo.
func (s *Server) UndoItem(ctx echo.Context, orderId openapi_types.UUID, itemRef string) error {
	if !roleAllowed(ctx, rolePicker, rolePacker, roleAdmin) {
		return forbidden(ctx)
	}

	var body servers.UndoItemRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := toKernelUUID(orderId)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewUndoItemCommand(orderID, itemRef, commands.Stage(body.Stage), body.Actor)
	if err != nil {
		return badRequest(ctx, "Invalid undo request: "+err.Error())
	}

	if handleErr := s.handlers.UndoItem.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordSubstitution handles POST /api/v1/orders/{orderId}/items/{itemRef}/substitution.
func (s *Server) RecordSubstitution(ctx echo.Context, orderId openapi_types.UUID, itemRef string) error {
	if !roleAllowed(ctx, rolePicker, rolePacker, roleAdmin) {
		return forbidden(ctx)
	}

	var body servers.RecordSubstitutionRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := toKernelUUID(orderId)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	reason, err := order.ParseExceptionReason(body.Reason)
	if err != nil {
		return badRequest(ctx, "Invalid reason: "+err.Error())
	}

	cmd, err := commands.NewRecordSubstitutionCommand(
		orderID, itemRef, reason, body.SubProductId, optString(body.SubVariantId), body.Actor)
	if err != nil {
		return badRequest(ctx, "Invalid substitution request: "+err.Error())
	}

	if handleErr := s.handlers.RecordSubstitution.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmSubstitution handles POST /api/v1/orders/{orderId}/items/{itemRef}/substitution/confirm.
func (s *Server) ConfirmSubstitution(ctx echo.Context, orderId openapi_types.UUID, itemRef string) error {
	if !roleAllowed(ctx, rolePacker, roleAdmin) {
		return forbidden(ctx)
	}

	var body servers.ActorRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := toKernelUUID(orderId)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewConfirmSubstitutionCommand(orderID, itemRef, body.Actor)
	if err != nil {
		return badRequest(ctx, "Invalid confirmation request: "+err.Error())
	}

	if handleErr := s.handlers.ConfirmSubstitution.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RefundLineItem handles POST /api/v1/orders/{orderId}/items/{itemRef}/refund.
func (s *Server) RefundLineItem(ctx echo.Context, orderId openapi_types.UUID, itemRef string) error {
	if !roleAllowed(ctx, roleAdmin) {
		return forbidden(ctx)
	}

	var body servers.ActorRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := toKernelUUID(orderId)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewRefundLineItemCommand(orderID, itemRef, body.Actor)
	if err != nil {
		return badRequest(ctx, "Invalid refund request: "+err.Error())
	}

	if handleErr := s.handlers.RefundLineItem.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateNotes handles PUT /api/v1/orders/{orderId}/items/{itemRef}/notes.
func (s *Server) UpdateNotes(ctx echo.Context, orderId openapi_types.UUID, itemRef string) error {
	if !roleAllowed(ctx, roleAdmin) {
		return forbidden(ctx)
	}

	var body servers.UpdateNotesRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := toKernelUUID(orderId)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewUpdateNotesCommand(orderID, itemRef, body.Note, body.Actor)
	if err != nil {
		return badRequest(ctx, "Invalid notes request: "+err.Error())
	}

	if handleErr := s.handlers.UpdateNotes.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderNotes handles PUT /api/v1/orders/{orderId}/notes.
func (s *Server) UpdateOrderNotes(ctx echo.Context, orderId openapi_types.UUID) error {
	if !roleAllowed(ctx, roleAdmin) {
		return forbidden(ctx)
	}

	var body servers.UpdateNotesRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := toKernelUUID(orderId)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewUpdateNotesCommand(orderID, "", body.Note, body.Actor)
	if err != nil {
		return badRequest(ctx, "Invalid notes request: "+err.Error())
	}

	if handleErr := s.handlers.UpdateNotes.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ApproveOrder handles POST /api/v1/orders/{orderId}/approve.
func (s *Server) ApproveOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	if !roleAllowed(ctx, roleAdmin) {
		return forbidden(ctx)
	}

	var body servers.ApproveRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := toKernelUUID(orderId)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewApproveCommand(orderID, optString(body.ItemRef), body.Actor)
	if err != nil {
		return badRequest(ctx, "Invalid approval request: "+err.Error())
	}

	if handleErr := s.handlers.Approve.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompletePicking handles POST /api/v1/orders/{orderId}/complete-picking.
func (s *Server) CompletePicking(ctx echo.Context, orderId openapi_types.UUID) error {
	if !roleAllowed(ctx, rolePicker, roleAdmin) {
		return forbidden(ctx)
	}

	var body servers.ActorRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := toKernelUUID(orderId)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewCompletePickingCommand(orderID, body.Actor)
	if err != nil {
		return badRequest(ctx, "Invalid completion request: "+err.Error())
	}

	if handleErr := s.handlers.CompletePicking.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartPacking handles POST /api/v1/orders/{orderId}/start-packing.
func (s *Server) StartPacking(ctx echo.Context, orderId openapi_types.UUID) error {
	if !roleAllowed(ctx, rolePacker, roleAdmin) {
		return forbidden(ctx)
	}

	var body servers.StartPackingRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := toKernelUUID(orderId)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	packerID, err := toKernelUUID(body.PackerId)
	if err != nil {
		return badRequest(ctx, "Invalid packer id: "+err.Error())
	}

	cmd, err := commands.NewStartPackingCommand(orderID, packerID, body.Actor)
	if err != nil {
		return badRequest(ctx, "Invalid packing request: "+err.Error())
	}

	if handleErr := s.handlers.StartPacking.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompletePacking handles POST /api/v1/orders/{orderId}/complete-packing.
func (s *Server) CompletePacking(ctx echo.Context, orderId openapi_types.UUID) error {
	if !roleAllowed(ctx, rolePacker, roleAdmin) {
		return forbidden(ctx)
	}

	var body servers.CompletePackingRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := toKernelUUID(orderId)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewCompletePackingCommand(orderID, body.BoxCount, body.Actor)
	if err != nil {
		return badRequest(ctx, "Invalid completion request: "+err.Error())
	}

	if handleErr := s.handlers.CompletePacking.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignTote handles POST /api/v1/orders/{orderId}/totes.
func (s *Server) AssignTote(ctx echo.Context, orderId openapi_types.UUID) error {
	if !roleAllowed(ctx, rolePicker, roleAdmin) {
		return forbidden(ctx)
	}

	var body servers.ToteRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := toKernelUUID(orderId)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewAssignToteCommand(orderID, body.Barcode, body.Actor)
	if err != nil {
		return badRequest(ctx, "Invalid tote request: "+err.Error())
	}

	if handleErr := s.handlers.AssignTote.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveTote handles DELETE /api/v1/orders/{orderId}/totes/{barcode}.
func (s *Server) RemoveTote(ctx echo.Context, orderId openapi_types.UUID, barcode string, params servers.RemoveToteParams) error {
	if !roleAllowed(ctx, rolePicker, roleAdmin) {
		return forbidden(ctx)
	}

	orderID, err := toKernelUUID(orderId)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewRemoveToteCommand(orderID, barcode, params.Actor)
	if err != nil {
		return badRequest(ctx, "Invalid tote request: "+err.Error())
	}

	if handleErr := s.handlers.RemoveTote.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddPhoto handles POST /api/v1/orders/{orderId}/photos - multipart photo upload.
func (s *Server) AddPhoto(ctx echo.Context, orderId openapi_types.UUID, params servers.AddPhotoParams) error {
	if !roleAllowed(ctx, rolePacker, roleAdmin) {
		return forbidden(ctx)
	}

	orderID, err := toKernelUUID(orderId)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	fileHeader, err := ctx.FormFile("photo")
	if err != nil {
		return badRequest(ctx, "Missing photo file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return badRequest(ctx, "Unreadable photo file")
	}
	defer file.Close()

	cmd, err := commands.NewAddPhotoCommand(
		orderID, fileHeader.Filename, fileHeader.Header.Get("Content-Type"), file, params.Actor)
	if err != nil {
		return badRequest(ctx, "Invalid photo request: "+err.Error())
	}

	photo, err := s.handlers.AddPhoto.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Photo{
		Url:       photo.URL,
		StorageId: photo.StorageID,
	})
}

// RemovePhoto handles DELETE /api/v1/orders/{orderId}/photos/{storageId}.
func (s *Server) RemovePhoto(ctx echo.Context, orderId openapi_types.UUID, storageId string, params servers.RemovePhotoParams) error {
	if !roleAllowed(ctx, rolePacker, roleAdmin) {
		return forbidden(ctx)
	}

	orderID, err := toKernelUUID(orderId)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewRemovePhotoCommand(orderID, storageId, params.Actor)
	if err != nil {
		return badRequest(ctx, "Invalid photo request: "+err.Error())
	}

	if handleErr := s.handlers.RemovePhoto.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOperators handles GET /api/v1/operators - staff roster.
func (s *Server) GetOperators(ctx echo.Context) error {
	if !roleAllowed(ctx, roleAdmin) {
		return forbidden(ctx)
	}

	query := queries.NewGetAllOperatorsQuery()

	operators, err := s.handlers.AllOperators.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.Operator, len(operators))
	for i, op := range operators {
		response[i] = servers.Operator{
			Id:                op.ID.Bytes(),
			Name:              op.Name,
			Role:              op.Role,
			Active:            op.Active,
			LineItemsAssigned: op.LineItemsAssigned,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOperator handles POST /api/v1/operators - creates an operator.
func (s *Server) CreateOperator(ctx echo.Context) error {
	if !roleAllowed(ctx, roleAdmin) {
		return forbidden(ctx)
	}

	var body servers.CreateOperatorRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	role, err := operator.RoleFromString(string(body.Role))
	if err != nil {
		return badRequest(ctx, "Invalid role: "+err.Error())
	}

	operatorID := kernel.NewUUID()

	cmd, err := commands.NewCreateOperatorCommand(operatorID, body.Name, role)
	if err != nil {
		return badRequest(ctx, "Invalid operator data: "+err.Error())
	}

	if handleErr := s.handlers.CreateOperator.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: operatorID.Bytes()})
}

// UpdateOperator handles PATCH /api/v1/operators/{operatorId}.
func (s *Server) UpdateOperator(ctx echo.Context, operatorId openapi_types.UUID) error {
	if !roleAllowed(ctx, roleAdmin) {
		return forbidden(ctx)
	}

	var body servers.UpdateOperatorRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	operatorID, err := toKernelUUID(operatorId)
	if err != nil {
		return badRequest(ctx, "Invalid operator id: "+err.Error())
	}

	resetLoad := body.ResetLoad != nil && *body.ResetLoad

	cmd, err := commands.NewUpdateOperatorCommand(operatorID, body.Name, body.Active, resetLoad)
	if err != nil {
		return badRequest(ctx, "Invalid operator data: "+err.Error())
	}

	if handleErr := s.handlers.UpdateOperator.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetSubstitutionCandidates handles GET /api/v1/substitution-rules/candidates.
func (s *Server) GetSubstitutionCandidates(ctx echo.Context, params servers.GetSubstitutionCandidatesParams) error {
	if !roleAllowed(ctx, rolePicker, roleAdmin) {
		return forbidden(ctx)
	}

	query, err := queries.NewGetSubstitutionCandidatesQuery(params.ProductId, optString(params.VariantId))
	if err != nil {
		return badRequest(ctx, "Invalid candidates query: "+err.Error())
	}

	candidates, err := s.handlers.SubstitutionCandidates.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.SubstitutionCandidate, len(candidates))
	for i, candidate := range candidates {
		response[i] = servers.SubstitutionCandidate{
			ProductId: candidate.ProductID,
			VariantId: strOrNil(candidate.VariantID),
			Reason:    strOrNil(candidate.Reason),
			Priority:  candidate.Priority,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpsertSubstitutionRule handles PUT /api/v1/substitution-rules/{ruleId}.
func (s *Server) UpsertSubstitutionRule(ctx echo.Context, ruleId openapi_types.UUID) error {
	if !roleAllowed(ctx, roleAdmin) {
		return forbidden(ctx)
	}

	var body servers.UpsertRuleRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	ruleID, err := toKernelUUID(ruleId)
	if err != nil {
		return badRequest(ctx, "Invalid rule id: "+err.Error())
	}

	candidates := make([]subrule.Candidate, len(body.Candidates))
	for i, candidate := range body.Candidates {
		candidates[i] = subrule.Candidate{
			ProductID: candidate.ProductId,
			VariantID: optString(candidate.VariantId),
			Reason:    optString(candidate.Reason),
			Priority:  candidate.Priority,
		}
	}

	cmd, err := commands.NewUpsertSubstitutionRuleCommand(ruleID, body.ProductId, optString(body.VariantId), candidates)
	if err != nil {
		return badRequest(ctx, "Invalid rule data: "+err.Error())
	}

	if handleErr := s.handlers.UpsertRule.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteSubstitutionRule handles DELETE /api/v1/substitution-rules/{ruleId}.
func (s *Server) DeleteSubstitutionRule(ctx echo.Context, ruleId openapi_types.UUID) error {
	if !roleAllowed(ctx, roleAdmin) {
		return forbidden(ctx)
	}

	ruleID, err := toKernelUUID(ruleId)
	if err != nil {
		return badRequest(ctx, "Invalid rule id: "+err.Error())
	}

	cmd, err := commands.NewDeleteSubstitutionRuleCommand(ruleID)
	if err != nil {
		return badRequest(ctx, "Invalid rule id: "+err.Error())
	}

	if handleErr := s.handlers.DeleteRule.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}
