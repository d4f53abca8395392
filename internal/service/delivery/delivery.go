package delivery

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"console/internal/entities"
	"console/internal/gateway/rest/backend"
	"console/pkg/logger"
)

const (
	manualLocationTimeout = 10 * time.Second
	recordTimeout         = 5 * time.Second
)

const (
	msgSelectOrderAndRider = "Selecciona un pedido y un repartidor en las listas"
	msgInvalidRider        = "Ingresa un ID de repartidor válido"
	msgInvalidLocation     = "Completa ID y coordenadas válidas"
	msgOrderAssigned       = "Pedido asignado correctamente"
	msgRiderAssigned       = "Repartidor asignado a la entrega"
	msgActionDone          = "Acción realizada correctamente"
	msgMarkedDelivered     = "Entrega marcada como entregada"
	msgLocationUpdated     = "Ubicación actualizada"

	msgAssignFailed      = "Error al asignar pedido"
	msgAssignCardFailed  = "No se pudo asignar el delivery"
	msgRiderStatusFailed = "Error al actualizar estado del repartidor"
	msgActionFailed      = "Error al ejecutar acción"
	msgMarkDeliveredFail = "No se pudo marcar la entrega como entregada"
	msgLocationFailed    = "Error al enviar ubicación"
)

// Delivery runs the operator's dispatch actions against the backend and keeps
// the current list selection. Each action reloads the list it changed.
type Delivery struct {
	log         handlerLogger
	gateway     Gateway
	live        LiveData
	destination DestinationSetter
	notifier    Notifier
	recorder    Recorder

	mu        sync.Mutex
	selection Selection
	inFlight  map[string]struct{}
}

// New builds the dispatch service. recorder may be nil when the journal is disabled.
func New(
	log handlerLogger,
	gateway Gateway,
	live LiveData,
	destination DestinationSetter,
	notifier Notifier,
	recorder Recorder,
) *Delivery {
	return &Delivery{
		log:         log.With(logger.NewField("service", "delivery")),
		gateway:     gateway,
		live:        live,
		destination: destination,
		notifier:    notifier,
		recorder:    recorder,
		inFlight:    make(map[string]struct{}),
	}
}

// SelectDelivery picks a delivery from the active list. A delivery ready to
// assign fills the order of the assignment form, any other one becomes the
// tracking candidate. Its destination feeds the route overlay.
func (d *Delivery) SelectDelivery(deliveryID string) (Selection, error) {
	delivery, ok := d.live.Delivery(strings.TrimSpace(deliveryID))
	if !ok {
		return d.Selection(), ErrDeliveryNotFound
	}

	var dest *entities.Coordinate
	if entities.ValidPtr(delivery.Destination) {
		c := *delivery.Destination
		dest = &c
	}

	d.mu.Lock()
	d.selection.DeliveryID = delivery.ID
	if delivery.Status.IsReadyToAssign() {
		d.selection.OrderID = delivery.OrderID
	} else {
		d.selection.TrackingID = delivery.ID
	}
	d.selection.Destination = dest
	selection := d.selection
	d.mu.Unlock()

	d.destination.SetDestination(dest)
	return selection, nil
}

// SelectRider picks a rider for the assignment form. Busy riders cannot be selected.
func (d *Delivery) SelectRider(riderID string) (Selection, error) {
	rider, ok := d.live.Rider(strings.TrimSpace(riderID))
	if !ok {
		return d.Selection(), ErrRiderNotFound
	}
	if !rider.Available {
		return d.Selection(), ErrRiderUnavailable
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.selection.RiderID = rider.ID
	return d.selection, nil
}

func (d *Delivery) Selection() Selection {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.selection
}

// Form is the assignment form prefilled from the selection.
func (d *Delivery) Form() AssignmentForm {
	d.mu.Lock()
	defer d.mu.Unlock()
	return AssignmentForm{OrderID: d.selection.OrderID, RiderID: d.selection.RiderID}
}

func (d *Delivery) ClearSelection() {
	d.mu.Lock()
	d.selection = Selection{}
	d.mu.Unlock()

	d.destination.SetDestination(nil)
}

// Assign assigns an order to a rider. On success the selection is cleared
// and the active deliveries are reloaded.
func (d *Delivery) Assign(ctx context.Context, form AssignmentForm) (entities.AssignmentResult, error) {
	if err := form.Validate(); err != nil {
		d.notifier.Warn(msgSelectOrderAndRider)
		return entities.AssignmentResult{}, err
	}

	done, err := d.begin("assign")
	if err != nil {
		return entities.AssignmentResult{}, err
	}
	defer done()

	result, err := d.gateway.AssignDelivery(ctx, form.Assignment())
	if err != nil {
		return entities.AssignmentResult{}, d.failed("assign order", msgAssignFailed, err)
	}

	d.log.Info("order assigned",
		logger.NewField("order_id", form.OrderID),
		logger.NewField("rider_id", form.RiderID),
		logger.NewField("delivery_id", result.DeliveryID),
	)
	d.notifier.Success(msgOrderAssigned)

	d.mu.Lock()
	d.selection.OrderID = ""
	d.selection.DeliveryID = ""
	d.selection.RiderID = ""
	d.mu.Unlock()

	d.reloadActives(ctx)
	return result, nil
}

// AssignFromCard assigns a rider to an existing delivery straight from its card.
func (d *Delivery) AssignFromCard(ctx context.Context, deliveryID, riderID string) (entities.AssignmentResult, error) {
	if !isValidID(deliveryID) {
		d.notifier.Warn(msgInvalidRider)
		return entities.AssignmentResult{}, ErrInvalidDeliveryID
	}
	if !isValidID(riderID) {
		d.notifier.Warn(msgInvalidRider)
		return entities.AssignmentResult{}, ErrInvalidRiderID
	}

	done, err := d.begin("assign-card:" + deliveryID)
	if err != nil {
		return entities.AssignmentResult{}, err
	}
	defer done()

	result, err := d.gateway.AssignDelivery(ctx, entities.Assignment{
		DeliveryID: strings.TrimSpace(deliveryID),
		RiderID:    strings.TrimSpace(riderID),
	})
	if err != nil {
		return entities.AssignmentResult{}, d.failed("assign delivery", msgAssignCardFailed, err)
	}

	d.notifier.Success(msgRiderAssigned)
	d.reloadActives(ctx)
	return result, nil
}

func (d *Delivery) SetRiderStatus(ctx context.Context, riderID string, status entities.RiderStatusType) error {
	if !isValidID(riderID) {
		return ErrInvalidRiderID
	}
	if !isValidID(string(status)) {
		return ErrInvalidStatus
	}

	done, err := d.begin("rider-status:" + riderID)
	if err != nil {
		return err
	}
	defer done()

	if err := d.gateway.UpdateRiderStatus(ctx, riderID, status); err != nil {
		return d.failed("update rider status", msgRiderStatusFailed, err)
	}

	if err := d.live.ReloadRiders(ctx); err != nil {
		d.log.Warn("riders reload after status change failed", logger.NewField("error", err))
	}
	d.notifier.Success(fmt.Sprintf("Estado actualizado a \"%s\"", status))
	return nil
}

func (d *Delivery) ChangeDeliveryStatus(ctx context.Context, deliveryID string, status entities.DeliveryStatus) error {
	if !isValidID(deliveryID) {
		return ErrInvalidDeliveryID
	}
	if !isValidID(string(status)) {
		return ErrInvalidStatus
	}

	done, err := d.begin("status:" + deliveryID)
	if err != nil {
		return err
	}
	defer done()

	if err := d.gateway.UpdateDeliveryStatus(ctx, deliveryID, status); err != nil {
		return d.failed("update delivery status", msgActionFailed, err)
	}

	d.notifier.Success(msgActionDone)
	d.reloadActives(ctx)
	return nil
}

func (d *Delivery) Handoff(ctx context.Context, orderID string) error {
	if !isValidID(orderID) {
		return ErrInvalidOrderID
	}

	done, err := d.begin("handoff:" + orderID)
	if err != nil {
		return err
	}
	defer done()

	if err := d.gateway.Handoff(ctx, orderID); err != nil {
		return d.failed("handoff", msgActionFailed, err)
	}

	d.notifier.Success(msgActionDone)
	d.reloadActives(ctx)
	return nil
}

// MarkDelivered closes an in-transit delivery: the delivery status goes to
// "entregado", then the order is marked delivered and confirmed by staff.
// The steps run in order and stop at the first failure.
func (d *Delivery) MarkDelivered(ctx context.Context, deliveryID string) error {
	delivery, ok := d.live.Delivery(strings.TrimSpace(deliveryID))
	if !ok {
		return ErrDeliveryNotFound
	}
	if !delivery.Status.IsInTransit() {
		return ErrNotInTransit
	}
	if !isValidID(delivery.OrderID) {
		return ErrInvalidOrderID
	}

	done, err := d.begin("delivered:" + delivery.ID)
	if err != nil {
		return err
	}
	defer done()

	if err := d.gateway.UpdateDeliveryStatus(ctx, delivery.ID, entities.StatusEntregado); err != nil {
		return d.failed("set delivery entregado", msgMarkDeliveredFail, err)
	}
	if err := d.gateway.MarkOrderDelivered(ctx, delivery.OrderID); err != nil {
		return d.failed("mark order delivered", msgMarkDeliveredFail, err)
	}
	if err := d.gateway.StaffConfirmDelivered(ctx, delivery.OrderID); err != nil {
		return d.failed("staff confirm delivered", msgMarkDeliveredFail, err)
	}

	d.log.Info("delivery closed",
		logger.NewField("delivery_id", delivery.ID),
		logger.NewField("order_id", delivery.OrderID),
	)
	d.notifier.Success(msgMarkedDelivered)
	d.reloadActives(ctx)
	return nil
}

// SendLocation pushes a manually entered courier position.
func (d *Delivery) SendLocation(ctx context.Context, form LocationForm) error {
	coord, err := form.Validate()
	if err != nil {
		d.notifier.Warn(msgInvalidLocation)
		return err
	}
	deliveryID := strings.TrimSpace(form.DeliveryID)

	done, err := d.begin("location")
	if err != nil {
		return err
	}
	defer done()

	pushErr := d.gateway.PushLocation(ctx, deliveryID, coord, manualLocationTimeout)
	d.record(ctx, entities.LocationSample{
		DeliveryID: deliveryID,
		Coordinate: coord,
		Source:     entities.SourceManual,
		Delivered:  pushErr == nil,
		At:         time.Now(),
	})
	if pushErr != nil {
		return d.failed("push location", msgLocationFailed, pushErr)
	}

	d.notifier.Success(msgLocationUpdated)
	return nil
}

// QueryDelivery fetches one delivery from the backend, bypassing the live lists.
func (d *Delivery) QueryDelivery(ctx context.Context, deliveryID string) (entities.Delivery, error) {
	if !isValidID(deliveryID) {
		return entities.Delivery{}, ErrInvalidDeliveryID
	}

	delivery, err := d.gateway.GetDelivery(ctx, strings.TrimSpace(deliveryID))
	if err != nil {
		return entities.Delivery{}, fmt.Errorf("get delivery: %w", err)
	}
	return delivery, nil
}

// begin marks an action as running. A second submit of the same action is
// rejected until the returned func is called.
func (d *Delivery) begin(action string) (func(), error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, busy := d.inFlight[action]; busy {
		return nil, ErrActionInProgress
	}
	d.inFlight[action] = struct{}{}

	return func() {
		d.mu.Lock()
		delete(d.inFlight, action)
		d.mu.Unlock()
	}, nil
}

func (d *Delivery) failed(op, fallback string, err error) error {
	d.log.Warn("dispatch action failed",
		logger.NewField("action", op),
		logger.NewField("error", err),
	)
	d.notifier.Error(backend.UserMessage(err, fallback))
	return fmt.Errorf("%s: %w", op, err)
}

// the poller notifies on its own failures
func (d *Delivery) reloadActives(ctx context.Context) {
	if err := d.live.ReloadActives(ctx); err != nil {
		d.log.Warn("actives reload after action failed", logger.NewField("error", err))
	}
}

func (d *Delivery) record(ctx context.Context, sample entities.LocationSample) {
	if d.recorder == nil {
		return
	}

	recordCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()

	if err := d.recorder.RecordLocation(recordCtx, sample); err != nil {
		d.log.Warn("location sample not recorded", logger.NewField("error", err))
	}
}
