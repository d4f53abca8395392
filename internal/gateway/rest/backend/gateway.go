package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"console/internal/entities"
	"console/internal/pkg/session"
	"console/pkg/logger"
	retrierconfig "console/pkg/retrier"
	"console/pkg/retrier/backoff_adapter"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const (
	serviceName = "backend"
	tracerName  = "console/gateway/backend"
)

// per-operation budgets
const (
	TimeoutDefault        = 15 * time.Second
	TimeoutStatus         = 10 * time.Second
	TimeoutLogin          = 10 * time.Second
	TimeoutHealth         = 5 * time.Second
	TimeoutLocationGPS    = 5 * time.Second
	TimeoutLocationManual = 10 * time.Second
)

const (
	defaultRetryInterval = 1 * time.Second
	maxRetryInterval     = 4 * time.Second
	maxRetries           = 2 // 3 attempts total
	randomization        = 0.1
	multiplier           = 2.0

	maxErrorBody = 4 << 10
)

type Config struct {
	BaseURL     string
	TenantQuery bool

	RetryInitialInterval time.Duration
	RetryMaxElapsed      time.Duration
}

// Gateway talks to the restaurant backend REST API on behalf of the signed-in staff user.
type Gateway struct {
	log     handlerLogger
	client  httpDoer
	session sessionStore
	retrier retrier
	tracer  trace.Tracer

	baseURL     string
	tenantQuery bool
}

type request struct {
	op      string
	method  string
	path    string
	query   url.Values
	body    any
	timeout time.Duration
	// idempotent reads are retried on network errors and 5xx
	retry bool
}

func New(log handlerLogger, client httpDoer, sess sessionStore, cfg Config) *Gateway {
	initial := cfg.RetryInitialInterval
	if initial <= 0 {
		initial = defaultRetryInterval
	}

	gw := &Gateway{
		log:         log.With(logger.NewField("gateway", serviceName)),
		client:      client,
		session:     sess,
		tracer:      otel.Tracer(tracerName),
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		tenantQuery: cfg.TenantQuery,
	}

	gw.retrier = backoff_adapter.New(retrierconfig.Config{
		InitialInterval: initial,
		MaxInterval:     max(maxRetryInterval, initial),
		MaxElapsedTime:  cfg.RetryMaxElapsed,
		Randomization:   randomization,
		Multiplier:      multiplier,
		MaxRetries:      maxRetries,
		ShouldRetry:     isRetryable,
		Notify: func(err error, wait time.Duration) {
			gw.log.Warn("backend request failed, retrying",
				logger.NewField("error", err),
				logger.NewField("wait", wait.String()),
			)
		},
	})

	return gw
}

func (g *Gateway) ListRiders(ctx context.Context) ([]entities.Rider, error) {
	body, err := g.execute(ctx, request{
		op:      "ListRiders",
		method:  http.MethodGet,
		path:    "/riders",
		timeout: TimeoutDefault,
		retry:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("gateway backend, list riders: %w", err)
	}

	dtos, err := decodeList[riderDTO](body, "items")
	if err != nil {
		return nil, fmt.Errorf("gateway backend, list riders: %w", err)
	}
	return toRiders(dtos), nil
}

// ListDeliveries lists deliveries, filtered server-side by status when status is not empty.
func (g *Gateway) ListDeliveries(ctx context.Context, status entities.DeliveryStatus) ([]entities.Delivery, error) {
	var query url.Values
	if status != "" {
		query = url.Values{"status": []string{status.String()}}
	}

	body, err := g.execute(ctx, request{
		op:      "ListDeliveries",
		method:  http.MethodGet,
		path:    "/delivery",
		query:   query,
		timeout: TimeoutDefault,
		retry:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("gateway backend, list deliveries: %w", err)
	}

	dtos, err := decodeList[deliveryDTO](body, "items")
	if err != nil {
		return nil, fmt.Errorf("gateway backend, list deliveries: %w", err)
	}
	return toDeliveries(dtos), nil
}

func (g *Gateway) GetDelivery(ctx context.Context, deliveryID string) (entities.Delivery, error) {
	body, err := g.execute(ctx, request{
		op:      "GetDelivery",
		method:  http.MethodGet,
		path:    "/delivery/" + url.PathEscape(deliveryID),
		timeout: TimeoutDefault,
		retry:   true,
	})
	if err != nil {
		return entities.Delivery{}, fmt.Errorf("gateway backend, get delivery %s: %w", deliveryID, err)
	}

	var dto deliveryDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return entities.Delivery{}, fmt.Errorf("gateway backend, get delivery %s: %w: %w", deliveryID, ErrInvalidResponse, err)
	}
	return toDelivery(dto), nil
}

func (g *Gateway) GetTrack(ctx context.Context, deliveryID string) (entities.Track, error) {
	body, err := g.execute(ctx, request{
		op:      "GetTrack",
		method:  http.MethodGet,
		path:    "/delivery/" + url.PathEscape(deliveryID) + "/track",
		timeout: TimeoutDefault,
		retry:   true,
	})
	if err != nil {
		return entities.Track{}, fmt.Errorf("gateway backend, get track %s: %w", deliveryID, err)
	}

	dtos, err := decodeList[trackPointDTO](body, "points")
	if err != nil {
		return entities.Track{}, fmt.Errorf("gateway backend, get track %s: %w", deliveryID, err)
	}
	return toTrack(deliveryID, dtos), nil
}

// AssignDelivery assigns a rider by order id, or by delivery id when assigning from a delivery card.
func (g *Gateway) AssignDelivery(ctx context.Context, a entities.Assignment) (entities.AssignmentResult, error) {
	body, err := g.execute(ctx, request{
		op:     "AssignDelivery",
		method: http.MethodPost,
		path:   "/delivery/assign",
		body: assignRequest{
			OrderID:    a.OrderID,
			DeliveryID: a.DeliveryID,
			RiderID:    a.RiderID,
		},
		timeout: TimeoutDefault,
	})
	if err != nil {
		return entities.AssignmentResult{}, fmt.Errorf("gateway backend, assign delivery: %w", err)
	}

	var resp assignResponse
	if len(bytes.TrimSpace(body)) > 0 {
		// text bodies carry no ids, fall back to the request
		_ = json.Unmarshal(body, &resp)
	}
	return toAssignmentResult(resp, a), nil
}

func (g *Gateway) UpdateRiderStatus(ctx context.Context, riderID string, status entities.RiderStatusType) error {
	_, err := g.execute(ctx, request{
		op:      "UpdateRiderStatus",
		method:  http.MethodPatch,
		path:    "/riders/" + url.PathEscape(riderID) + "/status",
		body:    statusRequest{Status: status.String()},
		timeout: TimeoutStatus,
	})
	if err != nil {
		return fmt.Errorf("gateway backend, update rider %s status: %w", riderID, err)
	}
	return nil
}

func (g *Gateway) UpdateDeliveryStatus(ctx context.Context, deliveryID string, status entities.DeliveryStatus) error {
	_, err := g.execute(ctx, request{
		op:      "UpdateDeliveryStatus",
		method:  http.MethodPatch,
		path:    "/delivery/" + url.PathEscape(deliveryID) + "/status",
		body:    statusRequest{Status: status.String()},
		timeout: TimeoutStatus,
	})
	if err != nil {
		return fmt.Errorf("gateway backend, update delivery %s status: %w", deliveryID, err)
	}
	return nil
}

// PushLocation reports a courier position. timeout differs between GPS
// telemetry and a manual push.
func (g *Gateway) PushLocation(ctx context.Context, deliveryID string, c entities.Coordinate, timeout time.Duration) error {
	_, err := g.execute(ctx, request{
		op:     "PushLocation",
		method: http.MethodPost,
		path:   "/delivery/location",
		body: locationRequest{
			DeliveryID: deliveryID,
			Lat:        c.Lat,
			Lng:        c.Lng,
		},
		timeout: timeout,
	})
	if err != nil {
		return fmt.Errorf("gateway backend, push location %s: %w", deliveryID, err)
	}
	return nil
}

func (g *Gateway) Handoff(ctx context.Context, orderID string) error {
	_, err := g.execute(ctx, request{
		op:      "Handoff",
		method:  http.MethodPost,
		path:    "/delivery/orders/" + url.PathEscape(orderID) + "/handoff",
		body:    struct{}{},
		timeout: TimeoutDefault,
	})
	if err != nil {
		return fmt.Errorf("gateway backend, handoff order %s: %w", orderID, err)
	}
	return nil
}

func (g *Gateway) MarkOrderDelivered(ctx context.Context, orderID string) error {
	_, err := g.execute(ctx, request{
		op:      "MarkOrderDelivered",
		method:  http.MethodPost,
		path:    "/delivery/orders/" + url.PathEscape(orderID) + "/delivered",
		body:    struct{}{},
		timeout: TimeoutDefault,
	})
	if err != nil {
		return fmt.Errorf("gateway backend, mark order %s delivered: %w", orderID, err)
	}
	return nil
}

func (g *Gateway) StaffConfirmDelivered(ctx context.Context, orderID string) error {
	_, err := g.execute(ctx, request{
		op:      "StaffConfirmDelivered",
		method:  http.MethodPost,
		path:    "/orders/" + url.PathEscape(orderID) + "/staff-confirm-delivered",
		body:    struct{}{},
		timeout: TimeoutDefault,
	})
	if err != nil {
		return fmt.Errorf("gateway backend, staff confirm order %s delivered: %w", orderID, err)
	}
	return nil
}

// Login exchanges staff credentials for a token. The returned user carries
// only what the backend sent; defaults are the caller's business.
func (g *Gateway) Login(ctx context.Context, req entities.LoginRequest) (entities.StaffUser, error) {
	body, err := g.execute(ctx, request{
		op:     "Login",
		method: http.MethodPost,
		path:   "/auth/staff/login",
		body: loginRequest{
			Username: req.Username,
			Password: req.Password,
			TenantID: req.TenantID,
		},
		timeout: TimeoutLogin,
	})
	if err != nil {
		return entities.StaffUser{}, fmt.Errorf("gateway backend, login: %w", err)
	}

	var resp loginResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return entities.StaffUser{}, fmt.Errorf("gateway backend, login: %w: %w", ErrInvalidResponse, err)
	}
	return toStaffUser(resp), nil
}

func (g *Gateway) Health(ctx context.Context) error {
	_, err := g.execute(ctx, request{
		op:      "Health",
		method:  http.MethodGet,
		path:    "/health",
		timeout: TimeoutHealth,
	})
	if err != nil {
		return fmt.Errorf("gateway backend, health: %w", err)
	}
	return nil
}

func (g *Gateway) execute(ctx context.Context, req request) ([]byte, error) {
	ctx, span := g.tracer.Start(ctx, "backend."+req.op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.method),
			attribute.String("http.route", req.path),
		),
	)
	defer span.End()

	var (
		attempt uint64
		body    []byte
	)
	start := time.Now()

	call := func(ctx context.Context) error {
		attempt++
		var err error
		body, err = g.do(ctx, req)
		return err
	}

	var err error
	if req.retry {
		err = g.retrier.ExecuteWithContext(ctx, call)
	} else {
		err = call(ctx)
	}

	code := responseCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, req.op, code).Observe(time.Since(start).Seconds())
	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, req.op, code).Inc()
	}

	span.SetAttributes(
		attribute.String("http.status", code),
		attribute.Int64("attempts", int64(attempt)),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return body, nil
}

func (g *Gateway) do(ctx context.Context, req request) ([]byte, error) {
	parent := ctx
	if req.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.timeout)
		defer cancel()
	}

	httpReq, err := g.newHTTPRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, g.transportError(parent, ctx, req, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, g.transportError(parent, ctx, req, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Method:     req.method,
			Path:       req.path,
			Message:    errorMessage(resp, payload),
		}
		if errors.Is(apiErr, ErrUnauthorized) {
			g.log.Warn("backend rejected session, clearing it",
				logger.NewField("op", req.op),
				logger.NewField("status", resp.StatusCode),
			)
			g.session.Clear(session.ReasonUnauthorized)
		}
		return nil, apiErr
	}

	if !isJSON(resp.Header.Get("Content-Type")) {
		// text answers are passed through as a JSON string
		text, _ := json.Marshal(string(payload))
		return text, nil
	}
	return payload, nil
}

func (g *Gateway) newHTTPRequest(ctx context.Context, req request) (*http.Request, error) {
	query := url.Values{}
	for k, v := range req.query {
		query[k] = v
	}

	tenant := g.session.TenantID()
	if tenant != "" && g.tenantQuery {
		query.Set("tenant_id", tenant)
	}

	target := g.baseURL + req.path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if req.body != nil {
		raw, err := json.Marshal(req.body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-Id", uuid.NewString())

	if user, ok := g.session.User(); ok {
		if user.Token != "" {
			httpReq.Header.Set("Authorization", "Bearer "+user.Token)
		}
		if user.ID != "" {
			httpReq.Header.Set("X-User-Id", user.ID)
		}
		if user.Email != "" {
			httpReq.Header.Set("X-User-Email", user.Email)
		}
		if user.Type != "" {
			httpReq.Header.Set("X-User-Type", user.Type)
		}
	}
	if tenant != "" {
		httpReq.Header.Set("X-Tenant-Id", tenant)
	}

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(httpReq.Header))
	return httpReq, nil
}

// transportError tells an expired per-request budget (ErrTimeout) apart from a
// caller cancellation (returned as is) and any other failure (ErrNetwork).
func (g *Gateway) transportError(parent, ctx context.Context, req request, err error) error {
	if parent.Err() != nil {
		return parent.Err()
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%s %s after %s: %w", req.method, req.path, req.timeout, ErrTimeout)
	}

	g.log.Debug("backend transport failure",
		logger.NewField("op", req.op),
		logger.NewField("error", err),
	)
	return fmt.Errorf("%s %s: %w: %w", req.method, req.path, ErrNetwork, err)
}

func errorMessage(resp *http.Response, payload []byte) string {
	if isJSON(resp.Header.Get("Content-Type")) || json.Valid(payload) {
		var eb errorBody
		if err := json.Unmarshal(payload, &eb); err == nil {
			if msg := firstNonEmpty(eb.Message, eb.Error, eb.Detail); msg != "" {
				return msg
			}
		}
	}

	if len(payload) > maxErrorBody {
		payload = payload[:maxErrorBody]
	}
	if text := strings.TrimSpace(string(payload)); text != "" && !json.Valid(payload) {
		return text
	}

	if text := http.StatusText(resp.StatusCode); text != "" {
		return text
	}
	return "Error " + strconv.Itoa(resp.StatusCode)
}

func isJSON(contentType string) bool {
	return strings.Contains(strings.ToLower(contentType), "json")
}

func responseCode(err error) string {
	if err == nil {
		return "OK"
	}
	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr):
		return strconv.Itoa(apiErr.StatusCode)
	case errors.Is(err, ErrTimeout):
		return "timeout"
	case errors.Is(err, ErrNetwork):
		return "network"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "UNKNOWN"
	}
}
