package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"fitbox/internal/service/order"
	retrierconfig "fitbox/pkg/retrier"
	"fitbox/pkg/retrier/backoff_adapter"
)

const (
	serviceName   = "payment-provider"
	authorizePath = "/api/payments/authorize"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0

	clientTimeout = 5 * time.Second
)

type Gateway struct {
	baseURL string
	client  httpDoer
	retrier retrier
}

func New(baseURL string, client httpDoer) *Gateway {
	if client == nil {
		client = &http.Client{Timeout: clientTimeout}
	}

	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableError,
	}

	return &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
	}
}

// Authorize инициирует списание у платёжного провайдера. Отказ
// провайдера возвращается как order.ErrPaymentDeclined, итоговый
// статус оплаты приедет асинхронно событием Kafka.
func (g *Gateway) Authorize(ctx context.Context, orderID string, amount float64) error {
	body, err := json.Marshal(authorizeRequest{
		OrderID: orderID,
		Amount:  amount,
	})
	if err != nil {
		return fmt.Errorf("gateway payment, marshal authorize request: %w", err)
	}

	err = g.executeWithMetrics(ctx, "Authorize", func(ctx context.Context) error {
		return g.doAuthorize(ctx, body)
	})
	if err != nil {
		if errors.Is(err, order.ErrPaymentDeclined) {
			return order.ErrPaymentDeclined
		}
		return fmt.Errorf("gateway payment, authorize order %s: %w", orderID, err)
	}

	return nil
}

func (g *Gateway) doAuthorize(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+authorizePath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusPaymentRequired:
		return order.ErrPaymentDeclined
	default:
		return &statusError{code: resp.StatusCode}
	}
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status: %d", e.code)
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	var se *statusError
	if errors.As(err, &se) {
		return se.code == http.StatusTooManyRequests || se.code >= 500
	}

	if errors.Is(err, order.ErrPaymentDeclined) {
		return false
	}

	// сетевые сбои ретраем
	return true
}

func (g *Gateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	httpCode := getHTTPCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, httpCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, httpCode).Inc()
	}

	return err
}

func getHTTPCode(err error) string {
	if err == nil {
		return "OK"
	}

	var se *statusError
	if errors.As(err, &se) {
		return strconv.Itoa(se.code)
	}

	if errors.Is(err, order.ErrPaymentDeclined) {
		return strconv.Itoa(http.StatusPaymentRequired)
	}

	return "TRANSPORT_ERROR"
}
