package platforms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/rahulupadhyay22/Restaurant-Pos/internal/config"
	domain "github.com/rahulupadhyay22/Restaurant-Pos/internal/domain/delivery"
	"github.com/rahulupadhyay22/Restaurant-Pos/pkg/logger"
)

// Platforms speak different status vocabularies; each local status maps to
// the wire value the platform expects.
var zomatoStatuses = map[domain.Status]string{
	domain.StatusAccepted:  "accepted",
	domain.StatusPreparing: "preparing",
	domain.StatusReady:     "ready",
	domain.StatusPickedUp:  "picked_up",
	domain.StatusDelivered: "delivered",
	domain.StatusCancelled: "cancelled",
}

var swiggyStatuses = map[domain.Status]string{
	domain.StatusAccepted:  "ACCEPTED",
	domain.StatusPreparing: "PREPARING",
	domain.StatusReady:     "READY_FOR_PICKUP",
	domain.StatusPickedUp:  "PICKED_UP",
	domain.StatusDelivered: "DELIVERED",
	domain.StatusCancelled: "CANCELLED",
}

// Syncer pushes local status changes back to the delivery platforms over
// their partner APIs. It implements the application's StatusSyncer.
type Syncer struct {
	cfg     config.DeliveryConfig
	client  *http.Client
	timeout time.Duration
	log     logger.Logger
}

func NewSyncer(cfg config.DeliveryConfig, log logger.Logger) *Syncer {
	timeout := cfg.SyncTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Syncer{
		cfg:     cfg,
		timeout: timeout,
		log:     log,
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   5 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
			},
		},
	}
}

// SyncStatus PUTs the platform-specific status value to the platform's order
// endpoint. Disabled platforms and unmapped statuses are logged no-ops so
// local transitions keep working without partner credentials.
func (s *Syncer) SyncStatus(ctx context.Context, platform domain.Platform, platformOrderID string, status domain.Status) error {
	pCfg, ok := s.cfg.Platform(platform.String())
	if !ok {
		return fmt.Errorf("no configuration for platform %s", platform)
	}
	if !pCfg.Enabled || pCfg.BaseURL == "" {
		s.log.Debug("platform sync disabled, skipping",
			logger.String("platform", platform.String()),
			logger.String("platform_order_id", platformOrderID),
		)
		return nil
	}

	wireStatus, ok := statusFor(platform, status)
	if !ok {
		s.log.Debug("status has no platform mapping, skipping sync",
			logger.String("platform", platform.String()),
			logger.String("status", status.String()),
		)
		return nil
	}

	body, err := json.Marshal(map[string]string{"status": wireStatus})
	if err != nil {
		return fmt.Errorf("encode status payload: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	url := fmt.Sprintf("%s/orders/%s/status", pCfg.BaseURL, platformOrderID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build status request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+pCfg.APIKey)
	if platform == domain.PlatformSwiggy && pCfg.PartnerID != "" {
		req.Header.Set("Partner-ID", pCfg.PartnerID)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("sync status to %s: %w", platform, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sync status to %s: unexpected status %d", platform, resp.StatusCode)
	}

	s.log.Info("synced status to delivery platform",
		logger.String("platform", platform.String()),
		logger.String("platform_order_id", platformOrderID),
		logger.String("status", wireStatus),
	)
	return nil
}

func statusFor(platform domain.Platform, status domain.Status) (string, bool) {
	switch platform {
	case domain.PlatformZomato:
		v, ok := zomatoStatuses[status]
		return v, ok
	case domain.PlatformSwiggy:
		v, ok := swiggyStatuses[status]
		return v, ok
	default:
		return "", false
	}
}
