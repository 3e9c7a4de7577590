package services

import (
	"context"
	"runtime"
	"storefront_server/storage"
	"time"

	"github.com/MonkyMars/gecho"
)

var uptimeStart time.Time

func init() {
	uptimeStart = time.Now()
}

type serverHealthStatus struct {
	Uptime       float64   `json:"uptime"`        // in seconds
	CurrentTime  time.Time `json:"current_time"`  // server current time
	ServiceAlive bool      `json:"service_alive"` // always true if service is running
	RamStats     *RamStats `json:"ram_stats"`
}

type RamStats struct {
	TotalMB     uint64 `json:"total_mb"`
	UsedMB      uint64 `json:"used_mb"`
	FreeMB      uint64 `json:"free_mb"`
	UsedPercent uint64 `json:"used_percent"`
}

type storeHealthStatus struct {
	Connected      bool           `json:"connected"`
	LastChecked    time.Time      `json:"last_checked"`
	ResponseTimeMs int64          `json:"response_time_ms"`
	Pool           map[string]any `json:"pool,omitempty"` // redis backend only
}

type HealthService struct {
	logger *gecho.Logger
	store  storage.CartStore
	status serverHealthStatus
}

func NewHealthService(logger *gecho.Logger, store storage.CartStore) *HealthService {
	return &HealthService{
		logger: logger,
		store:  store,
		status: serverHealthStatus{
			Uptime:       0,
			CurrentTime:  time.Now(),
			ServiceAlive: true,
			RamStats:     getRamStats(),
		},
	}
}

func getRamStats() *RamStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	totalMB := m.Sys / 1024 / 1024
	usedMB := m.Alloc / 1024 / 1024
	freeMB := totalMB - usedMB
	usedPercent := uint64(0)
	if totalMB > 0 {
		usedPercent = (usedMB * 100) / totalMB
	}

	return &RamStats{
		TotalMB:     totalMB,
		UsedMB:      usedMB,
		FreeMB:      freeMB,
		UsedPercent: usedPercent,
	}
}

func (hs *HealthService) GetServerHealthStatus() serverHealthStatus {
	hs.status.Uptime = time.Since(uptimeStart).Seconds()
	hs.status.CurrentTime = time.Now()
	hs.status.RamStats = getRamStats()
	return hs.status
}

// GetStoreHealthStatus pings the cart snapshot store and reports latency.
func (hs *HealthService) GetStoreHealthStatus(ctx context.Context) (storeHealthStatus, error) {
	start := time.Now()

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	err := hs.store.Ping(pingCtx)

	status := storeHealthStatus{
		Connected:      err == nil,
		LastChecked:    time.Now(),
		ResponseTimeMs: time.Since(start).Milliseconds(),
	}

	if rs, ok := hs.store.(*storage.RedisStore); ok {
		status.Pool = rs.GetConnectionStats()
	}

	if err != nil {
		hs.logger.Warn("Cart store health check failed", gecho.Field("error", err))
		return status, err
	}

	return status, nil
}
