package health

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"gorm.io/gorm"
)

// HealthStatus represents the overall health of the application
type HealthStatus struct {
	Status    string                 `json:"status"` // "healthy", "degraded"
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Checks    map[string]interface{} `json:"checks"`
	Duration  int64                  `json:"duration_ms"`
}

// ComponentHealth represents health of a single component
type ComponentHealth struct {
	Healthy bool        `json:"healthy"`
	Details interface{} `json:"details,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// SystemMetrics captures current system metrics
type SystemMetrics struct {
	MemoryUsageMB  uint64 `json:"memory_usage_mb"`
	GoroutineCount int    `json:"goroutine_count"`
	CPUNumCores    int    `json:"cpu_num_cores"`
	Uptime         int64  `json:"uptime_seconds"`
}

// StatsFunc supplies a named block of gauges, typically cache counters
// or rate-limiter population sizes.
type StatsFunc func() interface{}

// HealthChecker probes the store backend and exposes process gauges.
// db is nil when the memory backend is active; that is a healthy
// configuration, not a failure.
type HealthChecker struct {
	db        *gorm.DB
	backend   string
	version   string
	startTime time.Time

	mu              sync.RWMutex
	statSources     map[string]StatsFunc
	lastCheckStatus string
}

// NewHealthChecker creates a checker for the given backend. Pass a nil
// db with backend "memory".
func NewHealthChecker(db *gorm.DB, backend string, version string) *HealthChecker {
	return &HealthChecker{
		db:          db,
		backend:     backend,
		version:     version,
		startTime:   time.Now(),
		statSources: make(map[string]StatsFunc),
	}
}

// RegisterStats adds a named gauge source to health reports.
func (hc *HealthChecker) RegisterStats(name string, fn StatsFunc) {
	hc.mu.Lock()
	hc.statSources[name] = fn
	hc.mu.Unlock()
}

// StatsSnapshot collects the current value of every registered gauge
// source.
func (hc *HealthChecker) StatsSnapshot() map[string]interface{} {
	hc.mu.RLock()
	defer hc.mu.RUnlock()

	snapshot := make(map[string]interface{}, len(hc.statSources))
	for name, fn := range hc.statSources {
		snapshot[name] = fn()
	}
	return snapshot
}

// Check performs a complete health check
func (hc *HealthChecker) Check() HealthStatus {
	start := time.Now()
	status := HealthStatus{
		Timestamp: start,
		Version:   hc.version,
		Checks:    make(map[string]interface{}),
	}

	dbCheck := hc.checkStore()
	status.Checks["store"] = dbCheck

	goroutineCount := runtime.NumGoroutine()
	status.Checks["goroutines"] = map[string]interface{}{
		"count":   goroutineCount,
		"healthy": goroutineCount < 10000,
	}

	status.Checks["uptime_seconds"] = int64(time.Since(hc.startTime).Seconds())

	hc.mu.RLock()
	for name, fn := range hc.statSources {
		status.Checks[name] = fn()
	}
	hc.mu.RUnlock()

	allHealthy := dbCheck.Healthy && goroutineCount < 10000

	if allHealthy {
		status.Status = "healthy"
	} else {
		status.Status = "degraded"
	}

	status.Duration = time.Since(start).Milliseconds()

	hc.mu.Lock()
	hc.lastCheckStatus = status.Status
	hc.mu.Unlock()

	return status
}

// checkStore verifies backend connectivity and latency.
func (hc *HealthChecker) checkStore() ComponentHealth {
	if hc.db == nil {
		return ComponentHealth{
			Healthy: true,
			Details: map[string]interface{}{"backend": hc.backend},
		}
	}

	start := time.Now()

	sqlDB, err := hc.db.DB()
	if err != nil {
		return ComponentHealth{
			Healthy: false,
			Error:   fmt.Sprintf("failed to get database connection: %v", err),
		}
	}

	if err := sqlDB.Ping(); err != nil {
		return ComponentHealth{
			Healthy: false,
			Error:   fmt.Sprintf("database ping failed: %v", err),
		}
	}

	latency := time.Since(start).Milliseconds()

	return ComponentHealth{
		Healthy: true,
		Details: map[string]interface{}{
			"backend":    hc.backend,
			"latency_ms": latency,
			"latency_ok": latency < 100,
		},
	}
}

// IsHealthy returns true if the last check reported healthy.
func (hc *HealthChecker) IsHealthy() bool {
	hc.mu.RLock()
	status := hc.lastCheckStatus
	hc.mu.RUnlock()

	return status == "healthy"
}

// IsReady returns true if the store can serve traffic.
func (hc *HealthChecker) IsReady() bool {
	if hc.db == nil {
		return true // memory backend is always ready
	}

	sqlDB, err := hc.db.DB()
	if err != nil {
		return false
	}
	return sqlDB.Ping() == nil
}

// IsAlive returns true if the process is running.
func (hc *HealthChecker) IsAlive() bool {
	return true
}

// GetMetrics returns current system metrics
func (hc *HealthChecker) GetMetrics() SystemMetrics {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return SystemMetrics{
		MemoryUsageMB:  m.Alloc / 1024 / 1024,
		GoroutineCount: runtime.NumGoroutine(),
		CPUNumCores:    runtime.NumCPU(),
		Uptime:         int64(time.Since(hc.startTime).Seconds()),
	}
}
