package handler

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// ReadinessCheck probes one external dependency. A nil error means ready.
type ReadinessCheck func(ctx context.Context) error

// HealthHandler serves the health probes. Every call samples the runtime in
// real time; the handler itself holds no mutable state.
type HealthHandler struct {
	env     string
	version string
	start   time.Time
	checks  []ReadinessCheck
}

// NewHealthHandler creates a HealthHandler reporting the given environment
// name and version. Readiness checks are optional: with none registered the
// service always reports ready.
func NewHealthHandler(env, version string, checks ...ReadinessCheck) *HealthHandler {
	return &HealthHandler{
		env:     env,
		version: version,
		start:   time.Now(),
		checks:  checks,
	}
}

type healthResponse struct {
	Status      string  `json:"status"`
	Timestamp   string  `json:"timestamp"`
	Uptime      float64 `json:"uptime"`
	Environment string  `json:"environment"`
}

type memoryHealth struct {
	Used     uint64 `json:"used"`
	Total    uint64 `json:"total"`
	External uint64 `json:"external"`
	RSS      uint64 `json:"rss"`
}

type systemHealth struct {
	Platform    string     `json:"platform"`
	Arch        string     `json:"arch"`
	CPUs        int        `json:"cpus"`
	LoadAverage [3]float64 `json:"loadAverage"`
	FreeMemory  uint64     `json:"freeMemory"`
	TotalMemory uint64     `json:"totalMemory"`
}

type processHealth struct {
	PID            int    `json:"pid"`
	RuntimeVersion string `json:"runtimeVersion"`
	Title          string `json:"title"`
}

type detailedHealthResponse struct {
	healthResponse
	Version string        `json:"version"`
	Memory  memoryHealth  `json:"memory"`
	System  systemHealth  `json:"system"`
	Process processHealth `json:"process"`
}

type probeResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Basic handles GET /api/health.
//
// @Summary      Basic health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  healthResponse
// @Router       /api/health [get]
func (h *HealthHandler) Basic(c echo.Context) error {
	return c.JSON(http.StatusOK, h.basic())
}

// Detailed handles GET /api/health/detailed, adding memory, system, and
// process figures to the basic payload.
//
// @Summary      Detailed health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  detailedHealthResponse
// @Router       /api/health/detailed [get]
func (h *HealthHandler) Detailed(c echo.Context) error {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	free, total := systemMemory()

	return c.JSON(http.StatusOK, detailedHealthResponse{
		healthResponse: h.basic(),
		Version:        h.version,
		Memory: memoryHealth{
			Used:     mem.HeapAlloc,
			Total:    mem.HeapSys,
			External: mem.StackSys,
			RSS:      mem.Sys,
		},
		System: systemHealth{
			Platform:    runtime.GOOS,
			Arch:        runtime.GOARCH,
			CPUs:        runtime.NumCPU(),
			LoadAverage: loadAverage(),
			FreeMemory:  free,
			TotalMemory: total,
		},
		Process: processHealth{
			PID:            os.Getpid(),
			RuntimeVersion: runtime.Version(),
			Title:          os.Args[0],
		},
	})
}

// Ready handles GET /api/health/ready. All registered checks must pass;
// any failure returns 503.
//
// @Summary      Readiness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  probeResponse
// @Failure      503  {object}  probeResponse
// @Router       /api/health/ready [get]
func (h *HealthHandler) Ready(c echo.Context) error {
	ts := time.Now().UTC().Format(time.RFC3339)
	for _, check := range h.checks {
		if err := check(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, probeResponse{Status: "not ready", Timestamp: ts})
		}
	}
	return c.JSON(http.StatusOK, probeResponse{Status: "ready", Timestamp: ts})
}

// Live handles GET /api/health/live. Answering at all proves liveness.
//
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  probeResponse
// @Router       /api/health/live [get]
func (h *HealthHandler) Live(c echo.Context) error {
	return c.JSON(http.StatusOK, probeResponse{
		Status:    "alive",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *HealthHandler) basic() healthResponse {
	return healthResponse{
		Status:      "OK",
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Uptime:      time.Since(h.start).Seconds(),
		Environment: h.env,
	}
}

// loadAverage reads /proc/loadavg. On platforms without procfs all three
// figures stay zero.
func loadAverage() [3]float64 {
	var load [3]float64
	data, err := os.ReadFile("/proc/loadavg")
	if err != nil {
		return load
	}
	fields := strings.Fields(string(data))
	for i := 0; i < 3 && i < len(fields); i++ {
		load[i], _ = strconv.ParseFloat(fields[i], 64)
	}
	return load
}

// systemMemory reads free and total memory from /proc/meminfo, in bytes.
// Both figures stay zero on platforms without procfs.
func systemMemory() (free, total uint64) {
	data, err := os.ReadFile("/proc/meminfo")
	if err != nil {
		return 0, 0
	}
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		kb, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			continue
		}
		switch fields[0] {
		case "MemTotal:":
			total = kb * 1024
		case "MemAvailable:":
			free = kb * 1024
		}
	}
	return free, total
}
