package health

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Backend is the store view health needs.
type Backend interface {
	Ready() bool
	Ping(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}

// Status is the /status body.
type Status struct {
	Status          string `json:"status"`
	Message         string `json:"message"`
	Timestamp       string `json:"timestamp"`
	Database        string `json:"database"`
	CurrentDate     string `json:"currentDate"`
	CurrentTime     string `json:"currentTime"`
	CurrentDateTime string `json:"currentDateTime"`
}

// Report is the /api/health body.
type Report struct {
	Status          string  `json:"status"`
	Database        string  `json:"database"`
	Timestamp       string  `json:"timestamp"`
	CurrentDateTime string  `json:"currentDateTime"`
	Uptime          float64 `json:"uptime"`
	Driver          string  `json:"driver,omitempty"`
	DocumentsCount  *int64  `json:"documentsCount,omitempty"`
	Error           string  `json:"error,omitempty"`
}

// Service builds health reports.
type Service struct {
	backend Backend
	driver  string
	started time.Time
	now     func() time.Time
	logger  *zap.Logger
}

// NewService creates a health service. driver is reported as-is.
func NewService(backend Backend, driver string, logger *zap.Logger) *Service {
	return &Service{
		backend: backend,
		driver:  driver,
		started: time.Now(),
		now:     time.Now,
		logger:  logger,
	}
}

// Status returns the liveness body.
func (s *Service) Status() Status {
	now := s.now().UTC()
	database := "connecting"
	if s.backend.Ready() {
		database = "connected"
	}
	return Status{
		Status:          "live",
		Message:         "Server is running",
		Timestamp:       now.Format(time.RFC3339Nano),
		Database:        database,
		CurrentDate:     now.Format(time.DateOnly),
		CurrentTime:     now.Format(time.TimeOnly),
		CurrentDateTime: now.Format(time.DateTime),
	}
}

// Check returns the readiness report and whether the store is connected.
func (s *Service) Check(ctx context.Context) (Report, bool) {
	now := s.now().UTC()
	report := Report{
		Status:          "connecting",
		Database:        "disconnected",
		Timestamp:       now.Format(time.RFC3339Nano),
		CurrentDateTime: now.Format(time.DateTime) + " UTC",
		Uptime:          now.Sub(s.started).Seconds(),
		Driver:          s.driver,
	}

	if !s.backend.Ready() {
		return report, false
	}

	report.Status = "ready"
	report.Database = "connected"

	if err := s.backend.Ping(ctx); err != nil {
		s.logger.Warn("Health ping failed", zap.Error(err))
		report.Status = "error"
		report.Error = err.Error()
		return report, true
	}
	n, err := s.backend.Count(ctx)
	if err != nil {
		report.Status = "error"
		report.Error = err.Error()
		return report, true
	}
	report.DocumentsCount = &n
	return report, true
}
