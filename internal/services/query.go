package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/xevscan/scan-api/internal/health"
	"github.com/xevscan/scan-api/internal/logger"
	"github.com/xevscan/scan-api/internal/models"
	"github.com/xevscan/scan-api/internal/repositories"
)

var (
	ErrInvalidStartDate    = errors.New("invalid start_date format")
	ErrInvalidEndDate      = errors.New("invalid end_date format")
	ErrScanNotFound        = errors.New("scan data not found")
	ErrDeviceNotAccessible = errors.New("device not accessible by this user")
	ErrNoScanData          = errors.New("no scan data found for this device")
)

const (
	defaultScanLimit = 100
	maxScanLimit     = 1000
)

// ScanReader defines read operations for scan records.
type ScanReader interface {
	List(ctx context.Context, f repositories.ScanFilter) ([]models.ScanDB, int64, error)
	GetByID(ctx context.Context, id uuid.UUID, deviceIDs []string) (*models.ScanDB, error)
	LatestByDeviceIDs(ctx context.Context, deviceIDs []string) ([]models.ScanDB, error)
	LatestByDevice(ctx context.Context, deviceID string) (*models.ScanDB, error)
	CountByDeviceIDs(ctx context.Context, deviceIDs []string) (int64, error)
}

// ScanListRequest carries the raw query parameters of a scan listing. Dates
// arrive as strings so the service owns their validation.
type ScanListRequest struct {
	DeviceID  string
	StartDate string
	EndDate   string
	Limit     int
	Offset    int
}

// ScanPage is one page of scan records for a tablet client.
type ScanPage struct {
	Scans   []models.ScanRecord
	Total   int64
	Limit   int
	Offset  int
	HasMore bool
}

// DeviceStatus pairs a linked device with its most recent scan, if any.
type DeviceStatus struct {
	DeviceID     string             `json:"device_id"`
	DeviceName   string             `json:"device_name"`
	HealthStatus string             `json:"health_status"`
	LatestScan   *models.ScanRecord `json:"latest_scan"`
	LastSeen     *string            `json:"last_seen"`
}

// AnalyticsSummary aggregates the caller's scan history.
type AnalyticsSummary struct {
	TotalScans        int64   `json:"total_scans"`
	TotalDevices      int     `json:"total_devices"`
	DevicesWithIssues int     `json:"devices_with_issues"`
	LastScanTimestamp *string `json:"last_scan_timestamp"`
}

// ScanQueryService serves access-scoped scan reads. Every operation resolves
// the caller's owned device set first and never exposes records outside it.
type ScanQueryService struct {
	scans   ScanReader
	devices DeviceReader
}

// NewScanQueryService creates a new ScanQueryService instance.
func NewScanQueryService(scans ScanReader, devices DeviceReader) *ScanQueryService {
	return &ScanQueryService{
		scans:   scans,
		devices: devices,
	}
}

// ListScans returns one page of the caller's scans, newest first. A device_id
// filter naming a device outside the owned set is silently ignored.
func (svc *ScanQueryService) ListScans(ctx context.Context, userID uuid.UUID, req ScanListRequest) (*ScanPage, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultScanLimit
	}
	if limit > maxScanLimit {
		limit = maxScanLimit
	}
	offset := req.Offset
	if offset < 0 {
		offset = 0
	}

	filter := repositories.ScanFilter{Limit: limit, Offset: offset}

	if req.StartDate != "" {
		t, err := models.ParseTimestamp(req.StartDate)
		if err != nil {
			return nil, ErrInvalidStartDate
		}
		filter.StartDate = &t
	}
	if req.EndDate != "" {
		t, err := models.ParseTimestamp(req.EndDate)
		if err != nil {
			return nil, ErrInvalidEndDate
		}
		filter.EndDate = &t
	}

	owned, err := svc.devices.DeviceIDs(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list user devices", "err", err)
		return nil, err
	}

	page := &ScanPage{Scans: []models.ScanRecord{}, Limit: limit, Offset: offset}
	if len(owned) == 0 {
		return page, nil
	}

	// A device_id filter outside the owned set is ignored, not an error.
	filter.DeviceIDs = owned
	if req.DeviceID != "" && contains(owned, req.DeviceID) {
		filter.DeviceIDs = []string{req.DeviceID}
	}

	scans, total, err := svc.scans.List(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to list scans", "err", err)
		return nil, err
	}

	for i := range scans {
		page.Scans = append(page.Scans, scans[i].Record(string(health.Evaluate(&scans[i]))))
	}
	page.Total = total
	page.HasMore = int64(offset+limit) < total

	return page, nil
}

// GetScan returns a single scan by id. Scans outside the caller's owned set
// are reported as not found, not as forbidden.
func (svc *ScanQueryService) GetScan(ctx context.Context, userID, scanID uuid.UUID) (*models.ScanRecord, error) {
	owned, err := svc.devices.DeviceIDs(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list user devices", "err", err)
		return nil, err
	}
	if len(owned) == 0 {
		return nil, ErrScanNotFound
	}

	scan, err := svc.scans.GetByID(ctx, scanID, owned)
	if err != nil {
		logger.Log.Errorw("failed to get scan", "err", err)
		return nil, err
	}
	if scan == nil {
		return nil, ErrScanNotFound
	}

	record := scan.Record(string(health.Evaluate(scan)))
	return &record, nil
}

// DeviceStatuses returns every linked device with its latest scan and health
// status. Devices without scans appear with a null latest scan.
func (svc *ScanQueryService) DeviceStatuses(ctx context.Context, userID uuid.UUID) ([]DeviceStatus, error) {
	mappings, err := svc.devices.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list user devices", "err", err)
		return nil, err
	}

	statuses := make([]DeviceStatus, 0, len(mappings))
	if len(mappings) == 0 {
		return statuses, nil
	}

	deviceIDs := make([]string, len(mappings))
	for i, m := range mappings {
		deviceIDs[i] = m.DeviceID
	}

	latest, err := svc.scans.LatestByDeviceIDs(ctx, deviceIDs)
	if err != nil {
		logger.Log.Errorw("failed to load latest scans", "err", err)
		return nil, err
	}

	latestByDevice := make(map[string]*models.ScanDB, len(latest))
	for i := range latest {
		latestByDevice[latest[i].DeviceID] = &latest[i]
	}

	for _, m := range mappings {
		status := DeviceStatus{
			DeviceID:     m.DeviceID,
			DeviceName:   m.DeviceName,
			HealthStatus: string(health.StatusUnknown),
		}
		if scan := latestByDevice[m.DeviceID]; scan != nil {
			record := scan.Record("")
			status.LatestScan = &record
			status.HealthStatus = string(health.Evaluate(scan))
			seen := scan.ScanTimestamp.UTC().Format(time.RFC3339)
			status.LastSeen = &seen
		}
		statuses = append(statuses, status)
	}

	return statuses, nil
}

// LatestForDevice returns the most recent scan of one device. Asking about a
// device outside the owned set is forbidden, unlike scan lookups by id.
func (svc *ScanQueryService) LatestForDevice(ctx context.Context, userID uuid.UUID, deviceID string) (*models.ScanRecord, error) {
	mapping, err := svc.devices.Get(ctx, userID, deviceID)
	if err != nil {
		logger.Log.Errorw("failed to check device link", "err", err)
		return nil, err
	}
	if mapping == nil {
		return nil, ErrDeviceNotAccessible
	}

	scan, err := svc.scans.LatestByDevice(ctx, deviceID)
	if err != nil {
		logger.Log.Errorw("failed to load latest scan", "err", err)
		return nil, err
	}
	if scan == nil {
		return nil, ErrNoScanData
	}

	record := scan.Record(string(health.Evaluate(scan)))
	return &record, nil
}

// Analytics aggregates the caller's scan history: total scans, linked
// devices, devices whose latest scan signals an issue, and the most recent
// scan timestamp across all devices.
func (svc *ScanQueryService) Analytics(ctx context.Context, userID uuid.UUID) (*AnalyticsSummary, error) {
	owned, err := svc.devices.DeviceIDs(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list user devices", "err", err)
		return nil, err
	}

	summary := &AnalyticsSummary{TotalDevices: len(owned)}
	if len(owned) == 0 {
		return summary, nil
	}

	total, err := svc.scans.CountByDeviceIDs(ctx, owned)
	if err != nil {
		logger.Log.Errorw("failed to count scans", "err", err)
		return nil, err
	}
	summary.TotalScans = total

	latest, err := svc.scans.LatestByDeviceIDs(ctx, owned)
	if err != nil {
		logger.Log.Errorw("failed to load latest scans", "err", err)
		return nil, err
	}

	var last time.Time
	for i := range latest {
		if health.IsIssue(health.Evaluate(&latest[i])) {
			summary.DevicesWithIssues++
		}
		if latest[i].ScanTimestamp.After(last) {
			last = latest[i].ScanTimestamp
		}
	}
	if !last.IsZero() {
		s := last.Format(time.RFC3339)
		summary.LastScanTimestamp = &s
	}

	return summary, nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
