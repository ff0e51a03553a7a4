package domain

import (
	"time"

	"github.com/blaisecz/vital-quest/pkg/pagination"
	"github.com/google/uuid"
)

// DateLayout is the calendar-date format used in paths and payloads.
const DateLayout = "2006-01-02"

// SleepStage is the sleep phase reported for a segment.
// @Description Sleep stage: deep, light or rem.
type SleepStage string

const (
	SleepStageDeep  SleepStage = "deep"
	SleepStageLight SleepStage = "light"
	SleepStageREM   SleepStage = "rem"
)

// SleepSegment is a contiguous sleep interval.
// DurationMinutes is authoritative for aggregation; the time bounds are only
// used for windowing heart-rate samples.
type SleepSegment struct {
	StartTime       time.Time  `json:"start_time" validate:"required" example:"2024-01-15T23:00:00Z"`
	EndTime         time.Time  `json:"end_time" validate:"required,gtefield=StartTime" example:"2024-01-16T06:30:00Z"`
	Stage           SleepStage `json:"stage" validate:"required,oneof=deep light rem" example:"deep" enums:"deep,light,rem"`
	DurationMinutes int        `json:"duration_minutes" validate:"min=0" example:"90"`
}

// HeartRateSample is a single heart-rate reading.
type HeartRateSample struct {
	Timestamp time.Time `json:"timestamp" validate:"required" example:"2024-01-16T03:00:00Z"`
	BPM       int       `json:"bpm" validate:"min=0" example:"58"`
}

// ManualWorkout is one logged exercise session.
type ManualWorkout struct {
	ActivityType    string  `json:"activity_type" validate:"max=64" example:"Gym"`
	DurationMinutes int     `json:"duration_minutes" validate:"min=0" example:"60"`
	IntensityRPE    int     `json:"intensity_rpe" validate:"min=1,max=10" example:"7"`
	CaloriesBurnt   float64 `json:"calories_burnt" validate:"min=0" example:"300"`
	Notes           string  `json:"notes,omitempty" validate:"max=500"`
}

// DailyLog is one user's activity record for one calendar date.
// Date carries the location whose wall clock defines that day.
type DailyLog struct {
	Date                time.Time         `json:"date"`
	TotalSteps          int               `json:"total_steps"`
	TotalActiveCalories float64           `json:"total_active_calories"`
	SleepSegments       []SleepSegment    `json:"sleep_segments"`
	HeartRateSamples    []HeartRateSample `json:"heart_rate_samples"`
	ManualWorkouts      []ManualWorkout   `json:"manual_workouts"`
}

// DailyLogRecord is the persisted form of a DailyLog.
type DailyLogRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_daily_logs_user_date" json:"user_id"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:idx_daily_logs_user_date,sort:desc" json:"date"`
	Log       DailyLog  `gorm:"type:jsonb;serializer:json;not null" json:"log"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (DailyLogRecord) TableName() string {
	return "daily_logs"
}

// DayLog returns the stored log with Date set to local midnight of the
// record's calendar date in loc.
func (d *DailyLogRecord) DayLog(loc *time.Location) DailyLog {
	log := d.Log
	log.Date = LocalDate(d.Date, loc)
	return log
}

// StorageDate maps a local calendar date onto the UTC midnight used for the
// date column.
func StorageDate(local time.Time) time.Time {
	return LocalDate(local, time.UTC)
}

// UpsertDailyLogRequest is the request body for recording a day of activity.
// @Description Raw activity data for one calendar day.
type UpsertDailyLogRequest struct {
	// Step count for the day
	TotalSteps int `json:"total_steps" validate:"min=0" example:"10000"`
	// Active calories for the day
	TotalActiveCalories float64 `json:"total_active_calories" validate:"min=0" example:"450.5"`
	// Sleep segments, ordered
	SleepSegments []SleepSegment `json:"sleep_segments" validate:"omitempty,dive"`
	// Heart-rate samples, any order
	HeartRateSamples []HeartRateSample `json:"heart_rate_samples" validate:"omitempty,dive"`
	// Workouts in the order they were logged
	ManualWorkouts []ManualWorkout `json:"manual_workouts" validate:"omitempty,dive"`
}

// ToDailyLog builds the engine input for the given date.
func (r *UpsertDailyLogRequest) ToDailyLog(date time.Time) DailyLog {
	return DailyLog{
		Date:                date,
		TotalSteps:          r.TotalSteps,
		TotalActiveCalories: r.TotalActiveCalories,
		SleepSegments:       r.SleepSegments,
		HeartRateSamples:    r.HeartRateSamples,
		ManualWorkouts:      r.ManualWorkouts,
	}
}

// DailyLogResponse is the response body for daily log endpoints.
// @Description Stored daily log.
type DailyLogResponse struct {
	ID        uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	UserID    uuid.UUID `json:"user_id" example:"660e8400-e29b-41d4-a716-446655440001"`
	Date      string    `json:"date" example:"2024-01-16"`
	Log       DailyLog  `json:"log"`
	UpdatedAt time.Time `json:"updated_at" example:"2024-01-16T07:05:00Z"`
}

func (d *DailyLogRecord) ToResponse() DailyLogResponse {
	return DailyLogResponse{
		ID:        d.ID,
		UserID:    d.UserID,
		Date:      d.Date.Format(DateLayout),
		Log:       d.Log,
		UpdatedAt: d.UpdatedAt,
	}
}

// DailyLogListResponse is the response body for listing daily logs.
// @Description Paginated list of daily logs, newest first.
type DailyLogListResponse struct {
	Data       []DailyLogResponse `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// DailyLogFilter contains filter parameters for listing daily logs
type DailyLogFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Cursor *pagination.Cursor
}

// LocalDate returns midnight in loc of t's calendar date, read in t's own
// location. Convert t with In first to get the date as seen in loc.
func LocalDate(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// ParseDate parses a YYYY-MM-DD date as midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(DateLayout, s, loc)
}
