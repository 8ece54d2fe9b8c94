package dto

// Request DTOs

// ReplacePeriodLogsRequest replaces the caller's whole period history; an empty list clears it
type ReplacePeriodLogsRequest struct {
	Dates []string `json:"dates" validate:"required,dive,required"`
}

type UpdateCycleProfileRequest struct {
	CycleLength     *int    `json:"cycle_length" validate:"omitempty,gte=1,lte=90"`
	PeriodDuration  *int    `json:"period_duration" validate:"omitempty,gte=1,lte=15"`
	CycleRegularity *string `json:"cycle_regularity" validate:"omitempty,max=20"`
}

// Response DTOs

type PeriodLogListResponse struct {
	Dates []string `json:"dates"`
	Total int      `json:"total"`
}

type PredictionResponse struct {
	LastPeriodStart *string  `json:"last_period_start"`
	CycleLength     int      `json:"cycle_length"`
	PeriodDuration  int      `json:"period_duration"`
	PeriodDays      []string `json:"period_days"`
	FertileDays     []string `json:"fertile_days"`
	OvulationDays   []string `json:"ovulation_days"`
}

type CycleProfileResponse struct {
	CycleLength     *int   `json:"cycle_length"`
	PeriodDuration  *int   `json:"period_duration"`
	CycleRegularity string `json:"cycle_regularity,omitempty"`
}
