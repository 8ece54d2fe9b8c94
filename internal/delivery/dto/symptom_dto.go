package dto

// Request DTOs

type SymptomRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type MenstrualFlowRequest struct {
	Label string `json:"label" validate:"required,max=100"`
}

// LogSymptomsRequest records symptoms for one day; Date defaults to today
type LogSymptomsRequest struct {
	SymptomIDs []int64 `json:"symptom_ids" validate:"required,min=1,max=50,dive,gt=0"`
	Date       string  `json:"date" validate:"omitempty,isodate"`
}

// Response DTOs

type SymptomResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type SymptomListResponse struct {
	Symptoms []SymptomResponse `json:"symptoms"`
	Total    int               `json:"total"`
}

type MenstrualFlowResponse struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}

type MenstrualFlowListResponse struct {
	Flows []MenstrualFlowResponse `json:"flows"`
	Total int                     `json:"total"`
}

type SymptomLogResponse struct {
	Date     string            `json:"date"`
	Symptoms []SymptomResponse `json:"symptoms"`
}

// SymptomLogListResponse groups logs by day, newest day first
type SymptomLogListResponse struct {
	Days  []SymptomLogResponse `json:"days"`
	Total int                  `json:"total"`
}
