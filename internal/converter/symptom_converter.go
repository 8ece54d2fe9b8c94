package converter

import (
	"cycle-booking-service/internal/delivery/dto"
	"cycle-booking-service/internal/domain/entity"
	"cycle-booking-service/pkg/calendar"
)

func SymptomToResponse(symptom *entity.Symptom) *dto.SymptomResponse {
	if symptom == nil {
		return nil
	}
	return &dto.SymptomResponse{ID: symptom.ID, Name: symptom.Name}
}

func SymptomsToResponses(symptoms []entity.Symptom) []dto.SymptomResponse {
	responses := make([]dto.SymptomResponse, 0, len(symptoms))
	for i := range symptoms {
		responses = append(responses, *SymptomToResponse(&symptoms[i]))
	}
	return responses
}

func MenstrualFlowToResponse(flow *entity.MenstrualFlow) *dto.MenstrualFlowResponse {
	if flow == nil {
		return nil
	}
	return &dto.MenstrualFlowResponse{ID: flow.ID, Label: flow.Label}
}

func MenstrualFlowsToResponses(flows []entity.MenstrualFlow) []dto.MenstrualFlowResponse {
	responses := make([]dto.MenstrualFlowResponse, 0, len(flows))
	for i := range flows {
		responses = append(responses, *MenstrualFlowToResponse(&flows[i]))
	}
	return responses
}

// SymptomLogsToDays groups logs by date, keeping the input order of both days
// and symptoms within a day.
func SymptomLogsToDays(logs []entity.SymptomLog) []dto.SymptomLogResponse {
	days := []dto.SymptomLogResponse{}
	index := map[string]int{}
	for i := range logs {
		date := calendar.FormatDate(logs[i].Date)
		pos, ok := index[date]
		if !ok {
			pos = len(days)
			index[date] = pos
			days = append(days, dto.SymptomLogResponse{Date: date, Symptoms: []dto.SymptomResponse{}})
		}
		days[pos].Symptoms = append(days[pos].Symptoms, *SymptomToResponse(&logs[i].Symptom))
	}
	return days
}
