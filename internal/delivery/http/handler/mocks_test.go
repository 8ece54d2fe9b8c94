package handler

import (
	"context"
	"errors"

	"cycle-booking-service/internal/delivery/dto"
	"cycle-booking-service/internal/usecase"

	"github.com/google/uuid"
)

var errNotStubbed = errors.New("not stubbed")

var _ usecase.AppointmentUsecase = (*MockAppointmentUsecase)(nil)

type MockAppointmentUsecase struct {
	BookSlotFunc                 func(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	ListBookedTimesFunc          func(ctx context.Context, doctorID, date string) (*dto.BookedTimesResponse, error)
	RescheduleAppointmentFunc    func(ctx context.Context, id uuid.UUID, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error)
	MarkCompletedFunc            func(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	ListDoctorAppointmentsFunc   func(ctx context.Context, doctorID uuid.UUID, date string) (*dto.AppointmentListResponse, error)
	ListMyDoctorAppointmentsFunc func(ctx context.Context, date string) (*dto.AppointmentListResponse, error)
	GetMyAppointmentsFunc        func(ctx context.Context) (*dto.AppointmentListResponse, error)

	BookSlotCalls int
}

func (m *MockAppointmentUsecase) BookSlot(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	m.BookSlotCalls++
	if m.BookSlotFunc != nil {
		return m.BookSlotFunc(ctx, req)
	}
	return nil, errNotStubbed
}

func (m *MockAppointmentUsecase) ListBookedTimes(ctx context.Context, doctorID, date string) (*dto.BookedTimesResponse, error) {
	if m.ListBookedTimesFunc != nil {
		return m.ListBookedTimesFunc(ctx, doctorID, date)
	}
	return nil, errNotStubbed
}

func (m *MockAppointmentUsecase) RescheduleAppointment(ctx context.Context, id uuid.UUID, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error) {
	if m.RescheduleAppointmentFunc != nil {
		return m.RescheduleAppointmentFunc(ctx, id, req)
	}
	return nil, errNotStubbed
}

func (m *MockAppointmentUsecase) MarkCompleted(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	if m.MarkCompletedFunc != nil {
		return m.MarkCompletedFunc(ctx, id)
	}
	return nil, errNotStubbed
}

func (m *MockAppointmentUsecase) ListDoctorAppointments(ctx context.Context, doctorID uuid.UUID, date string) (*dto.AppointmentListResponse, error) {
	if m.ListDoctorAppointmentsFunc != nil {
		return m.ListDoctorAppointmentsFunc(ctx, doctorID, date)
	}
	return nil, errNotStubbed
}

func (m *MockAppointmentUsecase) ListMyDoctorAppointments(ctx context.Context, date string) (*dto.AppointmentListResponse, error) {
	if m.ListMyDoctorAppointmentsFunc != nil {
		return m.ListMyDoctorAppointmentsFunc(ctx, date)
	}
	return nil, errNotStubbed
}

func (m *MockAppointmentUsecase) GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	if m.GetMyAppointmentsFunc != nil {
		return m.GetMyAppointmentsFunc(ctx)
	}
	return nil, errNotStubbed
}

var _ usecase.CycleUsecase = (*MockCycleUsecase)(nil)

type MockCycleUsecase struct {
	GetPeriodLogsFunc      func(ctx context.Context) (*dto.PeriodLogListResponse, error)
	ReplacePeriodLogsFunc  func(ctx context.Context, req *dto.ReplacePeriodLogsRequest) (*dto.PeriodLogListResponse, error)
	PredictCycleFunc       func(ctx context.Context) (*dto.PredictionResponse, error)
	UpdateCycleProfileFunc func(ctx context.Context, req *dto.UpdateCycleProfileRequest) (*dto.CycleProfileResponse, error)
}

func (m *MockCycleUsecase) GetPeriodLogs(ctx context.Context) (*dto.PeriodLogListResponse, error) {
	if m.GetPeriodLogsFunc != nil {
		return m.GetPeriodLogsFunc(ctx)
	}
	return nil, errNotStubbed
}

func (m *MockCycleUsecase) ReplacePeriodLogs(ctx context.Context, req *dto.ReplacePeriodLogsRequest) (*dto.PeriodLogListResponse, error) {
	if m.ReplacePeriodLogsFunc != nil {
		return m.ReplacePeriodLogsFunc(ctx, req)
	}
	return nil, errNotStubbed
}

func (m *MockCycleUsecase) PredictCycle(ctx context.Context) (*dto.PredictionResponse, error) {
	if m.PredictCycleFunc != nil {
		return m.PredictCycleFunc(ctx)
	}
	return nil, errNotStubbed
}

func (m *MockCycleUsecase) UpdateCycleProfile(ctx context.Context, req *dto.UpdateCycleProfileRequest) (*dto.CycleProfileResponse, error) {
	if m.UpdateCycleProfileFunc != nil {
		return m.UpdateCycleProfileFunc(ctx, req)
	}
	return nil, errNotStubbed
}

var _ usecase.AuditLogUsecase = (*MockAuditLogUsecase)(nil)

type MockAuditLogUsecase struct {
	SearchAuditLogsFunc func(ctx context.Context, query *dto.AuditLogQuery) (*dto.AuditLogListResponse, error)
	GetAuditLogFunc     func(ctx context.Context, id int64) (*dto.AuditLogResponse, error)
}

func (m *MockAuditLogUsecase) SearchAuditLogs(ctx context.Context, query *dto.AuditLogQuery) (*dto.AuditLogListResponse, error) {
	if m.SearchAuditLogsFunc != nil {
		return m.SearchAuditLogsFunc(ctx, query)
	}
	return nil, errNotStubbed
}

func (m *MockAuditLogUsecase) GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error) {
	if m.GetAuditLogFunc != nil {
		return m.GetAuditLogFunc(ctx, id)
	}
	return nil, errNotStubbed
}

var _ usecase.SymptomUsecase = (*MockSymptomUsecase)(nil)

type MockSymptomUsecase struct {
	ListSymptomsFunc        func(ctx context.Context) (*dto.SymptomListResponse, error)
	CreateSymptomFunc       func(ctx context.Context, req *dto.SymptomRequest) (*dto.SymptomResponse, error)
	UpdateSymptomFunc       func(ctx context.Context, id int64, req *dto.SymptomRequest) (*dto.SymptomResponse, error)
	DeleteSymptomFunc       func(ctx context.Context, id int64) error
	ListMenstrualFlowsFunc  func(ctx context.Context) (*dto.MenstrualFlowListResponse, error)
	CreateMenstrualFlowFunc func(ctx context.Context, req *dto.MenstrualFlowRequest) (*dto.MenstrualFlowResponse, error)
	UpdateMenstrualFlowFunc func(ctx context.Context, id int64, req *dto.MenstrualFlowRequest) (*dto.MenstrualFlowResponse, error)
	DeleteMenstrualFlowFunc func(ctx context.Context, id int64) error
	LogSymptomsFunc         func(ctx context.Context, req *dto.LogSymptomsRequest) (*dto.SymptomLogResponse, error)
	GetMySymptomLogsFunc    func(ctx context.Context, from string) (*dto.SymptomLogListResponse, error)
}

func (m *MockSymptomUsecase) ListSymptoms(ctx context.Context) (*dto.SymptomListResponse, error) {
	if m.ListSymptomsFunc != nil {
		return m.ListSymptomsFunc(ctx)
	}
	return nil, errNotStubbed
}

func (m *MockSymptomUsecase) CreateSymptom(ctx context.Context, req *dto.SymptomRequest) (*dto.SymptomResponse, error) {
	if m.CreateSymptomFunc != nil {
		return m.CreateSymptomFunc(ctx, req)
	}
	return nil, errNotStubbed
}

func (m *MockSymptomUsecase) UpdateSymptom(ctx context.Context, id int64, req *dto.SymptomRequest) (*dto.SymptomResponse, error) {
	if m.UpdateSymptomFunc != nil {
		return m.UpdateSymptomFunc(ctx, id, req)
	}
	return nil, errNotStubbed
}

func (m *MockSymptomUsecase) DeleteSymptom(ctx context.Context, id int64) error {
	if m.DeleteSymptomFunc != nil {
		return m.DeleteSymptomFunc(ctx, id)
	}
	return errNotStubbed
}

func (m *MockSymptomUsecase) ListMenstrualFlows(ctx context.Context) (*dto.MenstrualFlowListResponse, error) {
	if m.ListMenstrualFlowsFunc != nil {
		return m.ListMenstrualFlowsFunc(ctx)
	}
	return nil, errNotStubbed
}

func (m *MockSymptomUsecase) CreateMenstrualFlow(ctx context.Context, req *dto.MenstrualFlowRequest) (*dto.MenstrualFlowResponse, error) {
	if m.CreateMenstrualFlowFunc != nil {
		return m.CreateMenstrualFlowFunc(ctx, req)
	}
	return nil, errNotStubbed
}

func (m *MockSymptomUsecase) UpdateMenstrualFlow(ctx context.Context, id int64, req *dto.MenstrualFlowRequest) (*dto.MenstrualFlowResponse, error) {
	if m.UpdateMenstrualFlowFunc != nil {
		return m.UpdateMenstrualFlowFunc(ctx, id, req)
	}
	return nil, errNotStubbed
}

func (m *MockSymptomUsecase) DeleteMenstrualFlow(ctx context.Context, id int64) error {
	if m.DeleteMenstrualFlowFunc != nil {
		return m.DeleteMenstrualFlowFunc(ctx, id)
	}
	return errNotStubbed
}

func (m *MockSymptomUsecase) LogSymptoms(ctx context.Context, req *dto.LogSymptomsRequest) (*dto.SymptomLogResponse, error) {
	if m.LogSymptomsFunc != nil {
		return m.LogSymptomsFunc(ctx, req)
	}
	return nil, errNotStubbed
}

func (m *MockSymptomUsecase) GetMySymptomLogs(ctx context.Context, from string) (*dto.SymptomLogListResponse, error) {
	if m.GetMySymptomLogsFunc != nil {
		return m.GetMySymptomLogsFunc(ctx, from)
	}
	return nil, errNotStubbed
}
