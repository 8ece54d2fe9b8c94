package http

import (
	"net/http"

	"cycle-booking-service/internal/delivery/http/handler"
	"cycle-booking-service/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	appointmentHandler *handler.AppointmentHandler
	cycleHandler       *handler.CycleHandler
	doctorHandler      *handler.DoctorHandler
	reminderHandler    *handler.ReminderHandler
	symptomHandler     *handler.SymptomHandler
	auditLogHandler    *handler.AuditLogHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	appointmentHandler *handler.AppointmentHandler,
	cycleHandler *handler.CycleHandler,
	doctorHandler *handler.DoctorHandler,
	reminderHandler *handler.ReminderHandler,
	symptomHandler *handler.SymptomHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		appointmentHandler: appointmentHandler,
		cycleHandler:       cycleHandler,
		doctorHandler:      doctorHandler,
		reminderHandler:    reminderHandler,
		symptomHandler:     symptomHandler,
		auditLogHandler:    auditLogHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Doctor directory (public)
	api.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)

	// Symptom catalogue (public)
	api.HandleFunc("/symptoms", r.symptomHandler.GetSymptoms).Methods(http.MethodGet)
	api.HandleFunc("/menstrual-flows", r.symptomHandler.GetMenstrualFlows).Methods(http.MethodGet)

	// Authenticated user routes
	user := api.NewRoute().Subrouter()
	user.Use(r.authMiddleware.Authenticate)

	// Appointments
	user.HandleFunc("/appointments/booked-times", r.appointmentHandler.GetBookedTimes).Methods(http.MethodGet)
	user.HandleFunc("/appointments", r.appointmentHandler.BookAppointment).Methods(http.MethodPost)
	user.HandleFunc("/appointments", r.appointmentHandler.GetMyAppointments).Methods(http.MethodGet)
	user.HandleFunc("/appointments/{id}/reschedule", r.appointmentHandler.RescheduleAppointment).Methods(http.MethodPut)
	user.Handle("/appointments/{id}/complete",
		middleware.RequireAdminOrDoctor(http.HandlerFunc(r.appointmentHandler.CompleteAppointment))).Methods(http.MethodPut)

	// Cycle tracking
	user.HandleFunc("/period-logs", r.cycleHandler.GetPeriodLogs).Methods(http.MethodGet)
	user.HandleFunc("/period-logs", r.cycleHandler.ReplacePeriodLogs).Methods(http.MethodPost)
	user.HandleFunc("/predictions", r.cycleHandler.GetPrediction).Methods(http.MethodGet)
	user.HandleFunc("/profile/cycle", r.cycleHandler.UpdateCycleProfile).Methods(http.MethodPatch)
	user.HandleFunc("/symptom-logs", r.symptomHandler.GetMySymptomLogs).Methods(http.MethodGet)
	user.HandleFunc("/symptom-logs", r.symptomHandler.LogSymptoms).Methods(http.MethodPost)

	// Reminders
	user.HandleFunc("/reminders", r.reminderHandler.GetMyReminders).Methods(http.MethodGet)

	// Doctor routes (protected - doctor only)
	doctor := api.PathPrefix("/doctor").Subrouter()
	doctor.Use(r.authMiddleware.Authenticate)
	doctor.Use(middleware.RequireDoctor)
	doctor.HandleFunc("/appointments", r.appointmentHandler.GetMyDoctorAppointments).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// Doctor management (admin)
	admin.HandleFunc("/doctors", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	admin.HandleFunc("/doctors/{id}/appointments", r.appointmentHandler.GetDoctorAppointments).Methods(http.MethodGet)

	// Symptom catalogue management (admin)
	admin.HandleFunc("/symptoms", r.symptomHandler.CreateSymptom).Methods(http.MethodPost)
	admin.HandleFunc("/symptoms/{id}", r.symptomHandler.UpdateSymptom).Methods(http.MethodPut)
	admin.HandleFunc("/symptoms/{id}", r.symptomHandler.DeleteSymptom).Methods(http.MethodDelete)
	admin.HandleFunc("/menstrual-flows", r.symptomHandler.CreateMenstrualFlow).Methods(http.MethodPost)
	admin.HandleFunc("/menstrual-flows/{id}", r.symptomHandler.UpdateMenstrualFlow).Methods(http.MethodPut)
	admin.HandleFunc("/menstrual-flows/{id}", r.symptomHandler.DeleteMenstrualFlow).Methods(http.MethodDelete)

	// Audit trail (admin)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.SearchAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
