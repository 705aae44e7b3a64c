package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/carelink/carelink/internal/db"
	"github.com/carelink/carelink/internal/repository/sqlite"
)

func SetupRoutes(version, buildTime string, database *db.DB) http.Handler {
	r := mux.NewRouter()

	// Middleware chain. CORS wraps the router itself so preflight OPTIONS
	// requests get answered even when no route matches the method.
	r.Use(LoggingMiddleware)
	r.Use(RecoveryMiddleware)

	// Repository
	repo := sqlite.New(database, logger)

	// Create handlers
	systemHandler := &SystemHandler{}
	usersHandler := NewUsersHandler(repo)
	caregiversHandler := NewCaregiversHandler(repo)
	membersHandler := NewMembersHandler(repo)
	addressesHandler := NewAddressesHandler(repo)
	jobsHandler := NewJobsHandler(repo)
	jobApplicationsHandler := NewJobApplicationsHandler(repo)
	appointmentsHandler := NewAppointmentsHandler(repo)

	// System endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")

	// Users
	r.HandleFunc("/users/", usersHandler.CreateUser).Methods("POST")
	r.HandleFunc("/users/", usersHandler.ListUsers).Methods("GET")
	r.HandleFunc("/users/{user_id}", usersHandler.GetUser).Methods("GET")
	r.HandleFunc("/users/{user_id}", usersHandler.UpdateUser).Methods("PUT")
	r.HandleFunc("/users/{user_id}", usersHandler.DeleteUser).Methods("DELETE")

	// Caregivers
	r.HandleFunc("/caregivers/", caregiversHandler.CreateCaregiver).Methods("POST")
	r.HandleFunc("/caregivers/", caregiversHandler.ListCaregivers).Methods("GET")
	r.HandleFunc("/caregivers/{caregiver_user_id}", caregiversHandler.GetCaregiver).Methods("GET")
	r.HandleFunc("/caregivers/{caregiver_user_id}", caregiversHandler.UpdateCaregiver).Methods("PUT")
	r.HandleFunc("/caregivers/{caregiver_user_id}", caregiversHandler.DeleteCaregiver).Methods("DELETE")

	// Members
	r.HandleFunc("/members/", membersHandler.CreateMember).Methods("POST")
	r.HandleFunc("/members/", membersHandler.ListMembers).Methods("GET")
	r.HandleFunc("/members/{member_user_id}", membersHandler.GetMember).Methods("GET")
	r.HandleFunc("/members/{member_user_id}", membersHandler.UpdateMember).Methods("PUT")
	r.HandleFunc("/members/{member_user_id}", membersHandler.DeleteMember).Methods("DELETE")

	// Address
	r.HandleFunc("/address/", addressesHandler.CreateAddress).Methods("POST")
	r.HandleFunc("/address/", addressesHandler.ListAddresses).Methods("GET")
	r.HandleFunc("/address/{member_user_id}", addressesHandler.GetAddress).Methods("GET")
	r.HandleFunc("/address/{member_user_id}", addressesHandler.UpdateAddress).Methods("PUT")
	r.HandleFunc("/address/{member_user_id}", addressesHandler.DeleteAddress).Methods("DELETE")

	// Jobs
	r.HandleFunc("/jobs/", jobsHandler.CreateJob).Methods("POST")
	r.HandleFunc("/jobs/", jobsHandler.ListJobs).Methods("GET")
	r.HandleFunc("/jobs/{job_id}", jobsHandler.GetJob).Methods("GET")
	r.HandleFunc("/jobs/{job_id}", jobsHandler.UpdateJob).Methods("PUT")
	r.HandleFunc("/jobs/{job_id}", jobsHandler.DeleteJob).Methods("DELETE")

	// Job applications (composite key, no update)
	r.HandleFunc("/job_applications/", jobApplicationsHandler.CreateJobApplication).Methods("POST")
	r.HandleFunc("/job_applications/", jobApplicationsHandler.ListJobApplications).Methods("GET")
	r.HandleFunc("/job_applications/{caregiver_user_id}/{job_id}", jobApplicationsHandler.GetJobApplication).Methods("GET")
	r.HandleFunc("/job_applications/{caregiver_user_id}/{job_id}", jobApplicationsHandler.DeleteJobApplication).Methods("DELETE")

	// Appointments
	r.HandleFunc("/appointments/", appointmentsHandler.CreateAppointment).Methods("POST")
	r.HandleFunc("/appointments/", appointmentsHandler.ListAppointments).Methods("GET")
	r.HandleFunc("/appointments/{appointment_id}", appointmentsHandler.GetAppointment).Methods("GET")
	r.HandleFunc("/appointments/{appointment_id}", appointmentsHandler.UpdateAppointment).Methods("PUT")
	r.HandleFunc("/appointments/{appointment_id}", appointmentsHandler.DeleteAppointment).Methods("DELETE")

	return CORSMiddleware(r)
}
