package repository

import (
	"context"

	"github.com/carelink/carelink/pkg/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.
//
// Get methods return (nil, nil) when no record matches the key. Update and
// Delete do not check for prior existence: touching a missing key affects
// zero rows and reports success.

type UserRepo interface {
	CreateUser(ctx context.Context, u *models.User) (int64, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]models.User, error)
	UpdateUser(ctx context.Context, id int64, u *models.UserUpdate) error
	DeleteUser(ctx context.Context, id int64) error
}

type CaregiverRepo interface {
	CreateCaregiver(ctx context.Context, c *models.Caregiver) error
	GetCaregiver(ctx context.Context, userID int64) (*models.Caregiver, error)
	ListCaregivers(ctx context.Context, limit, offset int) ([]models.Caregiver, error)
	UpdateCaregiver(ctx context.Context, userID int64, c *models.CaregiverUpdate) error
	DeleteCaregiver(ctx context.Context, userID int64) error
}

type MemberRepo interface {
	CreateMember(ctx context.Context, m *models.Member) error
	GetMember(ctx context.Context, userID int64) (*models.Member, error)
	ListMembers(ctx context.Context, limit, offset int) ([]models.Member, error)
	UpdateMember(ctx context.Context, userID int64, m *models.MemberUpdate) error
	DeleteMember(ctx context.Context, userID int64) error
}

type AddressRepo interface {
	CreateAddress(ctx context.Context, a *models.Address) error
	GetAddress(ctx context.Context, memberUserID int64) (*models.Address, error)
	ListAddresses(ctx context.Context, limit, offset int) ([]models.Address, error)
	UpdateAddress(ctx context.Context, memberUserID int64, a *models.AddressUpdate) error
	DeleteAddress(ctx context.Context, memberUserID int64) error
}

type JobRepo interface {
	CreateJob(ctx context.Context, j *models.Job) (int64, error)
	GetJob(ctx context.Context, id int64) (*models.Job, error)
	ListJobs(ctx context.Context, limit, offset int) ([]models.Job, error)
	UpdateJob(ctx context.Context, id int64, j *models.JobUpdate) error
	DeleteJob(ctx context.Context, id int64) error
}

// JobApplicationRepo has no update operation: an application is immutable
// once filed and is withdrawn by deleting it.
type JobApplicationRepo interface {
	CreateJobApplication(ctx context.Context, a *models.JobApplication) error
	GetJobApplication(ctx context.Context, caregiverUserID, jobID int64) (*models.JobApplication, error)
	ListJobApplications(ctx context.Context, limit, offset int) ([]models.JobApplication, error)
	DeleteJobApplication(ctx context.Context, caregiverUserID, jobID int64) error
}

type AppointmentRepo interface {
	CreateAppointment(ctx context.Context, a *models.Appointment) (int64, error)
	GetAppointment(ctx context.Context, id int64) (*models.Appointment, error)
	ListAppointments(ctx context.Context, limit, offset int) ([]models.Appointment, error)
	UpdateAppointment(ctx context.Context, id int64, a *models.AppointmentUpdate) error
	DeleteAppointment(ctx context.Context, id int64) error
}
