package models

import "github.com/shopspring/decimal"

// Domain models matching the database schema in db/migrations/0001_init.sql.
// The *Update variants carry partial records for PUT requests: every field is
// a pointer so the handler can tell "absent" from "set to zero". An update
// writes every column, substituting NULL for absent fields.

type User struct {
	UserID             int64   `json:"user_id" db:"user_id"`
	Email              string  `json:"email" db:"email"`
	GivenName          string  `json:"given_name" db:"given_name"`
	Surname            string  `json:"surname" db:"surname"`
	City               string  `json:"city" db:"city"`
	PhoneNumber        string  `json:"phone_number" db:"phone_number"`
	ProfileDescription *string `json:"profile_description" db:"profile_description"`
	Password           string  `json:"password" db:"password"`
}

type UserUpdate struct {
	Email              *string `json:"email"`
	GivenName          *string `json:"given_name"`
	Surname            *string `json:"surname"`
	City               *string `json:"city"`
	PhoneNumber        *string `json:"phone_number"`
	ProfileDescription *string `json:"profile_description"`
	Password           *string `json:"password"`
}

// Caregiver is a 1:1 extension of User keyed by the user's id.
type Caregiver struct {
	CaregiverUserID int64           `json:"caregiver_user_id" db:"caregiver_user_id"`
	Photo           *string         `json:"photo" db:"photo"`
	Gender          string          `json:"gender" db:"gender"`
	CaregivingType  string          `json:"caregiving_type" db:"caregiving_type"`
	HourlyRate      decimal.Decimal `json:"hourly_rate" db:"hourly_rate"`
}

type CaregiverUpdate struct {
	Photo          *string          `json:"photo"`
	Gender         *string          `json:"gender"`
	CaregivingType *string          `json:"caregiving_type"`
	HourlyRate     *decimal.Decimal `json:"hourly_rate"`
}

// Member is a 1:1 extension of User keyed by the user's id.
type Member struct {
	MemberUserID int64  `json:"member_user_id" db:"member_user_id"`
	HouseRules   string `json:"house_rules" db:"house_rules"`
}

type MemberUpdate struct {
	HouseRules *string `json:"house_rules"`
}

// Address is 1:1 with Member and shares its key.
type Address struct {
	MemberUserID int64  `json:"member_user_id" db:"member_user_id"`
	HouseNumber  string `json:"house_number" db:"house_number"`
	Street       string `json:"street" db:"street"`
	Town         string `json:"town" db:"town"`
}

type AddressUpdate struct {
	HouseNumber *string `json:"house_number"`
	Street      *string `json:"street"`
	Town        *string `json:"town"`
}

type Job struct {
	JobID                  int64   `json:"job_id" db:"job_id"`
	MemberUserID           int64   `json:"member_user_id" db:"member_user_id"`
	RequiredCaregivingType string  `json:"required_caregiving_type" db:"required_caregiving_type"`
	OtherRequirements      *string `json:"other_requirements" db:"other_requirements"`
	DatePosted             Date    `json:"date_posted" db:"date_posted"`
}

type JobUpdate struct {
	MemberUserID           *int64  `json:"member_user_id"`
	RequiredCaregivingType *string `json:"required_caregiving_type"`
	OtherRequirements      *string `json:"other_requirements"`
	DatePosted             *Date   `json:"date_posted"`
}

// JobApplication joins a Caregiver to a Job under a composite key.
type JobApplication struct {
	CaregiverUserID int64 `json:"caregiver_user_id" db:"caregiver_user_id"`
	JobID           int64 `json:"job_id" db:"job_id"`
	DateApplied     Date  `json:"date_applied" db:"date_applied"`
}

type Appointment struct {
	AppointmentID   int64     `json:"appointment_id" db:"appointment_id"`
	CaregiverUserID int64     `json:"caregiver_user_id" db:"caregiver_user_id"`
	MemberUserID    int64     `json:"member_user_id" db:"member_user_id"`
	AppointmentDate Date      `json:"appointment_date" db:"appointment_date"`
	AppointmentTime TimeOfDay `json:"appointment_time" db:"appointment_time"`
	WorkHours       int64     `json:"work_hours" db:"work_hours"`
	Status          string    `json:"status" db:"status"`
}

type AppointmentUpdate struct {
	CaregiverUserID *int64     `json:"caregiver_user_id"`
	MemberUserID    *int64     `json:"member_user_id"`
	AppointmentDate *Date      `json:"appointment_date"`
	AppointmentTime *TimeOfDay `json:"appointment_time"`
	WorkHours       *int64     `json:"work_hours"`
	Status          *string    `json:"status"`
}
