// File: internal/user/model.go
package user

import (
	"time"

	"revert_connect_backend/internal/common"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// User is a community member. Mentors are users with IsMentor set.
type User struct {
	common.BaseModel
	FirebaseUID       *string        `gorm:"type:varchar(128);uniqueIndex" json:"-"`
	Email             string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	FullName          string         `gorm:"type:varchar(200)" json:"full_name"`
	DisplayName       string         `gorm:"type:varchar(100)" json:"display_name"`
	Gender            string         `gorm:"type:varchar(10);index" json:"gender"`
	CountryOfOrigin   string         `gorm:"type:varchar(100)" json:"country_of_origin"`
	Location          string         `gorm:"type:varchar(200)" json:"location"`
	Bio               string         `gorm:"type:text" json:"bio"`
	ConversionDate    *time.Time     `gorm:"type:date" json:"conversion_date,omitempty"`
	Interests         pq.StringArray `gorm:"type:text" json:"interests"`
	IsMentor          bool           `gorm:"not null;default:false;index" json:"is_mentor"`
	MentorSpecialties pq.StringArray `gorm:"type:text" json:"mentor_specialties"`
	ProfileImageURL   string         `gorm:"type:text" json:"profile_image_url"`
}

// TableName specifies the table name for the User model.
func (User) TableName() string {
	return "users"
}

// IsComplete reports whether the profile carries the three fields every screen but Profile requires.
func (u *User) IsComplete() bool {
	return u.DisplayName != "" && u.Gender != "" && u.CountryOfOrigin != ""
}

// PublicName is the name shown on records the user authors: display name, then full name, then fallback.
func (u *User) PublicName(fallback string) string {
	if u == nil {
		return fallback
	}
	if u.DisplayName != "" {
		return u.DisplayName
	}
	if u.FullName != "" {
		return u.FullName
	}
	return fallback
}

// ConversionYear returns the calendar year of the conversion date, or "" when unset.
func (u *User) ConversionYear() string {
	if u.ConversionDate == nil {
		return ""
	}
	return u.ConversionDate.Format("2006")
}

// YearsSinceConversion is the difference in calendar years between now and the conversion date.
func (u *User) YearsSinceConversion(now time.Time) int {
	if u.ConversionDate == nil {
		return 0
	}
	return now.Year() - u.ConversionDate.Year()
}

// Query selects a user population from the store.
type Query struct {
	IsMentor *bool
	Gender   string
	Sort     common.SortKey
}

// CacheKey identifies the population in the collection cache.
func (q Query) CacheKey() string {
	mentor := "any"
	if q.IsMentor != nil {
		if *q.IsMentor {
			mentor = "true"
		} else {
			mentor = "false"
		}
	}
	return CacheKeyPrefix + "mentor=" + mentor + ":gender=" + q.Gender + ":sort=" + string(q.Sort)
}

// ValidateSort rejects sort keys the store cannot order by.
func (q Query) ValidateSort() error {
	_, err := q.Sort.OrderClause(sortColumns)
	return err
}

// CacheKeyPrefix groups every cached user population.
const CacheKeyPrefix = "users:"

// --- DTOs (Data Transfer Objects) for API requests/responses ---

// UpdateProfileRequest is the profile form. Display name, gender and country are required on save.
type UpdateProfileRequest struct {
	DisplayName       string   `json:"display_name" binding:"required,max=100"`
	Gender            string   `json:"gender" binding:"required,oneof=male female"`
	CountryOfOrigin   string   `json:"country_of_origin" binding:"required,max=100"`
	Location          string   `json:"location" binding:"omitempty,max=200"`
	Bio               string   `json:"bio" binding:"omitempty,max=2000"`
	ConversionDate    string   `json:"conversion_date" binding:"omitempty,datetime=2006-01-02"`
	Interests         []string `json:"interests" binding:"omitempty,max=30,dive,max=50"`
	IsMentor          bool     `json:"is_mentor"`
	MentorSpecialties []string `json:"mentor_specialties" binding:"omitempty,max=20,dive,max=50"`
	ProfileImageURL   string   `json:"profile_image_url" binding:"omitempty,max=500"`
}

// UserResponse is the profile as returned to its owner.
type UserResponse struct {
	ID                   uuid.UUID  `json:"id"`
	Email                string     `json:"email"`
	FullName             string     `json:"full_name"`
	DisplayName          string     `json:"display_name"`
	Gender               string     `json:"gender"`
	CountryOfOrigin      string     `json:"country_of_origin"`
	Location             string     `json:"location"`
	Bio                  string     `json:"bio"`
	ConversionDate       *time.Time `json:"conversion_date,omitempty"`
	Interests            []string   `json:"interests"`
	IsMentor             bool       `json:"is_mentor"`
	MentorSpecialties    []string   `json:"mentor_specialties"`
	ProfileImageURL      string     `json:"profile_image_url"`
	IsComplete           bool       `json:"is_complete"`
	YearsSinceConversion int        `json:"years_since_conversion"`
	CreatedAt            time.Time  `json:"created_date"`
	UpdatedAt            time.Time  `json:"updated_date"`
}

// ToUserResponse converts a User model to a UserResponse DTO.
func ToUserResponse(u *User, now time.Time) UserResponse {
	return UserResponse{
		ID:                   u.ID,
		Email:                u.Email,
		FullName:             u.FullName,
		DisplayName:          u.DisplayName,
		Gender:               u.Gender,
		CountryOfOrigin:      u.CountryOfOrigin,
		Location:             u.Location,
		Bio:                  u.Bio,
		ConversionDate:       u.ConversionDate,
		Interests:            nonNil(u.Interests),
		IsMentor:             u.IsMentor,
		MentorSpecialties:    nonNil(u.MentorSpecialties),
		ProfileImageURL:      u.ProfileImageURL,
		IsComplete:           u.IsComplete(),
		YearsSinceConversion: u.YearsSinceConversion(now),
		CreatedAt:            u.CreatedAt,
		UpdatedAt:            u.UpdatedAt,
	}
}

// DirectoryCard is the public subset of a profile shown on the Mentors and Meet Reverts screens.
// Email is deliberately absent.
type DirectoryCard struct {
	ID                   uuid.UUID `json:"id"`
	DisplayName          string    `json:"display_name"`
	Gender               string    `json:"gender"`
	CountryOfOrigin      string    `json:"country_of_origin"`
	Location             string    `json:"location"`
	Bio                  string    `json:"bio"`
	ConversionYear       string    `json:"conversion_year,omitempty"`
	YearsSinceConversion int       `json:"years_since_conversion"`
	Interests            []string  `json:"interests"`
	IsMentor             bool      `json:"is_mentor"`
	MentorSpecialties    []string  `json:"mentor_specialties"`
	ProfileImageURL      string    `json:"profile_image_url"`
}

// ToDirectoryCard converts a User into its public card.
func ToDirectoryCard(u User, now time.Time) DirectoryCard {
	return DirectoryCard{
		ID:                   u.ID,
		DisplayName:          u.PublicName("Community Member"),
		Gender:               u.Gender,
		CountryOfOrigin:      u.CountryOfOrigin,
		Location:             u.Location,
		Bio:                  u.Bio,
		ConversionYear:       u.ConversionYear(),
		YearsSinceConversion: u.YearsSinceConversion(now),
		Interests:            nonNil(u.Interests),
		IsMentor:             u.IsMentor,
		MentorSpecialties:    nonNil(u.MentorSpecialties),
		ProfileImageURL:      u.ProfileImageURL,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
