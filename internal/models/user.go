package models

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Name         string         `gorm:"not null" json:"name"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
}

// PersonalInfo is the contact block of a jobseeker profile.
type PersonalInfo struct {
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	LinkedInURL  string `json:"linkedin_url,omitempty"`
	PortfolioURL string `json:"portfolio_url,omitempty"`
	Location     string `json:"location"`
}

func (p PersonalInfo) Value() (driver.Value, error)  { return jsonbValue(p) }
func (p *PersonalInfo) Scan(value interface{}) error { return jsonbScan(value, p) }

// Experience is one work history entry. Dates use the YYYY-MM format;
// "Present" is allowed as an end date.
type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
}

type ExperienceList []Experience

func (l ExperienceList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return jsonbValue(l)
}

func (l *ExperienceList) Scan(value interface{}) error { return jsonbScan(value, l) }

type Education struct {
	Degree         string `json:"degree"`
	School         string `json:"school"`
	GraduationYear string `json:"graduation_year"`
}

type EducationList []Education

func (l EducationList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return jsonbValue(l)
}

func (l *EducationList) Scan(value interface{}) error { return jsonbScan(value, l) }

// UserPreferences captures the search preferences used when evaluating postings.
type UserPreferences struct {
	MinSalary             *int   `json:"min_salary,omitempty"`
	MaxSalary             *int   `json:"max_salary,omitempty"`
	WorkArrangement       string `json:"work_arrangement"`
	WillingnessToRelocate bool   `json:"willingness_to_relocate"`
}

func (p UserPreferences) Value() (driver.Value, error)  { return jsonbValue(p) }
func (p *UserPreferences) Scan(value interface{}) error { return jsonbScan(value, p) }

// UserProfile is the jobseeker document behind the profile editor. Nested
// documents are stored as JSONB and replaced wholesale on update, so callers
// send complete nested structures rather than partial ones.
type UserProfile struct {
	ID             uuid.UUID        `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID         uuid.UUID        `gorm:"type:varchar(36);not null;uniqueIndex" json:"user_id"`
	PersonalInfo   PersonalInfo     `gorm:"type:jsonb" json:"personal_info"`
	Experience     ExperienceList   `gorm:"type:jsonb" json:"experience"`
	Education      EducationList    `gorm:"type:jsonb" json:"education"`
	Skills         JSONBStringArray `gorm:"type:jsonb" json:"skills"`
	Certifications JSONBStringArray `gorm:"type:jsonb" json:"certifications"`
	Preferences    UserPreferences  `gorm:"type:jsonb" json:"preferences"`
	ResumeFilePath string           `gorm:"size:255" json:"resume_file_path,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
	DeletedAt      gorm.DeletedAt   `gorm:"index" json:"-"`
}

// DefaultWorkArrangement applies when a profile is created without preferences.
const DefaultWorkArrangement = "hybrid"
