package repository

import (
	"github.com/AndikaPrasetya/NadaMusik/app/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByActivationToken(token string) (*models.User, error)
	Update(user *models.User) error
	Delete(id uint) error
	List(offset, limit int) ([]models.User, error)
	Count() (int64, error)
	Search(query string) ([]models.User, error)
}

// MentorRepository defines the interface for mentor-related operations
type MentorRepository interface {
	Create(mentor *models.Mentor) error
	GetByID(id uint) (*models.Mentor, error)
	GetAll() ([]models.Mentor, error)
	Update(mentor *models.Mentor) error
	Delete(id uint) error
}

// CourseRepository defines the interface for course-related operations
type CourseRepository interface {
	Create(course *models.Course) error
	GetByID(id uint) (*models.Course, error)
	GetAll() ([]models.Course, error)
	GetOpen() ([]models.Course, error)
	Update(course *models.Course) error
	Delete(id uint) error
	Count() (int64, error)
}

// EnrollmentRepository defines the interface for enrollment operations
type EnrollmentRepository interface {
	Create(enrollment *models.Enrollment) error
	GetByID(id uint) (*models.Enrollment, error)
	GetByUserID(userID uint) ([]models.Enrollment, error)
	GetByCourseID(courseID uint) ([]models.Enrollment, error)
	HasOpenEnrollment(userID, courseID uint) (bool, error)
	Update(enrollment *models.Enrollment) error
	List(offset, limit int) ([]models.Enrollment, error)
}

// BillRepository defines the interface for bill queries used by page
// controllers. Billing state transitions live in the billing service, not
// here.
type BillRepository interface {
	GetByID(id string) (*models.Bill, error)
	GetByUserID(userID uint) ([]models.Bill, error)
	GetByStatus(status string, offset, limit int) ([]models.Bill, error)
	List(offset, limit int) ([]models.Bill, error)
	Count() (int64, error)
	Create(bill *models.Bill) error
}

// ScheduleRepository defines the interface for lesson-slot operations
type ScheduleRepository interface {
	Create(schedule *models.Schedule) error
	GetByID(id uint) (*models.Schedule, error)
	GetByUserID(userID uint) ([]models.Schedule, error)
	GetByCourseID(courseID uint) ([]models.Schedule, error)
	GetByMentorID(mentorID uint) ([]models.Schedule, error)
	Update(schedule *models.Schedule) error
	Delete(id uint) error
}

// PracticeVideoRepository defines the interface for practice-video metadata
type PracticeVideoRepository interface {
	Create(video *models.PracticeVideo) error
	GetByID(id uint) (*models.PracticeVideo, error)
	GetByCourseID(courseID uint) ([]models.PracticeVideo, error)
	Update(video *models.PracticeVideo) error
	Delete(id uint) error
}

// Repositories struct holds all repository instances
type Repositories struct {
	User       UserRepository
	Mentor     MentorRepository
	Course     CourseRepository
	Enrollment EnrollmentRepository
	Bill       BillRepository
	Schedule   ScheduleRepository
	Video      PracticeVideoRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:       NewUserRepository(db),
		Mentor:     NewMentorRepository(db),
		Course:     NewCourseRepository(db),
		Enrollment: NewEnrollmentRepository(db),
		Bill:       NewBillRepository(db),
		Schedule:   NewScheduleRepository(db),
		Video:      NewPracticeVideoRepository(db),
	}
}
