package repository

import (
	"sync"

	"gorm.io/gorm"
)

// Factory manages repository instances and ensures they are singletons
type Factory struct {
	db    *gorm.DB
	repos *Repositories
	once  sync.Once
}

// NewFactory creates a new repository factory
func NewFactory(db *gorm.DB) *Factory {
	return &Factory{
		db: db,
	}
}

// GetRepositories returns a singleton instance of all repositories
func (f *Factory) GetRepositories() *Repositories {
	f.once.Do(func() {
		f.repos = NewRepositories(f.db)
	})
	return f.repos
}

// GetUserRepository returns the user repository instance
func (f *Factory) GetUserRepository() UserRepository {
	return f.GetRepositories().User
}

// GetMentorRepository returns the mentor repository instance
func (f *Factory) GetMentorRepository() MentorRepository {
	return f.GetRepositories().Mentor
}

// GetCourseRepository returns the course repository instance
func (f *Factory) GetCourseRepository() CourseRepository {
	return f.GetRepositories().Course
}

// GetEnrollmentRepository returns the enrollment repository instance
func (f *Factory) GetEnrollmentRepository() EnrollmentRepository {
	return f.GetRepositories().Enrollment
}

// GetBillRepository returns the bill repository instance
func (f *Factory) GetBillRepository() BillRepository {
	return f.GetRepositories().Bill
}

// GetScheduleRepository returns the schedule repository instance
func (f *Factory) GetScheduleRepository() ScheduleRepository {
	return f.GetRepositories().Schedule
}

// GetVideoRepository returns the practice-video repository instance
func (f *Factory) GetVideoRepository() PracticeVideoRepository {
	return f.GetRepositories().Video
}

// Global factory instance
var globalFactory *Factory
var factoryOnce sync.Once

// InitializeFactory initializes the global repository factory
func InitializeFactory(db *gorm.DB) {
	factoryOnce.Do(func() {
		globalFactory = NewFactory(db)
	})
}

// GetGlobalFactory returns the global repository factory instance
func GetGlobalFactory() *Factory {
	if globalFactory == nil {
		panic("Repository factory not initialized. Call InitializeFactory first.")
	}
	return globalFactory
}

// GetGlobalRepositories returns the global repositories instance
func GetGlobalRepositories() *Repositories {
	return GetGlobalFactory().GetRepositories()
}
