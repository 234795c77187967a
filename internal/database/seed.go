package database

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/tyforge/tyforge-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DemoEmail is the account seeded for local testing and demos.
const DemoEmail = "test@tyforge.local"

const demoPassword = "test123456"

var seedPlans = []models.Plan{
	{ID: "basic_plan", Name: "Basic Plan", Description: "Perfect for simple projects", Price: 5000,
		Features: "Synopsis writing,Basic support,1 project", BlogIncluded: false, MaxProjects: 1, SupportLevel: "Basic"},
	{ID: "standard_plan", Name: "Standard Plan", Description: "Most popular choice", Price: 12000,
		Features: "Full project development,Standard support,3 projects,Blog included", BlogIncluded: true, MaxProjects: 3, SupportLevel: "Standard"},
	{ID: "premium_plan", Name: "Premium Plan", Description: "Complete solution with premium features", Price: 25000,
		Features: "Complete project suite,Premium support,Unlimited projects,Blog included,Priority delivery", BlogIncluded: true, MaxProjects: -1, SupportLevel: "Premium"},
}

var seedServices = []models.Service{
	{ID: "synopsis_writing", Name: "Synopsis Writing", Description: "Professional synopsis writing service", Price: 2000, Category: "Writing"},
	{ID: "project_development", Name: "Project Development", Description: "Complete project development", Price: 8000, Category: "Development"},
	{ID: "blog_writing", Name: "Blog Writing", Description: "Technical blog writing for your project", Price: 1500, Category: "Content", IsAddon: true},
	{ID: "documentation", Name: "Documentation", Description: "Complete project documentation", Price: 1000, Category: "Documentation"},
	{ID: "presentation", Name: "Presentation", Description: "Project presentation preparation", Price: 800, Category: "Presentation"},
	{ID: "code_review", Name: "Code Review", Description: "Professional code review service", Price: 1200, Category: "Review"},
}

// Seed inserts the fixed plans, services and demo account. Every row is gated
// by an existence check, so calling it on each start never duplicates data.
func Seed(db *gorm.DB) error {
	for _, plan := range seedPlans {
		var existing models.Plan
		err := db.First(&existing, "id = ?", plan.ID).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := db.Create(&plan).Error; err != nil {
			return err
		}
	}

	for _, svc := range seedServices {
		var existing models.Service
		err := db.First(&existing, "id = ?", svc.ID).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := db.Create(&svc).Error; err != nil {
			return err
		}
	}

	return seedDemoUser(db)
}

func seedDemoUser(db *gorm.DB) error {
	var user models.User
	err := db.First(&user, "email = ?", DemoEmail).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hash, hashErr := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
		if hashErr != nil {
			return hashErr
		}
		planID := "premium_plan"
		user = models.User{
			ID:                  uuid.New(),
			Email:               DemoEmail,
			Password:            string(hash),
			Name:                "Test User",
			Phone:               "+91 9876543210",
			IsAdmin:             true,
			SignupStep:          models.StepCompleted,
			SelectedPlanID:      &planID,
			HasSynopsis:         true,
			OnboardingCompleted: true,
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
		slog.Info("seeded demo user", "email", DemoEmail)
	} else if err != nil {
		return err
	}

	// Demo history rows, one of each kind.
	var count int64
	db.Model(&models.Order{}).Where("user_id = ?", user.ID).Count(&count)
	if count == 0 {
		if err := db.Create(&models.Order{
			ID: uuid.New(), UserID: user.ID,
			ServiceType: "Full Stack Project", Amount: 12000, Status: "Completed",
		}).Error; err != nil {
			return err
		}
	}

	db.Model(&models.Project{}).Where("user_id = ?", user.ID).Count(&count)
	if count == 0 {
		if err := db.Create(&models.Project{
			ID: uuid.New(), UserID: user.ID,
			Name: "E-commerce Platform", Type: "Web App", Status: "Approved",
			FilePath: "uploads/projects/test.zip",
		}).Error; err != nil {
			return err
		}
	}

	db.Model(&models.Synopsis{}).Where("user_id = ?", user.ID).Count(&count)
	if count == 0 {
		if err := db.Create(&models.Synopsis{
			ID: uuid.New(), UserID: user.ID,
			FileName: "uploads/synopsis/test.pdf", OriginalName: "test-synopsis.pdf", Status: "Approved",
		}).Error; err != nil {
			return err
		}
	}

	db.Model(&models.Meeting{}).Where("user_id = ?", user.ID).Count(&count)
	if count == 0 {
		if err := db.Create(&models.Meeting{
			ID: uuid.New(), UserID: user.ID,
			ScheduledAt: time.Now(), Status: "Scheduled", Notes: "Initial consultation",
		}).Error; err != nil {
			return err
		}
	}

	return nil
}
