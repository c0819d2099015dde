package main

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/aniketphatak/jobbot/backend/config"
	"github.com/aniketphatak/jobbot/backend/internal/database"
	"github.com/aniketphatak/jobbot/backend/internal/models"
	"github.com/aniketphatak/jobbot/backend/internal/service"
	"github.com/aniketphatak/jobbot/backend/internal/types"
)

// Seeds a demo account with a populated profile, two campaigns, three
// postings and a pair of submitted applications.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	ctx := context.Background()
	if err := seed(ctx, db, cfg.JWTSecret); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("Demo data created")
}

func seed(ctx context.Context, db *gorm.DB, jwtSecret string) error {
	authService := service.NewAuthService(db, jwtSecret)
	profileService := service.NewProfileService(db)
	campaignService := service.NewCampaignService(db)
	jobService := service.NewJobService(db)
	applicationService := service.NewApplicationService(db)

	user, _, err := authService.Register(ctx, "Alex Johnson", "alex.johnson@email.com", "demo-password-1")
	if err != nil {
		return err
	}
	log.Printf("Created user %s", user.ID)

	minSalary, maxSalary := 150000, 250000
	_, err = profileService.UpdateProfile(ctx, user.ID, &types.UpdateProfileRequest{
		PersonalInfo: &models.PersonalInfo{
			FullName:     "Alex Johnson",
			Email:        "alex.johnson@email.com",
			Phone:        "+1 (555) 123-4567",
			LinkedInURL:  "https://linkedin.com/in/alexjohnson",
			PortfolioURL: "https://alexjohnson.dev",
			Location:     "San Francisco, CA",
		},
		Experience: &models.ExperienceList{
			{
				Title:       "Senior Product Manager",
				Company:     "TechCorp",
				StartDate:   "2022-03",
				EndDate:     "present",
				Description: "Led product strategy for core platform serving 10M+ users",
			},
			{
				Title:       "Product Manager",
				Company:     "StartupXYZ",
				StartDate:   "2020-01",
				EndDate:     "2022-02",
				Description: "Launched three major features resulting in 40% user growth",
			},
		},
		Education: &models.EducationList{
			{Degree: "MBA", School: "Stanford Graduate School of Business", GraduationYear: "2020"},
			{Degree: "BS Computer Science", School: "UC Berkeley", GraduationYear: "2016"},
		},
		Skills:         &[]string{"Product Strategy", "Data Analysis", "User Research", "A/B Testing", "SQL", "Python"},
		Certifications: &[]string{"Google Analytics", "Scrum Master"},
		Preferences: &models.UserPreferences{
			MinSalary:       &minSalary,
			MaxSalary:       &maxSalary,
			WorkArrangement: "hybrid",
		},
	})
	if err != nil {
		return err
	}

	techCampaign, err := campaignService.Create(ctx, user.ID, &types.CreateCampaignRequest{
		Name:      "Senior Product Manager - Tech",
		Keywords:  "Product Manager, Senior PM, Product Strategy",
		Companies: "Google, Meta, Apple, Microsoft, Amazon",
		Locations: "San Francisco, Seattle, Remote",
	})
	if err != nil {
		return err
	}
	fintechCampaign, err := campaignService.Create(ctx, user.ID, &types.CreateCampaignRequest{
		Name:      "VP Product - Fintech",
		Keywords:  "VP Product, Head of Product, Product Director",
		Companies: "Stripe, Square, Coinbase, Robinhood",
		Locations: "New York, San Francisco, Remote",
	})
	if err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	jobRequests := []*types.CreateJobRequest{
		{
			CampaignID:    techCampaign.ID.String(),
			Title:         "Senior Product Manager",
			Company:       "Meta",
			Location:      "San Francisco, CA",
			Salary:        "$180k - $220k",
			PostedAt:      now,
			Description:   "Lead product strategy for our core social platform. You'll work with cross-functional teams to drive product decisions that impact billions of users.",
			Requirements:  []string{"5+ years PM experience", "B2C product experience", "Data-driven approach"},
			LinkedInJobID: "meta-spm-123",
			LinkedInURL:   "https://linkedin.com/jobs/meta-spm-123",
		},
		{
			CampaignID:    techCampaign.ID.String(),
			Title:         "Product Manager - Growth",
			Company:       "Stripe",
			Location:      "Remote",
			Salary:        "$160k - $200k",
			PostedAt:      now,
			Description:   "Drive growth initiatives across our payment platform. Lead experiments and optimize conversion funnels.",
			Requirements:  []string{"3+ years PM experience", "Growth/experimentation background", "Technical aptitude"},
			LinkedInJobID: "stripe-pmg-456",
			LinkedInURL:   "https://linkedin.com/jobs/stripe-pmg-456",
		},
		{
			CampaignID:    fintechCampaign.ID.String(),
			Title:         "VP of Product",
			Company:       "Robinhood",
			Location:      "New York, NY",
			Salary:        "$250k - $300k",
			PostedAt:      now,
			Description:   "Lead product organization for our trading platform. Shape the future of democratized finance.",
			Requirements:  []string{"8+ years product leadership", "Fintech experience", "Team management"},
			LinkedInJobID: "robinhood-vp-789",
			LinkedInURL:   "https://linkedin.com/jobs/robinhood-vp-789",
		},
	}

	jobs := make([]*models.Job, 0, len(jobRequests))
	for _, req := range jobRequests {
		job, err := jobService.Create(ctx, req)
		if err != nil {
			return err
		}
		log.Printf("Created job %s at %s", job.Title, job.Company)
		jobs = append(jobs, job)
	}

	for _, job := range jobs[:2] {
		app, err := applicationService.Create(ctx, user.ID, &types.CreateApplicationRequest{
			JobID:                job.ID.String(),
			CampaignID:           job.CampaignID.String(),
			JobTitle:             job.Title,
			Company:              job.Company,
			Salary:               job.Salary,
			CoverLetterGenerated: true,
		})
		if err != nil {
			return err
		}
		if _, err := jobService.MarkApplied(ctx, job.ID); err != nil {
			return err
		}
		log.Printf("Created application %s", app.ID)
	}

	// Backfill realistic rollup counters so the dashboard has something to
	// show out of the box.
	return db.WithContext(ctx).Model(&models.Campaign{}).
		Where("id = ?", techCampaign.ID).
		Updates(map[string]interface{}{
			"applications_submitted": 23,
			"responses":              4,
			"interviews":             2,
		}).Error
}
