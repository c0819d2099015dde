package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aniketphatak/jobbot/backend/internal/models"
	"github.com/aniketphatak/jobbot/backend/internal/types"
)

const (
	defaultProvider       = models.ProviderOpenAI
	defaultOpenAIModel    = "gpt-4o"
	defaultAnthropicModel = "claude-sonnet-4-20250514"
)

// Completer is the narrow surface a content generation provider exposes.
type Completer interface {
	Complete(ctx context.Context, model, systemMessage, userPrompt string) (string, error)
}

// ProviderModels describes one provider's model catalog.
type ProviderModels struct {
	Provider    string   `json:"provider"`
	Models      []string `json:"models"`
	Recommended string   `json:"recommended"`
}

// CoverLetterResult is the typed payload of a cover letter generation.
type CoverLetterResult struct {
	CoverLetter string    `json:"cover_letter"`
	Provider    string    `json:"provider"`
	Model       string    `json:"model"`
	GeneratedAt time.Time `json:"generated_at"`
}

// ResumeSummaryResult is the typed payload of a resume summary generation.
type ResumeSummaryResult struct {
	ResumeSummary string    `json:"resume_summary"`
	Provider      string    `json:"provider"`
	Model         string    `json:"model"`
	GeneratedAt   time.Time `json:"generated_at"`
}

// LinkedInMessageResult is the typed payload of a LinkedIn message generation.
type LinkedInMessageResult struct {
	LinkedInMessage string    `json:"linkedin_message"`
	Provider        string    `json:"provider"`
	Model           string    `json:"model"`
	GeneratedAt     time.Time `json:"generated_at"`
}

// AIService generates application content through the configured providers
// and keeps a history of what was produced.
type AIService struct {
	db        *gorm.DB
	openai    Completer
	anthropic Completer
}

var _ IAIService = (*AIService)(nil)

func NewAIService(db *gorm.DB, openai, anthropic Completer) *AIService {
	return &AIService{db: db, openai: openai, anthropic: anthropic}
}

// Models returns the static provider and model catalog.
func (s *AIService) Models() []ProviderModels {
	return []ProviderModels{
		{
			Provider:    models.ProviderOpenAI,
			Models:      []string{"gpt-4o", "gpt-4o-mini", "gpt-4.1", "gpt-4.1-mini"},
			Recommended: defaultOpenAIModel,
		},
		{
			Provider:    models.ProviderAnthropic,
			Models:      []string{"claude-sonnet-4-20250514", "claude-3-5-sonnet-20241022", "claude-3-5-haiku-20241022"},
			Recommended: defaultAnthropicModel,
		},
	}
}

// GetPreference returns the user's saved provider and model, falling back to
// the defaults when nothing was saved yet.
func (s *AIService) GetPreference(ctx context.Context, userID uuid.UUID) (*models.AIPreference, error) {
	var pref models.AIPreference
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.AIPreference{
			UserID:   userID,
			Provider: defaultProvider,
			Model:    defaultOpenAIModel,
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

// SavePreference upserts the user's provider and model choice.
func (s *AIService) SavePreference(ctx context.Context, userID uuid.UUID, provider, model string) (*models.AIPreference, error) {
	switch provider {
	case models.ProviderOpenAI, models.ProviderAnthropic:
	default:
		return nil, NewValidationError("unsupported provider: %s", provider)
	}
	if strings.TrimSpace(model) == "" {
		return nil, NewValidationError("model is required")
	}

	var pref models.AIPreference
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		pref = models.AIPreference{
			ID:       uuid.New(),
			UserID:   userID,
			Provider: provider,
			Model:    model,
		}
		if err := s.db.WithContext(ctx).Create(&pref).Error; err != nil {
			return nil, err
		}
		return &pref, nil
	}
	if err != nil {
		return nil, err
	}

	pref.Provider = provider
	pref.Model = model
	if err := s.db.WithContext(ctx).Save(&pref).Error; err != nil {
		return nil, err
	}
	return &pref, nil
}

// GenerateCoverLetter produces a tailored cover letter for one posting.
func (s *AIService) GenerateCoverLetter(ctx context.Context, userID uuid.UUID, req *types.GenerateRequest) (*CoverLetterResult, error) {
	profile, job, provider, model, err := s.prepare(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	systemMessage := `You are an expert career counselor and professional writer specializing in creating compelling cover letters. Your task is to create personalized, professional cover letters that highlight relevant experience and demonstrate genuine interest in the position.

Guidelines:
- Keep it concise (300-400 words)
- Use a professional yet engaging tone
- Highlight specific achievements and experiences that match the job requirements
- Show genuine interest in the company and role
- Include a strong opening and closing
- Avoid generic phrases and cliches
- Make it ATS-friendly with relevant keywords from the job description`

	userPrompt := fmt.Sprintf(`Please create a professional cover letter based on the following information:

CANDIDATE PROFILE:
Name: %s

EXPERIENCE:
%s

SKILLS:
%s

EDUCATION:
%s

JOB DETAILS:
Company: %s
Position: %s
Location: %s
Job Description: %s
Requirements: %s

Please create a compelling cover letter that specifically addresses this role and company, highlighting the most relevant experience and skills.`,
		candidateName(profile),
		formatExperience(profile.Experience),
		strings.Join(profile.Skills, ", "),
		formatEducation(profile.Education),
		job.Company, job.Title, job.Location, job.Description,
		strings.Join(job.Requirements, ", "))

	content, err := s.complete(ctx, provider, model, systemMessage, userPrompt)
	if err != nil {
		return nil, err
	}

	s.record(ctx, userID, job.ID, models.ContentKindCoverLetter, provider, model, content)

	return &CoverLetterResult{
		CoverLetter: content,
		Provider:    provider,
		Model:       model,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

// GenerateResumeSummary produces a tailored resume summary for one posting.
func (s *AIService) GenerateResumeSummary(ctx context.Context, userID uuid.UUID, req *types.GenerateRequest) (*ResumeSummaryResult, error) {
	profile, job, provider, model, err := s.prepare(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	systemMessage := `You are an expert resume writer and career strategist. Your task is to create compelling, tailored resume summaries that highlight the most relevant qualifications for specific job opportunities.

Guidelines:
- Keep it concise (2-3 sentences, 50-80 words)
- Focus on the most relevant experience and achievements
- Use action words and quantifiable results where possible
- Include relevant keywords from the job description
- Make it ATS-friendly
- Demonstrate clear value proposition`

	topSkills := profile.Skills
	if len(topSkills) > 5 {
		topSkills = topSkills[:5]
	}
	topRequirements := []string(job.Requirements)
	if len(topRequirements) > 3 {
		topRequirements = topRequirements[:3]
	}

	userPrompt := fmt.Sprintf(`Create a tailored resume summary for the following job application:

CANDIDATE BACKGROUND:
Current Experience: %s
Key Skills: %s
Education: %s

TARGET POSITION:
Company: %s
Role: %s
Key Requirements: %s

Create a powerful resume summary that positions this candidate as an ideal fit for this specific role.
Focus on the most relevant qualifications and use keywords from the job posting.`,
		currentRole(profile.Experience),
		strings.Join(topSkills, ", "),
		highestEducation(profile.Education),
		job.Company, job.Title,
		strings.Join(topRequirements, ", "))

	content, err := s.complete(ctx, provider, model, systemMessage, userPrompt)
	if err != nil {
		return nil, err
	}

	s.record(ctx, userID, job.ID, models.ContentKindResumeSummary, provider, model, content)

	return &ResumeSummaryResult{
		ResumeSummary: content,
		Provider:      provider,
		Model:         model,
		GeneratedAt:   time.Now().UTC(),
	}, nil
}

// GenerateLinkedInMessage produces a short outreach message for one posting.
func (s *AIService) GenerateLinkedInMessage(ctx context.Context, userID uuid.UUID, req *types.GenerateRequest) (*LinkedInMessageResult, error) {
	profile, job, provider, model, err := s.prepare(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	systemMessage := `You are an expert at crafting professional LinkedIn messages for job applications. Your task is to create personalized, engaging messages that help candidates stand out while maintaining professionalism.

Guidelines:
- Keep it brief (2-3 sentences, under 100 words)
- Be personable but professional
- Mention specific interest in the company/role
- Highlight one key relevant qualification
- Include a clear call to action
- Avoid being overly salesy or desperate`

	userPrompt := fmt.Sprintf(`Create a professional LinkedIn connection request message for:

SENDER: %s
CURRENT ROLE: %s

TARGET:
Company: %s
Position Applied For: %s

Create a personalized LinkedIn message to send to the hiring manager or recruiter.
The message should express interest in the role and briefly highlight relevant qualifications.`,
		candidateName(profile),
		currentRole(profile.Experience),
		job.Company, job.Title)

	content, err := s.complete(ctx, provider, model, systemMessage, userPrompt)
	if err != nil {
		return nil, err
	}

	s.record(ctx, userID, job.ID, models.ContentKindLinkedInMessage, provider, model, content)

	return &LinkedInMessageResult{
		LinkedInMessage: content,
		Provider:        provider,
		Model:           model,
		GeneratedAt:     time.Now().UTC(),
	}, nil
}

// History returns recent generated content grouped by kind.
func (s *AIService) History(ctx context.Context, userID uuid.UUID, limit int) (map[string][]*models.GeneratedContent, error) {
	if limit <= 0 {
		limit = 20
	}
	var rows []*models.GeneratedContent
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	grouped := map[string][]*models.GeneratedContent{
		models.ContentKindCoverLetter:     {},
		models.ContentKindResumeSummary:   {},
		models.ContentKindLinkedInMessage: {},
	}
	for _, r := range rows {
		grouped[r.Kind] = append(grouped[r.Kind], r)
	}
	return grouped, nil
}

// prepare loads the profile and job behind a generation request and resolves
// the provider and model, consulting the saved preference for anything the
// request leaves blank.
func (s *AIService) prepare(ctx context.Context, userID uuid.UUID, req *types.GenerateRequest) (*models.UserProfile, *models.Job, string, string, error) {
	if strings.TrimSpace(req.JobID) == "" {
		return nil, nil, "", "", NewValidationError("job_id is required")
	}
	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return nil, nil, "", "", NewValidationError("invalid job_id")
	}

	var profile models.UserProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, "", "", &NotFoundError{Entity: "profile", ID: userID.String()}
		}
		return nil, nil, "", "", err
	}

	var job models.Job
	if err := s.db.WithContext(ctx).First(&job, "id = ?", jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, "", "", &NotFoundError{Entity: "job", ID: req.JobID}
		}
		return nil, nil, "", "", err
	}

	provider := req.Provider
	model := req.Model
	if provider == "" || model == "" {
		pref, err := s.GetPreference(ctx, userID)
		if err != nil {
			return nil, nil, "", "", err
		}
		if provider == "" {
			provider = pref.Provider
		}
		if model == "" {
			model = pref.Model
		}
	}

	// An unrecognized provider falls back to the default stack rather than
	// failing the generation.
	switch provider {
	case models.ProviderOpenAI, models.ProviderAnthropic:
	default:
		provider = defaultProvider
		model = defaultOpenAIModel
	}

	return &profile, &job, provider, model, nil
}

func (s *AIService) complete(ctx context.Context, provider, model, systemMessage, userPrompt string) (string, error) {
	switch provider {
	case models.ProviderAnthropic:
		return s.anthropic.Complete(ctx, model, systemMessage, userPrompt)
	default:
		return s.openai.Complete(ctx, model, systemMessage, userPrompt)
	}
}

// record persists a generation for history. A storage failure is logged but
// does not fail the request that produced the content.
func (s *AIService) record(ctx context.Context, userID, jobID uuid.UUID, kind, provider, model, content string) {
	row := models.GeneratedContent{
		ID:       uuid.New(),
		UserID:   userID,
		JobID:    jobID,
		Kind:     kind,
		Provider: provider,
		Model:    model,
		Content:  content,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		log.Printf("[AIService] failed to store generated %s: %v", kind, err)
	}
}

func candidateName(profile *models.UserProfile) string {
	if profile.PersonalInfo.FullName != "" {
		return profile.PersonalInfo.FullName
	}
	return "Candidate"
}

// formatExperience renders the most recent three roles for a prompt.
func formatExperience(experience models.ExperienceList) string {
	if len(experience) > 3 {
		experience = experience[:3]
	}
	lines := make([]string, 0, len(experience))
	for _, exp := range experience {
		lines = append(lines, fmt.Sprintf("- %s at %s (%s - %s): %s",
			exp.Title, exp.Company, exp.StartDate, exp.EndDate, exp.Description))
	}
	return strings.Join(lines, "\n")
}

func formatEducation(education models.EducationList) string {
	lines := make([]string, 0, len(education))
	for _, edu := range education {
		lines = append(lines, fmt.Sprintf("- %s from %s (%s)", edu.Degree, edu.School, edu.GraduationYear))
	}
	return strings.Join(lines, "\n")
}

func currentRole(experience models.ExperienceList) string {
	if len(experience) > 0 {
		return fmt.Sprintf("%s at %s", experience[0].Title, experience[0].Company)
	}
	return "Professional"
}

func highestEducation(education models.EducationList) string {
	if len(education) > 0 {
		return fmt.Sprintf("%s from %s", education[0].Degree, education[0].School)
	}
	return "Education background"
}
