package service

import (
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/vesto-learn/vesto-api/internal/model"
	"github.com/vesto-learn/vesto-api/internal/repository"
)

// ProgressService owns the per-(user, module) bookkeeping recomputed on every
// graded submission. Concurrent submissions race on the upsert; last write
// wins, which is accepted.
type ProgressService interface {
	Recompute(userID, moduleID string) (*model.UserProgress, error)
	Get(userID, moduleID string) (*model.UserProgress, error)
	// SaveDirect is the direct-write path clients fall back to when the
	// implicit save during grading failed.
	SaveDirect(progress *model.UserProgress) (*model.UserProgress, error)
}

type progressService struct {
	progressRepo repository.ProgressRepository
	answerRepo   repository.AnswerRepository
	questionRepo repository.QuestionRepository
}

func NewProgressService(
	progressRepo repository.ProgressRepository,
	answerRepo repository.AnswerRepository,
	questionRepo repository.QuestionRepository,
) ProgressService {
	return &progressService{
		progressRepo: progressRepo,
		answerRepo:   answerRepo,
		questionRepo: questionRepo,
	}
}

// Recompute derives the progress row from the full answer set and upserts it.
func (s *progressService) Recompute(userID, moduleID string) (*model.UserProgress, error) {
	answers, err := s.answerRepo.FindByUserAndModule(userID, moduleID)
	if err != nil {
		return nil, fmt.Errorf("load answers for progress: %w", err)
	}
	totalQuestions, err := s.questionRepo.CountByModule(moduleID)
	if err != nil {
		return nil, fmt.Errorf("count module questions: %w", err)
	}

	existing, err := s.progressRepo.FindByUserAndModule(userID, moduleID)
	if err != nil {
		return nil, fmt.Errorf("load existing progress: %w", err)
	}

	now := time.Now()
	progress := summarizeAnswers(answers, int(totalQuestions))
	progress.UserID = userID
	progress.ModuleID = moduleID
	progress.LastAccessedAt = now

	if existing != nil && existing.StartedAt != nil {
		progress.StartedAt = existing.StartedAt
	} else {
		progress.StartedAt = &now
	}
	if progress.Status == model.ProgressCompleted {
		if existing != nil && existing.CompletedAt != nil {
			progress.CompletedAt = existing.CompletedAt
		} else {
			progress.CompletedAt = &now
		}
	}

	if err := s.progressRepo.Upsert(progress); err != nil {
		return nil, fmt.Errorf("upsert progress: %w", err)
	}
	log.Info().
		Str("user_id", userID).
		Str("module_id", moduleID).
		Int("completion", progress.CompletionPercentage).
		Str("status", progress.Status).
		Msg("Progress recomputed")
	return progress, nil
}

func (s *progressService) Get(userID, moduleID string) (*model.UserProgress, error) {
	return s.progressRepo.FindByUserAndModule(userID, moduleID)
}

func (s *progressService) SaveDirect(progress *model.UserProgress) (*model.UserProgress, error) {
	progress.LastAccessedAt = time.Now()
	progress.Status = statusForPercentage(progress.CompletionPercentage)
	if err := s.progressRepo.Upsert(progress); err != nil {
		return nil, fmt.Errorf("direct progress save: %w", err)
	}
	return progress, nil
}

// summarizeAnswers reduces the answer history to counts, completion and the
// average written score. Only the latest submission per question counts;
// MCQ answers (no AI score) feed the correct-count but not the average.
func summarizeAnswers(answers []model.UserAnswer, totalQuestions int) *model.UserProgress {
	latest := make(map[uint]*model.UserAnswer)
	for i := range answers {
		a := &answers[i]
		if a.GradedAt == nil || a.QuestionID == nil {
			continue
		}
		// answers arrive ordered newest first; keep the first seen per question
		if _, seen := latest[*a.QuestionID]; !seen {
			latest[*a.QuestionID] = a
		}
	}

	gradedCount := len(latest)
	correctCount := 0
	scoreSum := 0.0
	scoredCount := 0
	for _, a := range latest {
		if a.IsCorrect != nil && *a.IsCorrect {
			correctCount++
		}
		if a.AIScore != nil {
			scoreSum += *a.AIScore
			scoredCount++
		}
	}

	averageScore := 0.0
	if scoredCount > 0 {
		averageScore = scoreSum / float64(scoredCount)
	}

	percentage := computeCompletion(gradedCount, totalQuestions)
	return &model.UserProgress{
		Status:               statusForPercentage(percentage),
		CompletionPercentage: percentage,
		TotalQuestions:       totalQuestions,
		CorrectAnswers:       correctCount,
		AverageScore:         averageScore,
	}
}

// computeCompletion is min(100, round(100*graded/total)), with an explicit
// override forcing exactly 100 when every question is graded so rounding can
// never report 99 or 101 at completion.
func computeCompletion(graded, total int) int {
	if total <= 0 || graded <= 0 {
		return 0
	}
	if graded >= total {
		return 100
	}
	pct := int(math.Round(100 * float64(graded) / float64(total)))
	if pct > 100 {
		pct = 100
	}
	return pct
}

func statusForPercentage(pct int) string {
	switch {
	case pct <= 0:
		return model.ProgressNotStarted
	case pct >= 100:
		return model.ProgressCompleted
	default:
		return model.ProgressInProgress
	}
}
