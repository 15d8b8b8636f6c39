package service

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"interview-prep-be/internal/dto"
	"interview-prep-be/internal/pkg/logger"
	"interview-prep-be/internal/repository/specification"
	"interview-prep-be/internal/repository/unitofwork"
	"interview-prep-be/pkg/events"
	"interview-prep-be/pkg/interview"
	pkgNats "interview-prep-be/pkg/nats"
)

type IInterviewService interface {
	StartSession(ctx context.Context, userId uuid.UUID, req *dto.StartSessionRequest) (*dto.SessionResponse, error)
	GetSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) (*dto.SessionDetailResponse, error)
	NextQuestion(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) (*dto.QuestionResponse, error)
	SubmitAnswer(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID, req *dto.SubmitAnswerRequest) (*dto.SessionResponse, error)
	SubmitLevelFeedback(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) (*dto.LevelSummaryResponse, error)
	AdvanceLevel(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) (*dto.AdvanceLevelResponse, error)
}

type interviewService struct {
	store            interview.SessionStore
	provider         interview.QuestionProvider
	locker           *interview.SessionLocker
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	auditPublisher   *pkgNats.Publisher
	logger           logger.ILogger
}

func NewInterviewService(
	store interview.SessionStore,
	provider interview.QuestionProvider,
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	auditPublisher *pkgNats.Publisher,
	log logger.ILogger,
) IInterviewService {
	return &interviewService{
		store:            store,
		provider:         provider,
		locker:           interview.NewSessionLocker(),
		uowFactory:       uowFactory,
		publisherService: publisherService,
		auditPublisher:   auditPublisher,
		logger:           log,
	}
}

func (s *interviewService) StartSession(ctx context.Context, userId uuid.UUID, req *dto.StartSessionRequest) (*dto.SessionResponse, error) {
	ictx := interview.Context{
		Role:       req.Role,
		Company:    req.Company,
		Experience: req.Experience,
		Skills:     req.Skills,
		FocusAreas: req.FocusAreas,
	}

	// Fill gaps from the candidate profile before validating.
	if ictx.Role == "" || ictx.Experience == "" || len(ictx.Skills) == 0 {
		uow := s.uowFactory.NewUnitOfWork(ctx)
		profile, err := uow.ProfileRepository().FindOne(ctx, specification.UserOwnedBy{UserID: userId})
		if err != nil {
			return nil, err
		}
		if profile != nil {
			if ictx.Role == "" {
				ictx.Role = profile.TargetRole
			}
			if ictx.Company == "" {
				ictx.Company = profile.TargetCompany
			}
			if ictx.Experience == "" {
				ictx.Experience = profile.ExperienceLevel
			}
			if len(ictx.Skills) == 0 {
				ictx.Skills = profile.Skills
			}
			if len(ictx.FocusAreas) == 0 {
				ictx.FocusAreas = profile.FocusAreas
			}
		}
	}

	if ictx.Role == "" {
		return nil, interview.NewValidationError("role is required")
	}
	if ictx.Experience == "" {
		return nil, interview.NewValidationError("experience is required")
	}
	if len(ictx.Skills) == 0 {
		return nil, interview.NewValidationError("at least one skill is required")
	}

	session := interview.NewSession(userId, ictx)
	if err := s.store.Put(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("InterviewService", "Session started", map[string]interface{}{
		"session_id": session.Id,
		"user_id":    userId,
		"role":       ictx.Role,
	})
	s.publishAudit(ctx, events.NewSessionStarted(session.Id.String(), userId.String(), ictx.Role))

	return toSessionResponse(session), nil
}

func (s *interviewService) GetSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) (*dto.SessionDetailResponse, error) {
	session, err := s.loadOwned(ctx, userId, sessionId)
	if err != nil {
		return nil, err
	}
	return toSessionDetailResponse(session), nil
}

func (s *interviewService) NextQuestion(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) (*dto.QuestionResponse, error) {
	unlock := s.locker.Lock(sessionId)
	defer unlock()

	session, err := s.loadOwned(ctx, userId, sessionId)
	if err != nil {
		return nil, err
	}
	if state := session.State(); state != interview.StateAwaitingQuestion {
		return nil, interview.NewInvalidStateError("cannot request a question in state %s", state)
	}

	level := session.OpenLevel()
	text, err := s.provider.GenerateQuestion(ctx, session.Context, level.Difficulty, session.QuestionTexts())
	if err != nil {
		// The session is untouched, so the caller can simply retry.
		s.logger.Error("InterviewService", "Question generation failed", map[string]interface{}{
			"session_id": sessionId,
			"level":      level.Number,
			"error":      err,
		})
		return nil, err
	}

	question, err := session.AttachQuestion(text)
	if err != nil {
		return nil, err
	}
	if err := s.store.Put(ctx, session); err != nil {
		return nil, err
	}

	return &dto.QuestionResponse{
		Id:         question.Id,
		Text:       question.Text,
		Level:      level.Number,
		Difficulty: level.Difficulty,
		Number:     len(level.Questions),
	}, nil
}

func (s *interviewService) SubmitAnswer(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID, req *dto.SubmitAnswerRequest) (*dto.SessionResponse, error) {
	unlock := s.locker.Lock(sessionId)
	defer unlock()

	session, err := s.loadOwned(ctx, userId, sessionId)
	if err != nil {
		return nil, err
	}

	if _, err := session.RecordAnswer(req.QuestionId, req.Answer); err != nil {
		return nil, err
	}
	if err := s.store.Put(ctx, session); err != nil {
		return nil, err
	}

	return toSessionResponse(session), nil
}

func (s *interviewService) SubmitLevelFeedback(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) (*dto.LevelSummaryResponse, error) {
	unlock := s.locker.Lock(sessionId)
	defer unlock()

	session, err := s.loadOwned(ctx, userId, sessionId)
	if err != nil {
		return nil, err
	}
	if state := session.State(); state != interview.StateAwaitingBatchFeedback {
		return nil, interview.NewInvalidStateError("cannot request feedback in state %s", state)
	}

	level := session.OpenLevel()
	pairs := make([]interview.QuestionAnswer, 0, len(level.Questions))
	for _, q := range level.Questions {
		answer := ""
		if q.Answer != nil {
			answer = *q.Answer
		}
		pairs = append(pairs, interview.QuestionAnswer{
			Question: q.Text,
			Answer:   answer,
		})
	}

	items, err := s.provider.GenerateBatchFeedback(ctx, session.Context, pairs)
	if err != nil {
		// Nothing was written; the whole batch can be retried.
		s.logger.Error("InterviewService", "Batch feedback failed", map[string]interface{}{
			"session_id": sessionId,
			"level":      level.Number,
			"error":      err,
		})
		return nil, err
	}

	completed, err := session.ApplyLevelFeedback(items)
	if err != nil {
		return nil, err
	}
	if err := s.store.Put(ctx, session); err != nil {
		return nil, err
	}

	s.publishAudit(ctx, events.NewLevelCompleted(sessionId.String(), completed.Number, completed.AverageScore))

	summary := toLevelSummary(completed)
	return &summary, nil
}

func (s *interviewService) AdvanceLevel(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) (*dto.AdvanceLevelResponse, error) {
	unlock := s.locker.Lock(sessionId)
	defer unlock()

	session, err := s.loadOwned(ctx, userId, sessionId)
	if err != nil {
		return nil, err
	}

	state, err := session.Advance()
	if err != nil {
		return nil, err
	}
	if err := s.store.Put(ctx, session); err != nil {
		return nil, err
	}

	resp := &dto.AdvanceLevelResponse{
		SessionResponse: *toSessionResponse(session),
	}
	if state != interview.StateFinalSummary {
		return resp, nil
	}

	summaries := make([]dto.LevelSummaryResponse, 0, len(session.Levels))
	for _, level := range session.Levels {
		summaries = append(summaries, toLevelSummary(level))
	}
	resp.FinalSummary = &dto.FinalSummaryResponse{
		TotalScore:     session.TotalScore,
		LevelSummaries: summaries,
	}

	s.logger.Info("InterviewService", "Session completed", map[string]interface{}{
		"session_id":  sessionId,
		"total_score": session.TotalScore,
	})
	s.publishAudit(ctx, events.NewSessionCompleted(sessionId.String(), userId.String(), session.TotalScore))

	if s.publisherService != nil {
		msg := dto.SessionCompletedMessage{
			SessionId:  session.Id,
			UserId:     session.OwnerId,
			TotalScore: session.TotalScore,
		}
		payload, err := json.Marshal(msg)
		if err == nil {
			err = s.publisherService.Publish(ctx, payload)
		}
		if err != nil {
			// Summary email is best-effort; the session itself is already saved.
			s.logger.Warn("InterviewService", "Failed to publish completion message", map[string]interface{}{
				"session_id": sessionId,
				"error":      err,
			})
		}
	}

	return resp, nil
}

// loadOwned fetches a session and enforces ownership. A foreign session is
// reported as NOT_FOUND so ids cannot be probed.
func (s *interviewService) loadOwned(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) (*interview.Session, error) {
	session, err := s.store.Get(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	if session.OwnerId != userId {
		return nil, interview.NewNotFoundError("session %s not found", sessionId)
	}
	return session, nil
}

func (s *interviewService) publishAudit(ctx context.Context, event events.Event) {
	if s.auditPublisher == nil {
		return
	}
	if err := s.auditPublisher.Publish(ctx, event); err != nil {
		s.logger.Warn("InterviewService", "Failed to publish audit event", map[string]interface{}{
			"event": event.EventType(),
			"error": err,
		})
	}
}

func toSessionResponse(session *interview.Session) *dto.SessionResponse {
	return &dto.SessionResponse{
		Id:           session.Id,
		State:        string(session.State()),
		CurrentLevel: session.CurrentLevel,
		Difficulty:   interview.DifficultyForLevel(session.CurrentLevel),
		TotalScore:   session.TotalScore,
		IsCompleted:  session.IsCompleted,
		CreatedAt:    session.CreatedAt,
		UpdatedAt:    session.UpdatedAt,
	}
}

func toSessionDetailResponse(session *interview.Session) *dto.SessionDetailResponse {
	levels := make([]dto.LevelSummaryResponse, 0, len(session.Levels))
	for _, level := range session.Levels {
		levels = append(levels, toLevelSummary(level))
	}
	return &dto.SessionDetailResponse{
		SessionResponse: *toSessionResponse(session),
		Role:            session.Context.Role,
		Company:         session.Context.Company,
		Experience:      session.Context.Experience,
		Skills:          session.Context.Skills,
		FocusAreas:      session.Context.FocusAreas,
		Levels:          levels,
	}
}

func toLevelSummary(level *interview.Level) dto.LevelSummaryResponse {
	questions := make([]dto.QuestionFeedbackResponse, 0, len(level.Questions))
	for _, q := range level.Questions {
		answer := ""
		if q.Answer != nil {
			answer = *q.Answer
		}
		questions = append(questions, dto.QuestionFeedbackResponse{
			QuestionId:     q.Id,
			Text:           q.Text,
			Answer:         answer,
			Score:          q.Score,
			Feedback:       q.Feedback,
			Suggestions:    q.Suggestions,
			CorrectAnswer:  q.CorrectAnswer,
			TopicsToRevise: q.TopicsToRevise,
		})
	}
	return dto.LevelSummaryResponse{
		Level:        level.Number,
		Difficulty:   level.Difficulty,
		AverageScore: level.AverageScore,
		Questions:    questions,
	}
}
