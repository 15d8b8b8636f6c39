package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interview-prep-be/internal/dto"
	"interview-prep-be/internal/entity"
	"interview-prep-be/internal/pkg/logger"
	"interview-prep-be/internal/repository/contract"
	"interview-prep-be/internal/repository/memory"
	"interview-prep-be/internal/repository/specification"
	"interview-prep-be/internal/repository/unitofwork"
	"interview-prep-be/pkg/interview"
)

// fakeProvider returns deterministic questions and feedback without an LLM.
type fakeProvider struct {
	questionCalls int
	feedbackCalls int
	failQuestion  bool
	failFeedback  bool
	shortBatch    bool
}

func (p *fakeProvider) GenerateQuestion(ctx context.Context, ictx interview.Context, difficulty string, previous []string) (string, error) {
	if p.failQuestion {
		return "", interview.NewGenerationError("provider unavailable", nil)
	}
	p.questionCalls++
	return fmt.Sprintf("[%s] question %d for %s", difficulty, p.questionCalls, ictx.Role), nil
}

func (p *fakeProvider) GenerateBatchFeedback(ctx context.Context, ictx interview.Context, pairs []interview.QuestionAnswer) ([]interview.FeedbackItem, error) {
	if p.failFeedback {
		return nil, interview.NewFeedbackError("provider unavailable", nil)
	}
	p.feedbackCalls++
	n := len(pairs)
	if p.shortBatch {
		n = n - 1
	}
	items := make([]interview.FeedbackItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, interview.FeedbackItem{
			Score:          6 + i%3,
			Feedback:       "solid answer",
			Suggestions:    []string{"add an example"},
			CorrectAnswer:  "a fuller answer",
			TopicsToRevise: []string{"fundamentals"},
		})
	}
	return items, nil
}

// stubUowFactory serves only the profile lookup used by StartSession.
type stubUowFactory struct {
	profile *entity.CandidateProfile
}

func (f *stubUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &stubUow{profile: f.profile}
}

type stubUow struct {
	profile *entity.CandidateProfile
}

func (u *stubUow) Begin(ctx context.Context) error { return nil }
func (u *stubUow) Commit() error                   { return nil }
func (u *stubUow) Rollback() error                 { return nil }

func (u *stubUow) UserRepository() contract.UserRepository             { panic("not used") }
func (u *stubUow) ResumeRepository() contract.ResumeRepository         { panic("not used") }
func (u *stubUow) CourseRepository() contract.CourseRepository         { panic("not used") }
func (u *stubUow) EnrollmentRepository() contract.EnrollmentRepository { panic("not used") }
func (u *stubUow) InterviewSessionRepository() contract.InterviewSessionRepository {
	panic("not used")
}

func (u *stubUow) ProfileRepository() contract.ProfileRepository {
	return &stubProfileRepo{profile: u.profile}
}

type stubProfileRepo struct {
	profile *entity.CandidateProfile
}

func (r *stubProfileRepo) Upsert(ctx context.Context, profile *entity.CandidateProfile) error {
	return nil
}

func (r *stubProfileRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CandidateProfile, error) {
	return r.profile, nil
}

func newTestService(provider interview.QuestionProvider, profile *entity.CandidateProfile) IInterviewService {
	return NewInterviewService(
		memory.NewSessionStore(),
		provider,
		&stubUowFactory{profile: profile},
		nil,
		nil,
		logger.NewNopLogger(),
	)
}

func startRequest() *dto.StartSessionRequest {
	return &dto.StartSessionRequest{
		Role:       "Backend Engineer",
		Company:    "Acme",
		Experience: "3 years",
		Skills:     []string{"go", "postgres"},
	}
}

func TestStartSession(t *testing.T) {
	svc := newTestService(&fakeProvider{}, nil)
	userId := uuid.New()

	res, err := svc.StartSession(context.Background(), userId, startRequest())
	require.NoError(t, err)

	assert.Equal(t, string(interview.StateAwaitingQuestion), res.State)
	assert.Equal(t, 1, res.CurrentLevel)
	assert.Equal(t, "Starter", res.Difficulty)
	assert.False(t, res.IsCompleted)
	assert.Zero(t, res.TotalScore)
}

func TestStartSessionSeedsFromProfile(t *testing.T) {
	profile := &entity.CandidateProfile{
		TargetRole:      "Data Engineer",
		TargetCompany:   "Initech",
		ExperienceLevel: "senior",
		Skills:          []string{"python", "spark"},
		FocusAreas:      []string{"system design"},
	}
	svc := newTestService(&fakeProvider{}, profile)
	userId := uuid.New()

	res, err := svc.StartSession(context.Background(), userId, &dto.StartSessionRequest{})
	require.NoError(t, err)

	detail, err := svc.GetSession(context.Background(), userId, res.Id)
	require.NoError(t, err)
	assert.Equal(t, "Data Engineer", detail.Role)
	assert.Equal(t, "senior", detail.Experience)
	assert.Equal(t, []string{"python", "spark"}, detail.Skills)
}

func TestStartSessionWithoutContext(t *testing.T) {
	svc := newTestService(&fakeProvider{}, nil)

	_, err := svc.StartSession(context.Background(), uuid.New(), &dto.StartSessionRequest{})
	require.Error(t, err)
	assert.True(t, interview.IsKind(err, interview.KindValidation))
}

func TestQuestionAnswerCycle(t *testing.T) {
	svc := newTestService(&fakeProvider{}, nil)
	userId := uuid.New()
	ctx := context.Background()

	session, err := svc.StartSession(ctx, userId, startRequest())
	require.NoError(t, err)

	q, err := svc.NextQuestion(ctx, userId, session.Id)
	require.NoError(t, err)
	assert.Equal(t, 1, q.Level)
	assert.Equal(t, "Starter", q.Difficulty)
	assert.Equal(t, 1, q.Number)

	// A second question while one is open must be rejected.
	_, err = svc.NextQuestion(ctx, userId, session.Id)
	require.Error(t, err)
	assert.True(t, interview.IsKind(err, interview.KindInvalidState))

	res, err := svc.SubmitAnswer(ctx, userId, session.Id, &dto.SubmitAnswerRequest{
		QuestionId: q.Id,
		Answer:     "an answer",
	})
	require.NoError(t, err)
	assert.Equal(t, string(interview.StateAwaitingQuestion), res.State)
}

func TestSessionOwnership(t *testing.T) {
	svc := newTestService(&fakeProvider{}, nil)
	ctx := context.Background()

	session, err := svc.StartSession(ctx, uuid.New(), startRequest())
	require.NoError(t, err)

	_, err = svc.GetSession(ctx, uuid.New(), session.Id)
	require.Error(t, err)
	assert.True(t, interview.IsKind(err, interview.KindNotFound))
}

func TestGenerationFailureLeavesSessionUntouched(t *testing.T) {
	provider := &fakeProvider{failQuestion: true}
	svc := newTestService(provider, nil)
	userId := uuid.New()
	ctx := context.Background()

	session, err := svc.StartSession(ctx, userId, startRequest())
	require.NoError(t, err)

	_, err = svc.NextQuestion(ctx, userId, session.Id)
	require.Error(t, err)
	assert.True(t, interview.IsKind(err, interview.KindGeneration))

	// Still awaiting a question; a retry after recovery succeeds.
	provider.failQuestion = false
	q, err := svc.NextQuestion(ctx, userId, session.Id)
	require.NoError(t, err)
	assert.Equal(t, 1, q.Number)
}

func answerLevel(t *testing.T, svc IInterviewService, userId, sessionId uuid.UUID) {
	t.Helper()
	ctx := context.Background()
	for i := 0; i < interview.QuestionsPerLevel; i++ {
		q, err := svc.NextQuestion(ctx, userId, sessionId)
		require.NoError(t, err)
		_, err = svc.SubmitAnswer(ctx, userId, sessionId, &dto.SubmitAnswerRequest{
			QuestionId: q.Id,
			Answer:     fmt.Sprintf("answer %d", i+1),
		})
		require.NoError(t, err)
	}
}

func TestLevelFeedbackAndAdvance(t *testing.T) {
	svc := newTestService(&fakeProvider{}, nil)
	userId := uuid.New()
	ctx := context.Background()

	session, err := svc.StartSession(ctx, userId, startRequest())
	require.NoError(t, err)

	answerLevel(t, svc, userId, session.Id)

	// No more questions once the level is full.
	_, err = svc.NextQuestion(ctx, userId, session.Id)
	require.Error(t, err)
	assert.True(t, interview.IsKind(err, interview.KindInvalidState))

	summary, err := svc.SubmitLevelFeedback(ctx, userId, session.Id)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Level)
	assert.Len(t, summary.Questions, interview.QuestionsPerLevel)
	assert.Greater(t, summary.AverageScore, 0.0)
	for _, q := range summary.Questions {
		assert.GreaterOrEqual(t, q.Score, 1)
		assert.LessOrEqual(t, q.Score, 10)
		assert.NotEmpty(t, q.Feedback)
	}

	res, err := svc.AdvanceLevel(ctx, userId, session.Id)
	require.NoError(t, err)
	assert.Equal(t, 2, res.CurrentLevel)
	assert.Equal(t, "Easy", res.Difficulty)
	assert.Equal(t, string(interview.StateAwaitingQuestion), res.State)
	assert.Nil(t, res.FinalSummary)
}

func TestFeedbackFailureIsRetryable(t *testing.T) {
	provider := &fakeProvider{shortBatch: true}
	svc := newTestService(provider, nil)
	userId := uuid.New()
	ctx := context.Background()

	session, err := svc.StartSession(ctx, userId, startRequest())
	require.NoError(t, err)
	answerLevel(t, svc, userId, session.Id)

	// A short batch is rejected wholesale.
	_, err = svc.SubmitLevelFeedback(ctx, userId, session.Id)
	require.Error(t, err)
	assert.True(t, interview.IsKind(err, interview.KindFeedback))

	detail, err := svc.GetSession(ctx, userId, session.Id)
	require.NoError(t, err)
	assert.Equal(t, string(interview.StateAwaitingBatchFeedback), detail.State)
	for _, q := range detail.Levels[0].Questions {
		assert.Zero(t, q.Score)
	}

	provider.shortBatch = false
	summary, err := svc.SubmitLevelFeedback(ctx, userId, session.Id)
	require.NoError(t, err)
	assert.Len(t, summary.Questions, interview.QuestionsPerLevel)
}

func TestFullSessionLifecycle(t *testing.T) {
	svc := newTestService(&fakeProvider{}, nil)
	userId := uuid.New()
	ctx := context.Background()

	session, err := svc.StartSession(ctx, userId, startRequest())
	require.NoError(t, err)

	var final *dto.AdvanceLevelResponse
	for level := 1; level <= interview.NumLevels; level++ {
		answerLevel(t, svc, userId, session.Id)

		_, err := svc.SubmitLevelFeedback(ctx, userId, session.Id)
		require.NoError(t, err)

		final, err = svc.AdvanceLevel(ctx, userId, session.Id)
		require.NoError(t, err)
	}

	assert.True(t, final.IsCompleted)
	assert.Equal(t, string(interview.StateFinalSummary), final.State)
	require.NotNil(t, final.FinalSummary)
	assert.Len(t, final.FinalSummary.LevelSummaries, interview.NumLevels)
	assert.Greater(t, final.FinalSummary.TotalScore, 0.0)
	assert.LessOrEqual(t, final.FinalSummary.TotalScore, 100.0)

	// The session is terminal now.
	_, err = svc.NextQuestion(ctx, userId, session.Id)
	require.Error(t, err)
	assert.True(t, interview.IsKind(err, interview.KindInvalidState))

	_, err = svc.AdvanceLevel(ctx, userId, session.Id)
	require.Error(t, err)
	assert.True(t, interview.IsKind(err, interview.KindInvalidState))
}

func TestResumeMidLevel(t *testing.T) {
	store := memory.NewSessionStore()
	svc := NewInterviewService(store, &fakeProvider{}, &stubUowFactory{}, nil, nil, logger.NewNopLogger())
	userId := uuid.New()
	ctx := context.Background()

	session, err := svc.StartSession(ctx, userId, startRequest())
	require.NoError(t, err)

	q, err := svc.NextQuestion(ctx, userId, session.Id)
	require.NoError(t, err)

	// A fresh service instance over the same store sees the open question.
	svc2 := NewInterviewService(store, &fakeProvider{}, &stubUowFactory{}, nil, nil, logger.NewNopLogger())
	detail, err := svc2.GetSession(ctx, userId, session.Id)
	require.NoError(t, err)
	assert.Equal(t, string(interview.StateAwaitingAnswer), detail.State)

	res, err := svc2.SubmitAnswer(ctx, userId, session.Id, &dto.SubmitAnswerRequest{
		QuestionId: q.Id,
		Answer:     "resumed answer",
	})
	require.NoError(t, err)
	assert.Equal(t, string(interview.StateAwaitingQuestion), res.State)
}
