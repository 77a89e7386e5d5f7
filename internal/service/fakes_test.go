package service

import (
	"context"
	"errors"

	"github.com/vesto-learn/vesto-api/internal/model"
	"github.com/vesto-learn/vesto-api/internal/repository"
)

// fakeGenClient scripts GenerateStructured responses and counts calls.
type fakeGenClient struct {
	structuredFn func(prompt string, out any) error
	textFn       func(prompt string) (string, error)
	calls        int
}

func (f *fakeGenClient) GenerateText(_ context.Context, prompt string) (string, error) {
	f.calls++
	if f.textFn != nil {
		return f.textFn(prompt)
	}
	return "", errors.New("no text response scripted")
}

func (f *fakeGenClient) GenerateStructured(_ context.Context, prompt string, out any) error {
	f.calls++
	if f.structuredFn != nil {
		return f.structuredFn(prompt, out)
	}
	return errors.New("no structured response scripted")
}

type fakeQuestionRepo struct {
	questions map[uint]*model.Question
	byModule  []model.Question
	count     int64
	countErr  error
}

func (f *fakeQuestionRepo) Create(q *model.Question) error { return nil }

func (f *fakeQuestionRepo) FindByID(id uint) (*model.Question, error) {
	q, ok := f.questions[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return q, nil
}

func (f *fakeQuestionRepo) FindByModule(moduleID, symbol string) ([]model.Question, error) {
	return f.byModule, nil
}

func (f *fakeQuestionRepo) CountByModule(moduleID string) (int64, error) {
	return f.count, f.countErr
}

type fakeAnswerRepo struct {
	answers   []model.UserAnswer
	created   []*model.UserAnswer
	createErr error
	findErr   error
}

func (f *fakeAnswerRepo) Create(a *model.UserAnswer) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, a)
	return nil
}

func (f *fakeAnswerRepo) FindByUserAndModule(userID, moduleID string) ([]model.UserAnswer, error) {
	return f.answers, f.findErr
}

type fakeProgressRepo struct {
	existing  *model.UserProgress
	upserted  *model.UserProgress
	upsertErr error
}

func (f *fakeProgressRepo) Upsert(p *model.UserProgress) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserted = p
	return nil
}

func (f *fakeProgressRepo) FindByUserAndModule(userID, moduleID string) (*model.UserProgress, error) {
	return f.existing, nil
}

func (f *fakeProgressRepo) FindAllByUser(userID string) ([]model.UserProgress, error) {
	return nil, nil
}

type fakePortfolioRepo struct {
	holdings  []model.UserPortfolio
	upserted  *model.UserPortfolio
	upsertErr error
}

func (f *fakePortfolioRepo) Upsert(h *model.UserPortfolio) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserted = h
	return nil
}

func (f *fakePortfolioRepo) FindAllByUser(userID string) ([]model.UserPortfolio, error) {
	return f.holdings, nil
}

func (f *fakePortfolioRepo) FindByUserAndSymbol(userID, symbol string) (*model.UserPortfolio, error) {
	return nil, nil
}

type fakeCompanyRepo struct {
	company      *model.Company
	companyErr   error
	fundamentals *model.CompanyFundamentals
	fundErr      error
	quote        *model.CompanyQuote
	quoteErr     error
	mock10k      *model.Mock10K
	mockErr      error
}

func (f *fakeCompanyRepo) Create(c *model.Company) error { return nil }

func (f *fakeCompanyRepo) FindAll() ([]model.Company, error) { return nil, nil }

func (f *fakeCompanyRepo) FindBySymbol(symbol string) (*model.Company, error) {
	if f.companyErr != nil {
		return nil, f.companyErr
	}
	return f.company, nil
}

func (f *fakeCompanyRepo) FindFundamentals(symbol string) (*model.CompanyFundamentals, error) {
	return f.fundamentals, f.fundErr
}

func (f *fakeCompanyRepo) FindQuote(symbol string) (*model.CompanyQuote, error) {
	return f.quote, f.quoteErr
}

func (f *fakeCompanyRepo) FindMock10K(symbol string) (*model.Mock10K, error) {
	return f.mock10k, f.mockErr
}

type fakePitchRepo struct {
	pitches   map[uint]*model.PitchSubmission
	created   []*model.PitchSubmission
	updated   []*model.PitchSubmission
	stats     *repository.PitchStats
	createErr error
}

func (f *fakePitchRepo) Create(p *model.PitchSubmission) error {
	if f.createErr != nil {
		return f.createErr
	}
	p.ID = uint(len(f.created) + 1)
	f.created = append(f.created, p)
	return nil
}

func (f *fakePitchRepo) Update(p *model.PitchSubmission) error {
	f.updated = append(f.updated, p)
	return nil
}

func (f *fakePitchRepo) FindByID(id uint) (*model.PitchSubmission, error) {
	p, ok := f.pitches[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return p, nil
}

func (f *fakePitchRepo) FindAllByUser(userID string) ([]model.PitchSubmission, error) {
	var out []model.PitchSubmission
	for _, p := range f.pitches {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePitchRepo) StatsByUser(userID string) (*repository.PitchStats, error) {
	if f.stats != nil {
		return f.stats, nil
	}
	return &repository.PitchStats{}, nil
}

type fakeUserRepo struct {
	byEmail map[string]*model.User
	created []*model.User
}

func (f *fakeUserRepo) Create(u *model.User) error {
	if f.byEmail == nil {
		f.byEmail = make(map[string]*model.User)
	}
	f.byEmail[u.Email] = u
	f.created = append(f.created, u)
	return nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*model.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) FindByID(id string) (*model.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, errors.New("record not found")
}
