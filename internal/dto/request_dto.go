package dto

// GradeRequest is the body of POST /modules/{module_id}/grade.
type GradeRequest struct {
	UserID       string `json:"userId" binding:"required"`
	QuestionID   *uint  `json:"questionId"`
	QuestionText string `json:"questionText" binding:"required"`
	AnswerText   string `json:"answerText" binding:"required"`
	Context      string `json:"context"`
	Symbol       string `json:"symbol"`
}

// ProgressSaveRequest is the direct-write fallback body for
// PUT /modules/{module_id}/progress.
type ProgressSaveRequest struct {
	UserID               string  `json:"userId" binding:"required"`
	CompletionPercentage int     `json:"completionPercentage" binding:"min=0,max=100"`
	TotalQuestions       int     `json:"totalQuestions" binding:"min=0"`
	CorrectAnswers       int     `json:"correctAnswers" binding:"min=0"`
	AverageScore         float64 `json:"averageScore" binding:"min=0,max=100"`
}

// PortfolioAddRequest is the body of POST /portfolio.
type PortfolioAddRequest struct {
	UserID      string  `json:"userId" binding:"required"`
	Symbol      string  `json:"symbol" binding:"required"`
	CompanyName string  `json:"companyName"`
	Shares      float64 `json:"shares" binding:"required,gt=0"`
	BuyPrice    float64 `json:"buyPrice" binding:"required,gt=0"`
}

// PitchSubmitRequest is the body of POST /simulator/pitch.
type PitchSubmitRequest struct {
	UserID      string `json:"userId" binding:"required"`
	Symbol      string `json:"symbol" binding:"required"`
	CompanyName string `json:"companyName"`
	PitchText   string `json:"pitchText" binding:"required"`
}

// InvestRequest is the body of POST /simulator/pitch/{pitch_id}/invest.
type InvestRequest struct {
	UserID string  `json:"userId" binding:"required"`
	Shares float64 `json:"shares" binding:"required,gt=0"`
}

// SignupRequest is the body of POST /auth/signup.
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"fullName"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// QuestionOptionDTO is one choice of a multiple-choice question.
type QuestionOptionDTO struct {
	Label string `json:"label" binding:"required"`
	Text  string `json:"text" binding:"required"`
}

// QuestionCreateRequest is the admin body for authoring module questions.
type QuestionCreateRequest struct {
	Symbol          string              `json:"symbol"`
	QuestionType    string              `json:"question_type" binding:"required,oneof=mcq written"`
	QuestionText    string              `json:"question_text" binding:"required"`
	QuestionContext *string             `json:"question_context"`
	Options         []QuestionOptionDTO `json:"options" binding:"omitempty,dive"`
	CorrectAnswer   *string             `json:"correct_answer"`
	Guidance        *string             `json:"guidance"`
	Difficulty      string              `json:"difficulty" binding:"omitempty,oneof=easy intermediate advanced expert"`
}
