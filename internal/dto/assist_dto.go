package dto

type ReviewCodeRequest struct {
	Code         string `json:"code" validate:"required"`
	Language     string `json:"language" validate:"required"`
	ProblemTitle string `json:"problem_title,omitempty"`
}

type HintRequest struct {
	Code               string `json:"code" validate:"required"`
	Language           string `json:"language" validate:"required"`
	ProblemTitle       string `json:"problem_title" validate:"required"`
	ProblemDescription string `json:"problem_description,omitempty"`
}

type ExplainCodeRequest struct {
	Code     string `json:"code" validate:"required"`
	Language string `json:"language" validate:"required"`
}

type ReviewCodeResponse struct {
	Review string `json:"review"`
}

type HintResponse struct {
	Hint string `json:"hint"`
}

type ExplainCodeResponse struct {
	Explanation string `json:"explanation"`
}
