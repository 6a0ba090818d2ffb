package dto

type CreateMessageRequest struct {
	Body string `json:"body"`
}
