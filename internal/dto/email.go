package dto

// SendEmailRequest is the JSON body accepted by the sign-up mail endpoint.
// Recipient format is not checked; the relay rejects bad addresses.
type SendEmailRequest struct {
	Subject   string `json:"subject" validate:"required"`
	Body      string `json:"body" validate:"required"`
	Recipient string `json:"recipient" validate:"required"`
}

type SendEmailResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
