package resend

// sendEmailRequest is the POST /emails payload.
type sendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// sendEmailResponse is the success body; only the id matters.
type sendEmailResponse struct {
	ID string `json:"id"`
}

// apiError is the Resend error body shape.
type apiError struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}
