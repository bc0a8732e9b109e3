package dto

// SendMessageRequest is a contact-form submission.
type SendMessageRequest struct {
	SenderName  string `json:"sender_name" binding:"required"`
	SenderEmail string `json:"sender_email" binding:"required,email"`
	Subject     string `json:"subject" binding:"required"`
	Body        string `json:"message" binding:"required"`
}

// UpdateMessageStatusRequest moves a message through its review lifecycle.
type UpdateMessageStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
