package request

// LoginRequest limits mirror the stored email length and bcrypt's input cap.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=254" example:"partner@example.com"`
	Password string `json:"password" binding:"required,max=72" example:"password123"`
}
