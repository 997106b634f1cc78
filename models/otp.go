package models

// OtpEntry represents an outstanding one-time passcode awaiting
// verification. Entries for the same email may stack: a resend does not
// invalidate older codes, and an entry is only removed on a successful
// match.
type OtpEntry struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	OTP      string `json:"otp"`
	Role     string `json:"role"`
	IssuedAt int64  `json:"issuedAt"` // epoch millis
}

// SendOTPRequest is the body of POST /send-otp
type SendOTPRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// VerifyOTPRequest is the body of POST /verify-otp
type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}
