package config

const (
	RouteSendSignUpEmail = "/sendSignUpEmail"

	MsgEmailSent        = "Email sent successfully"
	MsgMissingFields    = "Missing required fields."
	MsgMethodNotAllowed = "Method not allowed. Use POST."
	MsgSendFailed       = "Failed to send email"
)

const (
	ProviderSMTP   = "smtp"
	ProviderResend = "resend"
	ProviderLog    = "log"
)

var AllowedProviders = []string{ProviderSMTP, ProviderResend, ProviderLog}
