package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Action messages
	OtpIssuedSuccessMessage         = "otp issued successfully"
	LoginAlertCreatedSuccessMessage = "login alert created successfully"
	ChatEventHandledSuccessMessage  = "chat event handled"

	// Messages shown to the end user on the chat platform. Plain language
	// only, raw error codes never leak here.
	ChatOTPMessageFormat        = "Your %s code is %s. It expires in %d minutes. Never share this code with anyone."
	ChatLoginAlertMessageFormat = "New login attempt to your account:\nIP: %s\nDevice: %s\nBrowser: %s\nOS: %s\nLocation: %s\n\nWas this you?"
	ChatLoginApprovedMessage    = "Login approved. You can return to the website."
	ChatLoginDeniedMessage      = "Login denied. If this wasn't you, consider changing your password."
	ChatLoginExpiredMessage     = "This login alert already expired. The attempt was not approved."
	ChatAskLinkCodeMessage      = "Reply with the 6-digit link code to connect this chat to your website account."
	ChatLinkDoneMessage         = "Your account is now linked."
	ChatLinkFailedMessage       = "That code didn't work. Start again by sending 'link account'."
	ChatAlertGoneMessage        = "This alert is no longer valid."
	ChatHelpMessage             = "I can relay login codes and alerts for your account. Send 'link account' to link this chat to your website account."

	ChatConfirmButtonLabel = "This was me"
	ChatDenyButtonLabel    = "Deny"
)
