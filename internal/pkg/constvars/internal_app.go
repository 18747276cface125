package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_CALLER_IDENTITY_KEY      ContextKey = "caller_identity"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "AUTHRELAY_SVC_"
)

const (
	OTP_LENGTH = 6
)

// Redis key prefixes. OTP challenges and login sessions live in separate
// namespaces so an alert id can never collide with an identity key.
const (
	RedisKeyOtpPrefix          = "otp:"
	RedisKeyLoginSessionPrefix = "login_session:"
	RedisKeyChatStepPrefix     = "chat_step:"
)

// Website action tags
const (
	ActionSendOtp    = "send_otp"
	ActionLoginAlert = "login_alert"
)

// OTP purposes issued by the service itself
const (
	OtpPurposeLinkAccount = "link_account"
)

// Callback payload verbs embedded in interactive controls
const (
	CallbackLoginConfirmPrefix = "login_confirm_"
	CallbackLoginDenyPrefix    = "login_deny_"
)

// Login alert resolution actions
const (
	LoginAlertActionConfirm = "confirm"
	LoginAlertActionDeny    = "deny"
)

// Chat menu commands
const (
	ChatCommandStart = "/start"
	ChatCommandLink  = "link account"
	ChatCommandHelp  = "help"
)

// Conversational step markers
const (
	ChatStepAwaitingLinkCode = "awaiting_link_code"
)

// Outbound queue message types
const (
	OutboundTypeSend = "send"
	OutboundTypeEdit = "edit"
)
