package constvars

// Validation messages for clients, mapped by validator tag
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must contain only digits",
	"len":      "must be exactly %s characters long",
	"oneof":    "must be one of: %s",
}

// Validator tags whose client message carries the tag parameter
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientUnknownAction                 = "unknown action"
	ErrClientAlertNotFound                 = "login alert not found"
	ErrClientAlertExpired                  = "login alert already expired"
	ErrClientOTPInvalid                    = "the code you entered is invalid"
	ErrClientOTPExpired                    = "the code already expired, please request a new one"
	ErrClientRecipientUnreachable          = "recipient cannot be reached right now"
)

// Error messages for developers
const (
	ErrDevValidationFailed       = "request validation failed"
	ErrDevCannotParseJSON        = "cannot parse JSON"
	ErrDevCannotMarshalJSON      = "cannot marshal JSON"
	ErrDevServerDeadlineExceeded = "server deadline exceeded"
	ErrDevServerProcess          = "internal server process failed"
	ErrDevUnknownActionTag       = "unknown action tag: %s"
	ErrDevCallerNotAdministrator = "caller identity is not the configured administrator"
	ErrDevCallerNotSessionOwner  = "responder is not the login session owner"
	ErrDevAuthTokenMissing       = "bearer token missing"
	ErrDevAuthTokenInvalid       = "bearer token invalid or expired"

	ErrDevOTPGenerate        = "failed to generate OTP code"
	ErrDevOTPHash            = "failed to hash OTP code"
	ErrDevOTPNotFound        = "no active OTP challenge for recipient"
	ErrDevOTPExpired         = "OTP challenge expired"
	ErrDevOTPMismatch        = "OTP code or purpose mismatch"
	ErrDevLoginAlertNotFound = "login session not found: %s"
	ErrDevLoginAlertExpired  = "login session expired while pending: %s"

	ErrDevRedisGetData       = "failed to get data from redis"
	ErrDevRedisSetData       = "failed to set data to redis"
	ErrDevRedisDeleteData    = "failed to delete data from redis"
	ErrDevRedisEvalScript    = "failed to eval script on redis"
	ErrDevDBUpsertDocument   = "failed to upsert document on database"
	ErrDevDBUpdateDocument   = "failed to update document on database"
	ErrDevRabbitMQPublish    = "failed to publish message to queue: %s"
	ErrDevDispatchThrottling = "outbound dispatch throttle interrupted"
)
