package constvars

const (
	LoggingRequestIDKey    = "request_id"
	LoggingMethodKey       = "method"
	LoggingEndpointKey     = "endpoint"
	LoggingRemoteAddrKey   = "remote_addr"
	LoggingUserAgentKey    = "user_agent"
	LoggingQueryKey        = "query"
	LoggingStatusCodeKey   = "status_code"
	LoggingDurationKey     = "duration"
	LoggingSuccessKey      = "success"
	LoggingQueueNameKey    = "queue_name"
	LoggingRedisKey        = "redis_key"
	LoggingIdentityKey     = "identity"
	LoggingAlertIDKey      = "alert_id"
	LoggingActionKey       = "action"
	LoggingPurposeKey      = "purpose"
	LoggingStepKey         = "step"
	LoggingOutboundTypeKey = "outbound_type"
)
