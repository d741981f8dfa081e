package api

var (
	errorMessageMap = map[int64]string{
		999: "internal server error",

		1000: "missing requester header",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: "this account has been registered or has been taken",
		1101: "account not found",
		1102: "unknown timezone",

		1200: "invalid measurement payload",
		1201: "severity out of range",
		1202: "invalid adherence status",

		1300: "risk computation error",
		1301: "forecast unavailable",
		1302: "no nudge for today",
	}

	errorInternalServer   = errorJSON(999)
	errorMissingRequester = errorJSON(1000)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorAccountTaken    = errorJSON(1100)
	errorAccountNotFound = errorJSON(1101)
	errorUnknownTimezone = errorJSON(1102)

	errorInvalidMeasurement = errorJSON(1200)
	errorInvalidSeverity    = errorJSON(1201)
	errorInvalidAdherence   = errorJSON(1202)

	errorRiskCompute         = errorJSON(1300)
	errorForecastUnavailable = errorJSON(1301)
	errorNoNudgeToday        = errorJSON(1302)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
