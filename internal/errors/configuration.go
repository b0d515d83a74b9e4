package errors

// MetaErrorKind is the metadata key that tags configuration errors
const MetaErrorKind = "error_kind"

const kindConfiguration = "configuration"

// Configuration creates an error for a broken weight table, override or rule table.
// These are fatal and must not be retried.
func Configuration(message string) *Error {
	return FailedPrecondition(message).WithMeta(MetaErrorKind, kindConfiguration)
}

// Configurationf creates a configuration error with formatted message
func Configurationf(format string, args ...interface{}) *Error {
	return FailedPreconditionf(format, args...).WithMeta(MetaErrorKind, kindConfiguration)
}

// IsConfiguration checks if an error, or anything it wraps, is a configuration error
func IsConfiguration(err error) bool {
	if !IsFailedPrecondition(err) {
		return false
	}
	kind, _ := GetMeta(err)[MetaErrorKind].(string)
	return kind == kindConfiguration
}

// WrapConfiguration wraps a failure to read configuration as a configuration error
func WrapConfiguration(err error, message string) *Error {
	if err == nil {
		return nil
	}
	return WrapWithCode(err, CodeFailedPrecondition, message).WithMeta(MetaErrorKind, kindConfiguration)
}
