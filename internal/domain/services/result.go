package services

// ResultKind classifies the outcome of a mutation.
type ResultKind string

const (
	KindOK ResultKind = "ok"
	// KindMissingField: a mandatory field was absent; nothing was written.
	KindMissingField ResultKind = "missing_required_field"
	// KindOutOfRange: a value failed a range or format rule; nothing was written.
	KindOutOfRange ResultKind = "out_of_range_value"
	// KindBackendFailed: the backend rejected or failed the single-row write.
	KindBackendFailed ResultKind = "backend_operation_failed"
	// KindNotFound: the row addressed by an update or delete does not exist.
	KindNotFound ResultKind = "not_found"
	// KindUnauthorized: the operation requires an identity and none was given.
	KindUnauthorized ResultKind = "unauthorized"
	KindUnexpected   ResultKind = "unexpected_error"
)

// Result is the tagged outcome every mutation returns. Mutations never
// return errors or panic past their boundary; the kind says what happened
// and Message is safe to show to the user.
type Result struct {
	Kind    ResultKind `json:"kind"`
	Message string     `json:"message"`
	ID      string     `json:"id,omitempty"`
}

// OK reports whether the mutation succeeded.
func (r Result) OK() bool {
	return r.Kind == KindOK
}

// Succeeded builds a success result.
func Succeeded(id, message string) Result {
	return Result{Kind: KindOK, ID: id, Message: message}
}

// Failed builds a failure result.
func Failed(kind ResultKind, message string) Result {
	return Result{Kind: kind, Message: message}
}
