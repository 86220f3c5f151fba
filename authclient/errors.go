package authclient

// APIError is a rejection from the auth service. Message is the verbatim
// server-provided text; Error returns it unchanged so the session core and
// the UI surface exactly what the service said.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}
