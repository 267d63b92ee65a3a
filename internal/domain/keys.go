package domain

// KeyRequestID is the gin context key carrying the request identifier
// set by the RequestID middleware.
const KeyRequestID = "RequestID"
