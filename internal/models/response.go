package models

// Response is the envelope every service operation returns. Message
// carries either a human-readable string or the operation's payload.
type Response struct {
	Status  bool        `json:"status"`
	Message interface{} `json:"message"`
}

func OK(message interface{}) *Response {
	return &Response{Status: true, Message: message}
}

func Fail(message interface{}) *Response {
	return &Response{Status: false, Message: message}
}

// AddFailure echoes the rejected candidate back to the caller along with
// the reason, so a bulk submitter can correlate failures.
type AddFailure struct {
	Reason            string `json:"reason"`
	InvalidComponents []int  `json:"invalidComponents,omitempty"`
	Good              *Good  `json:"good"`
}

// ArchiveRequest is one entry of a bulk archive call.
type ArchiveRequest struct {
	ID      int  `json:"id"`
	Archive bool `json:"archive"`
}
