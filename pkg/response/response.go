package response

type JSON struct {
	Status  string `json:"status"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func Error(code, message string, data any) JSON {
	return JSON{
		Status:  "error",
		Code:    code,
		Message: message,
		Data:    data,
	}
}
