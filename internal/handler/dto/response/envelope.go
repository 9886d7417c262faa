package response

// Envelope is the success half of the {success, data|error, message?} shape.
type Envelope struct {
	Success    bool                `json:"success"`
	Data       any                 `json:"data"`
	Message    string              `json:"message,omitempty"`
	Count      *int                `json:"count,omitempty"`
	Pagination *PaginationResponse `json:"pagination,omitempty"`
}

type PaginationResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Count  int `json:"count"`
}

func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

func WithMessage(data any, message string) Envelope {
	return Envelope{Success: true, Data: data, Message: message}
}

func WithCount(data any, count int) Envelope {
	return Envelope{Success: true, Data: data, Count: &count}
}
