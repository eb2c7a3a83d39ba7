package api

// Response is the envelope the storefront backend wraps every payload in
type Response[T any] struct {
	Data      T      `json:"data"`
	Message   string `json:"message"`
	Status    int    `json:"status"`
	Timestamp string `json:"timestamp"`
}

// OK reports whether the backend flagged the response as successful.
func (r *Response[T]) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// ErrorInfo is the body the backend sends alongside a non-2xx status.
// Data is always null in that case, so only the descriptive fields remain.
type ErrorInfo struct {
	Message   string `json:"message"`
	Status    int    `json:"status"`
	Timestamp string `json:"timestamp"`
}
