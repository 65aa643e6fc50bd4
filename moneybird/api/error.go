package api

import "fmt"

type RequestError struct {
	StatusCode   int
	Body         string
	ErrorDetails map[string]any
}

func (r *RequestError) Error() string {
	return fmt.Sprintf("status: %d message: %s", r.StatusCode, r.Body)
}
