// Package dto defines data transfer objects for the Custom Search JSON API responses.
package dto

// SearchResponse represents the JSON response from the Custom Search endpoint.
type SearchResponse struct {
	Items []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
	} `json:"items"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}
