package models

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}

// Attachment carries metadata for a file hosted outside this service.
// Upload and storage of the bytes themselves are not handled here.
type Attachment struct {
	Name       string `json:"name"`
	URL        string `json:"url"`
	UploadedAt string `json:"uploaded_at,omitempty"`
}
