package common

// ListMeta represents list window metadata
type ListMeta struct {
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
	Total  int64 `json:"total"`
}

// ListResponse represents a windowed list response
type ListResponse struct {
	Data interface{} `json:"data"`
	Meta ListMeta    `json:"meta"`
}
