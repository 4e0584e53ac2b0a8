package domain

// Item is the normalized, format-agnostic representation of one feed entry.
// Empty strings stand for absent values, so Title, URL, Description and Area are
// never missing and PublishedAt, Image and Video are absent when empty. The API sends those as null.
type Item struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
	PublishedAt string `json:"published_at"` // raw date token as published by the source
	Area        string `json:"area"`
	Image       string `json:"image"`
	Video       string `json:"video"`
}

// HasMedia reports whether the item carries an image or a video
func (i Item) HasMedia() bool {
	return i.Image != "" || i.Video != ""
}
