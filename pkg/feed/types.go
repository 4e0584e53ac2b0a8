package feed

// atomNS is the Atom 1.0 namespace
const atomNS = "http://www.w3.org/2005/Atom"

// JSONFeed represents a JSON Feed document, only the fields items are built from
type JSONFeed struct {
	Version string         `json:"version"`
	Items   []JSONFeedItem `json:"items"`
}

// JSONFeedItem is one entry of a JSON Feed
type JSONFeedItem struct {
	Title         string               `json:"title"`
	URL           string               `json:"url"`
	ExternalURL   string               `json:"external_url"`
	ContentText   string               `json:"content_text"`
	Summary       string               `json:"summary"`
	DatePublished string               `json:"date_published"`
	Attachments   []JSONFeedAttachment `json:"attachments"`
}

// JSONFeedAttachment is a media reference attached to a JSON Feed item
type JSONFeedAttachment struct {
	URL      string `json:"url"`
	MimeType string `json:"mime_type"`
}
