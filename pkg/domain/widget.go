package domain

// default widget settings
const (
	DefaultWidgetLimit = 9
	DefaultWidgetTitle = "Latest"
)

// WidgetSpec is a gallery declaration discovered in a host page or built from request parameters
type WidgetSpec struct {
	FeedURL    string   // primary feed
	Merge      []string // additional feeds merged into the primary one
	Limit      int
	Title      string
	Area       string // default area label for items without their own
	ViewAllURL string
}

// FeedURLs returns the primary feed followed by the merge list, skipping empty entries
func (w WidgetSpec) FeedURLs() []string {
	res := make([]string, 0, len(w.Merge)+1)
	if w.FeedURL != "" {
		res = append(res, w.FeedURL)
	}
	for _, u := range w.Merge {
		if u != "" {
			res = append(res, u)
		}
	}
	return res
}

// WithDefaults returns a copy with zero limit and empty title replaced by defaults
func (w WidgetSpec) WithDefaults() WidgetSpec {
	if w.Limit <= 0 {
		w.Limit = DefaultWidgetLimit
	}
	if w.Title == "" {
		w.Title = DefaultWidgetTitle
	}
	return w
}
