package service

// Options tunes chart behavior.
type Options struct {
	// ScatterSiteFilter limits the scatter chart to the selected site.
	// false keeps every site and only changes the title.
	ScatterSiteFilter bool
}

// DefaultOptions filters the scatter chart by site.
func DefaultOptions() Options {
	return Options{ScatterSiteFilter: true}
}
