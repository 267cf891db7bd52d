package ui

// Status is the outcome shown for a single report item.
type Status string

const (
	StatusLinked  Status = "linked"
	StatusCopied  Status = "copied"
	StatusRemoved Status = "removed"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
	StatusPresent Status = "present"
	StatusMissing Status = "missing"
	StatusStale   Status = "stale"
	StatusYes     Status = "yes"
	StatusNo      Status = "no"
)

// Item is one line of a report.
type Item struct {
	Status   Status `json:"status"`
	Name     string `json:"name,omitempty"`
	Source   string `json:"source,omitempty"`
	Target   string `json:"target,omitempty"`
	Strategy string `json:"strategy,omitempty"`
	Created  string `json:"created,omitempty"`
	Detail   string `json:"detail,omitempty"`
}

// Report is the result of a command.
type Report struct {
	Action  string `json:"action"`
	Message string `json:"message,omitempty"`
	Items   []Item `json:"items"`
	// Tabular asks the terminal renderer for a table instead of lines.
	Tabular bool `json:"-"`
}

// Add appends an item and returns the report for chaining.
func (r *Report) Add(item Item) *Report {
	r.Items = append(r.Items, item)
	return r
}

// Failed reports whether any item failed.
func (r *Report) Failed() bool {
	for _, item := range r.Items {
		if item.Status == StatusFailed {
			return true
		}
	}
	return false
}

// subject is the name and path part of an item line.
func (item Item) subject() string {
	var path string
	switch {
	case item.Source != "" && item.Target != "":
		path = item.Target + " -> " + item.Source
	case item.Target != "":
		path = item.Target
	default:
		path = item.Source
	}
	switch {
	case item.Name == "":
		return path
	case path == "":
		return item.Name
	default:
		return item.Name + " " + path
	}
}
