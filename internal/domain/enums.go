package domain

// BundleType is the cadence category of a schedule entry.
type BundleType string

const (
	BundleTypeDaily   BundleType = "daily"
	BundleTypeWeekly  BundleType = "weekly"
	BundleTypePending BundleType = "pending"
)

// BundleTypes lists every bundle type in display order.
var BundleTypes = []BundleType{BundleTypeDaily, BundleTypeWeekly, BundleTypePending}

func (b BundleType) String() string { return string(b) }

func (b BundleType) IsValid() bool {
	switch b {
	case BundleTypeDaily, BundleTypeWeekly, BundleTypePending:
		return true
	}
	return false
}

// Display returns the human-readable label used in audit details and reminders.
func (b BundleType) Display() string {
	switch b {
	case BundleTypeDaily:
		return "Daily"
	case BundleTypeWeekly:
		return "Weekly"
	case BundleTypePending:
		return "Pending"
	}
	return string(b)
}

// ActivityAction is the kind of change recorded in the activity log.
type ActivityAction string

const (
	ActivityCreated          ActivityAction = "created"
	ActivityUpdated          ActivityAction = "updated"
	ActivityDigitalEntry     ActivityAction = "digital_entry"
	ActivityDocumentUploaded ActivityAction = "document_uploaded"
)

func (a ActivityAction) String() string { return string(a) }

func (a ActivityAction) IsValid() bool {
	switch a {
	case ActivityCreated, ActivityUpdated, ActivityDigitalEntry, ActivityDocumentUploaded:
		return true
	}
	return false
}

// Display returns the human-readable label of the action.
func (a ActivityAction) Display() string {
	switch a {
	case ActivityCreated:
		return "Created"
	case ActivityUpdated:
		return "Updated"
	case ActivityDigitalEntry:
		return "Digital Entry"
	case ActivityDocumentUploaded:
		return "Document Uploaded"
	}
	return string(a)
}
