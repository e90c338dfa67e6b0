// Package render turns planning results into display content for each screen region.
package render

// Region identifies an independently updated part of the results screen.
type Region int

const (
	RegionSummary Region = iota
	RegionMaterials
	RegionWorkforce
	RegionSchedule
	RegionLabor
	RegionCost
	RegionBlueprint
)

// AIRegions are the regions filled by the AI plan, in display order.
var AIRegions = []Region{
	RegionWorkforce,
	RegionSchedule,
	RegionLabor,
	RegionCost,
	RegionBlueprint,
}

// TabRegions are the tabbed AI regions of the results screen.
var TabRegions = []Region{
	RegionSchedule,
	RegionLabor,
	RegionCost,
	RegionBlueprint,
}

func (r Region) String() string {
	switch r {
	case RegionSummary:
		return "Summary"
	case RegionMaterials:
		return "Materials"
	case RegionWorkforce:
		return "Workforce"
	case RegionSchedule:
		return "Schedule"
	case RegionLabor:
		return "Labor"
	case RegionCost:
		return "Cost"
	case RegionBlueprint:
		return "Blueprint"
	default:
		return "Unknown"
	}
}

// Line is one row of region content.
type Line struct {
	Label  string
	Value  string
	Detail string
}

// Content is what a region displays once its data has arrived.
type Content struct {
	Heading string
	// Value is set for single-value regions such as the workforce total.
	Value string
	Lines []Line
	// Unavailable marks a placeholder rendered because the source field was missing.
	Unavailable bool
	Note        string
}

// Placeholder returns content for a region whose data is not available.
func Placeholder(note string) Content {
	return Content{Unavailable: true, Note: note}
}

// LoadingText returns the loading placeholder for a region.
func LoadingText(r Region) string {
	if r == RegionWorkforce {
		return "Analyzing..."
	}
	return "AI is analyzing project details..."
}

// ErrorText returns the error placeholder for a region.
func ErrorText(r Region, message string) string {
	if r == RegionWorkforce {
		return "Error"
	}
	return "AI Analysis Failed: " + message
}
