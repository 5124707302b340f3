package domain

// Severity is the AI-assigned impact level.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Category is the AI-assigned incident family.
type Category string

const (
	CategoryNetwork  Category = "network"
	CategorySoftware Category = "software"
	CategoryHardware Category = "hardware"
	CategorySecurity Category = "security"
)

var (
	severities = []string{string(SeverityLow), string(SeverityMedium), string(SeverityHigh)}
	categories = []string{string(CategoryNetwork), string(CategorySoftware), string(CategoryHardware), string(CategorySecurity)}
)

// Severities lists the known severities from least to most severe.
func Severities() []string { return append([]string(nil), severities...) }

// Categories lists the known categories.
func Categories() []string { return append([]string(nil), categories...) }

// Known reports whether the backend vocabulary includes s.
func (s Severity) Known() bool { return contains(severities, normalize(string(s))) }

// Rank orders severities; unknown or missing values return -1.
func (s Severity) Rank() int { return indexOf(severities, normalize(string(s))) }

// Known reports whether the backend vocabulary includes c.
func (c Category) Known() bool { return contains(categories, normalize(string(c))) }
