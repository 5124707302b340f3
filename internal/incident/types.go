package incident

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// NotAvailable is shown in place of a classification the backend has not
// assigned yet.
const NotAvailable = "N/A"

// ID is the backend-assigned identifier. The documented contract uses
// numbers; some deployments hand out UUID strings, so both decode. An ID
// remembers which of the two it was and encodes back the same way.
type ID struct {
	value   string
	numeric bool
}

// NumberID builds the id of a numerically keyed incident.
func NumberID(n int64) ID {
	return ID{value: strconv.FormatInt(n, 10), numeric: true}
}

// StringID builds an id the backend sent as a string.
func StringID(s string) ID {
	return ID{value: s}
}

// UnmarshalJSON accepts a JSON number, a JSON string or null.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ID{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode id: %w", err)
		}
		*id = StringID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decode id: %w", err)
	}
	*id = ID{value: n.String(), numeric: true}
	return nil
}

// MarshalJSON writes the id in the JSON type it arrived as. A blank id is null.
func (id ID) MarshalJSON() ([]byte, error) {
	switch {
	case id.IsZero():
		return []byte("null"), nil
	case id.numeric:
		return []byte(id.value), nil
	default:
		return json.Marshal(id.value)
	}
}

// MarshalYAML mirrors MarshalJSON.
func (id ID) MarshalYAML() (any, error) {
	switch {
	case id.IsZero():
		return nil, nil
	case id.numeric:
		tag := "!!int"
		if _, err := strconv.ParseInt(id.value, 10, 64); err != nil {
			tag = "!!float"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: id.value}, nil
	default:
		return id.value, nil
	}
}

// UnmarshalYAML accepts an int, float, string or null scalar.
func (id *ID) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("decode id: expected a scalar, got kind %d", node.Kind)
	}
	switch node.ShortTag() {
	case "!!null":
		*id = ID{}
	case "!!int", "!!float":
		*id = ID{value: node.Value, numeric: true}
	case "!!str":
		*id = StringID(node.Value)
	default:
		return fmt.Errorf("decode id: unsupported tag %s", node.ShortTag())
	}
	return nil
}

// Equal lets cmp compare ids without reaching into unexported fields.
func (id ID) Equal(other ID) bool { return id == other }

// IsZero reports whether the backend sent no id.
func (id ID) IsZero() bool { return id.value == "" }

// Numeric reports whether the id arrived as a JSON number.
func (id ID) Numeric() bool { return id.numeric }

func (id ID) String() string { return id.value }

// Display renders the id the way the UIs show it ("#42").
func (id ID) Display() string {
	if id.IsZero() {
		return "#?"
	}
	return "#" + id.value
}

// Incident is the record served by the incidents API.
type Incident struct {
	ID          ID         `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	Description string     `json:"description" yaml:"description"`
	Service     string     `json:"service,omitempty" yaml:"service,omitempty"`
	Status      string     `json:"status,omitempty" yaml:"status,omitempty"`
	Priority    string     `json:"priority,omitempty" yaml:"priority,omitempty"`
	AISeverity  string     `json:"ai_severity,omitempty" yaml:"ai_severity,omitempty"`
	AICategory  string     `json:"ai_category,omitempty" yaml:"ai_category,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// Severity returns the AI severity or NotAvailable.
func (i Incident) Severity() string { return OrNotAvailable(i.AISeverity) }

// Category returns the AI category or NotAvailable.
func (i Incident) Category() string { return OrNotAvailable(i.AICategory) }

// Classified reports whether the backend has assigned both labels.
func (i Incident) Classified() bool {
	return strings.TrimSpace(i.AISeverity) != "" && strings.TrimSpace(i.AICategory) != ""
}

// OrNotAvailable substitutes NotAvailable for a blank value.
func OrNotAvailable(v string) string {
	if strings.TrimSpace(v) == "" {
		return NotAvailable
	}
	return v
}

// CreateRequest is the body of a create call. Title and description are
// required; the rest are passed through when set.
type CreateRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Service     string `json:"service,omitempty"`
	Status      string `json:"status,omitempty" validate:"omitempty,oneof=open in_progress resolved closed"`
	Priority    string `json:"priority,omitempty" validate:"omitempty,oneof=low medium high critical"`
}

// Health is the payload of the backend health probe.
type Health struct {
	Status  string `json:"status" yaml:"status"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
}
