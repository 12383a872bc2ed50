package venue

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Venue represents a single venue record. Id is assigned by the remote
// store; an empty Id marks a record that has not been created yet.
type Venue struct {
	Id          string   `json:"id"`
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Capacity    Capacity `json:"capacity"`
}

// Clone returns a copy of v (nil safe).
func (v *Venue) Clone() *Venue {
	if v == nil {
		return nil
	}
	ret := *v
	return &ret
}

// IsNew reports whether v has no server assigned id.
func (v *Venue) IsNew() bool {
	return v == nil || v.Id == ""
}

// UnmarshalJSON accepts the legacy "Desc" key when "description" is absent.
func (v *Venue) UnmarshalJSON(data []byte) error {
	type plain Venue
	aux := struct {
		*plain
		Desc *string `json:"Desc"`
	}{plain: (*plain)(v)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if v.Description == "" && aux.Desc != nil {
		v.Description = *aux.Desc
	}
	return nil
}

// Capacity is a venue capacity. It decodes from JSON numbers as well as
// numeric strings, as emitted by form based clients.
type Capacity int

// ParseCapacity parses a form value; blank input yields zero and fractional
// values are truncated like JSON numbers.
func ParseCapacity(s string) (Capacity, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("capacity must be numeric: %q", s)
	}
	return Capacity(int(f)), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Capacity) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*c = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := ParseCapacity(s)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("invalid capacity %s: %w", data, err)
	}
	*c = Capacity(int(f))
	return nil
}

func (c Capacity) String() string {
	return strconv.Itoa(int(c))
}
