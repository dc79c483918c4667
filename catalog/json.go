package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/poiesic/molten/core"
)

type document struct {
	Colors []itemJSON `json:"colors"`
}

type itemJSON struct {
	ID           string     `json:"id"`
	Code         scalar     `json:"code"`
	Manufacturer string     `json:"manufacturer"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Synonyms     stringList `json:"synonyms"`
	Tags         stringList `json:"tags"`
	COE          scalar     `json:"coe"`
}

func (j *itemJSON) toItem() *core.Item {
	item := &core.Item{
		Code:         string(j.Code),
		Manufacturer: j.Manufacturer,
		Name:         j.Name,
		Description:  j.Description,
		Synonyms:     []string(j.Synonyms),
		Tags:         []string(j.Tags),
		COE:          string(j.COE),
	}
	if id := strings.TrimSpace(j.ID); id != "" {
		item.Id = core.IDFromContent(id)
	}
	core.NormalizeItem(item)
	return item
}

// scalar accepts a JSON string or number and keeps its text form.
type scalar string

func (s *scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = scalar(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*s = scalar(num.String())
	return nil
}

// stringList accepts a JSON array of strings or a comma separated string.
type stringList []string

func (l *stringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}
	if len(data) > 0 && data[0] == '[' {
		var values []string
		if err := json.Unmarshal(data, &values); err != nil {
			return err
		}
		*l = values
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("expected string or array of strings, got %s", data)
	}
	*l = splitList(str)
	return nil
}

// splitList splits `"clear", "transparent"` style values into their parts.
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Trim(strings.TrimSpace(p), `"`)
		if p = strings.TrimSpace(p); p != "" {
			values = append(values, p)
		}
	}
	return values
}

// decodeItems accepts either {"colors": [...]} or a bare array.
func decodeItems(data []byte) ([]itemJSON, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidCatalog)
	}

	switch data[0] {
	case '[':
		var items []itemJSON
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
		}
		return items, nil
	case '{':
		var doc document
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
		}
		return doc.Colors, nil
	default:
		return nil, fmt.Errorf("%w: expected object or array", ErrInvalidCatalog)
	}
}
