package model

import (
	"database/sql/driver"
	"encoding/json"
)

// ImageList is the ordered list of stored image paths of a product. It is
// persisted as a JSON array in a text column; an empty list is stored as NULL.
type ImageList []string

// EncodeImageList returns the storage form of l, or nil for an empty list.
func EncodeImageList(l ImageList) (*string, error) {
	if len(l) == 0 {
		return nil, nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

// DecodeImageList parses a stored value. Absent, empty or malformed input
// yields an empty list; it never fails.
func DecodeImageList(raw any) ImageList {
	var data []byte
	switch v := raw.(type) {
	case nil:
		return ImageList{}
	case string:
		data = []byte(v)
	case []byte:
		data = v
	case *string:
		if v == nil {
			return ImageList{}
		}
		data = []byte(*v)
	default:
		return ImageList{}
	}
	if len(data) == 0 {
		return ImageList{}
	}

	var out []string
	if err := json.Unmarshal(data, &out); err != nil || out == nil {
		return ImageList{}
	}
	return ImageList(out)
}

func (l ImageList) Value() (driver.Value, error) {
	s, err := EncodeImageList(l)
	if err != nil || s == nil {
		return nil, err
	}
	return *s, nil
}

func (l *ImageList) Scan(src any) error {
	*l = DecodeImageList(src)
	return nil
}

func (ImageList) GormDataType() string {
	return "text"
}

// MarshalJSON renders a nil list as [] rather than null.
func (l ImageList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}
