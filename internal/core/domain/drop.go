// Package domain defines the core domain models for kappa.
package domain

import (
	"strconv"
	"strings"
)

// DropType is the purchase behaviour of a drop.
type DropType string

const (
	DropTypeInitialLifetime DropType = "initial-lifetime"
	DropTypePaidLifetime    DropType = "paid-lifetime"
	DropTypeInitialRenewal  DropType = "initial-renewal"
	DropTypePaidRenewal     DropType = "paid-renewal"
)

// DropTypes lists every valid drop type in display order.
var DropTypes = []DropType{
	DropTypeInitialLifetime,
	DropTypePaidLifetime,
	DropTypeInitialRenewal,
	DropTypePaidRenewal,
}

// Valid reports whether t is one of the four known drop types.
func (t DropType) Valid() bool {
	switch t {
	case DropTypeInitialLifetime, DropTypePaidLifetime, DropTypeInitialRenewal, DropTypePaidRenewal:
		return true
	default:
		return false
	}
}

// ParseDropType validates s as a drop type. Matching is exact.
func ParseDropType(s string) (DropType, error) {
	t := DropType(s)
	if !t.Valid() {
		return "", ErrInvalidDropType.WithDetails(s)
	}
	return t, nil
}

// DropField names a single editable drop attribute.
type DropField string

const (
	FieldName   DropField = "name"
	FieldParam  DropField = "param"
	FieldSecret DropField = "secret"
	FieldType   DropField = "type"
	FieldStock  DropField = "stock"
)

// DropFields lists every editable field in display order.
var DropFields = []DropField{FieldName, FieldParam, FieldSecret, FieldType, FieldStock}

// ParseDropField validates s as an editable field name.
func ParseDropField(s string) (DropField, error) {
	for _, f := range DropFields {
		if string(f) == s {
			return f, nil
		}
	}
	return "", ErrInvalidDropField.WithDetails(s)
}

// ParseStock parses a base-10 stock value that fits in 32 bits.
func ParseStock(s string) (int32, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, ErrInvalidStock.WithDetails(s).WithCause(err)
	}
	return int32(n), nil
}

// Drop is a purchasable item configuration as stored by the drop service.
type Drop struct {
	Name      string   `json:"name" yaml:"name"`
	Param     string   `json:"param" yaml:"param"`
	Secret    string   `json:"secret" yaml:"secret"`
	Type      DropType `json:"type" yaml:"type"`
	Stock     int32    `json:"stock" yaml:"stock"`
	Purchased int32    `json:"purchased" yaml:"purchased"`
}

// DropKeys are the JSON keys a drop record must carry.
var DropKeys = []string{"name", "param", "secret", "type", "stock", "purchased"}

// DropCreateRequest is the body of a create call. The service starts
// purchased at zero.
type DropCreateRequest struct {
	Name   string   `json:"name"`
	Param  string   `json:"param"`
	Secret string   `json:"secret"`
	Type   DropType `json:"type"`
	Stock  int32    `json:"stock"`
}

// DropEditRequest patches one field of the named drop.
// Value holds an int32 for FieldStock and a string otherwise.
type DropEditRequest struct {
	Name     string    `json:"name"`
	Argument DropField `json:"argument"`
	Value    any       `json:"value"`
}

// NewDropEditRequest validates raw against field and builds the typed patch.
func NewDropEditRequest(name string, field DropField, raw string) (DropEditRequest, error) {
	req := DropEditRequest{Name: name, Argument: field}

	switch field {
	case FieldName, FieldParam, FieldSecret:
		req.Value = raw
	case FieldType:
		t, err := ParseDropType(raw)
		if err != nil {
			return DropEditRequest{}, err
		}
		req.Value = string(t)
	case FieldStock:
		n, err := ParseStock(raw)
		if err != nil {
			return DropEditRequest{}, err
		}
		req.Value = n
	default:
		return DropEditRequest{}, ErrInvalidDropField.WithDetails(string(field))
	}

	return req, nil
}

// DeleteRequest names the drop to remove.
type DeleteRequest struct {
	Name string `json:"name"`
}

// OperationResult is the service reply to create and delete.
type OperationResult struct {
	Success bool `json:"success" yaml:"success"`
}

// EditResult is the service reply to edit. Message carries the updated drop
// when the service returns one; any other message is ignored.
type EditResult struct {
	Success bool  `json:"success" yaml:"success"`
	Message *Drop `json:"message,omitempty" yaml:"message,omitempty"`
}

// JoinDropTypes renders the valid types for help and error text.
func JoinDropTypes(sep string) string {
	names := make([]string, len(DropTypes))
	for i, t := range DropTypes {
		names[i] = string(t)
	}
	return strings.Join(names, sep)
}
