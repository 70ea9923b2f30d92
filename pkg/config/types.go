package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/treeverse/ringview/pkg/seq"
)

// Strings is a []string that mapstructure can deserialize from a single string or from a list
// of strings.
type Strings []string

var (
	ourStringsType  = reflect.TypeOf(Strings{})
	stringType      = reflect.TypeOf("")
	stringSliceType = reflect.TypeOf([]string{})
	tierType        = reflect.TypeOf(seq.TierInput)
	tierSliceType   = reflect.TypeOf([]seq.Tier{})
	sourceKindType  = reflect.TypeOf(SourceSlice)
)

// DecodeStrings is a mapstructure.HookFuncType that decodes a single string value or a slice
// of strings into Strings.
func DecodeStrings(fromValue reflect.Value, toValue reflect.Value) (interface{}, error) {
	if toValue.Type() != ourStringsType {
		return fromValue.Interface(), nil
	}
	if fromValue.Type() == stringSliceType {
		return Strings(fromValue.Interface().([]string)), nil
	}
	if fromValue.Type() == stringType {
		return Strings(strings.Split(fromValue.String(), ",")), nil
	}
	return fromValue.Interface(), nil
}

// DecodeTier is a mapstructure.HookFuncType that decodes a tier name into a seq.Tier.
func DecodeTier(fromValue reflect.Value, toValue reflect.Value) (interface{}, error) {
	if toValue.Type() != tierType || fromValue.Type() != stringType {
		return fromValue.Interface(), nil
	}
	tier, err := seq.ParseTier(strings.TrimSpace(fromValue.String()))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadConfiguration, err)
	}
	return tier, nil
}

// DecodeTiers is a mapstructure.HookFuncType that decodes a comma-separated list of tier
// names into a []seq.Tier.
func DecodeTiers(fromValue reflect.Value, toValue reflect.Value) (interface{}, error) {
	if toValue.Type() != tierSliceType || fromValue.Type() != stringType {
		return fromValue.Interface(), nil
	}
	var tiers []seq.Tier
	for _, name := range strings.Split(fromValue.String(), ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		tier, err := DecodeTier(reflect.ValueOf(name), reflect.New(tierType).Elem())
		if err != nil {
			return nil, err
		}
		tiers = append(tiers, tier.(seq.Tier))
	}
	return tiers, nil
}

// SourceKind names the sequence type ringctl builds its input with.
type SourceKind string

const (
	SourceSlice    SourceKind = "slice"
	SourceList     SourceKind = "list"
	SourceLinked   SourceKind = "linked"
	SourceQueue    SourceKind = "queue"
	SourceIterator SourceKind = "iterator"
)

// SourceKinds lists every supported kind, strongest tier first.
var SourceKinds = []SourceKind{SourceSlice, SourceQueue, SourceList, SourceLinked, SourceIterator}

func ParseSourceKind(s string) (SourceKind, error) {
	for _, k := range SourceKinds {
		if strings.EqualFold(s, string(k)) {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownSource, s)
}

// DecodeSourceKind is a mapstructure.HookFuncType that validates source kind names.
func DecodeSourceKind(fromValue reflect.Value, toValue reflect.Value) (interface{}, error) {
	if toValue.Type() != sourceKindType || fromValue.Type() != stringType {
		return fromValue.Interface(), nil
	}
	return ParseSourceKind(fromValue.String())
}
