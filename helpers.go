package parc

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

///////////////////////////////////////////////////////////////////////////////
// Helpers
///////////////////////////////////////////////////////////////////////////////

// timeLayouts are tried in order when a binding is converted to time.Time.
var timeLayouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	time.RFC1123,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"15:04:05",
}

// assignValue stores a bound value into field.
//
// Values assignable to the field are stored as is. Strings are converted
// textually with setFieldValue. Other values are converted with reflection
// when Go allows it, except numbers into strings.
func assignValue(field reflect.Value, value any) error {
	if value == nil {
		field.SetZero()
		return nil
	}

	v := reflect.ValueOf(value)
	if v.Type().AssignableTo(field.Type()) {
		field.Set(v)
		return nil
	}

	if s, ok := value.(string); ok {
		return setFieldValue(field, s)
	}

	if v.CanConvert(field.Type()) &&
		(field.Kind() != reflect.String || v.Kind() == reflect.String) {
		field.Set(v.Convert(field.Type()))
		return nil
	}

	return fmt.Errorf("cannot assign %T to field of type %s", value, field.Type())
}

// Set field value with type conversion
//
// Currently supports:
//   - string to string
//   - string to int (with overflow checking)
//   - string to uint (with overflow checking)
//   - string to bool
//   - string to float and complex (with overflow checking)
//   - string to uuid.UUID
//   - string to time.Time
//   - string to []byte (raw byte slice)
//   - TextUnmarshaler support for custom types
//   - Interface{} support for any type
func setFieldValue(field reflect.Value, value string) error {
	if value == "" {
		return handleEmptyValue(field)
	}

	if t := field.Type(); t == UUIDType || t == TimeType {
		return setSpecialValue(field, value)
	}

	if field.CanAddr() {
		if unmarshaler, ok := field.Addr().Interface().(encoding.TextUnmarshaler); ok {
			return unmarshaler.UnmarshalText([]byte(value))
		}
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return setIntValue(field, value)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return setUintValue(field, value)
	case reflect.Float32, reflect.Float64:
		return setFloatValue(field, value)
	case reflect.Complex64, reflect.Complex128:
		return setComplexValue(field, value)
	case reflect.Bool:
		return setBoolValue(field, value)
	case reflect.Slice:
		return setSliceValue(field, value)
	case reflect.Array, reflect.Struct:
		return setSpecialValue(field, value)
	case reflect.Interface:
		return setInterfaceValue(field, value)
	default:
		return fmt.Errorf("unsupported field type: %s", field.Type())
	}
}

// handleEmptyValue handles empty string values for different field types
func handleEmptyValue(field reflect.Value) error {
	switch field.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Ptr, reflect.Interface:
		field.SetZero()
		return nil
	default:
		return fmt.Errorf("cannot set empty value for field type: %s", field.Type())
	}
}

// setIntValue sets integer field values with overflow checking
func setIntValue(field reflect.Value, value string) error {
	intValue, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fmt.Errorf("error converting value to int: %w", err)
	}
	if field.OverflowInt(intValue) {
		return fmt.Errorf("value %d overflows %s", intValue, field.Type())
	}
	field.SetInt(intValue)
	return nil
}

// setUintValue sets unsigned integer field values with overflow checking
func setUintValue(field reflect.Value, value string) error {
	uintValue, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return fmt.Errorf("error converting value to uint: %w", err)
	}
	if field.OverflowUint(uintValue) {
		return fmt.Errorf("value %d overflows %s", uintValue, field.Type())
	}
	field.SetUint(uintValue)
	return nil
}

// setFloatValue sets float field values with overflow checking
func setFloatValue(field reflect.Value, value string) error {
	floatValue, err := strconv.ParseFloat(value, field.Type().Bits())
	if err != nil {
		return fmt.Errorf("error converting value to float: %w", err)
	}
	if field.OverflowFloat(floatValue) {
		return fmt.Errorf("value %f overflows %s", floatValue, field.Type())
	}
	field.SetFloat(floatValue)
	return nil
}

// setComplexValue sets complex field values
func setComplexValue(field reflect.Value, value string) error {
	complexValue, err := strconv.ParseComplex(value, field.Type().Bits())
	if err != nil {
		return fmt.Errorf("error converting value to complex: %w", err)
	}
	if field.OverflowComplex(complexValue) {
		return fmt.Errorf("value %v overflows %s", complexValue, field.Type())
	}
	field.SetComplex(complexValue)
	return nil
}

// setBoolValue accepts true/false, 1/0, yes/no and on/off in any case,
// then falls back to strconv.ParseBool.
func setBoolValue(field reflect.Value, value string) error {
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		field.SetBool(true)
		return nil
	case "false", "0", "no", "off":
		field.SetBool(false)
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("error converting value to bool: %w", err)
	}
	field.SetBool(boolValue)
	return nil
}

// setSliceValue sets []byte fields. Other slice types are not converted
// from text.
func setSliceValue(field reflect.Value, value string) error {
	if !field.Type().ConvertibleTo(BytesType) || field.Type().Elem().Kind() != reflect.Uint8 {
		return fmt.Errorf("unsupported slice type: %s", field.Type())
	}
	field.Set(reflect.ValueOf([]byte(value)).Convert(field.Type()))
	return nil
}

// setSpecialValue handles array and struct types with a textual form.
func setSpecialValue(field reflect.Value, value string) error {
	switch field.Type() {
	case UUIDType:
		uuidValue, err := uuid.Parse(value)
		if err != nil {
			return fmt.Errorf("error converting value to UUID: %w", err)
		}
		field.Set(reflect.ValueOf(uuidValue))
		return nil
	case TimeType:
		timeValue, err := parseTime(value)
		if err != nil {
			return err
		}
		field.Set(reflect.ValueOf(timeValue))
		return nil
	default:
		return fmt.Errorf("unsupported %s type: %s", field.Kind(), field.Type())
	}
}

func parseTime(value string) (time.Time, error) {
	var err error
	for _, layout := range timeLayouts {
		var t time.Time
		if t, err = time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("error converting value to time.Time: %w", err)
}

// setInterfaceValue sets interface{} field values
func setInterfaceValue(field reflect.Value, value string) error {
	if field.NumMethod() != 0 {
		return fmt.Errorf("cannot set value for interface with methods: %s", field.Type())
	}
	field.Set(reflect.ValueOf(value))
	return nil
}
