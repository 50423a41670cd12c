package kv

import (
	"fmt"
	"reflect"
	"strconv"
	"time"
)

// KeyValue represents typed log field (a key-value pair). Use one of constructors below.
type KeyValue struct {
	ftype FieldType
	key   string

	vint int64
	vstr string
	vany interface{}
}

type FieldType int

const (
	InvalidType FieldType = iota
	IntType
	Int64Type
	StringType
	BoolType
	DurationType
	StringsType
	ErrorType
	AnyType
	StringerType
	endType
)

// Type returns type of the field.
func (f KeyValue) Type() FieldType {
	return f.ftype
}

// Key returns field key.
func (f KeyValue) Key() string {
	return f.key
}

// StringValue is a value getter for fields with StringType type
func (f KeyValue) StringValue() string {
	f.checkType(StringType)

	return f.vstr
}

// IntValue is a value getter for fields with IntType type
func (f KeyValue) IntValue() int {
	f.checkType(IntType)

	return int(f.vint)
}

// Int64Value is a value getter for fields with Int64Type type
func (f KeyValue) Int64Value() int64 {
	f.checkType(Int64Type)

	return f.vint
}

// BoolValue is a value getter for fields with BoolType type
func (f KeyValue) BoolValue() bool {
	f.checkType(BoolType)

	return f.vint != 0
}

// DurationValue is a value getter for fields with DurationType type
func (f KeyValue) DurationValue() time.Duration {
	f.checkType(DurationType)

	return time.Nanosecond * time.Duration(f.vint)
}

// StringsValue is a value getter for fields with StringsType type
func (f KeyValue) StringsValue() []string {
	f.checkType(StringsType)
	if f.vany == nil {
		return nil
	}
	val, _ := f.vany.([]string)

	return val
}

// ErrorValue is a value getter for fields with ErrorType type
func (f KeyValue) ErrorValue() error {
	f.checkType(ErrorType)
	if f.vany == nil {
		return nil
	}
	val, _ := f.vany.(error)

	return val
}

// AnyValue is a value getter for fields with AnyType type
func (f KeyValue) AnyValue() interface{} {
	switch f.ftype {
	case AnyType:
		return f.vany
	case IntType:
		return f.IntValue()
	case Int64Type:
		return f.Int64Value()
	case StringType:
		return f.StringValue()
	case BoolType:
		return f.BoolValue()
	case DurationType:
		return f.DurationValue()
	case StringsType:
		return f.StringsValue()
	case ErrorType:
		return f.ErrorValue()
	case StringerType:
		return f.Stringer()
	default:
		panic(fmt.Sprintf("unknown FieldType %d", f.ftype))
	}
}

// Stringer is a value getter for fields with StringerType type
func (f KeyValue) Stringer() fmt.Stringer {
	f.checkType(StringerType)
	if f.vany == nil {
		return nil
	}
	val, _ := f.vany.(fmt.Stringer)

	return val
}

// Panics on type mismatch
func (f KeyValue) checkType(want FieldType) {
	if f.ftype != want {
		panic(fmt.Sprintf("bad type. have: %s, want: %s", f.ftype, want))
	}
}

// Returns default string representation of this field
func (f KeyValue) String() string {
	switch f.ftype {
	case IntType, Int64Type:
		return strconv.FormatInt(f.vint, 10)
	case StringType:
		return f.vstr
	case BoolType:
		return strconv.FormatBool(f.BoolValue())
	case DurationType:
		return f.DurationValue().String()
	case StringsType:
		return fmt.Sprintf("%v", f.StringsValue())
	case ErrorType:
		if f.vany == nil || f.vany.(error) == nil {
			return "<nil>"
		}

		return f.ErrorValue().Error()
	case AnyType:
		if f.vany == nil {
			return "<nil>"
		}
		if v := reflect.ValueOf(f.vany); v.Type().Kind() == reflect.Ptr {
			if v.IsNil() {
				return "<nil>"
			}

			return v.Type().String() + "(" + fmt.Sprint(v.Elem()) + ")"
		}

		return fmt.Sprint(f.vany)
	case StringerType:
		return f.Stringer().String()
	default:
		panic(fmt.Sprintf("unknown FieldType %d", f.ftype))
	}
}

// String constructs field with a given key and value
func String(key, value string) KeyValue {
	return KeyValue{ftype: StringType, key: key, vstr: value}
}

// Int constructs field with a given key and value
func Int(key string, value int) KeyValue {
	return KeyValue{ftype: IntType, key: key, vint: int64(value)}
}

// Int64 constructs field with a given key and value
func Int64(key string, value int64) KeyValue {
	return KeyValue{ftype: Int64Type, key: key, vint: value}
}

// Bool constructs field with a given key and value
func Bool(key string, value bool) KeyValue {
	var byteValue int64
	if value {
		byteValue = 1
	}

	return KeyValue{ftype: BoolType, key: key, vint: byteValue}
}

// Duration constructs field with a given key and value
func Duration(key string, value time.Duration) KeyValue {
	return KeyValue{ftype: DurationType, key: key, vint: value.Nanoseconds()}
}

// Strings constructs field with a given key and value
func Strings(key string, value []string) KeyValue {
	return KeyValue{ftype: StringsType, key: key, vany: value}
}

// NamedError constructs field of error type
func NamedError(key string, value error) KeyValue {
	return KeyValue{ftype: ErrorType, key: key, vany: value}
}

// Error is the same as NamedError("error", value)
func Error(value error) KeyValue {
	return NamedError("error", value)
}

// Any constructs untyped field.
func Any(key string, value interface{}) KeyValue {
	return KeyValue{ftype: AnyType, key: key, vany: value}
}

// Stringer constructs field of Stringer type
func Stringer(key string, value fmt.Stringer) KeyValue {
	return KeyValue{ftype: StringerType, key: key, vany: value}
}

func (ft FieldType) String() (typeName string) {
	switch ft {
	case IntType:
		typeName = "int"
	case Int64Type:
		typeName = "int64"
	case StringType:
		typeName = "string"
	case BoolType:
		typeName = "bool"
	case DurationType:
		typeName = "time.Duration"
	case StringsType:
		typeName = "[]string"
	case ErrorType:
		typeName = "error"
	case AnyType:
		typeName = "any"
	case StringerType:
		typeName = "stringer"
	case endType:
		typeName = "endtype"
	default:
		panic("not implemented")
	}

	return typeName
}
