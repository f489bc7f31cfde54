package helper

import (
	"fmt"
	"reflect"
	"strings"
)

// ValidateStructIsPopulated will check if any mandatory fields in cfg are missing.
// Struct tag mandatory:"yes" marks a field as required and errorTxt:"..." supplies the text to report.
// Nested structs are checked too.
func ValidateStructIsPopulated(cfg interface{}) error {
	errs := make([]string, 0)
	GetStructErrorTxt4UnsetFields(cfg, &errs)
	if len(errs) > 0 {
		return fmt.Errorf("please supply values for %v", strings.Join(errs, ", "))
	}
	return nil
}

// GetStructErrorTxt4UnsetFields reflects over struct i and appends the errorTxt tag of every exported,
// mandatory field that holds its zero value.
func GetStructErrorTxt4UnsetFields(i interface{}, errTags *[]string) {
	val := reflect.ValueOf(i)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return
	}
	typ := val.Type()
	for idx := 0; idx < val.NumField(); idx++ {
		field := typ.Field(idx)
		if field.PkgPath != "" { // unexported
			continue
		}
		f := val.Field(idx)
		switch f.Kind() {
		case reflect.Struct:
			GetStructErrorTxt4UnsetFields(f.Interface(), errTags)
		case reflect.Map, reflect.Slice, reflect.Ptr, reflect.Interface, reflect.Func, reflect.Chan:
			// only scalar fields are checked.
		default:
			if field.Tag.Get("mandatory") == "yes" && f.IsZero() {
				*errTags = append(*errTags, field.Tag.Get("errorTxt"))
			}
		}
	}
}
