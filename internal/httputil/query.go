package httputil

import (
	"net/url"
	"reflect"
)

// GetURLFields returns the names of all fields of the filter that are
// set as query parameters in the URL.
//
// This makes it possible to tell an explicit zero value, e.g. "limit=0",
// apart from a parameter that was not passed at all.
func GetURLFields(url *url.URL, filter any) []string {
	var setFields []string

	query := url.Query()
	val := reflect.Indirect(reflect.ValueOf(filter))
	for i := 0; i < val.NumField(); i++ {
		param := val.Type().Field(i).Tag.Get("form")
		if param != "" && query.Has(param) {
			setFields = append(setFields, val.Type().Field(i).Name)
		}
	}

	return setFields
}
