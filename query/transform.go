package query

import "reflect"

// Transform identifies a transformation function used to transform results
// from a row to an application model structure. Source is the structure
// prepared from the database row and Destination is the transformed output.
//
// Three binding strategies are provided: [Identity] returns rows unchanged,
// [Fields] binds by matching field names and [Setters] binds through
// Set-prefixed methods. An ordinary function or closure serves as a
// constructor binding.
type Transform[Source, Destination any] func(Source) Destination

// The Identity function is a [Transform] function that returns the original
// value. This function can be used as the transform when the caller wishes
// to receive the row value itself.
func Identity[Source any](src Source) Source { return src }

// The Fields function is a [Transform] function that copies source fields to
// identically named destination fields of the same type. Nested structs are
// copied recursively. Fields without a match are left at their zero value.
func Fields[Source, Destination any](src Source) Destination {
	var dst Destination
	bindFields(reflect.ValueOf(src), reflect.ValueOf(&dst).Elem())
	return dst
}

// bindFields performs the field binding. sval is the reflect value of the
// source variable and dval is the reflect value of the destination variable.
// The destination value must be settable.
func bindFields(sval reflect.Value, dval reflect.Value) {
	styp := sval.Type()
	dtyp := dval.Type()
	if sval.Kind() != reflect.Struct || dval.Kind() != reflect.Struct {
		panic("source and destination must be struct types")
	}

	for i := 0; i < styp.NumField(); i++ {
		sf := styp.Field(i)
		df, ok := dtyp.FieldByName(sf.Name)
		if !ok {
			continue
		}
		if df.Type.Kind() == reflect.Struct && sf.Type.Kind() == reflect.Struct && df.Type != sf.Type {
			bindFields(sval.Field(i), dval.FieldByIndex(df.Index))
			continue
		}
		if df.Type != sf.Type {
			continue
		}
		dval.FieldByIndex(df.Index).Set(sval.Field(i))
	}
}

// The Setters function is a [Transform] function that binds source fields by
// calling Set-prefixed methods on the destination. A source field Username
// binds through a method SetUsername accepting a single argument of the
// field type. Fields without a matching setter are skipped.
func Setters[Source, Destination any](src Source) Destination {
	var dst Destination
	sval := reflect.ValueOf(src)
	if sval.Kind() != reflect.Struct {
		panic("source must be a struct type")
	}
	dptr := reflect.ValueOf(&dst)

	styp := sval.Type()
	for i := 0; i < styp.NumField(); i++ {
		sf := styp.Field(i)
		setter := dptr.MethodByName("Set" + sf.Name)
		if !setter.IsValid() {
			continue
		}
		mt := setter.Type()
		if mt.NumIn() != 1 || mt.In(0) != sf.Type {
			continue
		}
		setter.Call([]reflect.Value{sval.Field(i)})
	}
	return dst
}
