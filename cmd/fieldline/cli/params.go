// Copyright 2026 The Fieldline Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// FlagsFromParams creates a flag set bound to the tagged fields of
// params, which must be a pointer to a struct. Panics on malformed
// tags — that is a programming error, not runtime data.
//
// The usual pattern:
//
//	var params newParams
//	command := &cli.Command{
//	    Flags: func() *pflag.FlagSet {
//	        return cli.FlagsFromParams("new", &params)
//	    },
//	    Run: func(args []string) error {
//	        // params fields are populated after parsing
//	    },
//	}
func FlagsFromParams(name string, params any) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
	if err := BindFlags(params, flagSet); err != nil {
		panic(fmt.Sprintf("cli.FlagsFromParams(%q): %v", name, err))
	}
	return flagSet
}

// BindFlags registers one pflag entry per tagged field in params.
//
// Three struct tags control binding:
//
//   - flag:"name" or flag:"name,n" — long name plus optional
//     one-character shorthand; untagged fields are skipped
//   - desc:"help text" — the flag's help description
//   - default:"value" — default, parsed per the field's Go type
//
// Supported field types: string, bool, int, []string.
func BindFlags(params any, flagSet *pflag.FlagSet) error {
	value := reflect.ValueOf(params)
	if value.Kind() != reflect.Ptr || value.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("params must be a pointer to a struct, got %T", params)
	}

	return bindStructFlags(value.Elem(), flagSet)
}

func bindStructFlags(structValue reflect.Value, flagSet *pflag.FlagSet) error {
	structType := structValue.Type()

	for i := range structType.NumField() {
		field := structType.Field(i)
		fieldValue := structValue.Field(i)

		// Embedded structs contribute their tagged fields, so shared
		// flag groups can be reused across commands.
		if field.Anonymous && fieldValue.Kind() == reflect.Struct {
			if err := bindStructFlags(fieldValue, flagSet); err != nil {
				return err
			}
			continue
		}

		flagTag := field.Tag.Get("flag")
		if flagTag == "" {
			continue
		}

		name, shorthand, _ := strings.Cut(flagTag, ",")
		description := field.Tag.Get("desc")
		defaultString := field.Tag.Get("default")

		if !fieldValue.CanAddr() {
			return fmt.Errorf("field %s: not addressable", field.Name)
		}

		switch target := fieldValue.Addr().Interface().(type) {
		case *string:
			flagSet.StringVarP(target, name, shorthand, defaultString, description)

		case *bool:
			defaultValue := false
			if defaultString != "" {
				parsed, err := strconv.ParseBool(defaultString)
				if err != nil {
					return fmt.Errorf("field %s: default for --%s: %w", field.Name, name, err)
				}
				defaultValue = parsed
			}
			flagSet.BoolVarP(target, name, shorthand, defaultValue, description)

		case *int:
			defaultValue := 0
			if defaultString != "" {
				parsed, err := strconv.Atoi(defaultString)
				if err != nil {
					return fmt.Errorf("field %s: default for --%s: %w", field.Name, name, err)
				}
				defaultValue = parsed
			}
			flagSet.IntVarP(target, name, shorthand, defaultValue, description)

		case *[]string:
			var defaultValue []string
			if defaultString != "" {
				defaultValue = strings.Split(defaultString, ",")
			}
			flagSet.StringSliceVarP(target, name, shorthand, defaultValue, description)

		default:
			return fmt.Errorf("field %s: unsupported type %s for flag --%s",
				field.Name, fieldValue.Type(), name)
		}
	}

	return nil
}
