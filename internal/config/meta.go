package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings.
// It stays in sync automatically when fields are added to Settings.
func GetSettingsExample() map[string]any {
	t := reflect.TypeOf(Settings{})
	example := make(map[string]any, t.NumField())

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" || jsonTag == "-" {
			continue
		}

		jsonName := strings.Split(jsonTag, ",")[0]
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return fieldName == "debug"
		case reflect.Int:
			switch fieldName {
			case "error_clear_delay":
				return DefaultErrorClearDelay
			case "max_log_files":
				return 1000
			}
			return 10
		}
	}

	switch t.Kind() {
	case reflect.Map:
		if t.Name() == "KeyBindingsConfig" {
			return map[string]any{
				"copy_url": "c",
				"help":     []string{"H", "?"},
			}
		}
	case reflect.String:
		switch fieldName {
		case "authorized_keys":
			return "~/.ssh/authorized_keys"
		case "server_host":
			return DefaultServerHost
		case "server_port":
			return DefaultServerPort
		case "theme":
			return "dark"
		default:
			return "example"
		}
	case reflect.Slice:
		if t.Elem().Kind() == reflect.String {
			if fieldName == "catalogs" {
				return []string{"~/.hookhub/hooks.json", "~/team/hooks.toml"}
			}
			return []string{"example1", "example2"}
		}
	}

	return nil
}
