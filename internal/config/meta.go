package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings
// This automatically stays in sync when new fields are added to Settings
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		// Extract the JSON field name (before comma)
		jsonName := strings.Split(jsonTag, ",")[0]

		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return fieldName != "debug"
		case reflect.Int:
			switch fieldName {
			case "break_minutes":
				return 5
			case "cycles":
				return 4
			case "max_log_files":
				return 200
			case "tick_millis":
				return DefaultTickMillis
			case "work_minutes":
				return 25
			}
			return 10
		}
	}

	switch t.Kind() {
	case reflect.String:
		switch fieldName {
		case "activity_log":
			return "~/.perry/user_activity_log.csv"
		case "default_preset":
			return "pomodoro"
		case "hosts_file":
			return DefaultHostsPath()
		case "redirect_ip":
			return DefaultRedirectIP
		default:
			return "example"
		}
	case reflect.Slice:
		if t.Elem().Kind() == reflect.String {
			if fieldName == "extra_sites" {
				return []string{"news.ycombinator.com", "twitch.tv"}
			}
			return []string{"example1", "example2"}
		}
	}

	return nil
}
