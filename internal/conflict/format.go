package conflict

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/iudanet/gridsync/internal/models"
)

// FormatValue приводит значение ячейки к строке для отображения.
// Ячейки периодов отображаются как "planned"/"actual"/"planned+actual"/"-".
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case map[string]any:
		if planned, ok := val["planned"].(bool); ok {
			actual, _ := val["actual"].(bool)
			return formatPeriod(planned, actual)
		}
		return formatMap(val)
	case models.Payload:
		return formatMap(val)
	default:
		return fmt.Sprint(val)
	}
}

func formatPeriod(planned, actual bool) string {
	switch {
	case planned && actual:
		return "planned+actual"
	case planned:
		return "planned"
	case actual:
		return "actual"
	default:
		return "-"
	}
}

func formatMap(m map[string]any) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+FormatValue(m[k]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Summary короткое описание конфликта для вывода в CLI
func Summary(c *models.SyncConflict) string {
	remote := "<not loaded>"
	if c.RemoteData != nil {
		remote = FormatValue(c.RemoteData["value"])
	}
	return fmt.Sprintf("[%s/%s] %s: local=%s remote=%s",
		c.Type, c.Severity, c.Description, FormatValue(c.LocalData["value"]), remote)
}
