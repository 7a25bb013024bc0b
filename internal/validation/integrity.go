package validation

import (
	"time"

	"github.com/iudanet/gridsync/internal/models"
)

// Тексты нарушений. Каждое называет проблемное поле.
const (
	ViolationMissingRowID     = "rowId is required"
	ViolationMissingColumnID  = "columnId is required"
	ViolationMissingValue     = "value is required"
	ViolationMissingSpecIndex = "specIndex is required"
	ViolationInvalidSpecIndex = "specIndex must be a non-negative integer"
	ViolationEmptyKey         = "key must not be empty"
	ViolationEmptyValue       = "value must not be empty"
	ViolationTimestampType    = "timestamp must be a number"
	ViolationPlannedType      = "value.planned must be a boolean"
	ViolationActualType       = "value.actual must be a boolean"
)

// Check проверяет структуру payload перед отправкой на сервер или применением входящих данных.
// Правила применяются по порядку, нарушения собираются все (без short-circuit).
func Check(payload models.Payload) models.DataIntegrityCheck {
	return CheckAt(payload, time.Now())
}

// CheckAt то же, что Check, но с явным временем проверки
func CheckAt(payload models.Payload, now time.Time) models.DataIntegrityCheck {
	violations := make([]string, 0)

	switch payload.Type() {
	case models.PayloadCellEdit:
		if !present(payload, "rowId") {
			violations = append(violations, ViolationMissingRowID)
		}
		if !present(payload, "columnId") {
			violations = append(violations, ViolationMissingColumnID)
		}
		// null допустим (очистка ячейки), отсутствие ключа - нет
		if !payload.Has("value") {
			violations = append(violations, ViolationMissingValue)
		}
	case models.PayloadSpecificationEdit:
		if !present(payload, "rowId") {
			violations = append(violations, ViolationMissingRowID)
		}
		if !payload.Has("specIndex") || payload["specIndex"] == nil {
			violations = append(violations, ViolationMissingSpecIndex)
		} else if !isNonNegativeInteger(payload["specIndex"]) {
			violations = append(violations, ViolationInvalidSpecIndex)
		}
		if !present(payload, "key") {
			violations = append(violations, ViolationEmptyKey)
		}
		if !present(payload, "value") {
			violations = append(violations, ViolationEmptyValue)
		}
	}

	if ts, ok := payload["timestamp"]; ok && !models.IsNumber(ts) {
		violations = append(violations, ViolationTimestampType)
	}

	if payload.Type() == models.PayloadCellEdit && payload.IsPeriodColumn() {
		if value, ok := periodValue(payload["value"]); ok {
			if _, ok := value["planned"].(bool); !ok {
				violations = append(violations, ViolationPlannedType)
			}
			if _, ok := value["actual"].(bool); !ok {
				violations = append(violations, ViolationActualType)
			}
		}
	}

	return models.DataIntegrityCheck{
		IsValid:    len(violations) == 0,
		Violations: violations,
		CheckedAt:  now,
	}
}

// periodValue приводит значение ячейки периода к map.
// Остальные типы (null, строка) правилами флагов не проверяются.
func periodValue(v any) (map[string]any, bool) {
	switch value := v.(type) {
	case map[string]any:
		return value, true
	case models.Payload:
		return value, true
	case models.CellValue:
		return map[string]any{"planned": value.Planned, "actual": value.Actual}, true
	case *models.CellValue:
		if value == nil {
			return nil, false
		}
		return map[string]any{"planned": value.Planned, "actual": value.Actual}, true
	}
	return nil, false
}

// present проверяет, что ключ есть и значение не nil и не пустая строка
func present(payload models.Payload, key string) bool {
	v, ok := payload[key]
	if !ok || v == nil {
		return false
	}
	if s, isString := v.(string); isString && s == "" {
		return false
	}
	return true
}

func isNonNegativeInteger(v any) bool {
	switch n := v.(type) {
	case int:
		return n >= 0
	case int32:
		return n >= 0
	case int64:
		return n >= 0
	case float64:
		return n >= 0 && n == float64(int64(n))
	case float32:
		return n >= 0 && n == float32(int64(n))
	}
	i, ok := models.ToInt64(v)
	return ok && i >= 0
}
