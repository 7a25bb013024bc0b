package models

import "strings"

// Типы payload
const (
	PayloadCellEdit          = "cell_edit"
	PayloadSpecificationEdit = "specification_edit"
	PayloadItemCreate        = "item_create"
	PayloadItemDelete        = "item_delete"
)

// PeriodColumnPrefix префикс колонок временных периодов в таблице.
// Значение такой ячейки - объект {planned, actual}.
const PeriodColumnPrefix = "time_"

// Payload данные операции. Дискриминатор - поле "type".
type Payload map[string]any

// Type возвращает дискриминатор payload или пустую строку
func (p Payload) Type() string {
	t, _ := p["type"].(string)
	return t
}

// String возвращает строковое поле или пустую строку
func (p Payload) String(key string) string {
	s, _ := p[key].(string)
	return s
}

// Has проверяет наличие ключа (даже со значением nil)
func (p Payload) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// Int64 возвращает числовое поле как int64.
// Второе значение false, если поля нет или оно не число.
func (p Payload) Int64(key string) (int64, bool) {
	v, ok := p[key]
	if !ok {
		return 0, false
	}
	return ToInt64(v)
}

// IsPeriodColumn проверяет, что payload относится к колонке временного периода
func (p Payload) IsPeriodColumn() bool {
	return strings.HasPrefix(p.String("columnId"), PeriodColumnPrefix)
}

// Clone создает копию payload (вложенные map и slice копируются рекурсивно)
func (p Payload) Clone() Payload {
	if p == nil {
		return nil
	}
	clone := make(Payload, len(p))
	for k, v := range p {
		clone[k] = cloneValue(v)
	}
	return clone
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(val))
		for k, inner := range val {
			m[k] = cloneValue(inner)
		}
		return m
	case Payload:
		return val.Clone()
	case []any:
		s := make([]any, len(val))
		for i, inner := range val {
			s[i] = cloneValue(inner)
		}
		return s
	default:
		return v
	}
}

// ToInt64 приводит JSON-число (и целые типы Go) к int64
func ToInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case float32:
		return int64(n), true
	case float64:
		return int64(n), true
	case interface{ Int64() (int64, error) }:
		i, err := n.Int64()
		return i, err == nil
	}
	return 0, false
}

// IsNumber проверяет, что значение числовое
func IsNumber(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return true
	case interface{ Float64() (float64, error) }:
		return true
	}
	return false
}

// CellValue значение ячейки временного периода
type CellValue struct {
	Planned bool `json:"planned"` // Planned запланировано обслуживание
	Actual  bool `json:"actual"`  // Actual обслуживание выполнено
}

// NewCellEditPayload собирает payload для правки ячейки
func NewCellEditPayload(rowID, columnID string, value any, timestamp int64) Payload {
	if cv, ok := value.(CellValue); ok {
		value = map[string]any{"planned": cv.Planned, "actual": cv.Actual}
	}
	return Payload{
		"type":      PayloadCellEdit,
		"rowId":     rowID,
		"columnId":  columnID,
		"value":     value,
		"timestamp": timestamp,
	}
}

// NewSpecificationEditPayload собирает payload для правки спецификации строки
func NewSpecificationEditPayload(rowID string, specIndex int, key, value string, timestamp int64) Payload {
	return Payload{
		"type":      PayloadSpecificationEdit,
		"rowId":     rowID,
		"specIndex": specIndex,
		"key":       key,
		"value":     value,
		"timestamp": timestamp,
	}
}
