package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/pageza/recipeprep/backend/internal/grocery"
)

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return marshalJSON(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	*a = JSONBStringArray{}
	return scanJSON(value, a)
}

// IngredientList stores structured ingredients as a JSON array
type IngredientList []grocery.Ingredient

// Value implements the driver.Valuer interface
func (l IngredientList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return marshalJSON(l)
}

// Scan implements the sql.Scanner interface
func (l *IngredientList) Scan(value interface{}) error {
	*l = IngredientList{}
	return scanJSON(value, l)
}

// CategoryList stores a list's shopping categories as a JSON array
type CategoryList []grocery.Category

// Value implements the driver.Valuer interface
func (l CategoryList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return marshalJSON(l)
}

// Scan implements the sql.Scanner interface
func (l *CategoryList) Scan(value interface{}) error {
	*l = CategoryList{}
	return scanJSON(value, l)
}

func marshalJSON(v interface{}) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func scanJSON(value interface{}, dest interface{}) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported JSON column type %T", value)
	}
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, dest)
}
