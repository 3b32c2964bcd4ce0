package models

import (
	"sync"
	"testing"

	"gorm.io/gorm/schema"
)

func TestActiveColumnsHaveNoDefault(t *testing.T) {
	cache := &sync.Map{}

	for _, model := range []interface{}{&Location{}, &Barber{}, &Service{}} {
		s, err := schema.Parse(model, cache, schema.NamingStrategy{})
		if err != nil {
			t.Fatalf("parse %T: %v", model, err)
		}

		field := s.LookUpField("active")
		if field == nil {
			t.Fatalf("%T: active column missing", model)
		}
		// A zero false must reach the INSERT instead of being replaced by a default.
		if field.HasDefaultValue {
			t.Fatalf("%T: active must not carry a default value", model)
		}
		if !field.NotNull {
			t.Fatalf("%T: active must be NOT NULL", model)
		}
	}
}
