// Package model declares the persisted record types and their serialized
// views.
package model

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/d60-Lab/social-schema/pkg/dberr"
)

// Models 按外键依赖顺序返回全部模型
func Models() []any {
	return []any{&User{}, &Post{}, &Media{}, &Comment{}, &Follower{}}
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func lengthValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		// report columns by their serialized names
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// checkLengths enforces varchar bounds on drivers that do not, such as sqlite,
// and rejects empty required columns on every write path, updates included.
func checkLengths(table string, v any) error {
	err := lengthValidator().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	if fe.Tag() == "required" {
		return &dberr.ConstraintError{
			Kind:   dberr.KindNotNull,
			Table:  table,
			Column: fe.Field(),
			Err:    errors.New("value is required"),
		}
	}
	return &dberr.ConstraintError{
		Kind:   dberr.KindTooLong,
		Table:  table,
		Column: fe.Field(),
		Err:    errors.New("value exceeds " + fe.Param() + " characters"),
	}
}

func deref(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
