package util

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// FieldError คือหนึ่งรายการใน errors array ของ validation response
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// RegisterTagNameFunc ทำให้ validator รายงานชื่อฟิลด์ตาม json tag
// แทนชื่อฟิลด์ของ struct
func RegisterTagNameFunc() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func BindingErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "body", Message: MsgInvalidData}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "กรุณากรอกข้อมูล"
	case "email":
		return "รูปแบบอีเมลไม่ถูกต้อง"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("ต้องมีอย่างน้อย %s ตัวอักษร", fe.Param())
		}
		return fmt.Sprintf("ต้องมีอย่างน้อย %s รายการ", fe.Param())
	case "max":
		return fmt.Sprintf("ต้องไม่เกิน %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("ต้องเป็นค่าใดค่าหนึ่งใน: %s", fe.Param())
	case "gte":
		return fmt.Sprintf("ต้องมากกว่าหรือเท่ากับ %s", fe.Param())
	case "lte":
		return fmt.Sprintf("ต้องน้อยกว่าหรือเท่ากับ %s", fe.Param())
	default:
		return MsgInvalidData
	}
}
