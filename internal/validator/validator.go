// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// supportedCurrencies is the fixed display-currency set the settings UI offers.
var supportedCurrencies = map[string]bool{
	"INR": true, "USD": true, "EUR": true,
	"GBP": true, "JPY": true, "CNY": true,
}

// IsSupportedCurrency reports whether the currency code is in the supported set.
func IsSupportedCurrency(code string) bool {
	return supportedCurrencies[code]
}

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
		_ = v.RegisterValidation("category_type", validateCategoryType)
		_ = v.RegisterValidation("time_frame", validateTimeFrame)
		_ = v.RegisterValidation("currency", validateCurrency)
	}
}

func validateTransactionType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "income", "expense":
		return true
	}
	return false
}

func validateCategoryType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "income", "expense":
		return true
	}
	return false
}

func validateTimeFrame(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "month", "year":
		return true
	}
	return false
}

func validateCurrency(fl validator.FieldLevel) bool {
	return supportedCurrencies[fl.Field().String()]
}
