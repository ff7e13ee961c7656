package validator

import "github.com/dmitrymomot/formkit/pkg/form"

// Validators returns the named validator set for form.WithValidators.
//
//	required      not nil and not ""
//	equals        value, not
//	compare       field, not
//	email
//	number        min, max
//	integer       min, max
//	string        min, max (rune length)
//	regex         pattern ("/expr/flags" or raw RE2)
//	in            values, not
//	url           schemes
//	uuid
//	boolean
//	alpha
//	alphanumeric
//	date          layout (Go reference layout, default 2006-01-02)
func Validators() form.Registry[form.ValidatorFunc] {
	return form.Registry[form.ValidatorFunc]{
		"required":     Required,
		"equals":       Equals,
		"compare":      Compare,
		"email":        Email,
		"number":       Number,
		"integer":      Integer,
		"string":       String,
		"regex":        Regex,
		"in":           In,
		"url":          URL,
		"uuid":         UUID,
		"boolean":      Boolean,
		"alpha":        Alpha,
		"alphanumeric": Alphanumeric,
		"date":         Date,
	}
}
