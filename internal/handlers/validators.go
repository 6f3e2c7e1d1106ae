package handlers

import (
	"fmt"

	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/SscSPs/agency_backoffice/internal/core/finance"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the domain vocabularies to gin's binding validator.
// Unit and pricing mode accept the German labels used by the editor.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}

	validations := map[string]validator.Func{
		"pricingmode": func(fl validator.FieldLevel) bool {
			return finance.IsKnownPricingMode(fl.Field().String())
		},
		"positionunit": func(fl validator.FieldLevel) bool {
			return finance.IsKnownUnit(fl.Field().String())
		},
		"invoicestatus": func(fl validator.FieldLevel) bool {
			return domain.InvoiceStatus(fl.Field().String()).IsValid()
		},
	}
	for tag, fn := range validations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s validation: %w", tag, err)
		}
	}
	return nil
}
