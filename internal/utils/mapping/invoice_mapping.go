package mapping

import (
	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/SscSPs/agency_backoffice/internal/models"
)

// ToModelInvoice converts a domain Invoice to a model Invoice.
// Items are mapped separately with ToModelInvoiceItem.
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:      d.InvoiceID,
		ProjectID:      d.ProjectID,
		CustomerID:     d.CustomerID,
		InvoiceNumber:  d.InvoiceNumber,
		NumberYear:     d.Date.Year(),
		NumberSequence: d.NumberSequence,
		InvoiceDate:    d.Date,
		DueDate:        d.DueDate,
		AmountNet:      d.AmountNet,
		TaxRate:        d.TaxRate,
		AmountTax:      d.AmountTax,
		AmountGross:    d.AmountGross,
		Shipping:       d.Shipping,
		Discount:       d.Discount,
		PaidAmount:     d.PaidAmount,
		AmountDue:      d.AmountDue,
		Status:         string(d.Status),
		Notes:          d.Notes,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvoice converts a model Invoice to a domain Invoice without items
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		InvoiceID:      m.InvoiceID,
		ProjectID:      m.ProjectID,
		CustomerID:     m.CustomerID,
		InvoiceNumber:  m.InvoiceNumber,
		NumberSequence: m.NumberSequence,
		Date:           m.InvoiceDate,
		DueDate:        m.DueDate,
		AmountNet:      m.AmountNet,
		TaxRate:        m.TaxRate,
		AmountTax:      m.AmountTax,
		AmountGross:    m.AmountGross,
		Shipping:       m.Shipping,
		Discount:       m.Discount,
		PaidAmount:     m.PaidAmount,
		AmountDue:      m.AmountDue,
		Status:         domain.InvoiceStatus(m.Status),
		Notes:          m.Notes,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelInvoiceItem converts a domain InvoiceItem to a model InvoiceItem
func ToModelInvoiceItem(d domain.InvoiceItem) models.InvoiceItem {
	return models.InvoiceItem{
		InvoiceItemID: d.InvoiceItemID,
		InvoiceID:     d.InvoiceID,
		LineNo:        d.LineNo,
		Description:   d.Description,
		Quantity:      d.Quantity,
		Unit:          d.Unit,
		UnitPrice:     d.UnitPrice,
		Total:         d.Total,
	}
}

// ToDomainInvoiceItem converts a model InvoiceItem to a domain InvoiceItem
func ToDomainInvoiceItem(m models.InvoiceItem) domain.InvoiceItem {
	return domain.InvoiceItem{
		InvoiceItemID: m.InvoiceItemID,
		InvoiceID:     m.InvoiceID,
		LineNo:        m.LineNo,
		Description:   m.Description,
		Quantity:      m.Quantity,
		Unit:          m.Unit,
		UnitPrice:     m.UnitPrice,
		Total:         m.Total,
	}
}
