package mapping

import (
	"github.com/SscSPs/firm_books/internal/core/domain"
	"github.com/SscSPs/firm_books/internal/models"
)

// ToModelFirmProfile converts a domain FirmProfile to a model FirmProfile
func ToModelFirmProfile(d domain.FirmProfile) models.FirmProfile {
	return models.FirmProfile{
		FirmName:      d.FirmName,
		FirmType:      d.FirmType,
		Address:       d.Address,
		City:          d.City,
		State:         d.State,
		Pincode:       d.Pincode,
		Email:         d.Email,
		Phone:         d.Phone,
		PANNumber:     d.PANNumber,
		GSTNumber:     d.GSTNumber,
		TANNumber:     d.TANNumber,
		BankName:      d.BankName,
		AccountNumber: d.AccountNumber,
		IFSCCode:      d.IFSCCode,
		AccountType:   d.AccountType,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFirmProfile converts a model FirmProfile to a domain FirmProfile
func ToDomainFirmProfile(m models.FirmProfile) domain.FirmProfile {
	return domain.FirmProfile{
		FirmName:      m.FirmName,
		FirmType:      m.FirmType,
		Address:       m.Address,
		City:          m.City,
		State:         m.State,
		Pincode:       m.Pincode,
		Email:         m.Email,
		Phone:         m.Phone,
		PANNumber:     m.PANNumber,
		GSTNumber:     m.GSTNumber,
		TANNumber:     m.TANNumber,
		BankName:      m.BankName,
		AccountNumber: m.AccountNumber,
		IFSCCode:      m.IFSCCode,
		AccountType:   m.AccountType,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
