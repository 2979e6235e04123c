package dto

import (
	"time"

	"github.com/SscSPs/firm_books/internal/core/domain"
)

// UpdateFirmProfileRequest replaces the firm profile. Only the firm name is required.
type UpdateFirmProfileRequest struct {
	FirmName      string `json:"firmName" binding:"required"`
	FirmType      string `json:"firmType"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	Pincode       string `json:"pincode" binding:"omitempty,numeric,len=6"`
	Email         string `json:"email" binding:"omitempty,email"`
	Phone         string `json:"phone"`
	PANNumber     string `json:"panNumber" binding:"omitempty,len=10,alphanum"`
	GSTNumber     string `json:"gstNumber" binding:"omitempty,len=15,alphanum"`
	TANNumber     string `json:"tanNumber" binding:"omitempty,len=10,alphanum"`
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber" binding:"omitempty,numeric"`
	IFSCCode      string `json:"ifscCode" binding:"omitempty,len=11,alphanum"`
	AccountType   string `json:"accountType"`
}

// FirmProfileResponse defines the firm profile returned by the API.
type FirmProfileResponse struct {
	FirmName      string            `json:"firmName"`
	FirmType      string            `json:"firmType"`
	Address       string            `json:"address"`
	City          string            `json:"city"`
	State         string            `json:"state"`
	Pincode       string            `json:"pincode"`
	Email         string            `json:"email"`
	Phone         string            `json:"phone"`
	PANNumber     string            `json:"panNumber"`
	GSTNumber     string            `json:"gstNumber"`
	TANNumber     string            `json:"tanNumber"`
	BankName      string            `json:"bankName"`
	AccountNumber string            `json:"accountNumber"`
	IFSCCode      string            `json:"ifscCode"`
	AccountType   string            `json:"accountType"`
	Header        domain.FirmHeader `json:"header"`
	LastUpdatedAt time.Time         `json:"lastUpdatedAt"`
	LastUpdatedBy string            `json:"lastUpdatedBy"`
}

// ToFirmProfile copies the request onto a domain profile, leaving audit fields untouched.
func (r UpdateFirmProfileRequest) ToFirmProfile(base domain.FirmProfile) domain.FirmProfile {
	base.FirmName = r.FirmName
	base.FirmType = r.FirmType
	base.Address = r.Address
	base.City = r.City
	base.State = r.State
	base.Pincode = r.Pincode
	base.Email = r.Email
	base.Phone = r.Phone
	base.PANNumber = r.PANNumber
	base.GSTNumber = r.GSTNumber
	base.TANNumber = r.TANNumber
	base.BankName = r.BankName
	base.AccountNumber = r.AccountNumber
	base.IFSCCode = r.IFSCCode
	base.AccountType = r.AccountType
	return base
}

// ToFirmProfileResponse converts a domain.FirmProfile to FirmProfileResponse DTO
func ToFirmProfileResponse(p *domain.FirmProfile) FirmProfileResponse {
	return FirmProfileResponse{
		FirmName:      p.FirmName,
		FirmType:      p.FirmType,
		Address:       p.Address,
		City:          p.City,
		State:         p.State,
		Pincode:       p.Pincode,
		Email:         p.Email,
		Phone:         p.Phone,
		PANNumber:     p.PANNumber,
		GSTNumber:     p.GSTNumber,
		TANNumber:     p.TANNumber,
		BankName:      p.BankName,
		AccountNumber: p.AccountNumber,
		IFSCCode:      p.IFSCCode,
		AccountType:   p.AccountType,
		Header:        p.Header(),
		LastUpdatedAt: p.LastUpdatedAt,
		LastUpdatedBy: p.LastUpdatedBy,
	}
}
