package domain

// FirmProfile is the single firm the books belong to. It only feeds statement headers.
type FirmProfile struct {
	FirmName      string `json:"firmName"`
	FirmType      string `json:"firmType"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	Pincode       string `json:"pincode"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	PANNumber     string `json:"panNumber"`
	GSTNumber     string `json:"gstNumber"`
	TANNumber     string `json:"tanNumber"`
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	IFSCCode      string `json:"ifscCode"`
	AccountType   string `json:"accountType"`
	AuditFields
}

// FirmHeader is the subset of the profile printed on reports.
type FirmHeader struct {
	FirmName  string `json:"firmName"`
	Address   string `json:"address"`
	GSTNumber string `json:"gstNumber"`
}

// Header extracts the report header.
func (f FirmProfile) Header() FirmHeader {
	addr := f.Address
	for _, part := range []string{f.City, f.State, f.Pincode} {
		if part == "" {
			continue
		}
		if addr != "" {
			addr += ", "
		}
		addr += part
	}
	return FirmHeader{FirmName: f.FirmName, Address: addr, GSTNumber: f.GSTNumber}
}
