package models

// FirmProfile is the single row of the firm_profile table.
type FirmProfile struct {
	FirmName      string `db:"firm_name"`
	FirmType      string `db:"firm_type"`
	Address       string `db:"address"`
	City          string `db:"city"`
	State         string `db:"state"`
	Pincode       string `db:"pincode"`
	Email         string `db:"email"`
	Phone         string `db:"phone"`
	PANNumber     string `db:"pan_number"`
	GSTNumber     string `db:"gst_number"`
	TANNumber     string `db:"tan_number"`
	BankName      string `db:"bank_name"`
	AccountNumber string `db:"account_number"`
	IFSCCode      string `db:"ifsc_code"`
	AccountType   string `db:"account_type"`
	AuditFields
}
