package edgar

// CompanyProfile is descriptive company data from the submissions API.
type CompanyProfile struct {
	CIK            string `json:"cik"`
	Name           string `json:"name"`
	SIC            string `json:"sic"`
	SICDescription string `json:"sic_description"`
	Category       string `json:"category"`
	FiscalYearEnd  string `json:"fiscal_year_end"` // "MMDD" as filed
}

// Filing identifies one filed document in the EDGAR archive.
type Filing struct {
	Form            string `json:"form"`
	AccessionNumber string `json:"accession_number"`
	PrimaryDocument string `json:"primary_document"`
	URL             string `json:"url"`
}

// submissionsDocument is the subset of the submissions API response the
// client reads. The recent filings block is column-oriented: parallel arrays
// indexed together.
type submissionsDocument struct {
	Name           string `json:"name"`
	SIC            string `json:"sic"`
	SICDescription string `json:"sicDescription"`
	Category       string `json:"category"`
	FiscalYearEnd  string `json:"fiscalYearEnd"`
	Filings        struct {
		Recent struct {
			Form            []string `json:"form"`
			AccessionNumber []string `json:"accessionNumber"`
			PrimaryDocument []string `json:"primaryDocument"`
			FilingDate      []string `json:"filingDate"`
		} `json:"recent"`
	} `json:"filings"`
}
