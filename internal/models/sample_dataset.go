package models

// SampleDataset is a generated set of rows for development databases.
type SampleDataset struct {
	Projects     []Project
	Transactions []Transaction
	Invoices     []Invoice
	Alerts       []Alert
}

// SampleDataOptions sizes a generated dataset.
type SampleDataOptions struct {
	Projects             int `json:"projects" validate:"min=0,max=500"`
	TransactionsPerMonth int `json:"transactionsPerMonth" validate:"min=0,max=1000"`
	Months               int `json:"months" validate:"min=1,max=60"`
	Invoices             int `json:"invoices" validate:"min=0,max=5000"`
	Alerts               int `json:"alerts" validate:"min=0,max=100"`
}

func DefaultSampleDataOptions() SampleDataOptions {
	return SampleDataOptions{
		Projects:             8,
		TransactionsPerMonth: 12,
		Months:               6,
		Invoices:             15,
		Alerts:               5,
	}
}
