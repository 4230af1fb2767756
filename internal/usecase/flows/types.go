package flows

const (
	SuggestPriceFlow     = "suggest-price"
	TieredEstimateFlow   = "tiered-estimate"
	SuggestPartsFlow     = "suggest-parts"
	FindVendorsFlow      = "find-vendors"
	InvoiceAnomaliesFlow = "invoice-anomalies"
)

type SuggestPriceInput struct {
	JobDescription  string `json:"job_description" validate:"required,notblank"`
	CustomerHistory string `json:"customer_history,omitempty"`
	Region          string `json:"region,omitempty"`
}

type SuggestPriceOutput struct {
	SuggestedPrice float64 `json:"suggested_price" validate:"gt=0"`
	Reasoning      string  `json:"reasoning" validate:"required"`
}

type TieredEstimateInput struct {
	JobDetails      string `json:"job_details" validate:"required,notblank"`
	CustomerHistory string `json:"customer_history,omitempty"`
}

type EstimateTier struct {
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price" validate:"gt=0"`
}

type TieredEstimateOutput struct {
	Good   EstimateTier `json:"good"`
	Better EstimateTier `json:"better"`
	Best   EstimateTier `json:"best"`
}

type SuggestPartsInput struct {
	JobDescription     string `json:"job_description" validate:"required,notblank"`
	AvailableInventory string `json:"available_inventory,omitempty"`
}

type PartSuggestion struct {
	Name     string `json:"name" validate:"required"`
	Quantity int    `json:"quantity" validate:"gte=1"`
	Reason   string `json:"reason,omitempty"`
}

type SuggestPartsOutput struct {
	Parts []PartSuggestion `json:"parts" validate:"dive"`
}

type FindVendorsInput struct {
	Trade    string `json:"trade" validate:"required,notblank"`
	Part     string `json:"part,omitempty"`
	Location string `json:"location" validate:"required,notblank"`
}

type VendorSuggestion struct {
	Name    string   `json:"name" validate:"required"`
	Phone   string   `json:"phone,omitempty"`
	Website string   `json:"website,omitempty"`
	Trades  []string `json:"trades"`
	Notes   string   `json:"notes,omitempty"`
}

type FindVendorsOutput struct {
	Vendors []VendorSuggestion `json:"vendors" validate:"dive"`
}

type InvoiceAnomaliesInput struct {
	InvoiceSummary  string `json:"invoice_summary" validate:"required,notblank"`
	CustomerHistory string `json:"customer_history,omitempty"`
}

type Anomaly struct {
	Field       string `json:"field" validate:"required"`
	Description string `json:"description" validate:"required"`
	Severity    string `json:"severity" validate:"oneof=low medium high"`
}

type InvoiceAnomaliesOutput struct {
	HasAnomalies bool      `json:"has_anomalies"`
	Anomalies    []Anomaly `json:"anomalies" validate:"dive"`
}
