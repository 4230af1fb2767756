package request

type SuggestPriceRequest struct {
	Region string `json:"region"`
}
